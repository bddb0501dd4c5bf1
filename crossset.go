// crossset.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

// This file implements the cross-set and extension-set engine
//: for every empty square, the set of letters that may
// legally occupy it given the perpendicular word it would form,
// and the hook sets that bound legal extension of the main word
// through that square. Draft A (DAWG-through-prefix for rightx,
// GADDAG-through-reversed-suffix for leftx) is the production
// path; draftBLeftx below implements the alternate formulation
// noted in the design notes and is not called anywhere in the
// package, tests included.

/*

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.

*/


package equicore

// traverseLetters walks the sibling lists starting at start,
// following each letter in turn, and returns the node reached
// (an arc index usable as the start of the next sibling scan).
func (lx *Lexicon) traverseLetters(start uint32, letters []MachineLetter) (uint32, bool) {
	node := start
	for _, l := range letters {
		idx, ok := lx.findSibling(node, l.Unblank())
		if !ok {
			return 0, false
		}
		node = arcOf(lx.nodes[idx])
	}
	return node, true
}

// TraverseDawg follows letters from the DAWG root.
func (lx *Lexicon) TraverseDawg(letters []MachineLetter) (uint32, bool) {
	return lx.traverseLetters(lx.dawgRoot, letters)
}

// TraverseGaddag follows letters from the GADDAG root.
func (lx *Lexicon) TraverseGaddag(letters []MachineLetter) (uint32, bool) {
	return lx.traverseLetters(lx.gaddagRoot, letters)
}

// crossSetFromPrefixNode scans the sibling list at prefixNode; a
// letter is admitted to the result iff, after consuming it, the
// given suffix can be followed all the way to an accepting node.
func (lx *Lexicon) crossSetFromPrefixNode(prefixNode uint32, suffix []MachineLetter) LetterSet {
	if prefixNode == 0 {
		return 0
	}
	var result LetterSet
	idx := prefixNode
	for {
		w := lx.nodes[idx]
		t := tileOf(w)
		if t != Separator {
			if len(suffix) == 0 {
				if acceptsOf(w) {
					result = result.With(t)
				}
			} else {
				node := arcOf(w)
				ok := true
				var lastAccepts bool
				for _, s := range suffix {
					sid, found := lx.findSibling(node, s.Unblank())
					if !found {
						ok = false
						break
					}
					sw := lx.nodes[sid]
					lastAccepts = acceptsOf(sw)
					node = arcOf(sw)
				}
				if ok && lastAccepts {
					result = result.With(t)
				}
			}
		}
		if isEndOfListOf(w) {
			return result
		}
		idx++
	}
}

// crossSetAndScore computes the perpendicular cross-set and
// cross-score for a square given the tile runs bordering it. An
// isolated square (no letters on either side) gets the trivial
// all-letters set and the -1 "no cross word" sentinel.
func crossSetAndScore(lx *Lexicon, prefix, suffix []MachineLetter) (LetterSet, Equity) {
	if len(prefix) == 0 && len(suffix) == 0 {
		return TrivialLetterSet, -1
	}
	var score Equity
	for _, l := range prefix {
		score += ScoreOf(l)
	}
	for _, l := range suffix {
		score += ScoreOf(l)
	}
	prefixNode, ok := lx.TraverseDawg(prefix)
	if !ok {
		return 0, score
	}
	return lx.crossSetFromPrefixNode(prefixNode, suffix), score
}

// computeRightx computes the back-hook set directly available
// after following prefix through the DAWG.
func computeRightx(lx *Lexicon, prefix []MachineLetter) LetterSet {
	node, ok := lx.TraverseDawg(prefix)
	if !ok {
		return 0
	}
	_, ext := lx.LetterSets(node)
	return ext
}

// computeLeftx computes the front-hook set directly available
// after following the reversed suffix through the GADDAG,
// without crossing the separator.
func computeLeftx(lx *Lexicon, suffix []MachineLetter) LetterSet {
	rev := reverseLetters(suffix)
	node, ok := lx.TraverseGaddag(rev)
	if !ok {
		return 0
	}
	_, ext := lx.LetterSets(node)
	return ext
}

// draftBLeftx reconstructs the older, superseded formulation of
// leftx noted in the design notes: DAWG-based, crossing the
// GADDAG separator before following the suffix in natural order.
// It is not called from the production cross-set path, and no
// test calls it.
func draftBLeftx(lx *Lexicon, suffix []MachineLetter) LetterSet {
	idx, ok := lx.findSibling(lx.gaddagRoot, Separator)
	if !ok {
		return 0
	}
	node := arcOf(lx.nodes[idx])
	node2, ok2 := lx.traverseLetters(node, suffix)
	if !ok2 {
		return 0
	}
	_, ext := lx.LetterSets(node2)
	return ext
}

func reverseLetters(s []MachineLetter) []MachineLetter {
	out := make([]MachineLetter, len(s))
	for i, l := range s {
		out[len(s)-1-i] = l
	}
	return out
}

// runBefore returns the contiguous run of placed letters
// immediately before (row, col) along the given axis, in
// natural reading order (outermost tile first, nearest to the
// square last).
func (b *Board) runBefore(row, col int, horizontal bool) []MachineLetter {
	var letters []MachineLetter
	if horizontal {
		for c := col - 1; c >= 0; c-- {
			l := b.LetterAt(row, c)
			if l == Separator {
				break
			}
			letters = append(letters, l)
		}
	} else {
		for r := row - 1; r >= 0; r-- {
			l := b.LetterAt(r, col)
			if l == Separator {
				break
			}
			letters = append(letters, l)
		}
	}
	return reverseLetters(letters)
}

// runAfter returns the contiguous run of placed letters
// immediately after (row, col) along the given axis, nearest
// tile first (reading away from the square).
func (b *Board) runAfter(row, col int, horizontal bool) []MachineLetter {
	var letters []MachineLetter
	if horizontal {
		for c := col + 1; c < BoardSize; c++ {
			l := b.LetterAt(row, c)
			if l == Separator {
				break
			}
			letters = append(letters, l)
		}
	} else {
		for r := row + 1; r < BoardSize; r++ {
			l := b.LetterAt(r, col)
			if l == Separator {
				break
			}
			letters = append(letters, l)
		}
	}
	return letters
}

// computeSquareCrossSets fills in a single empty square's
// H/V cross-sets, cross-scores, and the four extension sets.
func computeSquareCrossSets(b *Board, lx *Lexicon, sq *Square) {
	vPrefix := b.runBefore(sq.Row, sq.Col, false)
	vSuffix := b.runAfter(sq.Row, sq.Col, false)
	sq.HCrossSet, sq.HCrossScore = crossSetAndScore(lx, vPrefix, vSuffix)

	hPrefix := b.runBefore(sq.Row, sq.Col, true)
	hSuffix := b.runAfter(sq.Row, sq.Col, true)
	sq.VCrossSet, sq.VCrossScore = crossSetAndScore(lx, hPrefix, hSuffix)

	sq.RightxH = computeRightx(lx, hPrefix)
	sq.LeftxH = computeLeftx(lx, hSuffix)
	sq.RightxV = computeRightx(lx, vPrefix)
	sq.LeftxV = computeLeftx(lx, vSuffix)
}

// BoardUpdateCrossSets recomputes every square's cross-sets and
// extension sets from the current tile layout. Occupied squares
// are reset to the zero / no-cross sentinel values. Running this
// twice in a row is idempotent.
func BoardUpdateCrossSets(b *Board, lx *Lexicon) {
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			sq := b.Sq(r, c)
			if !sq.Empty() {
				sq.HCrossSet, sq.VCrossSet = 0, 0
				sq.HCrossScore, sq.VCrossScore = -1, -1
				sq.LeftxH, sq.RightxH, sq.LeftxV, sq.RightxV = 0, 0, 0, 0
			} else {
				computeSquareCrossSets(b, lx, sq)
			}
			b.syncSquare(r, c)
		}
	}
}
