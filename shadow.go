// shadow.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

// This file implements the shadow estimator: a per-row,
// per-direction cache of letters, bonuses, cross-sets and
// extension sets, and a per-anchor walk that computes an
// admissible (never-underestimating) upper bound on the equity
// reachable through that anchor.
//
// The per-tile pairing of a square's word multiplier with the
// eventual running word multiplier of the finished word is, in the
// general case, not known until the word's full span is fixed.
// Rather than retroactively rescale earlier entries as later
// squares extend the word (which the incremental formulation in
// the design notes glosses over), every contribution to the main
// word here - both the forced/playthrough accumulation and every
// unrestricted square's per-tile estimate - is scaled by a single
// conservative bound, maxWordMultInWindow: the product of every
// word multiplier within reach of this anchor given the rack size.
// That bound can only be greater than or equal to whatever
// multiplier the real word ends up accumulating, so the resulting
// estimate stays admissible at some cost in tightness.

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

import "golang.org/x/exp/slices"

// RowCache holds one row's (or, for a vertical pass, one column's)
// letters, bonuses, cross-sets and extension sets in linear arrays
// so that a shadow walk and the GADDAG generator can scan
// sequential memory regardless of axis.
type RowCache struct {
	Horizontal bool
	Index      int

	Letters    [BoardSize]MachineLetter
	CrossSet   [BoardSize]LetterSet
	CrossScore [BoardSize]Equity
	Leftx      [BoardSize]LetterSet
	Rightx     [BoardSize]LetterSet
	LetterMult [BoardSize]int
	WordMult   [BoardSize]int
	IsAnchor   [BoardSize]bool
}

// NewRowCache builds a RowCache for row `index` (horizontal) or
// column `index` (vertical).
func NewRowCache(b *Board, horizontal bool, index int) *RowCache {
	rc := &RowCache{Horizontal: horizontal, Index: index}
	for i := 0; i < BoardSize; i++ {
		sq := b.axisSquare(horizontal, index, i)
		rc.Letters[i] = sq.Letter
		rc.LetterMult[i] = sq.LetterMult
		rc.WordMult[i] = sq.WordMult
		if horizontal {
			rc.CrossSet[i] = sq.HCrossSet
			rc.CrossScore[i] = sq.HCrossScore
			rc.Leftx[i] = sq.LeftxH
			rc.Rightx[i] = sq.RightxH
		} else {
			rc.CrossSet[i] = sq.VCrossSet
			rc.CrossScore[i] = sq.VCrossScore
			rc.Leftx[i] = sq.LeftxV
			rc.Rightx[i] = sq.RightxV
		}
		var row, col int
		if horizontal {
			row, col = index, i
		} else {
			row, col = i, index
		}
		rc.IsAnchor[i] = b.IsAnchor(row, col)
	}
	return rc
}

// maxWordMultInWindow returns the product of every word multiplier
// greater than 1 within RackSize squares of the anchor on either
// side: a conservative cap on how much the eventual word
// multiplier for a move through this anchor can possibly be, since
// a move places at most RackSize new tiles split between the two
// directions.
func maxWordMultInWindow(rc *RowCache, anchorIdx int) int {
	lo := anchorIdx - RackSize
	hi := anchorIdx + RackSize
	if lo < 0 {
		lo = 0
	}
	if hi > BoardSize-1 {
		hi = BoardSize - 1
	}
	mult := 1
	for i := lo; i <= hi; i++ {
		if rc.WordMult[i] > 1 {
			mult *= rc.WordMult[i]
		}
	}
	return mult
}

// descendingRackScores returns the eighths-of-a-point value of
// every tile currently on the rack (blanks score 0), sorted
// descending.
func descendingRackScores(r *Rack) []Equity {
	scores := make([]Equity, 0, r.Total)
	for l := MachineLetter(1); l <= NumLetters; l++ {
		for i := int8(0); i < r.Counts[l]; i++ {
			scores = append(scores, ScoreOf(l))
		}
	}
	for i := int8(0); i < r.Counts[0]; i++ {
		scores = append(scores, 0)
	}
	slices.SortFunc(scores, func(a, b Equity) int { return int(b - a) })
	return scores
}

// removeOneScore deletes a single element equal to v from a
// descending-sorted slice, preserving sort order.
func removeOneScore(scores []Equity, v Equity) []Equity {
	for i, s := range scores {
		if s == v {
			return append(scores[:i], scores[i+1:]...)
		}
	}
	return scores
}

// shadowWalk is the per-anchor mutable bookkeeping for a single
// shadow estimate: forced contributions accumulate directly, while
// unrestricted squares defer their contribution to the rearrangement
// pairing performed at each record() call.
type shadowWalk struct {
	rc          *RowCache
	remaining   [NumLetters + 1]int8 // local copy of rack counts, decremented as tiles are forced
	hasBlank    bool
	rackBits    LetterSet
	maxMult     int
	lm          *LeaveMap
	originalTot int
	bagCount    int
	oppRack     *Rack

	tilesPlaced int
	mainScore   Equity
	perpScore   Equity
	descScores  []Equity
	effMult     []Equity

	best Equity
}

// considerSquare folds one square into the walk: playthrough
// squares are free, forced single-letter squares are committed
// immediately, and multi-letter squares are deferred into the
// rearrangement lists. Returns false if this square cannot be used
// at all (dead end for further extension in this direction).
func (w *shadowWalk) considerSquare(i int) bool {
	if w.rc.Letters[i] != Separator {
		w.mainScore += ScoreOf(w.rc.Letters[i])
		return true
	}
	if w.tilesPlaced >= w.originalTot {
		return false
	}
	possible := w.rc.CrossSet[i]
	if !w.hasBlank {
		possible &= w.rackBits
	}
	if possible == 0 {
		return false
	}
	hasCross := w.rc.CrossScore[i] >= 0
	letterMult := Equity(w.rc.LetterMult[i])
	wordMult := Equity(w.rc.WordMult[i])

	if possible.Count() == 1 {
		letter := possible.Sole()
		sc := ScoreOf(letter)
		if w.remaining[letter] == 0 {
			sc = 0 // only reachable via a blank
			w.remaining[0]--
		} else {
			w.remaining[letter]--
		}
		w.descScores = removeOneScore(w.descScores, sc)
		w.mainScore += sc * letterMult
		if hasCross {
			w.perpScore += sc * letterMult * wordMult
		}
	} else {
		em := letterMult * Equity(w.maxMult)
		if hasCross {
			em += letterMult * wordMult
		}
		w.effMult = append(w.effMult, em)
	}
	w.tilesPlaced++
	return true
}

// record folds the current walk state into an admissible equity
// estimate and keeps the running maximum.
func (w *shadowWalk) record() {
	effMult := append([]Equity(nil), w.effMult...)
	slices.SortFunc(effMult, func(a, b Equity) int { return int(b - a) })
	n := len(effMult)
	if len(w.descScores) < n {
		n = len(w.descScores)
	}
	var tilesPlayedScore Equity
	for i := 0; i < n; i++ {
		tilesPlayedScore += w.descScores[i] * effMult[i]
	}
	score := tilesPlayedScore + w.mainScore*Equity(w.maxMult) + w.perpScore
	if w.tilesPlaced >= RackSize {
		score += BingoBonus
	}
	var equity Equity
	if w.bagCount > 0 {
		equity = score + w.lm.BestLeaf(w.originalTot-w.tilesPlaced)
	} else {
		outplay := w.tilesPlaced == w.originalTot
		equity = score + shadowEndgameAdjustment(outplay, w.descScores, w.originalTot-w.tilesPlaced, rackScoreSum(w.oppRack))
	}
	if equity > w.best {
		w.best = equity
	}
}

// ShadowAnchorBound computes the admissible upper bound on equity
// achievable through a single anchor. lm must have been
// built from the same rack passed in; a nil lm disables leave-aware
// scoring (treated as all-zero leave values).
func ShadowAnchorBound(rc *RowCache, rack *Rack, lm *LeaveMap, anchorIdx, lastAnchorIdx, bagCount int, oppRack *Rack) Equity {
	if !rc.IsAnchor[anchorIdx] {
		return 0
	}
	w := &shadowWalk{
		rc:          rc,
		remaining:   rack.Counts,
		hasBlank:    rack.HasBlank(),
		rackBits:    rack.Bits(),
		maxMult:     maxWordMultInWindow(rc, anchorIdx),
		lm:          lm,
		originalTot: rack.Total,
		bagCount:    bagCount,
		oppRack:     oppRack,
		descScores:  descendingRackScores(rack),
	}
	if !w.considerSquare(anchorIdx) {
		return 0
	}
	w.record()

	leftBound := 0
	if lastAnchorIdx >= 0 && lastAnchorIdx < anchorIdx {
		leftBound = lastAnchorIdx + 1
	}
	for i := anchorIdx - 1; i >= leftBound; i-- {
		if !w.considerSquare(i) {
			break
		}
		w.record()
	}
	for i := anchorIdx + 1; i < BoardSize; i++ {
		if !w.considerSquare(i) {
			break
		}
		w.record()
	}
	return w.best
}

// BuildAnchorHeap scans every row and column of the board in both
// directions, computing a shadow bound for each anchor square and
// inserting it into a freshly built AnchorHeap, in the fixed
// row-major-then-col-major scan order that the heap's stable
// secondary ordering relies on.
func BuildAnchorHeap(b *Board, lex *Lexicon, rack *Rack, lm *LeaveMap, bagCount int, oppRack *Rack) *AnchorHeap {
	ah := NewAnchorHeap()
	scan := 0
	for row := 0; row < BoardSize; row++ {
		rc := NewRowCache(b, true, row)
		lastAnchor := -1
		for col := 0; col < BoardSize; col++ {
			if !rc.IsAnchor[col] {
				continue
			}
			bound := ShadowAnchorBound(rc, rack, lm, col, lastAnchor, bagCount, oppRack)
			ah.Insert(Anchor{
				Row: row, Col: col, Horizontal: true,
				LastAnchorCol: lastAnchor, UpperBoundEq: bound, ScanOrder: scan,
			})
			lastAnchor = col
			scan++
		}
	}
	if b.NumTiles == 0 {
		// On an empty board only the center square is an anchor,
		// and a horizontal and a vertical move through it are
		// equivalent up to relabeling; scanning both would only
		// duplicate every candidate.
		ah.Build()
		return ah
	}
	for col := 0; col < BoardSize; col++ {
		rc := NewRowCache(b, false, col)
		lastAnchor := -1
		for row := 0; row < BoardSize; row++ {
			if !rc.IsAnchor[row] {
				continue
			}
			bound := ShadowAnchorBound(rc, rack, lm, row, lastAnchor, bagCount, oppRack)
			ah.Insert(Anchor{
				Row: row, Col: col, Horizontal: false,
				LastAnchorCol: lastAnchor, UpperBoundEq: bound, ScanOrder: scan,
			})
			lastAnchor = row
			scan++
		}
	}
	ah.Build()
	return ah
}
