// gaddag.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

// This file implements the recursive GADDAG move generator:
// given an anchor square and the GADDAG root, it extends a
// partial word left and right across the row or column cache,
// crossing the GADDAG separator exactly once per branch to pivot
// from leftward to rightward extension, recording a candidate move
// at every accepting stop and keeping the single best move seen
// across every anchor visited in a generation call.

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

// bestTracker holds the single best move found so far across every
// anchor visited during one GenerateMoves call, so the heap-driven
// cutoff in RunGaddagAtAnchor's caller can compare against it.
type bestTracker struct {
	move   *Move
	equity Equity
	has    bool
}

func (bt *bestTracker) consider(candidate *Move) {
	if !bt.has || betterMove(candidate, bt.move) {
		m := *candidate
		bt.move = &m
		bt.equity = candidate.Equity
		bt.has = true
	}
}

// generatorState is the per-anchor mutable state threaded through
// the extend/goOn recursion.
type generatorState struct {
	lex    *Lexicon
	leaves *LeaveTable
	rc     *RowCache
	board  *Board

	rack *Rack
	lm   *LeaveMap

	anchorIdx            int
	leftLimit            int // cannot extend left of this index
	leftExtSet           LetterSet
	rightExtSet          LetterSet
	noLetterRightOfAnchor bool

	originalRackTotal int
	bagCount          int
	oppRack           *Rack
	boardEmptyBefore  bool

	tilesPlayed   int
	mainWordScore Equity
	crossScore    Equity
	wordMult      int
	strip         [BoardSize]MachineLetter
	leftstrip     int
	rightstrip    int

	best *bestTracker
}

// extend implements step 1-3 of the recursive generator: compute
// the admissible cross-set at c, then either follow a playthrough
// tile or try every rack letter (and a blank standing in for it)
// that the cross-set and the GADDAG both allow.
func (g *generatorState) extend(c int, n uint32) {
	if c < 0 || c >= BoardSize {
		return
	}
	crossSet := g.rc.CrossSet[c]
	if c <= g.anchorIdx {
		crossSet &= g.leftExtSet
	}
	if g.tilesPlayed == 0 && c == g.anchorIdx+1 {
		crossSet &= g.rightExtSet
	}

	if g.rc.Letters[c] != Separator {
		letter := g.rc.Letters[c].Unblank()
		idx, ok := g.lex.findSibling(n, letter)
		if !ok {
			return
		}
		w := g.lex.nodes[idx]
		g.goOn(c, g.rc.Letters[c], false, arcOf(w), acceptsOf(w))
		return
	}

	if g.rack.Total == 0 || n == 0 {
		return
	}
	idx := n
	for {
		w := g.lex.nodes[idx]
		t := tileOf(w)
		if t != Separator && crossSet.Has(t) {
			if g.rack.Counts[t] > 0 {
				g.rack.Take(t)
				g.lm.Take(t)
				g.goOn(c, t, true, arcOf(w), acceptsOf(w))
				g.lm.Restore(t)
				g.rack.Restore(t)
			}
			if g.rack.Counts[0] > 0 {
				g.rack.TakeBlank()
				g.lm.Take(0)
				g.goOn(c, t|BlankMask, true, arcOf(w), acceptsOf(w))
				g.lm.Restore(0)
				g.rack.Restore(0)
			}
		}
		if isEndOfListOf(w) {
			return
		}
		idx++
	}
}

// goOn folds the tile just placed/crossed at c into the running
// word, records a candidate if this is a legal stopping point, and
// recurses further outward (or across the separator), restoring
// all accumulators on return.
func (g *generatorState) goOn(c int, letter MachineLetter, consumed bool, nextNode uint32, accepts bool) {
	savedMain, savedCross, savedMult := g.mainWordScore, g.crossScore, g.wordMult
	savedTiles := g.tilesPlayed
	savedLeft, savedRight := g.leftstrip, g.rightstrip

	letterMult := Equity(g.rc.LetterMult[c])
	wordMult := g.rc.WordMult[c]
	tileScore := ScoreOf(letter)

	if consumed {
		g.tilesPlayed++
		g.mainWordScore += tileScore * letterMult
		g.wordMult *= wordMult
		if g.rc.CrossScore[c] >= 0 {
			g.crossScore += (g.rc.CrossScore[c] + tileScore*letterMult) * Equity(wordMult)
		}
	} else {
		g.mainWordScore += tileScore
	}
	g.strip[c] = letter

	if c <= g.anchorIdx {
		g.leftstrip = c
		noLeft := c == 0 || g.rc.Letters[c-1] == Separator
		if accepts && noLeft && g.noLetterRightOfAnchor && g.tilesPlayed > 0 {
			g.recordCandidate()
		}
		if c-1 >= g.leftLimit {
			g.extend(c-1, nextNode)
		}
		if noLeft {
			if sepIdx, ok := g.lex.findSibling(nextNode, Separator); ok {
				sepNode := arcOf(g.lex.nodes[sepIdx])
				g.extend(g.anchorIdx+1, sepNode)
			}
		}
	} else {
		g.rightstrip = c
		noRight := c == BoardSize-1 || g.rc.Letters[c+1] == Separator
		if accepts && noRight && g.tilesPlayed > 0 {
			g.recordCandidate()
		}
		g.extend(c+1, nextNode)
	}

	g.mainWordScore, g.crossScore, g.wordMult = savedMain, savedCross, savedMult
	g.tilesPlayed = savedTiles
	g.leftstrip, g.rightstrip = savedLeft, savedRight
}

// recordCandidate computes the final score and equity for the word
// currently spanning [leftstrip, rightstrip] and, if it beats the
// shared best, materializes it into a Move.
func (g *generatorState) recordCandidate() {
	score := g.mainWordScore*Equity(g.wordMult) + g.crossScore
	if g.tilesPlayed == RackSize {
		score += BingoBonus
	}

	var equity Equity
	if g.bagCount > 0 {
		equity = score + g.lm.GetCurrent()
	} else {
		outplay := g.rack.Total == 0
		leaveScore := rackScoreSum(g.rack)
		equity = score + endgameAdjustment(outplay, leaveScore, g.oppRack)
	}

	if g.best.has && equity < g.best.equity {
		return
	}

	m := &Move{
		Kind:        MoveKindPlacement,
		TilesPlayed: g.tilesPlayed,
		TilesLength: g.rightstrip - g.leftstrip + 1,
		Score:       score,
		Equity:      equity,
	}
	if g.rc.Horizontal {
		m.Row, m.Col, m.Horizontal = g.rc.Index, g.leftstrip, true
	} else {
		m.Row, m.Col, m.Horizontal = g.leftstrip, g.rc.Index, false
	}
	for i := 0; i < m.TilesLength; i++ {
		pos := g.leftstrip + i
		if g.rc.Letters[pos] != Separator {
			m.Tiles[i] = PlaythroughMarker
		} else {
			m.Tiles[i] = g.strip[pos]
		}
	}
	if g.boardEmptyBefore {
		m.Equity += openingPlacementAdjustment(m)
	}

	g.best.consider(m)
}

// RunGaddagAtAnchor invokes the recursive generator for a single
// popped anchor, mutating best in place with any candidate move
// that beats the current one.
func RunGaddagAtAnchor(lex *Lexicon, leaves *LeaveTable, rc *RowCache, board *Board, rack *Rack, lm *LeaveMap, anchorAxisIdx, lastAnchorAxisIdx, bagCount int, oppRack *Rack, boardEmptyBefore bool, best *bestTracker) {
	leftLimit := 0
	if lastAnchorAxisIdx >= 0 {
		leftLimit = lastAnchorAxisIdx + 1
	}
	noLetterRight := anchorAxisIdx+1 >= BoardSize || rc.Letters[anchorAxisIdx+1] == Separator

	g := &generatorState{
		lex:                   lex,
		leaves:                leaves,
		rc:                    rc,
		board:                 board,
		rack:                  rack,
		lm:                    lm,
		anchorIdx:             anchorAxisIdx,
		leftLimit:             leftLimit,
		leftExtSet:            rc.Leftx[anchorAxisIdx],
		rightExtSet:           rc.Rightx[anchorAxisIdx],
		noLetterRightOfAnchor: noLetterRight,
		originalRackTotal:     rack.Total,
		bagCount:              bagCount,
		oppRack:               oppRack,
		boardEmptyBefore:      boardEmptyBefore,
		wordMult:              1,
		leftstrip:             anchorAxisIdx,
		rightstrip:            anchorAxisIdx,
		best:                  best,
	}
	g.extend(anchorAxisIdx, lex.GaddagRoot())
}
