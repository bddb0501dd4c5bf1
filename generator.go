// generator.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

// This file implements the top-level move generation entry point:
// build the shadow-ordered anchor heap, pop anchors
// best-bound-first running the GADDAG generator at each until the
// remaining bound can no longer beat the running best, then compare
// the winning placement against the best available exchange.

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

// GenerateMoves is the core's sole entry point: given a board with
// up-to-date cross-sets (see BoardUpdateCrossSets), the player's
// rack, the opponent's rack if known, a lexicon, an optional
// leave-value table, and the number of tiles left in the bag, it
// returns the single best move by equity, or (nil, false) if
// nothing is playable (the caller must pass).
func GenerateMoves(board *Board, rack *Rack, oppRack *Rack, lexicon *Lexicon, leaves *LeaveTable, bagCount int) (*Move, bool) {
	if rack == nil || rack.Total == 0 {
		return nil, false
	}

	lm := NewLeaveMap(rack, leaves)
	boardEmptyBefore := board.NumTiles == 0

	heap := BuildAnchorHeap(board, lexicon, rack, lm, bagCount, oppRack)
	best := &bestTracker{}

	var cachedRC *RowCache
	var cachedHorizontal bool
	var cachedIndex = -1

	for heap.Len() > 0 {
		anchor := heap.ExtractMax()
		if best.has && anchor.UpperBoundEq < best.equity {
			break
		}
		rcIndex := anchor.Row
		axisIdx := anchor.Col
		if !anchor.Horizontal {
			rcIndex = anchor.Col
			axisIdx = anchor.Row
		}
		if cachedRC == nil || cachedHorizontal != anchor.Horizontal || cachedIndex != rcIndex {
			cachedRC = NewRowCache(board, anchor.Horizontal, rcIndex)
			cachedHorizontal = anchor.Horizontal
			cachedIndex = rcIndex
		}
		RunGaddagAtAnchor(lexicon, leaves, cachedRC, board, rack, lm, axisIdx, anchor.LastAnchorCol, bagCount, oppRack, boardEmptyBefore, best)
	}

	exchange := bestExchange(rack, leaves, bagCount)

	var final *Move
	if best.has {
		final = best.move
	}
	if exchange != nil && (final == nil || betterMove(exchange, final)) {
		final = exchange
	}
	if final == nil {
		return nil, false
	}
	return final, true
}
