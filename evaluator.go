// evaluator.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

// This file implements the static evaluator: the opening
// placement penalty for playing a vowel next to a premium square
// on the first move, and the endgame equity adjustments used once
// the bag is empty.

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

// openingVowelPenalty[row][col] is the equity penalty (in
// eighths, already negative or zero) for placing a vowel at
// (row, col) on an otherwise empty board, derived once from the
// standard board's fixed bonus layout: a double letter square
// nearby costs 1 point, a triple letter square nearby costs 2.
var openingVowelPenalty [BoardSize][BoardSize]Equity

func init() {
	b := NewBoard()
	deltas := [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			var penalty Equity
			for _, d := range deltas {
				nr, nc := r+d[0], c+d[1]
				n := b.Sq(nr, nc)
				if n == nil {
					continue
				}
				switch n.LetterMult {
				case 2:
					penalty -= 1 * EighthsPerPoint
				case 3:
					penalty -= 2 * EighthsPerPoint
				}
			}
			openingVowelPenalty[r][c] = penalty
		}
	}
}

// isVowel reports whether a (possibly blanked) letter is A/E/I/O/U.
func isVowel(l MachineLetter) bool {
	switch l.Unblank() {
	case 1, 5, 9, 15, 21: // A, E, I, O, U
		return true
	}
	return false
}

// openingPlacementAdjustment sums the vowel-adjacency penalty over
// every newly placed tile in a move, and is added to equity only
// when the board was empty before the move was made.
func openingPlacementAdjustment(m *Move) Equity {
	if m.Kind != MoveKindPlacement {
		return 0
	}
	var total Equity
	row, col := m.Row, m.Col
	dRow, dCol := 0, 1
	if !m.Horizontal {
		dRow, dCol = 1, 0
	}
	for i := 0; i < m.TilesLength; i++ {
		l := m.Tiles[i]
		if l != PlaythroughMarker && isVowel(l) {
			total += openingVowelPenalty[row][col]
		}
		row += dRow
		col += dCol
	}
	return total
}

// rackScoreSum sums a rack's tile values in eighths; blanks
// always contribute zero.
func rackScoreSum(r *Rack) Equity {
	if r == nil {
		return 0
	}
	var sum Equity
	for l := MachineLetter(1); l <= NumLetters; l++ {
		sum += Equity(r.Counts[l]) * TileScoresEighths[l]
	}
	return sum
}

// endgameAdjustment computes the exact endgame equity term used
// by the GADDAG generator once the bag is empty: an
// out-play is rewarded with twice the opponent's remaining rack
// value; any other play is penalized by twice the player's own
// remaining rack value plus a flat constant.
func endgameAdjustment(outplay bool, playerLeaveScore Equity, oppRack *Rack) Equity {
	if outplay {
		return 2 * rackScoreSum(oppRack)
	}
	return -2*playerLeaveScore - EndgameConstant
}

// shadowEndgameAdjustment computes the optimistic endgame penalty
// used by the shadow estimator, which cannot commit
// to specific tile identities for any unrestricted square: it
// assumes the cheapest possible unplayed tiles remain, which is
// the least costly (hence admissible, upper-bound) assumption.
// descendingScores must be sorted descending; remaining is the
// number of tiles assumed left in hand.
func shadowEndgameAdjustment(outplay bool, descendingScores []Equity, remaining int, oppRackValue Equity) Equity {
	if outplay {
		return 2 * oppRackValue
	}
	if remaining <= 0 {
		return -EndgameConstant
	}
	n := len(descendingScores)
	var smallestSum Equity
	for i := n - remaining; i < n; i++ {
		if i < 0 {
			continue
		}
		smallestSum += descendingScores[i]
	}
	return -2*smallestSum - EndgameConstant
}
