// exchange.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

// This file implements the exchange enumerator: when the
// bag holds enough tiles to make an exchange worthwhile, it scores
// every non-empty subset of the rack as a candidate set of tiles
// to put back, valuing each by the leave value of whatever stays
// in hand.

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

// MinExchangeBag is the minimum bag count at which an exchange is
// even considered.
const MinExchangeBag = 7

// bestExchange enumerates all 2^n-1 non-empty subsets of rack as
// candidate tiles to exchange, returning the subset whose
// complement (what remains in hand) has the highest leave value,
// or nil if no exchange is worth proposing.
func bestExchange(rack *Rack, leaves *LeaveTable, bagCount int) *Move {
	if bagCount < MinExchangeBag || leaves == nil || rack.Total == 0 {
		return nil
	}
	tiles := make([]MachineLetter, 0, rack.Total)
	for i := int8(0); i < rack.Counts[0]; i++ {
		tiles = append(tiles, 0)
	}
	for l := MachineLetter(1); l <= NumLetters; l++ {
		for i := int8(0); i < rack.Counts[l]; i++ {
			tiles = append(tiles, l)
		}
	}
	n := len(tiles)

	var best *Move
	var bestLeave Equity
	for mask := 1; mask < (1 << uint(n)); mask++ {
		var exchange, leave []MachineLetter
		for i := 0; i < n; i++ {
			if mask&(1<<uint(i)) != 0 {
				exchange = append(exchange, tiles[i])
			} else {
				leave = append(leave, tiles[i])
			}
		}
		value := leaves.ValueOfSortedLetters(sortedLetters(leave))
		if best == nil || value > bestLeave {
			bestLeave = value
			best = &Move{
				Kind:     MoveKindExchange,
				Exchange: exchange,
				Score:    0,
				Equity:   value,
			}
		}
	}
	return best
}

// sortedLetters returns letters sorted blanks-first then ascending,
// matching the leave table's key ordering.
func sortedLetters(letters []MachineLetter) []MachineLetter {
	out := append([]MachineLetter(nil), letters...)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j] < out[j-1]; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}
