// rack.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

// This file implements the Rack struct and its operations: a
// count per letter (index 0 = blank, 1..26 = A..Z) in a fixed-size
// array, giving the shadow estimator and leave map O(1) bit-flip
// updates.

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

import "strings"

// Rack holds a count per letter, index 0 = blank, 1..26 = A..Z,
// plus the running total. Counts never exceed RackSize.
type Rack struct {
	Counts [NumLetters + 1]int8
	Total  int
}

// NewRack builds a rack from a string of up to RackSize letters,
// '?' denoting a blank.
func NewRack(letters string) *Rack {
	r := &Rack{}
	for _, ch := range letters {
		if ch == '?' {
			r.Counts[0]++
		} else {
			l := MachineLetterFromRune(ch).Unblank()
			r.Counts[l]++
		}
		r.Total++
	}
	return r
}

// Clone returns an independent copy of the rack.
func (r *Rack) Clone() *Rack {
	c := *r
	return &c
}

// HasBlank reports whether the rack holds at least one blank.
func (r *Rack) HasBlank() bool {
	return r.Counts[0] > 0
}

// Bits returns the rack's real (non-blank) letters as a
// LetterSet.
func (r *Rack) Bits() LetterSet {
	var s LetterSet
	for l := MachineLetter(1); l <= NumLetters; l++ {
		if r.Counts[l] > 0 {
			s = s.With(l)
		}
	}
	return s
}

// Take removes one copy of letter l (1..26) from the rack. It
// panics on underflow, matching the core's fail-fast policy for
// invariant violations.
func (r *Rack) Take(l MachineLetter) {
	if r.Counts[l] <= 0 {
		panic("equicore: rack underflow taking a real tile")
	}
	r.Counts[l]--
	r.Total--
}

// TakeBlank removes one blank from the rack. It panics on
// underflow.
func (r *Rack) TakeBlank() {
	if r.Counts[0] <= 0 {
		panic("equicore: rack underflow taking a blank")
	}
	r.Counts[0]--
	r.Total--
}

// Restore returns one copy of letter l (0 = blank) to the rack.
func (r *Rack) Restore(l MachineLetter) {
	if l == 0 {
		r.Counts[0]++
	} else {
		r.Counts[l]++
	}
	r.Total++
}

// String renders the rack's contents, blanks as '?'.
func (r *Rack) String() string {
	var sb strings.Builder
	for i := 0; i < int(r.Counts[0]); i++ {
		sb.WriteByte('?')
	}
	for l := MachineLetter(1); l <= NumLetters; l++ {
		for i := 0; i < int(r.Counts[l]); i++ {
			sb.WriteRune(l.Rune())
		}
	}
	return sb.String()
}
