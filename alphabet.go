// alphabet.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

// This file defines the machine representation of letters used
// throughout the lexicon, board and rack: a byte-sized index into
// the English alphabet (1..26), with 0 reserved as the GADDAG
// separator / empty-square sentinel and the high bit used to mark
// a blank playing as a given letter.

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

// MachineLetter is the on-disk and in-memory representation of a
// single tile letter. 0 is the GADDAG separator and also the
// "empty square" sentinel on the board. 1..26 are A..Z. The high
// bit (BlankMask) is set when a blank tile is playing as the
// letter encoded in the low 7 bits.
type MachineLetter uint8

const (
	// Separator is the GADDAG separator tile and the board's
	// empty-square sentinel.
	Separator MachineLetter = 0
	// BlankMask marks a machine letter as a blank playing as
	// the letter in the remaining bits.
	BlankMask MachineLetter = 0x80
	// NumLetters is the size of the English alphabet used by
	// this module's lexicon and leave tables.
	NumLetters = 26
	// RackSize is the maximum number of tiles a rack can hold.
	RackSize = 7
	// BoardSize is the board dimension.
	BoardSize = 15
)

// Alphabet is the fixed English A-Z alphabet; machine letter i
// (1..26) maps to Alphabet[i-1].
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// IsBlank reports whether a machine letter is a blank playing as
// some letter.
func (m MachineLetter) IsBlank() bool {
	return m&BlankMask != 0
}

// Unblank strips the blank bit, returning the underlying letter.
func (m MachineLetter) Unblank() MachineLetter {
	return m &^ BlankMask
}

// Rune converts a machine letter to its printable rune. Blanks
// are rendered in lower case.
func (m MachineLetter) Rune() rune {
	base := m.Unblank()
	if base == Separator || base > NumLetters {
		return '.'
	}
	r := rune(Alphabet[base-1])
	if m.IsBlank() {
		r = r - 'A' + 'a'
	}
	return r
}

// MachineLetterFromRune converts an ASCII letter ('A'-'Z' or
// 'a'-'z') to a MachineLetter, setting the blank bit for lower
// case input. It panics on a non-letter rune, since callers are
// expected to have validated input already.
func MachineLetterFromRune(r rune) MachineLetter {
	switch {
	case r >= 'A' && r <= 'Z':
		return MachineLetter(r-'A') + 1
	case r >= 'a' && r <= 'z':
		return (MachineLetter(r-'a') + 1) | BlankMask
	default:
		panic("MachineLetterFromRune: not a letter")
	}
}

// LetterSet is a bitmap over the 26-letter alphabet; bit (L-1) is
// set for machine letter L.
type LetterSet uint32

// TrivialLetterSet has every letter set: the cross-set of an
// empty square with no perpendicular neighbor.
const TrivialLetterSet LetterSet = (1 << NumLetters) - 1

// Has reports whether a letter set contains a given letter.
func (s LetterSet) Has(l MachineLetter) bool {
	if l == Separator || l > NumLetters {
		return false
	}
	return s&(1<<(l-1)) != 0
}

// With returns the letter set with the given letter added.
func (s LetterSet) With(l MachineLetter) LetterSet {
	if l == Separator || l > NumLetters {
		return s
	}
	return s | (1 << (l - 1))
}

// Count returns the number of letters in the set.
func (s LetterSet) Count() int {
	n := 0
	for s != 0 {
		n += int(s & 1)
		s >>= 1
	}
	return n
}

// Sole returns the set's only member. The caller must already
// know Count() == 1.
func (s LetterSet) Sole() MachineLetter {
	for l := MachineLetter(1); l <= NumLetters; l++ {
		if s.Has(l) {
			return l
		}
	}
	return Separator
}
