// board.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

// This file implements the Board: a structure-of-arrays 15x15
// grid maintained as two transposed views (row-major and
// col-major) so that a row scan or a column scan both walk
// consecutive memory, plus the per-square cross-set and
// extension-set bookkeeping consumed by the shadow estimator and
// the GADDAG move generator.

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

import (
	"fmt"
	"strings"
)

// Indices into a square's adjacency, in ABOVE/LEFT/RIGHT/BELOW
// order.
const (
	Above = 0
	Left  = 1
	Right = 2
	Below = 3
)

const zeroDigit = int('0')

// wordMultipliersStandard and letterMultipliersStandard are the
// standard 15x15 bonus-square layout, mirrored into all four
// quadrants.
var wordMultipliersStandard = [BoardSize]string{
	"311111131111113",
	"121111111111121",
	"112111111111211",
	"111211111112111",
	"111121111121111",
	"111111111111111",
	"111111111111111",
	"311111121111113",
	"111111111111111",
	"111111111111111",
	"111121111121111",
	"111211111112111",
	"112111111111211",
	"121111111111121",
	"311111131111113",
}

var letterMultipliersStandard = [BoardSize]string{
	"111211111112111",
	"111113111311111",
	"111111212111111",
	"211111121111112",
	"111111111111111",
	"131113111311131",
	"112111212111211",
	"111211111112111",
	"112111212111211",
	"131113111311131",
	"111111111111111",
	"211111121111112",
	"111111212111111",
	"111113111311111",
	"111211111112111",
}

// CenterRow and CenterCol locate the standard board's starting
// square.
const (
	CenterRow = 7
	CenterCol = 7
)

// Square is a single board cell: the placed letter (Separator
// means empty), its fixed bonus multipliers, and the per-square
// cross-set / extension-set bookkeeping maintained by
// board_update_cross_sets.
type Square struct {
	Row, Col int
	Letter   MachineLetter // Separator = empty
	LetterMult int
	WordMult   int
	Center     bool

	HCrossSet   LetterSet
	HCrossScore Equity // -1 sentinel: no perpendicular word
	VCrossSet   LetterSet
	VCrossScore Equity

	LeftxH, RightxH LetterSet
	LeftxV, RightxV LetterSet
}

// Empty reports whether the square holds no tile.
func (sq *Square) Empty() bool { return sq.Letter == Separator }

// Board is the 15x15 grid, kept as two structurally identical
// transposed copies (rowMajor[row][col] and colMajor[col][row])
// so that horizontal and vertical axis scans both iterate
// consecutive memory. They are kept in lock-step by every
// mutating operation; rowMajor is the copy source of truth.
type Board struct {
	rowMajor [BoardSize][BoardSize]Square
	colMajor [BoardSize][BoardSize]Square
	NumTiles int
}

// NewBoard returns a freshly initialized, empty standard board.
func NewBoard() *Board {
	b := &Board{}
	BoardInit(b)
	return b
}

// BoardInit initializes an empty board with the standard bonus
// layout and the trivial (all-letters) cross-set on every
// square, per the Lifecycles described in the data model.
func BoardInit(b *Board) {
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			lm := int(letterMultipliersStandard[r][c]) - zeroDigit
			wm := int(wordMultipliersStandard[r][c]) - zeroDigit
			sq := Square{
				Row:         r,
				Col:         c,
				Letter:      Separator,
				LetterMult:  lm,
				WordMult:    wm,
				Center:      r == CenterRow && c == CenterCol,
				HCrossSet:   TrivialLetterSet,
				VCrossSet:   TrivialLetterSet,
				HCrossScore: -1,
				VCrossScore: -1,
				LeftxH:      TrivialLetterSet,
				RightxH:     TrivialLetterSet,
				LeftxV:      TrivialLetterSet,
				RightxV:     TrivialLetterSet,
			}
			b.rowMajor[r][c] = sq
			b.colMajor[c][r] = sq
		}
	}
	b.NumTiles = 0
}

// Sq returns the canonical (row-major) square at (row, col), or
// nil if out of range.
func (b *Board) Sq(row, col int) *Square {
	if row < 0 || row >= BoardSize || col < 0 || col >= BoardSize {
		return nil
	}
	return &b.rowMajor[row][col]
}

// syncSquare copies the canonical row-major square into its
// col-major mirror, restoring the board-view synchrony
// invariant after a mutation.
func (b *Board) syncSquare(row, col int) {
	b.colMajor[col][row] = b.rowMajor[row][col]
}

// axisSquare returns the square at position i along a row
// (horizontal, index = row) or a column (vertical, index = col),
// reading from whichever transposed view makes that scan
// sequential.
func (b *Board) axisSquare(horizontal bool, index, i int) *Square {
	if horizontal {
		return &b.rowMajor[index][i]
	}
	return &b.colMajor[index][i]
}

// LetterAt returns the placed letter at (row, col), or Separator
// if empty or out of range.
func (b *Board) LetterAt(row, col int) MachineLetter {
	sq := b.Sq(row, col)
	if sq == nil {
		return Separator
	}
	return sq.Letter
}

// IsAnchor reports whether (row, col) is a legal move-starting
// square: empty, with at least one occupied orthogonal neighbor,
// except that the center square is always an anchor on an empty
// board.
func (b *Board) IsAnchor(row, col int) bool {
	sq := b.Sq(row, col)
	if sq == nil || !sq.Empty() {
		return false
	}
	if b.NumTiles == 0 {
		return row == CenterRow && col == CenterCol
	}
	if r := b.LetterAt(row-1, col); r != Separator {
		return true
	}
	if r := b.LetterAt(row+1, col); r != Separator {
		return true
	}
	if r := b.LetterAt(row, col-1); r != Separator {
		return true
	}
	if r := b.LetterAt(row, col+1); r != Separator {
		return true
	}
	return false
}

// BoardApplyMove writes a move's placed tiles into both board
// views, advancing NumTiles by the number of newly placed tiles.
// It does not recompute cross-sets; callers must invoke
// BoardUpdateCrossSets afterwards.
func BoardApplyMove(b *Board, m *Move) {
	if m == nil || m.Kind != MoveKindPlacement {
		return
	}
	row, col := m.Row, m.Col
	dRow, dCol := 0, 1
	if !m.Horizontal {
		dRow, dCol = 1, 0
	}
	for i := 0; i < m.TilesLength; i++ {
		l := m.Tiles[i]
		if l != PlaythroughMarker {
			sq := b.Sq(row, col)
			sq.Letter = l
			sq.HCrossSet, sq.VCrossSet = 0, 0
			sq.HCrossScore, sq.VCrossScore = -1, -1
			sq.LeftxH, sq.RightxH, sq.LeftxV, sq.RightxV = 0, 0, 0, 0
			b.syncSquare(row, col)
			b.NumTiles++
		}
		row += dRow
		col += dCol
	}
}

// BoardFromStrings builds a board from BoardSize row strings using
// '.' or ' ' for an empty square and a letter for a placed tile
// (lowercase denotes a blank playing as that letter), the format
// the HTTP service accepts in a /moves request body.
func BoardFromStrings(rows []string) (*Board, error) {
	if len(rows) != BoardSize {
		return nil, fmt.Errorf("equicore: board must have %d rows, got %d", BoardSize, len(rows))
	}
	b := NewBoard()
	for r, row := range rows {
		runes := []rune(row)
		if len(runes) != BoardSize {
			return nil, fmt.Errorf("equicore: board row %d must have %d columns, got %d", r, BoardSize, len(runes))
		}
		for c, ch := range runes {
			if ch == '.' || ch == ' ' {
				continue
			}
			sq := b.Sq(r, c)
			sq.Letter = MachineLetterFromRune(ch)
			sq.HCrossSet, sq.VCrossSet = 0, 0
			sq.HCrossScore, sq.VCrossScore = -1, -1
			sq.LeftxH, sq.RightxH, sq.LeftxV, sq.RightxV = 0, 0, 0, 0
			b.syncSquare(r, c)
			b.NumTiles++
		}
	}
	return b, nil
}

// ToStrings renders the board's placed tiles in the same format
// BoardFromStrings accepts, for round-tripping through the HTTP
// service.
func (b *Board) ToStrings() []string {
	rows := make([]string, BoardSize)
	for r := 0; r < BoardSize; r++ {
		var sb strings.Builder
		for c := 0; c < BoardSize; c++ {
			sq := b.Sq(r, c)
			if sq.Empty() {
				sb.WriteByte('.')
			} else {
				sb.WriteRune(sq.Letter.Rune())
			}
		}
		rows[r] = sb.String()
	}
	return rows
}

// String renders the board for debug output, with row and column
// index headers around the grid.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("   ")
	for c := 0; c < BoardSize; c++ {
		sb.WriteString(fmt.Sprintf("%2d ", c))
	}
	sb.WriteString("\n")
	for r := 0; r < BoardSize; r++ {
		sb.WriteString(fmt.Sprintf("%2d ", r))
		for c := 0; c < BoardSize; c++ {
			sq := b.Sq(r, c)
			if sq.Empty() {
				sb.WriteString(" . ")
			} else {
				sb.WriteString(fmt.Sprintf(" %c ", sq.Letter.Rune()))
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
