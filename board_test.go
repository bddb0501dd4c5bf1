package equicore

import "testing"

func TestNewBoardIsEmptyWithCenterAnchor(t *testing.T) {
	b := NewBoard()
	if b.NumTiles != 0 {
		t.Errorf("NumTiles = %d, want 0 on a fresh board", b.NumTiles)
	}
	if !b.IsAnchor(CenterRow, CenterCol) {
		t.Errorf("center square should be the sole anchor on an empty board")
	}
	if b.IsAnchor(0, 0) {
		t.Errorf("(0,0) should not be an anchor on an empty board")
	}
}

func TestBoardApplyMovePlacesLettersAndSyncsViews(t *testing.T) {
	b := NewBoard()
	m := &Move{
		Kind:        MoveKindPlacement,
		Row:         CenterRow,
		Col:         CenterCol,
		Horizontal:  true,
		TilesLength: 3,
	}
	m.Tiles[0] = MachineLetterFromRune('C').Unblank()
	m.Tiles[1] = MachineLetterFromRune('A').Unblank()
	m.Tiles[2] = MachineLetterFromRune('T').Unblank()
	BoardApplyMove(b, m)

	if b.NumTiles != 3 {
		t.Errorf("NumTiles = %d, want 3 after placing CAT", b.NumTiles)
	}
	if got := b.LetterAt(CenterRow, CenterCol); got != m.Tiles[0] {
		t.Errorf("LetterAt(center) = %v, want %v", got, m.Tiles[0])
	}
	if b.IsAnchor(CenterRow, CenterCol) {
		t.Errorf("an occupied square can never be an anchor")
	}
	if !b.IsAnchor(CenterRow, CenterCol+3) {
		t.Errorf("the square past the word's end should be an anchor")
	}
	// row-major and col-major views must agree after the mutation.
	if b.colMajor[CenterCol][CenterRow].Letter != b.rowMajor[CenterRow][CenterCol].Letter {
		t.Errorf("row-major and col-major views disagree after BoardApplyMove")
	}
}

func TestBoardFromStringsRoundTrip(t *testing.T) {
	rows := make([]string, BoardSize)
	for i := range rows {
		rows[i] = "..............."
	}
	row := []byte(rows[CenterRow])
	row[CenterCol] = 'C'
	row[CenterCol+1] = 'A'
	row[CenterCol+2] = 't' // blank playing as T
	rows[CenterRow] = string(row)

	b, err := BoardFromStrings(rows)
	if err != nil {
		t.Fatalf("BoardFromStrings: %v", err)
	}
	if b.NumTiles != 3 {
		t.Errorf("NumTiles = %d, want 3", b.NumTiles)
	}
	out := b.ToStrings()
	if len(out) != BoardSize {
		t.Fatalf("ToStrings() returned %d rows, want %d", len(out), BoardSize)
	}
	if out[CenterRow] != rows[CenterRow] {
		t.Errorf("ToStrings()[%d] = %q, want %q", CenterRow, out[CenterRow], rows[CenterRow])
	}
}

func TestBoardFromStringsRejectsWrongShape(t *testing.T) {
	if _, err := BoardFromStrings([]string{"too short"}); err == nil {
		t.Errorf("expected an error for the wrong number of rows")
	}
	rows := make([]string, BoardSize)
	for i := range rows {
		rows[i] = "short"
	}
	if _, err := BoardFromStrings(rows); err == nil {
		t.Errorf("expected an error for a row of the wrong length")
	}
}
