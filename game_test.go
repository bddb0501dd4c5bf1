package equicore

import "testing"

// emptyLexicon is a minimal two-root-word lexicon (no words at
// all) good enough to exercise BoardUpdateCrossSets on boards that
// never place a tile adjacent to another.
func emptyLexicon(t *testing.T) *Lexicon {
	t.Helper()
	lx, err := NewLexicon([]uint32{0, 0})
	if err != nil {
		t.Fatalf("NewLexicon: %v", err)
	}
	return lx
}

func TestNewGameDealsTwoFullRacks(t *testing.T) {
	g := NewGame(EnglishTileSet, emptyLexicon(t), nil)
	if g.Racks[0].Total != RackSize || g.Racks[1].Total != RackSize {
		t.Errorf("opening racks = %d, %d, want %d each", g.Racks[0].Total, g.Racks[1].Total, RackSize)
	}
	if g.Bag.TileCount() != EnglishTileSet.Size-2*RackSize {
		t.Errorf("bag count after dealing = %d, want %d", g.Bag.TileCount(), EnglishTileSet.Size-2*RackSize)
	}
	if g.ID.String() == "" {
		t.Errorf("Game.ID should be a non-empty UUID")
	}
	if g.IsOver() {
		t.Errorf("a freshly dealt game should not be over")
	}
}

func TestGamePlayerToMoveAlternates(t *testing.T) {
	g := NewGame(EnglishTileSet, emptyLexicon(t), nil)
	if g.PlayerToMove() != 0 {
		t.Errorf("PlayerToMove() = %d, want 0 before any move", g.PlayerToMove())
	}
	g.Apply(nil) // pass
	if g.PlayerToMove() != 1 {
		t.Errorf("PlayerToMove() = %d, want 1 after player 0 passes", g.PlayerToMove())
	}
	g.Apply(nil)
	if g.PlayerToMove() != 0 {
		t.Errorf("PlayerToMove() = %d, want 0 after both players pass once", g.PlayerToMove())
	}
}

func TestGameEndsAfterSixConsecutivePasses(t *testing.T) {
	g := NewGame(EnglishTileSet, emptyLexicon(t), nil)
	for i := 0; i < 6; i++ {
		if g.IsOver() {
			t.Fatalf("game ended early, after only %d passes", i)
		}
		g.Apply(nil)
	}
	if !g.IsOver() {
		t.Errorf("game should be over after six consecutive passes")
	}
}

func TestGameApplyPlacementScoresAndRefillsRack(t *testing.T) {
	g := NewGame(EnglishTileSet, emptyLexicon(t), nil)
	// Replace the dealt rack with one holding exactly the two
	// letters the move below plays, so Apply's Take calls can't
	// underflow regardless of how the bag shuffled.
	tiles := []MachineLetter{MachineLetterFromRune('C').Unblank(), MachineLetterFromRune('T').Unblank()}
	g.Racks[0] = NewRack("CT")

	m := &Move{
		Kind:        MoveKindPlacement,
		Row:         CenterRow,
		Col:         CenterCol,
		Horizontal:  true,
		TilesLength: len(tiles),
		Score:       16,
	}
	for i, l := range tiles {
		m.Tiles[i] = l
	}

	g.Apply(m)
	if g.Scores[0] != 16 {
		t.Errorf("Scores[0] = %d, want 16 after the placement", g.Scores[0])
	}
	if g.Board.NumTiles != len(tiles) {
		t.Errorf("Board.NumTiles = %d, want %d", g.Board.NumTiles, len(tiles))
	}
	if g.Racks[0].Total != RackSize {
		t.Errorf("rack should be refilled back to %d, got %d", RackSize, g.Racks[0].Total)
	}
	if len(g.MoveList) != 1 {
		t.Errorf("MoveList should record exactly one move, got %d", len(g.MoveList))
	}
}
