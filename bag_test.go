package equicore

import "testing"

func TestEnglishTileSetHas100Tiles(t *testing.T) {
	if EnglishTileSet.Size != 100 {
		t.Errorf("EnglishTileSet.Size = %d, want 100", EnglishTileSet.Size)
	}
	if len(EnglishTileSet.Tiles) != EnglishTileSet.Size {
		t.Errorf("len(Tiles) = %d, want Size %d", len(EnglishTileSet.Tiles), EnglishTileSet.Size)
	}
}

func TestExploTileSetHasSameSizeAsEnglish(t *testing.T) {
	if ExploTileSet.Size != EnglishTileSet.Size {
		t.Errorf("ExploTileSet.Size = %d, want %d (same pool size)", ExploTileSet.Size, EnglishTileSet.Size)
	}
}

func TestNewBagDrawsEveryTileExactlyOnce(t *testing.T) {
	bag := NewBag(EnglishTileSet)
	if bag.TileCount() != EnglishTileSet.Size {
		t.Fatalf("TileCount() = %d, want %d right after NewBag", bag.TileCount(), EnglishTileSet.Size)
	}
	seen := 0
	for {
		if _, ok := bag.DrawTile(); !ok {
			break
		}
		seen++
	}
	if seen != EnglishTileSet.Size {
		t.Errorf("drew %d tiles, want %d", seen, EnglishTileSet.Size)
	}
	if bag.TileCount() != 0 {
		t.Errorf("TileCount() = %d, want 0 once drained", bag.TileCount())
	}
	if _, ok := bag.DrawTile(); ok {
		t.Errorf("DrawTile() on an empty bag should report false")
	}
}

func TestBagReturnTileIncrementsCount(t *testing.T) {
	bag := NewBag(EnglishTileSet)
	tile, _ := bag.DrawTile()
	before := bag.TileCount()
	bag.ReturnTile(tile)
	if bag.TileCount() != before+1 {
		t.Errorf("TileCount() after ReturnTile = %d, want %d", bag.TileCount(), before+1)
	}
}

func TestExchangeAllowedThreshold(t *testing.T) {
	bag := &Bag{Contents: make([]Tile, MinExchangeBag)}
	if !bag.ExchangeAllowed() {
		t.Errorf("ExchangeAllowed() should be true at exactly MinExchangeBag tiles")
	}
	bag.Contents = bag.Contents[:MinExchangeBag-1]
	if bag.ExchangeAllowed() {
		t.Errorf("ExchangeAllowed() should be false below MinExchangeBag tiles")
	}
}

func TestFillRackStopsAtRackSizeOrEmptyBag(t *testing.T) {
	bag := NewBag(EnglishTileSet)
	r := &Rack{}
	drawn := FillRack(r, bag)
	if r.Total != RackSize {
		t.Errorf("rack Total = %d, want %d", r.Total, RackSize)
	}
	if len(drawn) != RackSize {
		t.Errorf("FillRack returned %d tiles, want %d", len(drawn), RackSize)
	}

	smallBag := &Bag{Contents: []Tile{{Letter: MachineLetterFromRune('A').Unblank(), Score: 8}}}
	r2 := &Rack{}
	drawn2 := FillRack(r2, smallBag)
	if r2.Total != 1 {
		t.Errorf("rack Total with a one-tile bag = %d, want 1", r2.Total)
	}
	if len(drawn2) != 1 {
		t.Errorf("FillRack from a one-tile bag returned %d tiles, want 1", len(drawn2))
	}
}

func TestFillRackRestoresBlanksCorrectly(t *testing.T) {
	bag := &Bag{Contents: []Tile{{Letter: Separator, Score: 0}}}
	r := &Rack{}
	FillRack(r, bag)
	if !r.HasBlank() {
		t.Errorf("drawing a Separator tile should restore a blank to the rack")
	}
	if r.Total != 1 {
		t.Errorf("rack Total = %d, want 1 after drawing a single blank", r.Total)
	}
}
