package game

import (
	"testing"
)

func TestBoardRoundTrip(t *testing.T) {
	tiles := "GGGGGSSSSSGGGGG"
	items := "nnnnnnnhnnnnnnn"
	b := MustParseLevel("5:3:1:" + tiles + ":" + items).NewBoard()

	if got := b.TilesString(); got != tiles {
		t.Errorf("Tile layer round trip failed:\n%s\n%s", tiles, got)
	}
	if got := b.ItemsString(); got != items {
		t.Errorf("Item layer round trip failed:\n%s\n%s", items, got)
	}
}

func TestBoardAccess(t *testing.T) {
	b := MustParseLevel("3:2:1:GWSGGS").NewBoard()

	if b.Width() != 3 || b.Height() != 2 {
		t.Fatalf("Expected a 3x2 board, got %dx%d", b.Width(), b.Height())
	}
	if len(b.Roads()) != 1 || b.Roads()[0] != 1 {
		t.Errorf("Expected roads [1], got %v", b.Roads())
	}
	if b.Tile(0, 0) != TileGrass || b.Tile(0, 1) != TileWater || b.Tile(1, 2) != TileStone {
		t.Error("Tiles not laid out row-major")
	}

	b.SetTile(0, 1, TileStone)
	if b.Tile(0, 1) != TileStone {
		t.Error("SetTile should overwrite terrain")
	}
}

func TestBoardItemLayerLazy(t *testing.T) {
	b := MustParseLevel("2:2:1:GGSS").NewBoard()

	if b.items != nil {
		t.Fatal("An itemless level should not materialize the item layer")
	}
	if b.Item(0, 0) != ItemNone {
		t.Error("Reads from a missing layer should report None")
	}
	if b.ItemsString() != "nnnn" {
		t.Errorf("Missing layer should encode as all n, got %q", b.ItemsString())
	}

	b.SetItem(1, 0, ItemKey)
	if b.Item(1, 0) != ItemKey {
		t.Error("SetItem should place the item")
	}
	if b.ItemsString() != "nnkn" {
		t.Errorf("Expected nnkn after placing a key, got %q", b.ItemsString())
	}

	b.ResetItems()
	if b.items != nil {
		t.Error("Reset on an itemless level should drop the layer again")
	}
}

func TestBoardResetItems(t *testing.T) {
	b := MustParseLevel("3:2:1:GGGSSS:nhnnnn").NewBoard()

	b.RemoveItem(0, 1)
	b.SetItem(1, 2, ItemStar)
	if b.Item(0, 1) != ItemNone || b.Item(1, 2) != ItemStar {
		t.Fatal("setup failed")
	}

	b.ResetItems()

	if b.Item(0, 1) != ItemHeart {
		t.Error("The authored heart should be restored")
	}
	if b.Item(1, 2) != ItemNone {
		t.Error("The mid-run star should be gone")
	}
}
