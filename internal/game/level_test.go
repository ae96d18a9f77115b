package game

import (
	"testing"
)

func TestParseLevelFull(t *testing.T) {
	lvl, err := ParseLevel("5:3:1:GGGGGSSSSSGGGGG:nnnnnnnnnnnnnnn")
	if err != nil {
		t.Fatalf("ParseLevel failed: %v", err)
	}

	if lvl.Width != 5 || lvl.Height != 3 {
		t.Errorf("Expected a 5x3 level, got %dx%d", lvl.Width, lvl.Height)
	}
	if len(lvl.Roads) != 1 || lvl.Roads[0] != 1 {
		t.Errorf("Expected roads [1], got %v", lvl.Roads)
	}
	if len(lvl.Tiles) != 15 {
		t.Fatalf("Expected 15 tiles, got %d", len(lvl.Tiles))
	}
	if lvl.Tiles[0] != TileGrass || lvl.Tiles[5] != TileStone || lvl.Tiles[14] != TileGrass {
		t.Errorf("Tiles decoded wrong: %v / %v / %v", lvl.Tiles[0], lvl.Tiles[5], lvl.Tiles[14])
	}
	if len(lvl.Items) != 15 {
		t.Fatalf("Expected 15 items, got %d", len(lvl.Items))
	}
	for i, it := range lvl.Items {
		if it != ItemNone {
			t.Errorf("Item %d should be None, got %v", i, it)
		}
	}
}

func TestParseLevelItemGlyphs(t *testing.T) {
	lvl, err := ParseLevel("3:3:0,2:WWWGGGSSS:hsknrbgno")
	if err != nil {
		t.Fatalf("ParseLevel failed: %v", err)
	}

	if len(lvl.Roads) != 2 || lvl.Roads[0] != 0 || lvl.Roads[1] != 2 {
		t.Errorf("Expected roads [0 2], got %v", lvl.Roads)
	}

	want := []ItemKind{
		ItemHeart, ItemStar, ItemKey,
		ItemNone, ItemRock, ItemBlueGem,
		ItemGreenGem, ItemNone, ItemOrangeGem,
	}
	for i, kind := range want {
		if lvl.Items[i] != kind {
			t.Errorf("Item %d: expected %v, got %v", i, kind, lvl.Items[i])
		}
	}
}

func TestParseLevelNoItems(t *testing.T) {
	lvl, err := ParseLevel("2:2:1:GGSS")
	if err != nil {
		t.Fatalf("ParseLevel failed: %v", err)
	}
	if lvl.Items != nil {
		t.Errorf("A 4-field descriptor should leave Items nil, got %v", lvl.Items)
	}
}

func TestParseLevelErrors(t *testing.T) {
	tests := []struct {
		name string
		desc string
		code string
	}{
		{"too few fields", "5:3:1", "BAD_FIELD_COUNT"},
		{"too many fields", "2:2:1:GGSS:nnnn:extra", "BAD_FIELD_COUNT"},
		{"bad width", "x:3:1:GGG", "BAD_WIDTH"},
		{"zero width", "0:3:1:", "BAD_WIDTH"},
		{"bad height", "3:x:1:GGG", "BAD_HEIGHT"},
		{"negative height", "3:-1:1:GGG", "BAD_HEIGHT"},
		{"bad road", "2:2:x:GGSS", "BAD_ROAD"},
		{"road out of range", "2:2:5:GGSS", "ROAD_OUT_OF_RANGE"},
		{"negative road", "2:2:-1:GGSS", "ROAD_OUT_OF_RANGE"},
		{"tile length", "2:2:1:GGS", "BAD_TILE_LENGTH"},
		{"tile glyph", "2:2:1:GGSZ", "BAD_TILE_GLYPH"},
		{"item length", "2:2:1:GGSS:nnn", "BAD_ITEM_LENGTH"},
		{"item glyph", "2:2:1:GGSS:nnnz", "BAD_ITEM_GLYPH"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLevel(tt.desc)
			if err == nil {
				t.Fatalf("ParseLevel(%q) should fail", tt.desc)
			}
			lerr, ok := err.(LevelError)
			if !ok {
				t.Fatalf("Expected a LevelError, got %T: %v", err, err)
			}
			if lerr.Code != tt.code {
				t.Errorf("Expected code %s, got %s", tt.code, lerr.Code)
			}
		})
	}
}

func TestLevelErrorFormat(t *testing.T) {
	err := LevelError{Code: "BAD_WIDTH", Message: "broken"}
	if err.Error() != "[BAD_WIDTH] broken" {
		t.Errorf("Unexpected error format: %q", err.Error())
	}
}

func TestNewBoardIndependent(t *testing.T) {
	lvl := MustParseLevel("2:2:1:GGSS:hnnn")
	b1 := lvl.NewBoard()
	b2 := lvl.NewBoard()

	b1.SetTile(0, 0, TileWater)
	b1.RemoveItem(0, 0)

	if lvl.Tiles[0] != TileGrass {
		t.Error("Mutating a board should not touch the level definition")
	}
	if b2.Tile(0, 0) != TileGrass {
		t.Error("Boards from the same level should not share tiles")
	}
	if b2.Item(0, 0) != ItemHeart {
		t.Error("Boards from the same level should not share items")
	}
}
