// Package game implements the crossing game core: the board/tile model,
// level descriptors, entity motion, the item-effect system, and the
// orchestrating state machine. It contains pure logic with no external
// dependencies (especially no Bubble Tea); the platform handles input
// mapping, timing, and display.
package game

import "fmt"

// TileKind is the terrain type of a single board cell.
type TileKind uint8

const (
	TileGrass TileKind = iota
	TileStone
	TileWater
)

// Glyph returns the descriptor character for a tile kind.
func (t TileKind) Glyph() rune {
	switch t {
	case TileGrass:
		return 'G'
	case TileStone:
		return 'S'
	case TileWater:
		return 'W'
	default:
		return '?'
	}
}

// String returns the name of the tile kind.
func (t TileKind) String() string {
	switch t {
	case TileGrass:
		return "Grass"
	case TileStone:
		return "Stone"
	case TileWater:
		return "Water"
	default:
		return "Unknown"
	}
}

// tileFromGlyph decodes a descriptor character into a tile kind.
func tileFromGlyph(r rune) (TileKind, bool) {
	switch r {
	case 'G':
		return TileGrass, true
	case 'S':
		return TileStone, true
	case 'W':
		return TileWater, true
	default:
		return TileGrass, false
	}
}

// Board is the tile and item grid for one level. The tile layer is always
// materialized; the item layer stays nil until the first item write, and
// the layout captured at construction can be restored with ResetItems
// after a life is lost.
type Board struct {
	width  int
	height int
	roads  []int // rows eligible for enemy travel, in authored order

	tiles        []TileKind // row-major, len width*height
	items        []ItemKind // row-major, nil until first write
	initialItems []ItemKind // construction snapshot, nil if level had no items
}

// Width returns the board width in columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the board height in rows.
func (b *Board) Height() int {
	return b.height
}

// Roads returns the rows on which enemies travel.
// The returned slice is shared; callers must not modify it.
func (b *Board) Roads() []int {
	return b.roads
}

// index maps (row, col) to the row-major slice position.
func (b *Board) index(row, col int) int {
	b.checkBounds(row, col)
	return row*b.width + col
}

// checkBounds panics on out-of-range access. Bad coordinates are a
// programming error, never an expected runtime condition.
func (b *Board) checkBounds(row, col int) {
	if row < 0 || row >= b.height || col < 0 || col >= b.width {
		panic(fmt.Sprintf("game: board access out of range: row %d col %d on %dx%d board",
			row, col, b.width, b.height))
	}
}

// Tile returns the terrain at (row, col).
func (b *Board) Tile(row, col int) TileKind {
	return b.tiles[b.index(row, col)]
}

// SetTile overwrites the terrain at (row, col).
func (b *Board) SetTile(row, col int, kind TileKind) {
	b.tiles[b.index(row, col)] = kind
}

// Item returns the item at (row, col), or ItemNone if the item layer
// was never materialized.
func (b *Board) Item(row, col int) ItemKind {
	idx := b.index(row, col)
	if b.items == nil {
		return ItemNone
	}
	return b.items[idx]
}

// SetItem places an item at (row, col), lazily materializing an all-None
// item layer on the first write.
func (b *Board) SetItem(row, col int, kind ItemKind) {
	idx := b.index(row, col)
	if b.items == nil {
		b.items = make([]ItemKind, b.width*b.height)
	}
	b.items[idx] = kind
}

// RemoveItem clears the item at (row, col).
func (b *Board) RemoveItem(row, col int) {
	b.SetItem(row, col, ItemNone)
}

// ResetItems restores the item layer to the snapshot captured at
// construction. Used after a life is lost; a level change installs a
// fresh board instead.
func (b *Board) ResetItems() {
	if b.initialItems == nil {
		b.items = nil
		return
	}
	b.items = make([]ItemKind, len(b.initialItems))
	copy(b.items, b.initialItems)
}

// TilesString encodes the current tile layer as a descriptor glyph string.
func (b *Board) TilesString() string {
	runes := make([]rune, len(b.tiles))
	for i, t := range b.tiles {
		runes[i] = t.Glyph()
	}
	return string(runes)
}

// ItemsString encodes the current item layer as a descriptor glyph string.
// An unmaterialized layer reads as all 'n'.
func (b *Board) ItemsString() string {
	runes := make([]rune, b.width*b.height)
	for i := range runes {
		if b.items == nil {
			runes[i] = ItemNone.Glyph()
		} else {
			runes[i] = b.items[i].Glyph()
		}
	}
	return string(runes)
}
