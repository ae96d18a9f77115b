package game

import (
	"fmt"
	"strconv"
	"strings"
)

// LevelError describes why a level descriptor failed to parse.
// Levels are static data, so these must surface at startup, not mid-run.
type LevelError struct {
	Code    string
	Message string
}

func (e LevelError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Level is the decoded form of an authored level descriptor.
type Level struct {
	Name   string // optional display name, set by the pack author
	Width  int
	Height int
	Roads  []int
	Tiles  []TileKind
	Items  []ItemKind // nil when the descriptor omitted the item field
}

// ParseLevel decodes a colon-separated level descriptor:
//
//	columns:rows:roadRow1,roadRow2,...:tileChars[:itemChars]
//
// tileChars and itemChars are width*height-length glyph strings, row-major,
// left-to-right then top-to-bottom. Tile glyphs: G=Grass, S=Stone, W=Water.
// Item glyphs: n=none, h=Heart, s=Star, k=Key, r=Rock, b=BlueGem,
// g=GreenGem, o=OrangeGem. The item field is optional.
func ParseLevel(desc string) (*Level, error) {
	fields := strings.Split(desc, ":")
	if len(fields) != 4 && len(fields) != 5 {
		return nil, LevelError{
			Code:    "BAD_FIELD_COUNT",
			Message: fmt.Sprintf("descriptor has %d fields, want 4 or 5", len(fields)),
		}
	}

	width, err := strconv.Atoi(fields[0])
	if err != nil || width <= 0 {
		return nil, LevelError{
			Code:    "BAD_WIDTH",
			Message: fmt.Sprintf("columns field %q is not a positive integer", fields[0]),
		}
	}
	height, err := strconv.Atoi(fields[1])
	if err != nil || height <= 0 {
		return nil, LevelError{
			Code:    "BAD_HEIGHT",
			Message: fmt.Sprintf("rows field %q is not a positive integer", fields[1]),
		}
	}

	roads, err := parseRoads(fields[2], height)
	if err != nil {
		return nil, err
	}

	tiles, err := parseTiles(fields[3], width, height)
	if err != nil {
		return nil, err
	}

	lvl := &Level{
		Width:  width,
		Height: height,
		Roads:  roads,
		Tiles:  tiles,
	}

	if len(fields) == 5 {
		items, err := parseItems(fields[4], width, height)
		if err != nil {
			return nil, err
		}
		lvl.Items = items
	}

	return lvl, nil
}

// MustParseLevel parses a built-in descriptor and panics on failure.
// Authored levels are compiled in, so a malformed one is a build defect.
func MustParseLevel(desc string) *Level {
	lvl, err := ParseLevel(desc)
	if err != nil {
		panic(fmt.Sprintf("game: built-in level %q: %v", desc, err))
	}
	return lvl
}

// parseRoads decodes the comma-separated road row list.
func parseRoads(field string, height int) ([]int, error) {
	parts := strings.Split(field, ",")
	roads := make([]int, 0, len(parts))
	for _, p := range parts {
		row, err := strconv.Atoi(p)
		if err != nil {
			return nil, LevelError{
				Code:    "BAD_ROAD",
				Message: fmt.Sprintf("road row %q is not an integer", p),
			}
		}
		if row < 0 || row >= height {
			return nil, LevelError{
				Code:    "ROAD_OUT_OF_RANGE",
				Message: fmt.Sprintf("road row %d outside [0, %d)", row, height),
			}
		}
		roads = append(roads, row)
	}
	return roads, nil
}

// parseTiles decodes the tile glyph string.
func parseTiles(field string, width, height int) ([]TileKind, error) {
	want := width * height
	runes := []rune(field)
	if len(runes) != want {
		return nil, LevelError{
			Code:    "BAD_TILE_LENGTH",
			Message: fmt.Sprintf("tile field has %d glyphs, want %d (%dx%d)", len(runes), want, width, height),
		}
	}
	tiles := make([]TileKind, want)
	for i, r := range runes {
		kind, ok := tileFromGlyph(r)
		if !ok {
			return nil, LevelError{
				Code:    "BAD_TILE_GLYPH",
				Message: fmt.Sprintf("unknown tile glyph %q at index %d", r, i),
			}
		}
		tiles[i] = kind
	}
	return tiles, nil
}

// parseItems decodes the item glyph string.
func parseItems(field string, width, height int) ([]ItemKind, error) {
	want := width * height
	runes := []rune(field)
	if len(runes) != want {
		return nil, LevelError{
			Code:    "BAD_ITEM_LENGTH",
			Message: fmt.Sprintf("item field has %d glyphs, want %d (%dx%d)", len(runes), want, width, height),
		}
	}
	items := make([]ItemKind, want)
	for i, r := range runes {
		kind, ok := itemFromGlyph(r)
		if !ok {
			return nil, LevelError{
				Code:    "BAD_ITEM_GLYPH",
				Message: fmt.Sprintf("unknown item glyph %q at index %d", r, i),
			}
		}
		items[i] = kind
	}
	return items, nil
}

// NewBoard materializes a fresh Board for this level. Every call returns
// an independent copy, so reinstalling a level never shares layers with
// an earlier play-through.
func (l *Level) NewBoard() *Board {
	b := &Board{
		width:  l.Width,
		height: l.Height,
		roads:  append([]int(nil), l.Roads...),
		tiles:  append([]TileKind(nil), l.Tiles...),
	}
	if l.Items != nil {
		b.items = append([]ItemKind(nil), l.Items...)
		b.initialItems = append([]ItemKind(nil), l.Items...)
	}
	return b
}
