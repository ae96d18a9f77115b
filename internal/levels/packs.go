// Package levels provides the built-in level packs and a global pack
// registry. Packs register themselves in init() functions, allowing the
// platform to discover campaigns without hardcoded dependencies.
package levels

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-crossing/internal/game"
)

// Pack is a named campaign: an ordered level sequence plus display
// metadata. The game plays a pack's levels front to back.
type Pack struct {
	ID     string
	Title  string
	Levels []*game.Level
}

// PackInfo contains metadata about a registered pack.
type PackInfo struct {
	ID     string
	Title  string
	Levels int
}

var (
	packs = make(map[string]*Pack)
	mu    sync.RWMutex
)

// Register adds a pack to the registry. Typically called from an init()
// function. Panics if the pack is invalid or its ID is already taken,
// since both are authoring defects.
func Register(p *Pack) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := packs[p.ID]; exists {
		panic(fmt.Sprintf("levels: pack %q already registered", p.ID))
	}
	if err := Validate(p); err != nil {
		panic(fmt.Sprintf("levels: pack %q: %v", p.ID, err))
	}

	packs[p.ID] = p
}

// Get returns a registered pack by ID.
func Get(id string) (*Pack, bool) {
	mu.RLock()
	defer mu.RUnlock()

	p, ok := packs[id]
	return p, ok
}

// Exists reports whether a pack with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := packs[id]
	return ok
}

// List returns information about all registered packs, sorted by ID.
func List() []PackInfo {
	mu.RLock()
	defer mu.RUnlock()

	infos := make([]PackInfo, 0, len(packs))
	for _, p := range packs {
		infos = append(infos, PackInfo{ID: p.ID, Title: p.Title, Levels: len(p.Levels)})
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].ID < infos[j].ID
	})
	return infos
}

// Validate checks the playability rules every pack must satisfy: the
// bottom row of each level is all grass so respawns are always safe, and
// row 0 holds at least one grass tile so the level can be finished.
func Validate(p *Pack) error {
	if p.ID == "" {
		return fmt.Errorf("pack has no id")
	}
	if len(p.Levels) == 0 {
		return fmt.Errorf("pack has no levels")
	}

	for i, lvl := range p.Levels {
		name := lvl.Name
		if name == "" {
			name = fmt.Sprintf("level %d", i)
		}
		if lvl.Width <= 0 || lvl.Height <= 0 {
			return fmt.Errorf("%s: bad dimensions %dx%d", name, lvl.Width, lvl.Height)
		}
		if len(lvl.Tiles) != lvl.Width*lvl.Height {
			return fmt.Errorf("%s: %d tiles for a %dx%d grid", name, len(lvl.Tiles), lvl.Width, lvl.Height)
		}
		for _, row := range lvl.Roads {
			if row < 0 || row >= lvl.Height {
				return fmt.Errorf("%s: road row %d outside the grid", name, row)
			}
		}

		bottom := (lvl.Height - 1) * lvl.Width
		for col := 0; col < lvl.Width; col++ {
			if lvl.Tiles[bottom+col] != game.TileGrass {
				return fmt.Errorf("%s: bottom row must be all grass for safe respawns", name)
			}
		}

		winnable := false
		for col := 0; col < lvl.Width; col++ {
			if lvl.Tiles[col] == game.TileGrass {
				winnable = true
				break
			}
		}
		if !winnable {
			return fmt.Errorf("%s: row 0 needs at least one grass tile", name)
		}
	}

	return nil
}
