package game

// ItemKind identifies a collectible occupying a board cell.
type ItemKind uint8

const (
	ItemNone ItemKind = iota
	ItemHeart
	ItemStar
	ItemKey
	ItemRock
	ItemBlueGem
	ItemGreenGem
	ItemOrangeGem
	itemKindCount // sentinel sizing the effect dispatch table
)

// Glyph returns the descriptor character for an item kind.
func (k ItemKind) Glyph() rune {
	switch k {
	case ItemNone:
		return 'n'
	case ItemHeart:
		return 'h'
	case ItemStar:
		return 's'
	case ItemKey:
		return 'k'
	case ItemRock:
		return 'r'
	case ItemBlueGem:
		return 'b'
	case ItemGreenGem:
		return 'g'
	case ItemOrangeGem:
		return 'o'
	default:
		return '?'
	}
}

// String returns the name of the item kind.
func (k ItemKind) String() string {
	switch k {
	case ItemNone:
		return "None"
	case ItemHeart:
		return "Heart"
	case ItemStar:
		return "Star"
	case ItemKey:
		return "Key"
	case ItemRock:
		return "Rock"
	case ItemBlueGem:
		return "BlueGem"
	case ItemGreenGem:
		return "GreenGem"
	case ItemOrangeGem:
		return "OrangeGem"
	default:
		return "Unknown"
	}
}

// itemFromGlyph decodes a descriptor character into an item kind.
func itemFromGlyph(r rune) (ItemKind, bool) {
	switch r {
	case 'n':
		return ItemNone, true
	case 'h':
		return ItemHeart, true
	case 's':
		return ItemStar, true
	case 'k':
		return ItemKey, true
	case 'r':
		return ItemRock, true
	case 'b':
		return ItemBlueGem, true
	case 'g':
		return ItemGreenGem, true
	case 'o':
		return ItemOrangeGem, true
	default:
		return ItemNone, false
	}
}

// EffectFunc mutates the game in response to a collected item.
type EffectFunc func(*Game)

// assistItems is the pool HelpPlayer draws from. OrangeGem is excluded
// because it is a reserved kind with no effect yet.
var assistItems = [...]ItemKind{
	ItemHeart, ItemStar, ItemKey, ItemRock, ItemBlueGem, ItemGreenGem,
}

// newEffectTable builds the item-kind dispatch table installed on the
// player at game construction. ItemNone and ItemOrangeGem stay nil: the
// pickup path removes the item either way, so an unregistered kind is
// simply consumed without effect.
func newEffectTable() [itemKindCount]EffectFunc {
	var t [itemKindCount]EffectFunc
	t[ItemHeart] = applyHeart
	t[ItemStar] = applyStar
	t[ItemKey] = applyKey
	t[ItemRock] = applyRock
	t[ItemBlueGem] = applyBlueGem
	t[ItemGreenGem] = applyGreenGem
	return t
}

// applyHeart grants an extra life.
func applyHeart(g *Game) {
	g.lives++
	g.events.fireLifeGained(g.lives)
}

// applyStar makes the player temporarily indestructible and swaps the
// sprite to the star form. Re-triggering while the window is already
// open is a no-op so timers never stack.
func applyStar(g *Game) {
	if g.player.Indestructible {
		return
	}
	g.player.Indestructible = true
	g.player.enterStarForm()
	// The player outlives level transitions, so the revert must fire
	// even if the level changes inside the window.
	g.schedule(g.rules.StarSeconds, levelAny, func(g *Game) {
		g.player.Indestructible = false
		g.player.leaveStarForm()
	})
}

// applyKey advances to the next level immediately.
func applyKey(g *Game) {
	g.levelUp()
}

// applyRock hardens every Water tile on the current board into Stone.
// The revert flips back exactly the cells that were flipped, and only if
// the board that owns them is still installed.
func applyRock(g *Game) {
	b := g.board
	var flipped []int
	for row := 0; row < b.Height(); row++ {
		for col := 0; col < b.Width(); col++ {
			if b.Tile(row, col) == TileWater {
				b.SetTile(row, col, TileStone)
				flipped = append(flipped, row*b.Width()+col)
			}
		}
	}
	g.schedule(g.rules.RockSeconds, g.level, func(g *Game) {
		w := g.board.Width()
		for _, idx := range flipped {
			g.board.SetTile(idx/w, idx%w, TileWater)
		}
	})
}

// applyBlueGem slows every enemy to a third of its speed.
func applyBlueGem(g *Game) {
	for _, e := range g.enemies {
		e.Speed /= 3
	}
	g.schedule(g.rules.BlueGemSeconds, g.level, func(g *Game) {
		for _, e := range g.enemies {
			e.Speed *= 3
		}
	})
}

// applyGreenGem freezes every enemy, capturing the speeds to restore.
func applyGreenGem(g *Game) {
	captured := make([]float64, len(g.enemies))
	for i, e := range g.enemies {
		captured[i] = e.Speed
		e.Speed = 0
	}
	g.schedule(g.rules.GreenGemSeconds, g.level, func(g *Game) {
		for i, e := range g.enemies {
			if i < len(captured) {
				e.Speed = captured[i]
			}
		}
	})
}
