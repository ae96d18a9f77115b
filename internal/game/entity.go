package game

import (
	"github.com/vovakirdan/tui-crossing/internal/core"
)

// Sprite is an opaque visual-identity handle. The core only stores and
// swaps it; the rendering layer decides what it looks like.
type Sprite string

// Built-in sprites. The selectable ones live in DefaultRoster.
const (
	SpriteHopper Sprite = "hopper"
	SpriteScout  Sprite = "scout"
	SpriteRanger Sprite = "ranger"
	SpritePixie  Sprite = "pixie"
	SpriteKnight Sprite = "knight"
	SpriteStar   Sprite = "star"  // star-form override while indestructible
	SpriteEnemy  Sprite = "enemy" // road traffic
)

// Character is the shared shape of everything that stands on the board:
// a fractional column (continuous while enemies glide), an integer row,
// and a sprite handle. Player and Enemy embed it and add their own
// behavior; there is no deeper hierarchy.
type Character struct {
	X      float64
	Y      int
	Sprite Sprite
}

// Enemy travels left-to-right along a road row.
type Enemy struct {
	Character
	Speed float64 // columns per second
}

// Update advances the enemy by dt seconds. Leaving the right edge wraps
// it back to one column off the left side with a freshly drawn road row
// and speed, which reads on screen as endlessly regenerating traffic.
func (e *Enemy) Update(g *Game, dt float64) {
	e.X += e.Speed * dt
	if e.X >= float64(g.board.Width()) {
		e.X = -1
		e.Y = g.randomRoad()
		e.Speed = float64(g.randomSpeed())
	}
}

// Player is the single player-controlled character. It is constructed
// once per game and persists across levels and restarts: position is
// reset, identity is not.
type Player struct {
	Character
	Indestructible bool
	baseSprite     Sprite // chosen identity, restored when a star form expires
	effects        [itemKindCount]EffectFunc
}

// newPlayer creates the player with the effect table installed.
// The identity is assigned later, by the character selector.
func newPlayer(initial Sprite) *Player {
	return &Player{
		Character:  Character{Sprite: initial},
		baseSprite: initial,
		effects:    newEffectTable(),
	}
}

// setIdentity assigns the chosen visual identity.
func (p *Player) setIdentity(s Sprite) {
	p.Sprite = s
	p.baseSprite = s
}

// enterStarForm swaps the sprite to the star override.
func (p *Player) enterStarForm() {
	p.Sprite = SpriteStar
}

// leaveStarForm restores the chosen identity.
func (p *Player) leaveStarForm() {
	p.Sprite = p.baseSprite
}

// clearStarForm drops any active star state. Called on restart so a new
// session never inherits a half-expired window.
func (p *Player) clearStarForm() {
	p.Indestructible = false
	p.Sprite = p.baseSprite
}

// HandleInput processes one abstract input symbol while playing.
// Directional symbols move one tile when the destination is in bounds;
// board edges block, terrain never does.
func (p *Player) HandleInput(g *Game, a core.Action) {
	switch a {
	case core.ActionLeft:
		p.tryMove(g, int(p.X)-1, p.Y)
	case core.ActionRight:
		p.tryMove(g, int(p.X)+1, p.Y)
	case core.ActionUp:
		p.tryMove(g, int(p.X), p.Y-1)
	case core.ActionDown:
		p.tryMove(g, int(p.X), p.Y+1)
	case core.ActionHelp:
		g.HelpPlayer()
	case core.ActionPause:
		g.TogglePause()
	case core.ActionQuit:
		g.AbandonRun()
	}
}

// tryMove bounds-checks a destination and moves there.
func (p *Player) tryMove(g *Game, col, row int) {
	if col < 0 || col >= g.board.Width() || row < 0 || row >= g.board.Height() {
		return
	}
	p.MoveTo(g, col, row)
}

// MoveTo places the player and collects whatever item sits on the
// destination cell: the registered effect for the kind runs first (with
// the game as context), then the item is removed whether or not an
// effect was registered. Movement is dropped entirely while paused,
// never queued.
func (p *Player) MoveTo(g *Game, col, row int) {
	if g.paused {
		return
	}
	p.X = float64(col)
	p.Y = row

	// An effect may replace the board (Key), so the removal targets the
	// board the item was actually on.
	b := g.board
	kind := b.Item(row, col)
	if kind == ItemNone {
		return
	}
	if fn := p.effects[kind]; fn != nil {
		fn(g)
	}
	b.RemoveItem(row, col)
}

// Update runs the player's per-frame check: standing on a Grass tile in
// row 0 clears the level the same frame, no confirmation step.
func (p *Player) Update(g *Game) {
	if p.Y == 0 && g.board.Tile(p.Y, int(p.X)) == TileGrass {
		g.levelUp()
	}
}
