package game

import (
	"github.com/vovakirdan/tui-crossing/internal/core"
)

// Identity is one selectable entry in the character roster: an opaque
// sprite handle plus a display name.
type Identity struct {
	Sprite Sprite
	Name   string
}

// DefaultRoster returns the built-in selectable characters, in display
// order.
func DefaultRoster() []Identity {
	return []Identity{
		{Sprite: SpriteHopper, Name: "Hopper"},
		{Sprite: SpriteScout, Name: "Scout"},
		{Sprite: SpriteRanger, Name: "Ranger"},
		{Sprite: SpritePixie, Name: "Pixie"},
		{Sprite: SpriteKnight, Name: "Knight"},
	}
}

// selector is the character-selection sub-state. The cursor survives
// round trips through play, so abandoning a run re-opens the roster on
// the last choice.
type selector struct {
	roster []Identity
	cursor int
}

// handleInput moves the cursor or confirms the highlighted identity.
// Confirming assigns the identity to the player, fires the selection
// event, and starts a fresh session.
func (s *selector) handleInput(g *Game, a core.Action) {
	switch a {
	case core.ActionLeft:
		if s.cursor > 0 {
			s.cursor--
		}
	case core.ActionRight:
		if s.cursor < len(s.roster)-1 {
			s.cursor++
		}
	case core.ActionConfirm:
		if len(s.roster) == 0 {
			return
		}
		id := s.roster[s.cursor]
		g.player.setIdentity(id.Sprite)
		g.events.fireCharacterSelected(id)
		g.Restart()
	}
}

// Roster returns the selectable identities in display order.
func (g *Game) Roster() []Identity {
	return g.selector.roster
}

// RosterCursor returns the currently highlighted roster index.
func (g *Game) RosterCursor() int {
	return g.selector.cursor
}
