package game

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-crossing/internal/core"
)

// Screen cells per board column. One board row maps to one screen row;
// the horizontal stretch keeps tiles roughly square in a terminal and
// lets enemies glide in sub-tile increments.
const cellW = 3

// Render draws the current state into the screen buffer: selector
// roster, the board with entities and HUD, or a terminal overlay,
// depending on phase.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.phase == PhaseCharacterSelect {
		g.renderSelector(dst)
		return
	}

	g.renderHUD(dst)

	if g.board == nil {
		return
	}

	boardW := g.board.Width() * cellW
	boardH := g.board.Height()
	if dst.Width() < boardW+2 || dst.Height() < boardH+4 {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	offsetX := (dst.Width() - boardW) / 2
	offsetY := 2 + (dst.Height()-3-boardH)/2

	g.renderBoard(dst, offsetX, offsetY)
	g.renderEnemies(dst, offsetX, offsetY)
	g.renderPlayer(dst, offsetX, offsetY)
	g.renderControls(dst)

	switch {
	case g.phase == PhaseCompleted:
		g.renderOverlay(dst, "You crossed them all!", "Enter to continue")
	case g.phase == PhaseGameOver:
		g.renderOverlay(dst, "Game Over", "Enter to continue")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar and separator.
func (g *Game) renderHUD(dst *core.Screen) {
	name := ""
	if lvl := g.CurrentLevel(); lvl != nil && lvl.Name != "" {
		name = "  " + lvl.Name
	}
	hud := fmt.Sprintf(" Crossing — ♥ %d  Level %d/%d%s", g.lives, g.level+1, len(g.levels), name)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderControls draws the key hint line at the bottom.
func (g *Game) renderControls(dst *core.Screen) {
	controls := "Arrows: Move  |  H: Help  |  P: Pause  |  Q: Quit"
	dst.DrawTextCentered(dst.Height()-1, controls)
}

// renderBoard draws terrain and items.
func (g *Game) renderBoard(dst *core.Screen, offsetX, offsetY int) {
	for row := 0; row < g.board.Height(); row++ {
		for col := 0; col < g.board.Width(); col++ {
			r, c := tileRune(g.board.Tile(row, col))
			for i := 0; i < cellW; i++ {
				dst.SetCell(offsetX+col*cellW+i, offsetY+row, r, c)
			}
			if kind := g.board.Item(row, col); kind != ItemNone {
				ir, ic := itemRune(kind)
				dst.SetCell(offsetX+col*cellW+1, offsetY+row, ir, ic)
			}
		}
	}
}

// renderEnemies draws road traffic at sub-tile precision, clipped to the
// board area so wrapped enemies stay invisible until they re-enter.
func (g *Game) renderEnemies(dst *core.Screen, offsetX, offsetY int) {
	boardW := g.board.Width() * cellW
	for _, e := range g.enemies {
		x := int(math.Round(e.X*cellW)) + 1
		if x < 0 || x >= boardW {
			continue
		}
		r, c := spriteRune(e.Sprite)
		dst.SetCell(offsetX+x, offsetY+e.Y, r, c)
	}
}

// renderPlayer draws the player centered on its tile.
func (g *Game) renderPlayer(dst *core.Screen, offsetX, offsetY int) {
	r, c := spriteRune(g.player.Sprite)
	dst.SetCell(offsetX+int(g.player.X)*cellW+1, offsetY+g.player.Y, r, c)
}

// renderSelector draws the character roster with the cursor on the
// current choice.
func (g *Game) renderSelector(dst *core.Screen) {
	dst.DrawTextCentered(2, "C R O S S I N G")
	dst.DrawTextCentered(4, "Choose your crosser")

	roster := g.selector.roster
	slotW := 6
	startX := (dst.Width() - len(roster)*slotW) / 2
	y := dst.Height() / 2

	for i, id := range roster {
		x := startX + i*slotW
		r, c := spriteRune(id.Sprite)
		if i == g.selector.cursor {
			dst.DrawTextColored(x, y, "[", core.ColorBrightWhite)
			dst.SetCell(x+2, y, r, c)
			dst.DrawTextColored(x+4, y, "]", core.ColorBrightWhite)
			dst.DrawTextCentered(y+2, id.Name)
		} else {
			dst.SetCell(x+2, y, r, c)
		}
	}

	dst.DrawTextCentered(dst.Height()-2, "Left/Right: Choose  |  Enter: Start")
}

// renderOverlay draws a boxed two-line message over the playfield.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := core.Max(len(line1), len(line2))
	boxW := maxLen + 6
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}

// tileRune maps terrain to its display rune and color.
func tileRune(t TileKind) (rune, core.Color) {
	switch t {
	case TileGrass:
		return '░', core.ColorGreen
	case TileStone:
		return '▒', core.ColorGray
	case TileWater:
		return '~', core.ColorBlue
	default:
		return '?', core.ColorDefault
	}
}

// itemRune maps an item to its display rune and color.
func itemRune(k ItemKind) (rune, core.Color) {
	switch k {
	case ItemHeart:
		return '♥', core.ColorBrightRed
	case ItemStar:
		return '★', core.ColorBrightYellow
	case ItemKey:
		return 'K', core.ColorYellow
	case ItemRock:
		return '●', core.ColorBrightWhite
	case ItemBlueGem:
		return '♦', core.ColorBrightBlue
	case ItemGreenGem:
		return '♦', core.ColorBrightGreen
	case ItemOrangeGem:
		return '♦', core.ColorOrange
	default:
		return '?', core.ColorDefault
	}
}

// spriteRune maps a sprite handle to its display rune and color.
func spriteRune(s Sprite) (rune, core.Color) {
	switch s {
	case SpriteHopper:
		return '@', core.ColorBrightGreen
	case SpriteScout:
		return '&', core.ColorBrightCyan
	case SpriteRanger:
		return '$', core.ColorBrightMagenta
	case SpritePixie:
		return '%', core.ColorBrightYellow
	case SpriteKnight:
		return 'Ω', core.ColorBrightWhite
	case SpriteStar:
		return '★', core.ColorBrightYellow
	case SpriteEnemy:
		return '>', core.ColorBrightRed
	default:
		return '?', core.ColorDefault
	}
}
