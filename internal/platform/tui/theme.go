package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-crossing/internal/core"
)

// Theme holds every terminal style the crossing UI uses: the per-color
// cell styles the renderer applies to the game screen, plus the chrome
// styles for the pack menu and the scoreboard.
type Theme struct {
	// Cell styles, indexed by the color the game core assigns.
	Cells map[core.Color]lipgloss.Style

	// Pack menu styles
	MenuTitle      lipgloss.Style
	MenuSubtitle   lipgloss.Style
	MenuItemNormal lipgloss.Style
	MenuItemActive lipgloss.Style
	MenuFooter     lipgloss.Style

	// Scoreboard styles
	BoardTitle  lipgloss.Style
	BoardBorder lipgloss.Style
	TableEmpty  lipgloss.Style
	HelpBar     lipgloss.Style
}

// DefaultTheme returns the standard visual theme.
func DefaultTheme() Theme {
	return Theme{
		Cells: map[core.Color]lipgloss.Style{
			core.ColorDefault:       lipgloss.NewStyle(),
			core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
			core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
			core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
			core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
			core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
			core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
			core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
			core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
			core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
			core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
			core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
			core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
			core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
			core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		},

		MenuTitle:      lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		MenuSubtitle:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		MenuItemNormal: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuItemActive: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		MenuFooter:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),

		BoardTitle:  lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
		BoardBorder: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		TableEmpty:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4),
		HelpBar:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// MonochromeTheme returns a colorless theme for plain terminals.
// Emphasis survives as bold, everything else renders unstyled.
func MonochromeTheme() Theme {
	t := DefaultTheme()
	for c := range t.Cells {
		t.Cells[c] = lipgloss.NewStyle()
	}

	t.MenuTitle = lipgloss.NewStyle().Bold(true)
	t.MenuSubtitle = lipgloss.NewStyle()
	t.MenuItemNormal = lipgloss.NewStyle()
	t.MenuItemActive = lipgloss.NewStyle().Bold(true)
	t.MenuFooter = lipgloss.NewStyle()

	t.BoardTitle = lipgloss.NewStyle().Bold(true)
	t.BoardBorder = lipgloss.NewStyle()
	t.TableEmpty = lipgloss.NewStyle().Italic(true).Padding(2, 4)
	t.HelpBar = lipgloss.NewStyle()
	return t
}

// Global theme variable (can be changed at startup)
var theme = DefaultTheme()

// SetTheme sets the global theme.
func SetTheme(t Theme) {
	theme = t
}

// CurrentTheme returns the current global theme.
func CurrentTheme() Theme {
	return theme
}
