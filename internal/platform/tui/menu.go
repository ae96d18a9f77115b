package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/levels"
	"github.com/vovakirdan/tui-crossing/internal/storage"
)

// MenuModel is the Bubble Tea model for the level-pack picker.
type MenuModel struct {
	packs          []levels.PackInfo
	stats          map[string]storage.PackStats
	cursor         int
	width          int
	height         int
	store          *storage.Store
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       string // Pack ID chosen by the user, empty if none
	openScoreboard bool   // True if user pressed Tab for the scoreboard
}

// NewMenuModel creates a new pack picker model.
// Run history for each pack is loaded up front so the list can show it.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	packs := levels.List()

	stats := make(map[string]storage.PackStats, len(packs))
	if store != nil {
		for _, p := range packs {
			if st, err := store.Stats(p.ID); err == nil && st.Runs > 0 {
				stats[p.ID] = st
			}
		}
	}

	return MenuModel{
		packs:     packs,
		stats:     stats,
		cursor:    0,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.packs)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.packs) > 0 {
			m.selected = m.packs[m.cursor].ID
			return m, tea.Quit // Exit menu to start the game
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit // Exit menu to show the scoreboard
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := "  C R O S S I N G  "
	b.WriteString("\n")
	b.WriteString(theme.MenuTitle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	subtitle := "Select a level pack"
	b.WriteString(theme.MenuSubtitle.Render(centerText(subtitle, m.width)))
	b.WriteString("\n\n")

	for i, p := range m.packs {
		line := centerText(m.packLine(i, p), m.width)
		if i == m.cursor {
			b.WriteString(theme.MenuItemActive.Render(line))
		} else {
			b.WriteString(theme.MenuItemNormal.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Play  |  Tab: Scores  |  Q: Quit"
	b.WriteString(theme.MenuFooter.Render(centerText(controls, m.width)))
	b.WriteString("\n")

	return b.String()
}

// packLine formats one pack entry, with run history when there is any.
func (m MenuModel) packLine(i int, p levels.PackInfo) string {
	cursor := "  "
	if i == m.cursor {
		cursor = "> "
	}

	line := fmt.Sprintf("%s%-20s %d levels", cursor, p.Title, p.Levels)

	if st, ok := m.stats[p.ID]; ok {
		if st.Completed > 0 {
			line += fmt.Sprintf("   cleared, best %s", formatDuration(st.BestTime))
		} else {
			line += fmt.Sprintf("   best level %d", st.BestLevel)
		}
	}

	return line
}

// SelectedPack returns the chosen pack ID, or empty if none was chosen.
func (m MenuModel) SelectedPack() string {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested the scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	PackID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the pack picker and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{
		Config: m.Config(),
	}

	if m.WantsScoreboard() {
		result.WantsScoreboard = true
		return result, nil
	}

	if m.IsQuitting() || m.SelectedPack() == "" {
		result.Quit = true
		return result, nil
	}

	result.PackID = m.SelectedPack()
	return result, nil
}
