package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/game"
	"github.com/vovakirdan/tui-crossing/internal/levels"
	"github.com/vovakirdan/tui-crossing/internal/storage"
)

// runClock tracks when the current run started. It lives behind a
// pointer so the game's event callbacks keep working across the value
// copies Bubble Tea makes of the model.
type runClock struct {
	start time.Time
}

// Model is the Bubble Tea model for one crossing session on a single
// level pack: character select, play, and the terminal screens.
type Model struct {
	game       *game.Game
	packID     string
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	clock      *runClock
	quitting   bool
	backToMenu bool
	runSaved   bool // Whether the current terminal phase has been recorded
}

// NewModel creates a new session model for the given pack.
func NewModel(pack *levels.Pack, rules game.Rules, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	g := game.New(pack.Levels, rules, cfg)

	clock := &runClock{start: time.Now()}
	g.OnCharacterSelected(func(game.Identity) {
		clock.start = time.Now()
	})

	return Model{
		game:      g,
		packID:    pack.ID,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		clock:     clock,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	// Quitting from the roster leaves the session entirely; during a
	// run the game itself handles ActionQuit as "abandon run".
	if action == core.ActionQuit && m.game.CurrentPhase() == game.PhaseCharacterSelect {
		m.backToMenu = true
		return m, tea.Quit
	}

	if action != core.ActionNone {
		m.game.HandleInput(action)
	}

	return m, nil
}

// handleResize processes window resize events.
// The board keeps its own size: the game draws a notice when the
// terminal is too small, so no reset is needed here.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick advances the simulation by one fixed step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.game.Step(1.0 / float64(m.config.TickRate))

	// Record the run once when it reaches a terminal phase. The flag
	// re-arms as soon as the player starts the next run.
	state := m.game.State()
	if state.Terminal() {
		if !m.runSaved {
			m.saveRun(state)
			m.runSaved = true
		}
	} else {
		m.runSaved = false
	}

	return m, tickCmd(m.config.TickRate)
}

// saveRun writes the finished run to storage.
func (m Model) saveRun(state core.GameState) {
	if m.store == nil {
		return
	}

	outcome := storage.OutcomeGameOver
	if state.Completed {
		outcome = storage.OutcomeCompleted
	}

	//nolint:errcheck // Best-effort save, play continues regardless
	m.store.SaveRun(storage.RunRecord{
		Pack:         m.packID,
		Outcome:      outcome,
		LevelReached: state.Level + 1,
		Lives:        state.Lives,
		Duration:     int(time.Since(m.clock.start).Seconds()),
	})
}

// saveScreenshot saves the current screen to a file.
func (m Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".crossing", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.packID, timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the pack menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a local Bubble Tea program for the given pack.
// Returns whether the user wants to return to the pack menu.
func Run(pack *levels.Pack, rules game.Rules, store *storage.Store, cfg core.RuntimeConfig) (backToMenu bool, err error) {
	model := NewModel(pack, rules, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	if m, ok := finalModel.(Model); ok {
		return m.BackToMenu(), nil
	}
	return false, nil
}
