package game

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-crossing/internal/core"
)

// hitTolerance is how close an enemy's fractional column must be to the
// player's column to count as a hit. Inherited tuning; the feel of the
// game depends on it, so it stays a literal.
const hitTolerance = 0.1

// Phase is the coarse state of a session.
type Phase int

const (
	PhaseCharacterSelect Phase = iota
	PhasePlaying
	PhaseGameOver
	PhaseCompleted
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseCharacterSelect:
		return "CharacterSelect"
	case PhasePlaying:
		return "Playing"
	case PhaseGameOver:
		return "GameOver"
	case PhaseCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}

// Rules are the tunable gameplay parameters. The config package maps the
// YAML file onto this; tests mostly run on DefaultRules.
type Rules struct {
	MaxLives      int
	MinEnemySpeed int // starting lower speed bound, columns/second
	MaxEnemySpeed int // starting upper speed bound, columns/second

	// Effect windows in seconds of logical clock time.
	StarSeconds     float64
	RockSeconds     float64
	BlueGemSeconds  float64
	GreenGemSeconds float64
}

// DefaultRules returns the classic tuning.
func DefaultRules() Rules {
	return Rules{
		MaxLives:        3,
		MinEnemySpeed:   1,
		MaxEnemySpeed:   3,
		StarSeconds:     1.0,
		RockSeconds:     1.0,
		BlueGemSeconds:  1.0,
		GreenGemSeconds: 1.0,
	}
}

// Game is the orchestrator: level sequencing, lives, collision and
// drowning checks, pause/lose/win lifecycle, the scheduled-task clock,
// and the event registry the UI layer subscribes to. All mutation goes
// through its methods on a single goroutine; there is no locking.
type Game struct {
	rng   *rand.Rand
	rules Rules

	levels []*Level
	level  int // -1 before the first level and after a restart

	lives    int
	maxLives int

	// Speed bounds ratchet up by one per level entered and reset only
	// on restart.
	minEnemySpeed   int
	maxEnemySpeed   int
	initialMinSpeed int
	initialMaxSpeed int

	board   *Board
	player  *Player
	enemies []*Enemy

	phase  Phase
	paused bool

	// Logical clock driving the scheduled reversals.
	clock float64
	tasks []task

	selector selector
	events   events
}

// New creates a game over the given level sequence. The session opens in
// the character selector; play begins when a character is confirmed.
func New(levels []*Level, rules Rules, cfg core.RuntimeConfig) *Game {
	roster := DefaultRoster()
	g := &Game{
		rng:             rand.New(rand.NewSource(cfg.Seed)),
		rules:           rules,
		levels:          levels,
		level:           -1,
		lives:           rules.MaxLives,
		maxLives:        rules.MaxLives,
		minEnemySpeed:   rules.MinEnemySpeed,
		maxEnemySpeed:   rules.MaxEnemySpeed,
		initialMinSpeed: rules.MinEnemySpeed,
		initialMaxSpeed: rules.MaxEnemySpeed,
		player:          newPlayer(roster[0].Sprite),
		phase:           PhaseCharacterSelect,
		selector:        selector{roster: roster},
	}
	return g
}

// HandleInput delivers one abstract input symbol, routed by phase.
// Symbols arrive in event order from the platform's key mapper.
func (g *Game) HandleInput(a core.Action) {
	switch g.phase {
	case PhaseCharacterSelect:
		g.selector.handleInput(g, a)
	case PhasePlaying:
		g.player.HandleInput(g, a)
	case PhaseGameOver, PhaseCompleted:
		if a == core.ActionConfirm || a == core.ActionQuit {
			g.AbandonRun()
		}
	}
}

// Step advances the simulation by dt seconds. Order matters: the clock
// and due tasks first, then enemies, then the player's goal check, then
// the hit/drown checks against the settled enemy positions.
func (g *Game) Step(dt float64) {
	g.clock += dt
	g.runDueTasks()

	if g.phase != PhasePlaying || g.paused {
		return
	}

	for _, e := range g.enemies {
		e.Update(g, dt)
	}

	g.player.Update(g)
	if g.phase != PhasePlaying {
		// The goal check ended the campaign this frame.
		return
	}

	if g.wasPlayerHit() || g.isPlayerDrowning() {
		g.reset()
	}
}

// levelUp advances to the next level, or ends the campaign when the
// sequence is exhausted. It is the only path that installs a board and
// an enemy list.
func (g *Game) levelUp() {
	g.level++
	if g.level == len(g.levels) {
		g.phase = PhaseCompleted
		g.events.fireGameCompleted(g)
		return
	}

	g.minEnemySpeed++
	g.maxEnemySpeed++
	g.board = g.levels[g.level].NewBoard()
	g.lives = g.maxLives
	g.respawnPlayer()
	g.spawnEnemies()
	g.events.fireLevelCleared(g.level)
}

// respawnPlayer places the player on a random column of the bottom row.
func (g *Game) respawnPlayer() {
	g.player.X = float64(g.rng.Intn(g.board.Width()))
	g.player.Y = g.board.Height() - 1
}

// spawnEnemies rebuilds the enemy list, one per road, each starting one
// column off the left edge.
func (g *Game) spawnEnemies() {
	roads := g.board.Roads()
	g.enemies = make([]*Enemy, 0, len(roads))
	for _, row := range roads {
		g.enemies = append(g.enemies, &Enemy{
			Character: Character{X: -1, Y: row, Sprite: SpriteEnemy},
			Speed:     float64(g.randomSpeed()),
		})
	}
}

// randomSpeed draws a uniform integer speed from the current bounds,
// inclusive on both ends.
func (g *Game) randomSpeed() int {
	return g.minEnemySpeed + g.rng.Intn(g.maxEnemySpeed-g.minEnemySpeed+1)
}

// randomRoad draws a uniform road row from the current board.
func (g *Game) randomRoad() int {
	roads := g.board.roads
	return roads[g.rng.Intn(len(roads))]
}

// wasPlayerHit reports whether an enemy occupies the player's tile.
// Enemy columns are continuous, so this is a proximity test against the
// player's integer column, not an equality check.
func (g *Game) wasPlayerHit() bool {
	if g.player.Indestructible {
		return false
	}
	for _, e := range g.enemies {
		if e.Y == g.player.Y && math.Abs(e.X-g.player.X) < hitTolerance {
			return true
		}
	}
	return false
}

// isPlayerDrowning reports whether the player stands on Water.
func (g *Game) isPlayerDrowning() bool {
	if g.player.Indestructible {
		return false
	}
	return g.board.Tile(g.player.Y, int(g.player.X)) == TileWater
}

// reset handles a lost life: the run ends when lives go below zero,
// otherwise the board's items are restored to the level's initial layout
// and the player respawns on the bottom row. Enemies keep rolling.
func (g *Game) reset() {
	g.lives--
	if g.lives < 0 {
		g.phase = PhaseGameOver
		g.events.fireGameOver(g)
		return
	}
	g.events.fireLifeLost(g.lives)
	g.board.ResetItems()
	g.respawnPlayer()
}

// Pause suspends entity motion and player movement. Idempotent: the
// event fires once per actual transition.
func (g *Game) Pause() {
	if g.paused {
		return
	}
	g.paused = true
	g.events.fireGamePaused(g)
}

// Resume lifts a pause. Idempotent like Pause.
func (g *Game) Resume() {
	if !g.paused {
		return
	}
	g.paused = false
	g.events.fireGameResumed(g)
}

// TogglePause flips between paused and running.
func (g *Game) TogglePause() {
	if g.paused {
		g.Resume()
	} else {
		g.Pause()
	}
}

// Restart begins a fresh session: difficulty back to its starting
// values, clock and pending reversals cleared, then straight into the
// first level.
func (g *Game) Restart() {
	g.level = -1
	g.minEnemySpeed = g.initialMinSpeed
	g.maxEnemySpeed = g.initialMaxSpeed
	g.paused = false
	g.clock = 0
	g.tasks = nil
	g.player.clearStarForm()
	g.phase = PhasePlaying
	g.events.fireGameRestart(g)
	g.levelUp()
}

// AbandonRun leaves the current run and returns to the character
// selector. The abandoned session's state is discarded on the next
// confirm, which restarts from scratch.
func (g *Game) AbandonRun() {
	g.phase = PhaseCharacterSelect
	g.paused = false
}

// HelpPlayer trades one life for an assist: the player teleports to the
// bottom-left tile and a random helper item lands on the bottom row, in
// the first free cell scanning right-to-left. Column 0 is skipped so the
// drop is never on the player's own tile. With no lives to spend this
// does nothing; with no free cell the life and teleport still happen.
func (g *Game) HelpPlayer() {
	if g.phase != PhasePlaying || g.paused {
		return
	}
	if g.lives < 1 {
		return
	}
	g.lives--

	bottom := g.board.Height() - 1
	g.player.X = 0
	g.player.Y = bottom

	kind := assistItems[g.rng.Intn(len(assistItems))]
	for col := g.board.Width() - 1; col >= 1; col-- {
		if g.board.Item(bottom, col) == ItemNone {
			g.board.SetItem(bottom, col, kind)
			return
		}
	}
}

// State returns the status snapshot the platform renders from.
func (g *Game) State() core.GameState {
	return core.GameState{
		Level:     g.level,
		Lives:     g.lives,
		Paused:    g.paused,
		GameOver:  g.phase == PhaseGameOver,
		Completed: g.phase == PhaseCompleted,
	}
}

// CurrentPhase returns the lifecycle phase of the session.
func (g *Game) CurrentPhase() Phase {
	return g.phase
}

// Board returns the installed board, nil before the first level.
func (g *Game) Board() *Board {
	return g.board
}

// Player returns the player character.
func (g *Game) Player() *Player {
	return g.player
}

// Enemies returns the live enemy list for the current level.
func (g *Game) Enemies() []*Enemy {
	return g.enemies
}

// LevelCount returns the length of the campaign.
func (g *Game) LevelCount() int {
	return len(g.levels)
}

// CurrentLevel returns the level definition in play, nil outside a run.
func (g *Game) CurrentLevel() *Level {
	if g.level < 0 || g.level >= len(g.levels) {
		return nil
	}
	return g.levels[g.level]
}

// SpeedBounds returns the current [min, max] enemy speed range.
func (g *Game) SpeedBounds() (int, int) {
	return g.minEnemySpeed, g.maxEnemySpeed
}
