package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 30)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is a read-only status snapshot of a run.
// Returned by Game.State() to communicate progress to the platform.
type GameState struct {
	Level     int  // Current level index, -1 before the first level
	Lives     int  // Remaining lives
	Paused    bool // Whether the game is paused
	GameOver  bool // Whether the run ended in defeat
	Completed bool // Whether the campaign was finished
}

// Terminal reports whether the run has reached a final outcome.
func (s GameState) Terminal() bool {
	return s.GameOver || s.Completed
}
