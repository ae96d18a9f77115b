package game

// EnemySnapshot is a single enemy's state inside a Snapshot.
type EnemySnapshot struct {
	X     float64
	Y     int
	Speed float64
}

// Snapshot captures the complete session state for determinism testing
// and debugging.
type Snapshot struct {
	Phase          string
	Level          int
	Lives          int
	Paused         bool
	Clock          float64
	MinEnemySpeed  int
	MaxEnemySpeed  int
	PlayerX        float64
	PlayerY        int
	Sprite         string
	Indestructible bool
	Enemies        []EnemySnapshot
	Tiles          string // current tile layer in descriptor glyphs
	Items          string // current item layer in descriptor glyphs
	PendingTasks   int
}

// Snapshot returns the current session snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Phase:          g.phase.String(),
		Level:          g.level,
		Lives:          g.lives,
		Paused:         g.paused,
		Clock:          g.clock,
		MinEnemySpeed:  g.minEnemySpeed,
		MaxEnemySpeed:  g.maxEnemySpeed,
		PlayerX:        g.player.X,
		PlayerY:        g.player.Y,
		Sprite:         string(g.player.Sprite),
		Indestructible: g.player.Indestructible,
		PendingTasks:   len(g.tasks),
	}

	for _, e := range g.enemies {
		s.Enemies = append(s.Enemies, EnemySnapshot{X: e.X, Y: e.Y, Speed: e.Speed})
	}

	if g.board != nil {
		s.Tiles = g.board.TilesString()
		s.Items = g.board.ItemsString()
	}

	return s
}
