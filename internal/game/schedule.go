package game

// levelAny marks a task that must fire regardless of level transitions.
// Used for player-scoped reversals: the player outlives boards.
const levelAny = -1

// task is a fire-once deferred action on the game's logical clock.
// The level captured at scheduling acts as the staleness guard: a due
// task whose level no longer matches is discarded, never run, because
// the board/enemy state it closed over has been replaced.
type task struct {
	due   float64 // logical clock time at which the task fires
	level int     // level captured at scheduling, or levelAny
	run   func(*Game)
}

// schedule queues an action delay seconds ahead on the logical clock.
func (g *Game) schedule(delay float64, level int, run func(*Game)) {
	g.tasks = append(g.tasks, task{due: g.clock + delay, level: level, run: run})
}

// runDueTasks executes every task whose time has come and whose captured
// level still matches, and drops the stale ones. Runs every step, paused
// or not: the timers behave like wall clocks, only entity motion pauses.
func (g *Game) runDueTasks() {
	if len(g.tasks) == 0 {
		return
	}

	var due []task
	remaining := g.tasks[:0]
	for _, t := range g.tasks {
		if t.due > g.clock {
			remaining = append(remaining, t)
		} else {
			due = append(due, t)
		}
	}
	g.tasks = remaining

	for _, t := range due {
		if t.level == levelAny || t.level == g.level {
			t.run(g)
		}
	}
}
