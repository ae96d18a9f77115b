package game

// events holds the single-handler callback slots the UI layer can fill.
// Every slot defaults to nil and fires as a no-op, so the core runs
// headless (tests, validation) without any wiring.
type events struct {
	lifeLost          func(lives int)
	lifeGained        func(lives int)
	levelCleared      func(nextLevel int)
	gameOver          func(*Game)
	gameRestart       func(*Game)
	gameCompleted     func(*Game)
	gamePaused        func(*Game)
	gameResumed       func(*Game)
	characterSelected func(Identity)
}

// OnLifeLost sets the handler fired after a life is lost, with the
// remaining count.
func (g *Game) OnLifeLost(fn func(lives int)) {
	g.events.lifeLost = fn
}

// OnLifeGained sets the handler fired when a Heart grants a life.
func (g *Game) OnLifeGained(fn func(lives int)) {
	g.events.lifeGained = fn
}

// OnLevelCleared sets the handler fired when a level is entered, with
// the new level index. Fires with 0 on the first level of a session.
func (g *Game) OnLevelCleared(fn func(nextLevel int)) {
	g.events.levelCleared = fn
}

// OnGameOver sets the handler fired when the last life is gone.
func (g *Game) OnGameOver(fn func(*Game)) {
	g.events.gameOver = fn
}

// OnGameRestart sets the handler fired when a fresh session starts.
func (g *Game) OnGameRestart(fn func(*Game)) {
	g.events.gameRestart = fn
}

// OnGameCompleted sets the handler fired when the final level is cleared.
func (g *Game) OnGameCompleted(fn func(*Game)) {
	g.events.gameCompleted = fn
}

// OnGamePaused sets the handler fired on the transition into pause.
func (g *Game) OnGamePaused(fn func(*Game)) {
	g.events.gamePaused = fn
}

// OnGameResumed sets the handler fired on the transition out of pause.
func (g *Game) OnGameResumed(fn func(*Game)) {
	g.events.gameResumed = fn
}

// OnCharacterSelected sets the handler fired when the selector confirms
// an identity.
func (g *Game) OnCharacterSelected(fn func(Identity)) {
	g.events.characterSelected = fn
}

func (e *events) fireLifeLost(lives int) {
	if e.lifeLost != nil {
		e.lifeLost(lives)
	}
}

func (e *events) fireLifeGained(lives int) {
	if e.lifeGained != nil {
		e.lifeGained(lives)
	}
}

func (e *events) fireLevelCleared(nextLevel int) {
	if e.levelCleared != nil {
		e.levelCleared(nextLevel)
	}
}

func (e *events) fireGameOver(g *Game) {
	if e.gameOver != nil {
		e.gameOver(g)
	}
}

func (e *events) fireGameRestart(g *Game) {
	if e.gameRestart != nil {
		e.gameRestart(g)
	}
}

func (e *events) fireGameCompleted(g *Game) {
	if e.gameCompleted != nil {
		e.gameCompleted(g)
	}
}

func (e *events) fireGamePaused(g *Game) {
	if e.gamePaused != nil {
		e.gamePaused(g)
	}
}

func (e *events) fireGameResumed(g *Game) {
	if e.gameResumed != nil {
		e.gameResumed(g)
	}
}

func (e *events) fireCharacterSelected(id Identity) {
	if e.characterSelected != nil {
		e.characterSelected(id)
	}
}
