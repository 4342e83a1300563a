package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for deterministic gameplay, 0 picks one from the clock
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score          int  // Current score
	Running        bool // A run is in progress and ticking
	Paused         bool // A run is in progress but paused
	GameOver       bool // The last run has ended
	ElapsedSeconds int  // Pause-adjusted run time
}

// Started reports whether a run has been started at least once.
func (s GameState) Started() bool {
	return s.Running || s.Paused || s.GameOver
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
