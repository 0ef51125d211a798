package core

// RuntimeConfig is what the host hands a game on every reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Host ticks per second, the game derives its dt from it
	Seed     int64 // 0 picks a time-based seed
}

// DefaultConfig returns an 80x24 screen stepped at 60 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the host-visible summary of a run.
type GameState struct {
	Score     int
	Lives     int
	Countdown bool // Start beats still running
	GameOver  bool
	Paused    bool
}

// Playing reports whether the run accepts gameplay input.
func (s GameState) Playing() bool {
	return !s.Countdown && !s.GameOver && !s.Paused
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State GameState

	// NewBest is set on the tick the score first passes the best
	// score the game was started with.
	NewBest bool
}
