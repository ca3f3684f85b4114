package core

// RuntimeConfig is what a platform tells a game about where it runs.
type RuntimeConfig struct {
	ScreenW  int   // cells
	ScreenH  int   // cells
	TickRate int   // ticks per second
	Seed     int64 // 0 lets the platform pick one from the clock
}

// DefaultConfig returns an 80x24 terminal at 60 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// FrameTime returns the duration of one tick in seconds.
func (c RuntimeConfig) FrameTime() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60
	}
	return 1.0 / float64(c.TickRate)
}

// GameState is the part of a game's state the platform acts on.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool
	Choosing bool // waiting for the player to pick between options
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State GameState
}
