package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
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

// TickMillis returns the simulated milliseconds covered by one tick.
func (c RuntimeConfig) TickMillis() int64 {
	if c.TickRate <= 0 {
		return 1000 / 30
	}
	return int64(1000 / c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	MaxScore int  // Best score reachable in this session
	GameOver bool // Whether the session has ended
	Quit     bool // Whether the player confirmed leaving the game
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
