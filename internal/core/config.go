package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and tick rate.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// TickSeconds returns the fixed simulation delta for one tick.
func (c RuntimeConfig) TickSeconds() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int    // Current score
	GameOver bool   // Whether the round has ended (won or lost)
	Won      bool   // Whether the round ended in a win
	Paused   bool   // Whether the game is paused
	LevelID  string // Identifier of the level being played
	Shots    int    // Birds launched from the slingshot this round
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
