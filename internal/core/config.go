package core

// RuntimeConfig is passed to the game at start-up.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Update ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is what the platform needs to know after each tick.
type GameState struct {
	Phase    string // "placing", "combat" or "finished"
	GameOver bool   // Whole fleet sunk
	Status   string // Current status line
}

// StepResult is returned by Step after each tick.
type StepResult struct {
	State GameState
}
