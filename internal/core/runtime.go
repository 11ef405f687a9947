package core

// RuntimeConfig is what the platform hands a game on Reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in cells
	ScreenH  int   // Screen height in cells
	TickRate int   // Steps per second
	Seed     int64 // RNG seed; 0 lets the platform pick one from the clock
}

// DefaultConfig returns a 50x30 cell screen ticking at 60 Hz.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  50,
		ScreenH:  30,
		TickRate: 60,
	}
}

// GameState is the part of a game the platform watches between steps.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool
	Dead     bool // The player has been hit and is falling to the ground
}

// StepResult is returned by every Step.
type StepResult struct {
	State GameState
}
