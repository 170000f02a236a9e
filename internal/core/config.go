// Package core provides fundamental platform types for the snake game.
// It contains no external dependencies (especially no Bubble Tea) to keep
// everything below the TUI layer pure and testable.
package core

// RuntimeConfig contains configuration passed to a game session at
// initialization. Sessions use it to adapt to screen size and for
// deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Input-sampling ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}
