package core

import "time"

// RuntimeConfig contains the session parameters that are fixed at start.
type RuntimeConfig struct {
	Width      float64 // Playfield width in world units
	Height     float64 // Playfield height in world units
	TickRate   int     // Simulation ticks per second
	FrameRate  int     // Render frames per second
	InputRate  int     // Input samples per second
	Difficulty float64 // Initial effective difficulty
	Seed       int64   // RNG seed, 0 means the platform picks one
}

// Interval converts a per-second rate to the time between iterations.
// Non-positive rates fall back to 60 Hz.
func Interval(rate int) time.Duration {
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}
