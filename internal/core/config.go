package core

import "time"

// RuntimeConfig contains configuration passed to a simulation at initialization.
// The platform layer fills it from YAML config and CLI flags.
type RuntimeConfig struct {
	ScreenW int // Screen width in characters
	ScreenH int // Screen height in characters

	GridSize         int           // N for the N x N grid
	Interval         time.Duration // Delay between generations
	Seed             int64         // RNG seed for random seeding
	SeedMode         string        // Exactly one of the registered seed modes
	AliveProbability float64       // Used by the random seed mode
	AnchorRow        int           // Pattern top-left row
	AnchorCol        int           // Pattern top-left column
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:          80,
		ScreenH:          24,
		GridSize:         100,
		Interval:         50 * time.Millisecond,
		Seed:             0, // 0 means use current time in platform layer
		SeedMode:         "random",
		AliveProbability: 0.2,
		AnchorRow:        1,
		AnchorCol:        1,
	}
}

// SimState represents the current state of a simulation.
// Returned by Simulation.State() to communicate status to the platform.
type SimState struct {
	Generation uint64 // Generations computed since the last reset
	Population int    // Live cells in the current generation
	Paused     bool   // Whether stepping is suspended
}

// StepResult is returned after each platform tick.
type StepResult struct {
	State    SimState
	Advanced bool // Whether a generation was computed this tick
}
