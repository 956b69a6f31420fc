package core

// RuntimeConfig contains configuration passed to the simulation platform at
// initialization. The viewport dimensions adapt rendering; the seed makes
// generated campaigns reproducible.
type RuntimeConfig struct {
	ScreenW  int   // Viewport width in characters
	ScreenH  int   // Viewport height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for level generation; 0 means time-based
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}
