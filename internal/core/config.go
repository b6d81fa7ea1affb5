package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The host uses it to size the arena and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
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

// TickDelta returns the fixed elapsed time of one tick in seconds.
func (c RuntimeConfig) TickDelta() float32 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float32(c.TickRate)
}

// Frame is everything the host hands the simulation for one tick.
type Frame struct {
	Delta float32 // Elapsed time since the previous tick, in seconds
	Input InputFrame
}
