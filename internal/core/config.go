package core

import "time"

// RuntimeConfig carries per-process settings from the CLI into a session.
type RuntimeConfig struct {
	ScreenW int   // Terminal width in cells
	ScreenH int   // Terminal height in cells
	Seed    int64 // RNG seed; 0 means derive from the current time

	// TickInterval overrides the configured simulation interval when non-zero.
	TickInterval time.Duration
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
	}
}

// ResolveSeed returns the configured seed, or a time-based one when unset.
func (c RuntimeConfig) ResolveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
