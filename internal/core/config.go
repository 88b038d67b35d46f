package core

// Minimum terminal size checked once at startup.
const (
	MinScreenRows    = 30
	MinScreenColumns = 15
)

// RuntimeConfig contains configuration passed to a game session at creation.
type RuntimeConfig struct {
	ScreenW int   // Terminal width in characters
	ScreenH int   // Terminal height in characters
	Seed    int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 40,
		Seed:    0, // 0 means use current time in the driver
	}
}

// TooSmall reports whether the terminal is below the minimum size.
func (c RuntimeConfig) TooSmall() bool {
	return c.ScreenH < MinScreenRows || c.ScreenW < MinScreenColumns
}
