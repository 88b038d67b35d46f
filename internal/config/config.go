// Package config provides YAML-based tuning for the snake game.
// Grid size and win length are fixed by the game and deliberately absent here.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config contains all tunables for a snake session.
type Config struct {
	Bomb BombConfig `yaml:"bomb"`
	Pace PaceConfig `yaml:"pace"`
}

// BombConfig defines the hazard lifecycle parameters.
type BombConfig struct {
	TimeoutMs     int     `yaml:"timeout_ms"`     // Visible time after each (re)spawn
	RespawnChance float64 `yaml:"respawn_chance"` // Per-tick chance to reappear while hidden
}

// Timeout returns the bomb timeout as a duration.
func (b BombConfig) Timeout() time.Duration {
	return time.Duration(b.TimeoutMs) * time.Millisecond
}

// PaceConfig defines the adaptive tick interval.
type PaceConfig struct {
	HorizontalBaseMs int `yaml:"horizontal_base_ms"`
	VerticalBaseMs   int `yaml:"vertical_base_ms"`
}

// Validate checks that every value is usable.
// minBase is the longest body the game allows; a base at or below it would
// produce a non-positive interval.
func (c Config) Validate(minBase int) error {
	if c.Bomb.TimeoutMs <= 0 {
		return fmt.Errorf("%w: bomb.timeout_ms must be positive, got %d", ErrInvalid, c.Bomb.TimeoutMs)
	}
	if c.Bomb.RespawnChance < 0 || c.Bomb.RespawnChance > 1 {
		return fmt.Errorf("%w: bomb.respawn_chance must be in [0, 1], got %g", ErrInvalid, c.Bomb.RespawnChance)
	}
	if c.Pace.HorizontalBaseMs <= minBase {
		return fmt.Errorf("%w: pace.horizontal_base_ms must exceed %d, got %d", ErrInvalid, minBase, c.Pace.HorizontalBaseMs)
	}
	if c.Pace.VerticalBaseMs <= minBase {
		return fmt.Errorf("%w: pace.vertical_base_ms must exceed %d, got %d", ErrInvalid, minBase, c.Pace.VerticalBaseMs)
	}
	return nil
}
