package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the hard-coded configuration, matching defaults/snake.yaml.
func Default() Config {
	return Config{
		Bomb: BombConfig{
			TimeoutMs:     7000,
			RespawnChance: 0.01,
		},
		Pace: PaceConfig{
			HorizontalBaseMs: 100,
			VerticalBaseMs:   150,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
