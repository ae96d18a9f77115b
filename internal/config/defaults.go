package config

import (
	_ "embed"
)

//go:embed defaults/crossing.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded default configuration, used as
// the last resort when even the embedded YAML cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Game: GameConfig{
			MaxLives:      3,
			MinEnemySpeed: 1,
			MaxEnemySpeed: 3,
		},
		Effects: EffectsConfig{
			StarSeconds:     1.0,
			RockSeconds:     1.0,
			BlueGemSeconds:  1.0,
			GreenGemSeconds: 1.0,
		},
		UI: UIConfig{
			TickRate:    30,
			DefaultPack: "classic",
		},
	}
}

// DefaultYAML returns the embedded default configuration file, handy
// for writing a starter config the user can edit.
func DefaultYAML() []byte {
	return defaultYAML
}
