package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.crossing/configs/crossing.yaml -> ./configs/crossing.yaml -> embedded default
func Load(customPath string) (Config, error) {
	var cfg Config

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return normalize(cfg), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("crossing.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return normalize(cfg), nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/crossing.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return normalize(cfg), nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return normalize(cfg), nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".crossing", "configs", filename)
}

// normalize fills in the fields a partial config file leaves at zero.
// A zero tick rate or life count is never playable.
func normalize(cfg Config) Config {
	def := DefaultConfig()
	if cfg.Game.MaxLives <= 0 {
		cfg.Game.MaxLives = def.Game.MaxLives
	}
	if cfg.Game.MinEnemySpeed <= 0 {
		cfg.Game.MinEnemySpeed = def.Game.MinEnemySpeed
	}
	if cfg.Game.MaxEnemySpeed < cfg.Game.MinEnemySpeed {
		cfg.Game.MaxEnemySpeed = cfg.Game.MinEnemySpeed
	}
	if cfg.Effects.StarSeconds <= 0 {
		cfg.Effects.StarSeconds = def.Effects.StarSeconds
	}
	if cfg.Effects.RockSeconds <= 0 {
		cfg.Effects.RockSeconds = def.Effects.RockSeconds
	}
	if cfg.Effects.BlueGemSeconds <= 0 {
		cfg.Effects.BlueGemSeconds = def.Effects.BlueGemSeconds
	}
	if cfg.Effects.GreenGemSeconds <= 0 {
		cfg.Effects.GreenGemSeconds = def.Effects.GreenGemSeconds
	}
	if cfg.UI.TickRate <= 0 {
		cfg.UI.TickRate = def.UI.TickRate
	}
	if cfg.UI.DefaultPack == "" {
		cfg.UI.DefaultPack = def.UI.DefaultPack
	}
	return cfg
}
