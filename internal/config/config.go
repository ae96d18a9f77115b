// Package config provides YAML-based configuration loading and
// difficulty presets for the crossing game.
package config

// Config contains every tunable parameter of the game.
type Config struct {
	Game    GameConfig    `yaml:"game"`
	Effects EffectsConfig `yaml:"effects"`
	UI      UIConfig      `yaml:"ui"`
}

// GameConfig defines the core gameplay parameters.
type GameConfig struct {
	MaxLives      int `yaml:"max_lives"`
	MinEnemySpeed int `yaml:"min_enemy_speed"` // starting lower bound, columns per second
	MaxEnemySpeed int `yaml:"max_enemy_speed"` // starting upper bound, columns per second
}

// EffectsConfig defines how long each timed item effect lasts, in
// seconds of game clock.
type EffectsConfig struct {
	StarSeconds     float64 `yaml:"star_seconds"`
	RockSeconds     float64 `yaml:"rock_seconds"`
	BlueGemSeconds  float64 `yaml:"blue_gem_seconds"`
	GreenGemSeconds float64 `yaml:"green_gem_seconds"`
}

// UIConfig defines presentation and session defaults.
type UIConfig struct {
	TickRate    int    `yaml:"tick_rate"`
	DefaultPack string `yaml:"default_pack"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a user-supplied name into a preset.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), true
	}
	return "", false
}
