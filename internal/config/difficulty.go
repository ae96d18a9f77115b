package config

// ApplyPreset adjusts the gameplay parameters for a named difficulty.
// Normal keeps whatever the config file says.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Game.MaxLives = 5
		cfg.Game.MinEnemySpeed = 1
		cfg.Game.MaxEnemySpeed = 2
	case DifficultyHard:
		cfg.Game.MaxLives = 2
		cfg.Game.MinEnemySpeed = 2
		cfg.Game.MaxEnemySpeed = 4
	}
}
