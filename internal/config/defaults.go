package config

import (
	_ "embed"
)

//go:embed defaults/config.yaml
var defaultConfigYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Gameplay: GameplayConfig{
			Variant:         "flags",
			BaseRoundScore:  5,
			Options:         4,
			HighlightMillis: 1000,
			SplashMillis:    5000,
			Splash:          true,
			TimeStep:        0.1,
			Distractors:     "category",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Display: DisplayConfig{
			FPS: 30,
		},
		Source: "built-in",
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultConfigYAML
}
