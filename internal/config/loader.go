package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. FLAGQUIZ_DISPLAY_FPS.
const EnvPrefix = "FLAGQUIZ_"

// Load reads the configuration, applies environment overrides and the
// difficulty preset, then validates the result.
// Search order: customPath -> ~/.flagquiz/config.yaml -> ./configs/config.yaml -> embedded default
func Load(customPath string) (*Config, error) {
	cfg, err := loadFile(customPath)
	if err != nil {
		return nil, err
	}

	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}

	if cfg.Gameplay.Difficulty != "" {
		ApplyPreset(cfg, DifficultyPreset(cfg.Gameplay.Difficulty))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFile(customPath string) (*Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return nil, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data, formatOf(customPath))
		if err != nil {
			return nil, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		cfg.Source = customPath
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath("config.yaml"), userConfigPath("config.toml"), "configs/config.yaml", "configs/config.toml"} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data, formatOf(path)); err == nil {
			cfg.Source = path
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultConfigYAML, "yaml")
	if err != nil {
		d := DefaultConfig() // Fallback to hardcoded if embed fails
		return &d, nil
	}
	cfg.Source = "embedded"
	return cfg, nil
}

// Parse decodes a configuration document on top of the defaults, so a file
// only needs the keys it changes. format is "yaml" or "toml".
func Parse(data []byte, format string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.Source = ""

	switch format {
	case "toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
	}
	return &cfg, nil
}

// ApplyEnv overrides fields from FLAGQUIZ_* environment variables.
func ApplyEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("config: parsing environment: %w", err)
	}
	return nil
}

func formatOf(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return "toml"
	}
	return "yaml"
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flagquiz", filename)
}
