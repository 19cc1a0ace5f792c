// Package config provides file-based application configuration for the flag
// quiz: gameplay rules, catalog sources, logging and display settings.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/flag-quiz/internal/quiz"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the complete application configuration.
type Config struct {
	Gameplay GameplayConfig `yaml:"gameplay" toml:"gameplay" envPrefix:"GAMEPLAY_"`
	Catalog  CatalogConfig  `yaml:"catalog" toml:"catalog" envPrefix:"CATALOG_"`
	Logging  LoggingConfig  `yaml:"logging" toml:"logging" envPrefix:"LOG_"`
	Display  DisplayConfig  `yaml:"display" toml:"display" envPrefix:"DISPLAY_"`

	// Source names where the configuration was read from.
	Source string `yaml:"-" toml:"-"`
}

// GameplayConfig holds the quiz rules.
type GameplayConfig struct {
	Variant         string  `yaml:"variant" toml:"variant" env:"VARIANT"`
	Difficulty      string  `yaml:"difficulty" toml:"difficulty" env:"DIFFICULTY"`
	BaseRoundScore  int     `yaml:"base_round_score" toml:"base_round_score" env:"BASE_ROUND_SCORE"`
	Options         int     `yaml:"options" toml:"options" env:"OPTIONS"`
	HighlightMillis int64   `yaml:"highlight_ms" toml:"highlight_ms" env:"HIGHLIGHT_MS"`
	SplashMillis    int64   `yaml:"splash_ms" toml:"splash_ms" env:"SPLASH_MS"`
	Splash          bool    `yaml:"splash" toml:"splash" env:"SPLASH"`
	TimeStep        float64 `yaml:"time_step" toml:"time_step" env:"TIME_STEP"`
	Distractors     string  `yaml:"distractors" toml:"distractors" env:"DISTRACTORS"` // "category" or "global"
}

// CatalogConfig locates translations, flag assets and the optional catalog DB.
type CatalogConfig struct {
	Path     string `yaml:"path" toml:"path" env:"PATH"`
	Assets   string `yaml:"assets" toml:"assets" env:"ASSETS"`
	Database string `yaml:"database" toml:"database" env:"DB"`
}

// LoggingConfig controls the application logger.
type LoggingConfig struct {
	Level string `yaml:"level" toml:"level" env:"LEVEL"` // debug, info, warn, error
	File  string `yaml:"file" toml:"file" env:"FILE"`
}

// DisplayConfig controls the terminal frontend.
type DisplayConfig struct {
	FPS    int `yaml:"fps" toml:"fps" env:"FPS"`
	Width  int `yaml:"width" toml:"width" env:"WIDTH"`
	Height int `yaml:"height" toml:"height" env:"HEIGHT"`
}

var logLevels = []string{"debug", "info", "warn", "error"}

// Validate checks value ranges. Errors wrap ErrInvalid.
func (c *Config) Validate() error {
	g := c.Gameplay
	if g.BaseRoundScore < 1 {
		return fmt.Errorf("%w: gameplay.base_round_score must be positive, got %d", ErrInvalid, g.BaseRoundScore)
	}
	if g.Options < 2 || g.Options > 9 {
		return fmt.Errorf("%w: gameplay.options must be between 2 and 9, got %d", ErrInvalid, g.Options)
	}
	if g.HighlightMillis < 0 || g.SplashMillis < 0 {
		return fmt.Errorf("%w: gameplay durations must not be negative", ErrInvalid)
	}
	if g.TimeStep <= 0 {
		return fmt.Errorf("%w: gameplay.time_step must be positive, got %g", ErrInvalid, g.TimeStep)
	}
	switch quiz.DistractorScope(g.Distractors) {
	case quiz.ScopeCategory, quiz.ScopeGlobal:
	default:
		return fmt.Errorf("%w: gameplay.distractors must be %q or %q, got %q",
			ErrInvalid, quiz.ScopeCategory, quiz.ScopeGlobal, g.Distractors)
	}
	if g.Difficulty != "" && !IsPreset(g.Difficulty) {
		return fmt.Errorf("%w: unknown difficulty %q", ErrInvalid, g.Difficulty)
	}

	if !validLevel(c.Logging.Level) {
		return fmt.Errorf("%w: logging.level must be one of %s, got %q",
			ErrInvalid, strings.Join(logLevels, ", "), c.Logging.Level)
	}

	if c.Display.FPS < 1 || c.Display.FPS > 120 {
		return fmt.Errorf("%w: display.fps must be between 1 and 120, got %d", ErrInvalid, c.Display.FPS)
	}
	if c.Display.Width < 0 || c.Display.Height < 0 {
		return fmt.Errorf("%w: display size must not be negative", ErrInvalid)
	}

	return nil
}

func validLevel(level string) bool {
	for _, l := range logLevels {
		if strings.EqualFold(level, l) {
			return true
		}
	}
	return false
}

// Rules converts the gameplay section into engine rules.
func (c *Config) Rules() quiz.Rules {
	g := c.Gameplay
	rules := quiz.Rules{
		BaseRoundScore:  g.BaseRoundScore,
		OptionCount:     g.Options,
		HighlightMillis: g.HighlightMillis,
		SplashMillis:    g.SplashMillis,
		TimeStep:        g.TimeStep,
		DistractorScope: quiz.DistractorScope(g.Distractors),
	}
	if !g.Splash {
		rules.SplashMillis = 0
	}
	return rules
}
