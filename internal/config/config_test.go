package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/flag-quiz/internal/quiz"
)

// isolate points HOME and the working directory at empty temp dirs so the
// search order only sees files the test creates.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home = t.TempDir()
	work = t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)
	return home, work
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestEmbeddedMatchesDefaults(t *testing.T) {
	cfg, err := Parse(DefaultYAML(), "yaml")
	if err != nil {
		t.Fatalf("embedded config does not parse: %v", err)
	}

	want := DefaultConfig()
	want.Source = ""
	if *cfg != want {
		t.Errorf("embedded config differs from DefaultConfig()\n got: %+v\nwant: %+v", *cfg, want)
	}
}

func TestLoadEmbedded(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Source != "embedded" {
		t.Errorf("Source = %q, want embedded", cfg.Source)
	}
	if cfg.Gameplay.Options != 4 || cfg.Display.FPS != 30 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home, work := isolate(t)

	writeFile(t, filepath.Join(work, "configs", "config.yaml"), "display:\n  fps: 20\n")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Display.FPS != 20 || cfg.Source != "configs/config.yaml" {
		t.Errorf("local config not used: fps=%d source=%q", cfg.Display.FPS, cfg.Source)
	}

	writeFile(t, filepath.Join(home, ".flagquiz", "config.yaml"), "display:\n  fps: 45\n")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Display.FPS != 45 {
		t.Errorf("user config should win over local, fps=%d", cfg.Display.FPS)
	}

	custom := filepath.Join(work, "custom.yaml")
	writeFile(t, custom, "display:\n  fps: 60\n")
	cfg, err = Load(custom)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Display.FPS != 60 || cfg.Source != custom {
		t.Errorf("custom path should win: fps=%d source=%q", cfg.Display.FPS, cfg.Source)
	}
}

func TestLoadSkipsBrokenSearchFiles(t *testing.T) {
	_, work := isolate(t)
	writeFile(t, filepath.Join(work, "configs", "config.yaml"), "display: [not, a, map\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Source != "embedded" {
		t.Errorf("broken file should be skipped, source=%q", cfg.Source)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	_, work := isolate(t)

	if _, err := Load(filepath.Join(work, "missing.yaml")); err == nil {
		t.Error("missing custom path should fail")
	}

	broken := filepath.Join(work, "broken.yaml")
	writeFile(t, broken, "gameplay: [\n")
	if _, err := Load(broken); err == nil {
		t.Error("broken custom file should fail")
	}
}

func TestLoadTOML(t *testing.T) {
	_, work := isolate(t)

	path := filepath.Join(work, "quiz.toml")
	writeFile(t, path, `
[gameplay]
options = 6
distractors = "global"

[logging]
level = "debug"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Gameplay.Options != 6 || cfg.Gameplay.Distractors != "global" {
		t.Errorf("gameplay = %+v", cfg.Gameplay)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("logging = %+v", cfg.Logging)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Gameplay.BaseRoundScore != 5 || cfg.Display.FPS != 30 {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("FLAGQUIZ_GAMEPLAY_OPTIONS", "5")
	t.Setenv("FLAGQUIZ_GAMEPLAY_DISTRACTORS", "global")
	t.Setenv("FLAGQUIZ_GAMEPLAY_SPLASH", "false")
	t.Setenv("FLAGQUIZ_CATALOG_DB", "/tmp/catalog.db")
	t.Setenv("FLAGQUIZ_LOG_LEVEL", "warn")
	t.Setenv("FLAGQUIZ_DISPLAY_FPS", "15")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Gameplay.Options != 5 {
		t.Errorf("Options = %d, want 5", cfg.Gameplay.Options)
	}
	if cfg.Gameplay.Distractors != "global" {
		t.Errorf("Distractors = %q", cfg.Gameplay.Distractors)
	}
	if cfg.Gameplay.Splash {
		t.Error("Splash should be disabled")
	}
	if cfg.Catalog.Database != "/tmp/catalog.db" {
		t.Errorf("Database = %q", cfg.Catalog.Database)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Level = %q", cfg.Logging.Level)
	}
	if cfg.Display.FPS != 15 {
		t.Errorf("FPS = %d", cfg.Display.FPS)
	}
}

func TestEnvOverrideInvalid(t *testing.T) {
	isolate(t)

	t.Setenv("FLAGQUIZ_DISPLAY_FPS", "fast")
	if _, err := Load(""); err == nil {
		t.Error("non-numeric FPS should fail")
	}

	t.Setenv("FLAGQUIZ_DISPLAY_FPS", "500")
	_, err := Load("")
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("out of range FPS: err = %v, want ErrInvalid", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero score", func(c *Config) { c.Gameplay.BaseRoundScore = 0 }},
		{"one option", func(c *Config) { c.Gameplay.Options = 1 }},
		{"too many options", func(c *Config) { c.Gameplay.Options = 12 }},
		{"negative highlight", func(c *Config) { c.Gameplay.HighlightMillis = -1 }},
		{"zero time step", func(c *Config) { c.Gameplay.TimeStep = 0 }},
		{"bad distractors", func(c *Config) { c.Gameplay.Distractors = "planet" }},
		{"bad difficulty", func(c *Config) { c.Gameplay.Difficulty = "nightmare" }},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }},
		{"zero fps", func(c *Config) { c.Display.FPS = 0 }},
		{"negative width", func(c *Config) { c.Display.Width = -3 }},
	}

	base := DefaultConfig()
	if err := base.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestPresets(t *testing.T) {
	for _, p := range Presets() {
		cfg := DefaultConfig()
		ApplyPreset(&cfg, p)
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", p, err)
		}
		if cfg.Gameplay.Difficulty != string(p) {
			t.Errorf("preset %s not recorded", p)
		}
	}

	cfg := DefaultConfig()
	ApplyPreset(&cfg, DifficultyHard)
	if cfg.Gameplay.Options != 6 {
		t.Errorf("hard options = %d", cfg.Gameplay.Options)
	}

	before := DefaultConfig()
	after := before
	ApplyPreset(&after, "unknown")
	if after != before {
		t.Error("unknown preset should not change config")
	}
}

func TestLoadAppliesDifficulty(t *testing.T) {
	isolate(t)
	t.Setenv("FLAGQUIZ_GAMEPLAY_DIFFICULTY", "easy")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Gameplay.Options != 3 || cfg.Gameplay.Distractors != "global" {
		t.Errorf("easy preset not applied: %+v", cfg.Gameplay)
	}
}

func TestRules(t *testing.T) {
	cfg := DefaultConfig()
	rules := cfg.Rules()

	if rules != quiz.DefaultRules() {
		t.Errorf("default config rules = %+v, want %+v", rules, quiz.DefaultRules())
	}

	cfg.Gameplay.Splash = false
	cfg.Gameplay.Distractors = "global"
	rules = cfg.Rules()
	if rules.SplashMillis != 0 {
		t.Errorf("disabled splash should zero SplashMillis, got %d", rules.SplashMillis)
	}
	if rules.DistractorScope != quiz.ScopeGlobal {
		t.Errorf("DistractorScope = %q", rules.DistractorScope)
	}
}
