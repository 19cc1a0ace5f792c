package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/flag-quiz/internal/catalog"
	"github.com/vovakirdan/flag-quiz/internal/config"
	"github.com/vovakirdan/flag-quiz/internal/core"
	"github.com/vovakirdan/flag-quiz/internal/registry"
	"github.com/vovakirdan/flag-quiz/internal/storage"
)

// app bundles what every command needs: configuration, logger and catalog.
type app struct {
	cfg     *config.Config
	logger  *log.Logger
	logFile *os.File
}

// newApp loads the configuration and builds the logger. When interactive is
// true nothing is logged to the terminal unless a log file is configured.
func newApp(interactive bool) (*app, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	if err := applyFlags(cfg); err != nil {
		return nil, err
	}

	a := &app{cfg: cfg}

	var w io.Writer = os.Stderr
	if cfg.Logging.File != "" {
		f, err := os.OpenFile(cfg.Logging.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("cannot open log file: %w", err)
		}
		a.logFile = f
		w = f
	} else if interactive {
		w = io.Discard
	}

	level, err := log.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = log.InfoLevel
	}
	a.logger = log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "flagquiz",
		Level:           level,
	})
	a.logger.Debug("config loaded", "source", cfg.Source)

	return a, nil
}

// applyFlags overrides config values with explicitly set command-line flags.
func applyFlags(cfg *config.Config) error {
	if flagFPS > 0 {
		cfg.Display.FPS = flagFPS
	}
	if flagCatalog != "" {
		cfg.Catalog.Path = flagCatalog
	}
	if flagAssets != "" {
		cfg.Catalog.Assets = flagAssets
	}
	if flagDBPath != "" {
		cfg.Catalog.Database = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Logging.Level = flagLogLevel
	}
	if flagLogFile != "" {
		cfg.Logging.File = flagLogFile
	}
	if flagDifficulty != "" {
		if !config.IsPreset(flagDifficulty) {
			return fmt.Errorf("%w: unknown difficulty %q", config.ErrInvalid, flagDifficulty)
		}
		config.ApplyPreset(cfg, config.DifficultyPreset(flagDifficulty))
	}
	return cfg.Validate()
}

// Close releases the log file, if any.
func (a *app) Close() {
	if a.logFile != nil {
		a.logFile.Close()
	}
}

// loadItems resolves the quiz items. A configured catalog database is
// preferred; if it cannot be used the file catalog is loaded instead.
func (a *app) loadItems() ([]catalog.Item, string, error) {
	if db := a.cfg.Catalog.Database; db != "" {
		items, err := itemsFromDB(db)
		if err == nil {
			a.logger.Debug("catalog loaded", "source", db, "items", len(items))
			return items, db, nil
		}
		a.logger.Warn("catalog database unusable, using files", "db", db, "err", err)
	}

	res, err := a.loadFiles()
	if err != nil {
		return nil, "", err
	}

	items := catalog.Items(res.Provider)
	if len(items) == 0 {
		return nil, "", catalog.ErrEmptyCatalog
	}
	a.logger.Debug("catalog loaded", "source", res.Source, "items", len(items))
	return items, res.Source, nil
}

// loadFiles loads the file catalog and logs consistency problems.
func (a *app) loadFiles() (catalog.Result, error) {
	res, err := catalog.Load(catalog.LoadOptions{
		Path:      a.cfg.Catalog.Path,
		AssetsDir: a.cfg.Catalog.Assets,
	})
	if err != nil {
		return res, err
	}

	for _, issue := range catalog.Check(res.Provider, res.Table, res.Assets) {
		a.logger.Warn("catalog", "issue", issue.String())
	}
	return res, nil
}

func itemsFromDB(path string) ([]catalog.Item, error) {
	store, err := storage.Open(path)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	table, err := store.LoadCatalog()
	if err != nil {
		return nil, err
	}
	items := catalog.Items(table)
	if len(items) == 0 {
		return nil, catalog.ErrEmptyCatalog
	}
	return items, nil
}

// deps builds the dependencies handed to game factories.
func (a *app) deps(items []catalog.Item) registry.Deps {
	return registry.Deps{
		Items:  items,
		Rules:  a.cfg.Rules(),
		Logger: a.logger,
	}
}

// runtimeConfig sizes the screen from the terminal unless the config fixes it.
func (a *app) runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	if a.cfg.Display.Width > 0 {
		width = a.cfg.Display.Width
	}
	if a.cfg.Display.Height > 0 {
		height = a.cfg.Display.Height
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: a.cfg.Display.FPS,
		Seed:     flagSeed,
	}
}

// errUnknownVariant is returned for variant IDs missing from the registry.
var errUnknownVariant = errors.New("unknown variant")
