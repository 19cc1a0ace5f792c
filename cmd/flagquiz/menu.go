package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flag-quiz/internal/platform/tui"
	"github.com/vovakirdan/flag-quiz/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a variant picker menu",
	Long: `Start flagquiz in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to start a variant.
After leaving a quiz, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Start variant
  Tab          - Browse the catalog
  Q/Esc        - Quit

Examples:
  flagquiz menu
  flagquiz menu --fps 60
  flagquiz menu --db ./catalog.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	a, err := newApp(true)
	if err != nil {
		return err
	}
	defer a.Close()

	items, source, err := a.loadItems()
	if err != nil {
		return err
	}
	info := fmt.Sprintf("%d flags from %s", len(items), source)

	cfg := a.runtimeConfig()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(cfg, info)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.Browse {
			goBack, err := tui.RunBrowser(items, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if goBack {
				continue // Back to menu
			}
			return nil // User quit from browser
		}

		if menuResult.GameID == "" {
			return nil
		}

		game, err := registry.Create(menuResult.GameID, a.deps(items))
		if err != nil {
			return err
		}

		a.logger.Info("starting quiz", "variant", menuResult.GameID, "catalog", source)
		state, err := tui.Run(game, cfg, a.logger)
		if err != nil {
			return fmt.Errorf("running quiz: %w", err)
		}
		a.logger.Info("quiz finished", "variant", menuResult.GameID, "score", state.Score, "max", state.MaxScore)
	}
}
