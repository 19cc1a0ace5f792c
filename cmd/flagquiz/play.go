package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flag-quiz/internal/games/flags"
	"github.com/vovakirdan/flag-quiz/internal/platform/tui"
	"github.com/vovakirdan/flag-quiz/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a quiz variant",
	Long: `Start a quiz. Without an argument the variant from the config is used.

Controls:
  1-9 / a-i    - Pick an answer (mouse clicks work too)
  Esc          - Ask to leave; Esc again to stay
  Space/Enter  - Confirm leaving, or start a new game after game over
  R            - New game
  Ctrl+S       - Save a screenshot
  Ctrl+C       - Quit immediately

Difficulty presets:
  easy   - 3 options drawn from the whole catalog, longer highlight
  normal - 4 options from the same group
  hard   - 6 options from the same group, short highlight

Examples:
  flagquiz play
  flagquiz play flags_world
  flagquiz play flags --difficulty easy --seed 7
  flagquiz play --config ./my-quiz.toml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	a, err := newApp(true)
	if err != nil {
		return err
	}
	defer a.Close()

	variant := a.cfg.Gameplay.Variant
	if len(args) > 0 {
		variant = args[0]
	}

	// Check if variant exists
	if !registry.Exists(variant) {
		return fmt.Errorf("%w %q, run 'flagquiz list' to see available variants", errUnknownVariant, variant)
	}

	items, source, err := a.loadItems()
	if err != nil {
		return err
	}

	game, err := registry.Create(variant, a.deps(items))
	if err != nil {
		return err
	}

	a.logger.Info("starting quiz", "variant", variant, "catalog", source, "items", len(items))

	state, err := tui.Run(game, a.runtimeConfig(), a.logger)
	if err != nil {
		return fmt.Errorf("running quiz: %w", err)
	}

	fmt.Println(flags.ScoreLine(state.Score, state.MaxScore))
	return nil
}
