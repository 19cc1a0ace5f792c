// flagquiz is a terminal flag quiz: a waving flag is shown and the player
// picks the matching country from a handful of options.
//
// Usage:
//
//	flagquiz list                - List quiz variants
//	flagquiz play [variant]      - Play a variant (default from config)
//	flagquiz menu                - Pick variants interactively
//	flagquiz catalog check       - Report catalog consistency problems
//	flagquiz catalog import [db] - Copy the catalog into a SQLite database
//	flagquiz catalog status [db] - Show what a catalog database holds
//	flagquiz catalog browse      - Browse the catalog in the terminal
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: from config, 30)
//	--seed <value>        - Set RNG seed for reproducible sessions
//	--config <path>       - Config file (YAML or TOML)
//	--catalog <path>      - Translation file
//	--assets <dir>        - Flag image directory
//	--db <path>           - Catalog database
//	--difficulty <preset> - easy, normal or hard
//	--log-level <level>   - debug, info, warn, error
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/flag-quiz/internal/games/flags"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagCatalog    string
	flagAssets     string
	flagDBPath     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flagquiz",
	Short: "Flag Quiz - Guess countries by their flags in your terminal",
	Long: `Flag Quiz shows a waving flag and asks which country it belongs to.
Each game covers one group of countries; a wrong answer at zero points ends it.

Available commands:
  list     - Show all quiz variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  catalog  - Check, import and browse the flag catalog

Examples:
  flagquiz list
  flagquiz play
  flagquiz play flags_letter --difficulty hard
  flagquiz menu --seed 42
  flagquiz catalog import ~/.flagquiz/catalog.db`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second, 0 = from config)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagConfig, "config", "", "Path to a config file (YAML or TOML)")
	pf.StringVar(&flagCatalog, "catalog", "", "Path to a translation file")
	pf.StringVar(&flagAssets, "assets", "", "Directory of flag images; restricts the catalog to flags found there")
	pf.StringVar(&flagDBPath, "db", "", "Path to a catalog database")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(catalogCmd)
}
