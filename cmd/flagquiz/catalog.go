package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flag-quiz/internal/catalog"
	"github.com/vovakirdan/flag-quiz/internal/platform/tui"
	"github.com/vovakirdan/flag-quiz/internal/storage"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect and manage the flag catalog",
	Long: `Work with the catalog of flags the quiz draws from.

The catalog is read from --catalog, ~/.flagquiz/catalog.yaml,
./configs/catalog.yaml or the built-in list, in that order. With --assets
only flags that have an image (Flag_of_<ID>.svg) in the directory are used.`,
}

var catalogCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Report translations without flags, flags without translations and missing continents",
	Args:  cobra.NoArgs,
	RunE:  runCatalogCheck,
}

var catalogImportCmd = &cobra.Command{
	Use:   "import [db]",
	Short: "Copy the file catalog into a SQLite database",
	Long: `Import replaces the contents of the database with the current file
catalog. Point --db (or catalog.database in the config) at the file afterwards
to play from it.

Examples:
  flagquiz catalog import ~/.flagquiz/catalog.db
  flagquiz catalog import ./catalog.db --catalog ./countries.yaml --assets ./flags`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCatalogImport,
}

var catalogStatusCmd = &cobra.Command{
	Use:   "status [db]",
	Short: "Show the item count and last import of a catalog database",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCatalogStatus,
}

var catalogBrowseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the catalog by continent",
	Args:  cobra.NoArgs,
	RunE:  runCatalogBrowse,
}

var errNoDatabase = errors.New("no database given, pass a path or --db")

func init() {
	catalogCmd.AddCommand(catalogCheckCmd)
	catalogCmd.AddCommand(catalogImportCmd)
	catalogCmd.AddCommand(catalogStatusCmd)
	catalogCmd.AddCommand(catalogBrowseCmd)
}

func runCatalogCheck(_ *cobra.Command, _ []string) error {
	a, err := newApp(false)
	if err != nil {
		return err
	}
	defer a.Close()

	res, err := catalog.Load(catalog.LoadOptions{
		Path:      a.cfg.Catalog.Path,
		AssetsDir: a.cfg.Catalog.Assets,
	})
	if err != nil {
		return err
	}

	issues := catalog.Check(res.Provider, res.Table, res.Assets)
	for _, issue := range issues {
		fmt.Println(issue.String())
	}

	items := catalog.Items(res.Provider)
	fmt.Printf("%s: %d flags, %d continents, %d issues\n",
		res.Source, len(items), len(catalog.Continents(items)), len(issues))

	if len(issues) > 0 {
		return fmt.Errorf("catalog has %d issues", len(issues))
	}
	return nil
}

func runCatalogImport(_ *cobra.Command, args []string) error {
	a, err := newApp(false)
	if err != nil {
		return err
	}
	defer a.Close()

	dbPath := databaseArg(a, args)
	if dbPath == "" {
		return errNoDatabase
	}

	res, err := a.loadFiles()
	if err != nil {
		return err
	}

	store, err := storage.Open(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	n, err := store.ImportCatalog(res.Provider, res.Source)
	if err != nil {
		return err
	}

	a.logger.Info("catalog imported", "db", dbPath, "source", res.Source, "items", n)
	fmt.Printf("Imported %d flags from %s into %s\n", n, res.Source, dbPath)
	return nil
}

func runCatalogStatus(_ *cobra.Command, args []string) error {
	a, err := newApp(false)
	if err != nil {
		return err
	}
	defer a.Close()

	dbPath := databaseArg(a, args)
	if dbPath == "" {
		return errNoDatabase
	}

	store, err := storage.Open(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	count, err := store.ItemCount()
	if err != nil {
		return err
	}

	rec, err := store.LastImport()
	if errors.Is(err, storage.ErrNoImport) {
		fmt.Printf("%s: no catalog imported\n", dbPath)
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Printf("%s: %d flags\n", dbPath, count)
	fmt.Printf("Last import: %s (%d flags) at %s\n",
		rec.Source, rec.Items, rec.CreatedAt.Format("Jan 02 2006 15:04"))
	return nil
}

func runCatalogBrowse(_ *cobra.Command, _ []string) error {
	a, err := newApp(true)
	if err != nil {
		return err
	}
	defer a.Close()

	items, _, err := a.loadItems()
	if err != nil {
		return err
	}

	cfg := a.runtimeConfig()
	_, err = tui.RunBrowser(items, cfg.ScreenW, cfg.ScreenH)
	return err
}

// databaseArg returns the database named on the command line, or the
// configured one.
func databaseArg(a *app, args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return a.cfg.Catalog.Database
}
