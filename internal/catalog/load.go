package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
)

//go:embed defaults/countries.yaml
var defaultCatalogYAML []byte

// Embedded returns the built-in catalog.
func Embedded() *Table {
	t, err := ParseTranslations(defaultCatalogYAML)
	if err != nil {
		// The embedded file is part of the build; failing here is a packaging bug.
		panic(fmt.Sprintf("catalog: embedded catalog is invalid: %v", err))
	}
	return t
}

// LoadOptions controls where Load looks for catalog data.
type LoadOptions struct {
	// Path is an explicit translation file. Empty means search.
	Path string

	// AssetsDir, when set, restricts the catalog to flags that have an image
	// in this directory (Flag_of_<ID>.svg).
	AssetsDir string
}

// Result is the outcome of Load.
type Result struct {
	Provider Provider
	Table    *Table   // Full translation table
	Assets   []string // Asset identifiers, nil when no asset dir was used
	Source   string   // Where the translations came from
}

// Load resolves the catalog.
// Search order: opts.Path -> ~/.flagquiz/catalog.yaml -> ./configs/catalog.yaml -> embedded default
func Load(opts LoadOptions) (Result, error) {
	table, source, err := loadTable(opts.Path)
	if err != nil {
		return Result{}, err
	}

	res := Result{Provider: table, Table: table, Source: source}

	if opts.AssetsDir != "" {
		assets, err := ScanAssets(opts.AssetsDir)
		if err != nil {
			return Result{}, err
		}
		res.Assets = assets
		res.Provider = table.Restrict(assets)
	}

	return res, nil
}

func loadTable(customPath string) (*Table, string, error) {
	if customPath != "" {
		t, err := ParseFile(customPath)
		if err != nil {
			return nil, "", err
		}
		return t, customPath, nil
	}

	if p := userCatalogPath(); p != "" {
		if t, err := ParseFile(p); err == nil {
			return t, p, nil
		}
	}

	local := filepath.Join("configs", "catalog.yaml")
	if t, err := ParseFile(local); err == nil {
		return t, local, nil
	}

	return Embedded(), "embedded", nil
}

// userCatalogPath returns the per-user catalog path, or empty if home is unavailable.
func userCatalogPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flagquiz", "catalog.yaml")
}
