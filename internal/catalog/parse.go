package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseTranslations parses a translation table keyed by identifier.
// Both YAML and JSON documents are accepted (JSON is valid YAML):
//
//	France:
//	  name: Франция
//	  continent: Европа
//	  flag: {layout: vertical, colors: [blue, white, red]}
func ParseTranslations(data []byte) (*Table, error) {
	var raw map[string]Metadata
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("catalog: parse translations: %w", err)
	}
	if len(raw) == 0 {
		return nil, ErrEmptyCatalog
	}

	meta := make(map[string]Metadata, len(raw))
	for id, m := range raw {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		m.Name = strings.TrimSpace(m.Name)
		m.Continent = strings.TrimSpace(m.Continent)
		m.Flag.Layout = strings.ToLower(strings.TrimSpace(m.Flag.Layout))
		meta[id] = m
	}

	return NewTable(meta), nil
}

// ParseFile reads and parses a translation file.
func ParseFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	t, err := ParseTranslations(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

const (
	assetPrefix = "Flag_of_"
	assetExt    = ".svg"
)

// ScanAssets lists identifiers of flag images in dir. Files are expected to
// be named Flag_of_<ID>.svg; anything else is ignored. The result is sorted.
func ScanAssets(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("catalog: scan assets %s: %w", dir, err)
	}

	var ids []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.EqualFold(filepath.Ext(name), assetExt) {
			continue
		}
		id := strings.TrimSuffix(name, filepath.Ext(name))
		id = strings.TrimPrefix(id, assetPrefix)
		if id == "" {
			continue
		}
		ids = append(ids, id)
	}

	sort.Strings(ids)
	return ids, nil
}

// AssetPath returns the expected image path for id inside dir.
func AssetPath(dir, id string) string {
	return filepath.Join(dir, assetPrefix+id+assetExt)
}
