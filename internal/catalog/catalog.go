// Package catalog supplies the set of quiz items (flags) and their display
// metadata. It is the only place that knows where translations and flag
// assets come from; the quiz engine sees plain Item values.
package catalog

import (
	"errors"
	"sort"
)

// ErrEmptyCatalog is returned when a catalog source contains no entries.
var ErrEmptyCatalog = errors.New("catalog: no entries")

// Flag layouts understood by the renderer.
const (
	LayoutVertical   = "vertical"
	LayoutHorizontal = "horizontal"
)

// FlagArt is a coarse stripe description of a flag for terminal rendering.
type FlagArt struct {
	Layout string   `yaml:"layout" json:"layout"`
	Colors []string `yaml:"colors" json:"colors"`
}

// Metadata is the display information for one identifier.
type Metadata struct {
	Name      string  `yaml:"name" json:"name"`
	Continent string  `yaml:"continent" json:"continent"`
	Flag      FlagArt `yaml:"flag,omitempty" json:"flag,omitempty"`
}

// Item is one flag with its resolved metadata. Immutable once loaded.
type Item struct {
	ID        string
	Name      string
	Continent string
	Flag      FlagArt
}

// Provider exposes the available identifiers and their metadata.
type Provider interface {
	// Items returns identifiers in a stable order.
	Items() []string

	// Metadata returns display data for id, or false if there is none.
	Metadata(id string) (Metadata, bool)
}

// Table is an in-memory Provider.
type Table struct {
	ids  []string
	meta map[string]Metadata
}

// NewTable builds a table from a metadata map. Identifiers are sorted so
// iteration order does not depend on map order.
func NewTable(meta map[string]Metadata) *Table {
	ids := make([]string, 0, len(meta))
	for id := range meta {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return &Table{ids: ids, meta: meta}
}

// Items returns all identifiers.
func (t *Table) Items() []string {
	out := make([]string, len(t.ids))
	copy(out, t.ids)
	return out
}

// Metadata returns display data for id.
func (t *Table) Metadata(id string) (Metadata, bool) {
	m, ok := t.meta[id]
	return m, ok
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.ids)
}

// Restrict returns a provider listing exactly ids, in the given order,
// backed by this table's metadata. Identifiers missing metadata are kept so
// that Check can report them.
func (t *Table) Restrict(ids []string) Provider {
	return &restricted{ids: ids, table: t}
}

type restricted struct {
	ids   []string
	table *Table
}

func (r *restricted) Items() []string {
	out := make([]string, len(r.ids))
	copy(out, r.ids)
	return out
}

func (r *restricted) Metadata(id string) (Metadata, bool) {
	return r.table.Metadata(id)
}

// Items resolves every identifier of p that has metadata into an Item,
// preserving provider order and dropping duplicates.
func Items(p Provider) []Item {
	ids := p.Items()
	seen := make(map[string]bool, len(ids))
	items := make([]Item, 0, len(ids))

	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true

		m, ok := p.Metadata(id)
		if !ok {
			continue
		}
		name := m.Name
		if name == "" {
			name = id
		}
		items = append(items, Item{
			ID:        id,
			Name:      name,
			Continent: m.Continent,
			Flag:      m.Flag,
		})
	}
	return items
}

// Continents returns the distinct continents of items with their item counts.
func Continents(items []Item) map[string]int {
	counts := make(map[string]int)
	for _, it := range items {
		if it.Continent == "" {
			continue
		}
		counts[it.Continent]++
	}
	return counts
}
