package catalog

import "fmt"

// IssueKind classifies a consistency problem.
type IssueKind string

const (
	// IssueMissingMetadata: an identifier has no translation entry.
	IssueMissingMetadata IssueKind = "missing_metadata"
	// IssueMissingAsset: a translation entry has no flag image.
	IssueMissingAsset IssueKind = "missing_asset"
	// IssueMissingContinent: an entry cannot be placed in any continent.
	IssueMissingContinent IssueKind = "missing_continent"
)

// Issue is one finding of Check.
type Issue struct {
	Kind IssueKind
	ID   string
	Name string // Display name, when known
}

func (i Issue) String() string {
	switch i.Kind {
	case IssueMissingMetadata:
		return fmt.Sprintf("missing translation for: %s", i.ID)
	case IssueMissingAsset:
		return fmt.Sprintf("missing flag file for: %s (%s)", i.ID, i.Name)
	case IssueMissingContinent:
		return fmt.Sprintf("no continent for: %s", i.ID)
	default:
		return fmt.Sprintf("%s: %s", i.Kind, i.ID)
	}
}

// Check compares the identifiers of p against its metadata and, when assets
// is non-nil, against the known flag images. Intended to run once at startup;
// findings are diagnostics, not errors.
func Check(p Provider, metadata *Table, assets []string) []Issue {
	var issues []Issue

	for _, id := range p.Items() {
		m, ok := p.Metadata(id)
		if !ok {
			issues = append(issues, Issue{Kind: IssueMissingMetadata, ID: id})
			continue
		}
		if m.Continent == "" {
			issues = append(issues, Issue{Kind: IssueMissingContinent, ID: id, Name: m.Name})
		}
	}

	if assets == nil || metadata == nil {
		return issues
	}

	have := make(map[string]bool, len(assets))
	for _, id := range assets {
		have[id] = true
	}
	for _, id := range metadata.Items() {
		if have[id] {
			continue
		}
		m, _ := metadata.Metadata(id)
		issues = append(issues, Issue{Kind: IssueMissingAsset, ID: id, Name: m.Name})
	}

	return issues
}
