package quiz

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/vovakirdan/flag-quiz/internal/catalog"
)

// CategorySelector assigns items to categories. A session plays the items of
// one randomly chosen category.
type CategorySelector interface {
	// Name describes the kind of category ("Continent", "Letter").
	Name() string

	// Category returns the item's category, or "" if it has none.
	Category(it catalog.Item) string
}

// ByContinent groups items by continent.
type ByContinent struct{}

func (ByContinent) Name() string { return "Continent" }

func (ByContinent) Category(it catalog.Item) string {
	return it.Continent
}

// ByInitial groups items by the first letter of their display name.
type ByInitial struct {
	Lang language.Tag
}

// NewByInitial creates a letter selector using the casing rules of lang.
func NewByInitial(lang language.Tag) ByInitial {
	return ByInitial{Lang: lang}
}

func (ByInitial) Name() string { return "Letter" }

func (s ByInitial) Category(it catalog.Item) string {
	r, _ := utf8.DecodeRuneInString(it.Name)
	if r == utf8.RuneError || !unicode.IsLetter(r) {
		return ""
	}
	return cases.Upper(s.Lang).String(string(r))
}

// WorldCategory is the single category used by Everything.
const WorldCategory = "World"

// Everything puts every item into one category.
type Everything struct{}

func (Everything) Name() string { return "All" }

func (Everything) Category(catalog.Item) string {
	return WorldCategory
}
