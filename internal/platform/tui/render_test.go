package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/flag-quiz/internal/core"
)

func TestRenderScreenText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColor(0, 0, "ab", core.ColorRed)
	s.DrawText(2, 0, "cd")
	s.SetBlock(0, 1, core.ColorBlue)
	s.SetBlock(1, 1, core.ColorBlue)

	got := ansi.Strip(RenderScreen(s))
	if got != s.String() {
		t.Errorf("stripped render = %q, want %q", got, s.String())
	}

	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}
	for i, line := range lines {
		if w := ansi.StringWidth(line); w != 6 {
			t.Errorf("line %d width = %d, want 6", i, w)
		}
	}
}

func TestStyleFor(t *testing.T) {
	fg := styleFor(styleKey{color: core.ColorRed})
	if fg.GetForeground() != palette[core.ColorRed] {
		t.Error("foreground not set for text cell")
	}

	bg := styleFor(styleKey{color: core.ColorRed, fill: true})
	if bg.GetBackground() != palette[core.ColorRed] {
		t.Error("background not set for filled cell")
	}
	if _, ok := bg.GetForeground().(lipgloss.NoColor); !ok {
		t.Error("filled cell should not set a foreground")
	}

	plain := styleFor(styleKey{color: core.ColorDefault})
	if got := plain.Render("x"); ansi.Strip(got) != "x" {
		t.Errorf("default style render = %q", got)
	}
}

func TestPaletteCoversColors(t *testing.T) {
	for c := core.ColorRed; c <= core.ColorBlack; c++ {
		if _, ok := palette[c]; !ok {
			t.Errorf("palette missing color %d", c)
		}
	}
}
