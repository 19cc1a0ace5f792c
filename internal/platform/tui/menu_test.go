package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flag-quiz/internal/games/flags"
)

func TestMenuListsVariants(t *testing.T) {
	m := NewMenuModel(testRuntime(), "50 flags")

	ids := make([]string, 0, len(m.items))
	for _, it := range m.items {
		ids = append(ids, it.GameID)
	}
	for _, want := range []string{flags.VariantContinent, flags.VariantLetter, flags.VariantWorld} {
		found := false
		for _, id := range ids {
			if id == want {
				found = true
			}
		}
		if !found {
			t.Errorf("menu missing %s, have %v", want, ids)
		}
	}

	view := m.View()
	if !strings.Contains(view, "50 flags") {
		t.Error("catalog info not shown")
	}
}

func TestMenuNavigation(t *testing.T) {
	var model tea.Model = NewMenuModel(testRuntime(), "")

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyUp})
	if c := model.(MenuModel).cursor; c != 0 {
		t.Errorf("cursor = %d after up at top, want 0", c)
	}

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyDown})
	if c := model.(MenuModel).cursor; c != 1 {
		t.Errorf("cursor = %d after down, want 1", c)
	}

	model, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m := model.(MenuModel)
	if cmd == nil || m.Selected() == nil {
		t.Fatal("enter should select and quit")
	}
	if m.Selected().GameID != m.items[1].GameID {
		t.Errorf("selected %s, want %s", m.Selected().GameID, m.items[1].GameID)
	}
}

func TestMenuBrowseAndQuit(t *testing.T) {
	m := NewMenuModel(testRuntime(), "")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if !next.(MenuModel).WantsBrowser() {
		t.Error("tab should open the browser")
	}

	next, _ = m.Update(runeKey('q'))
	if !next.(MenuModel).IsQuitting() {
		t.Error("q should quit")
	}
	if next.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestMenuResize(t *testing.T) {
	m := NewMenuModel(testRuntime(), "")
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	cfg := next.(MenuModel).Config()
	if cfg.ScreenW != 120 || cfg.ScreenH != 40 {
		t.Errorf("config size = %dx%d, want 120x40", cfg.ScreenW, cfg.ScreenH)
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText = %q, want %q", got, "  ab")
	}
	if got := centerText("abcdef", 4); got != "abcdef" {
		t.Errorf("centerText overflow = %q", got)
	}
}
