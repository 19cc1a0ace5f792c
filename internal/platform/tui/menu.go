package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flag-quiz/internal/core"
	"github.com/vovakirdan/flag-quiz/internal/registry"
)

// MenuItem represents a selectable quiz variant in the menu.
type MenuItem struct {
	GameID      string
	Title       string
	Description string
}

// MenuModel is the Bubble Tea model for the variant picker.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	catalog   string // Short description of the loaded catalog
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	help      help.Model
	quitting  bool
	browse    bool      // True if user pressed Tab for the catalog browser
	selected  *MenuItem // Set when user selects a variant
}

// NewMenuModel creates a new menu model. catalogInfo is shown under the title.
func NewMenuModel(cfg core.RuntimeConfig, catalogInfo string) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))
	for _, g := range games {
		items = append(items, MenuItem{
			GameID:      g.ID,
			Title:       g.Title,
			Description: g.Description,
		})
	}

	return MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		catalog:   catalogInfo,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		help:      help.New(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start the quiz
		}

	case MenuActionBrowse:
		m.browse = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("F L A G   Q U I Z"), m.width))
	b.WriteString("\n\n")
	if m.catalog != "" {
		b.WriteString(centerText(dimStyle.Render(m.catalog), m.width))
		b.WriteString("\n\n")
	}

	for i, item := range m.items {
		line := fmt.Sprintf("  %s", item.Title)
		if i == m.cursor {
			line = activeStyle.Render(fmt.Sprintf("> %s", item.Title))
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	if len(m.items) > 0 && m.items[m.cursor].Description != "" {
		b.WriteString("\n")
		b.WriteString(centerText(dimStyle.Render(m.items[m.cursor].Description), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.help.View(m.keyMapper.Menu), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsBrowser returns true if user asked for the catalog browser.
func (m MenuModel) WantsBrowser() bool {
	return m.browse
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width, measuring printable cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID string
	Config core.RuntimeConfig
	Browse bool
	Quit   bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(cfg core.RuntimeConfig, catalogInfo string) (MenuResult, error) {
	model := NewMenuModel(cfg, catalogInfo)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{
		Config: m.Config(),
	}

	switch {
	case m.WantsBrowser():
		result.Browse = true
	case m.IsQuitting():
		result.Quit = true
	case m.Selected() != nil:
		result.GameID = m.Selected().GameID
	default:
		result.Quit = true
	}

	return result, nil
}
