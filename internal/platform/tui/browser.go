package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flag-quiz/internal/catalog"
)

// Browser layout constants
const (
	minWidthForSidebar = 80 // Minimum width to show continent sidebar
	sidebarWidth       = 22 // Width of continent sidebar
	allContinents      = "All"
)

// BrowserKeyMap defines the key bindings for the catalog browser.
type BrowserKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextPage key.Binding
	PrevPage key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k BrowserKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextPage, k.PrevPage, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k BrowserKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextPage, k.PrevPage},
		{k.Back, k.Quit},
	}
}

// DefaultBrowserKeyMap returns default key bindings.
func DefaultBrowserKeyMap() BrowserKeyMap {
	return BrowserKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next continent"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev continent"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// BrowserModel is the Bubble Tea model for the catalog browser.
type BrowserModel struct {
	items       []catalog.Item
	continents  []string // "All" followed by continent names
	cursor      int      // Currently selected continent index
	shown       []catalog.Item
	table       table.Model
	help        help.Model
	keys        BrowserKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool
	showSidebar bool
}

// NewBrowserModel creates a new catalog browser.
func NewBrowserModel(items []catalog.Item, width, height int) BrowserModel {
	counts := catalog.Continents(items)
	continents := make([]string, 0, len(counts)+1)
	for name := range counts {
		continents = append(continents, name)
	}
	sort.Strings(continents)
	continents = append([]string{allContinents}, continents...)

	m := BrowserModel{
		items:       items,
		continents:  continents,
		keys:        DefaultBrowserKeyMap(),
		help:        help.New(),
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()
	m.filter()
	return m
}

// createTable creates a new table sized for the current window.
func (m *BrowserModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 16},
		{Title: "Name", Width: 20},
		{Title: "Continent", Width: 14},
		{Title: "Flag", Width: 24},
	}

	tableWidth := m.width - 4
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3
	}
	if extra := tableWidth - 82; extra > 0 {
		columns[1].Width += extra / 2
		columns[3].Width += extra - extra/2
	}

	height := m.height - 8
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Continent returns the continent currently shown.
func (m BrowserModel) Continent() string {
	return m.continents[m.cursor]
}

// Shown returns the items visible under the current filter.
func (m BrowserModel) Shown() []catalog.Item {
	return m.shown
}

// filter narrows the rows to the selected continent.
func (m *BrowserModel) filter() {
	current := m.Continent()
	shown := make([]catalog.Item, 0, len(m.items))
	for _, it := range m.items {
		if current == allContinents || it.Continent == current {
			shown = append(shown, it)
		}
	}
	m.shown = shown

	rows := make([]table.Row, len(m.shown))
	for i, it := range m.shown {
		rows[i] = table.Row{it.ID, it.Name, it.Continent, flagSummary(it.Flag)}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// flagSummary describes flag art in one cell, e.g. "vertical: blue white red".
func flagSummary(art catalog.FlagArt) string {
	if len(art.Colors) == 0 {
		return "-"
	}
	return fmt.Sprintf("%s: %s", art.Layout, strings.Join(art.Colors, " "))
}

// Init initializes the browser model.
func (m BrowserModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the browser.
func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextPage):
			m.cursor = (m.cursor + 1) % len(m.continents)
			m.filter()
			return m, nil

		case key.Matches(msg, m.keys.PrevPage):
			m.cursor--
			if m.cursor < 0 {
				m.cursor = len(m.continents) - 1
			}
			m.filter()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.filter()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the browser.
func (m BrowserModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	title := fmt.Sprintf("CATALOG - %s (%d)", m.Continent(), len(m.shown))
	b.WriteString(centerText(titleStyle.Render(title), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	content := m.table.View()
	if len(m.shown) == 0 {
		content = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4).
			Render("The catalog is empty.")
	}

	if m.showSidebar {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", tableStyle.Render(content)))
	} else {
		b.WriteString(centerText(fmt.Sprintf("< %s >", m.Continent()), m.width))
		b.WriteString("\n\n")
		b.WriteString(tableStyle.Render(content))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderSidebar lists continents with their item counts.
func (m BrowserModel) renderSidebar() string {
	counts := catalog.Continents(m.items)

	var sidebar strings.Builder
	sidebar.WriteString("Continents\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, name := range m.continents {
		n := counts[name]
		if name == allContinents {
			n = len(m.items)
		}

		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}

		label := fmt.Sprintf("%s (%d)", name, n)
		if maxLen := sidebarWidth - 6; len(label) > maxLen {
			label = label[:maxLen-1] + "."
		}
		sidebar.WriteString(style.Render(cursor + label))
		sidebar.WriteString("\n")
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1).
		Render(sidebar.String())
}

// IsGoingBack returns true if user wants to go back to menu.
func (m BrowserModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m BrowserModel) IsQuitting() bool {
	return m.quitting
}

// RunBrowser runs the catalog browser.
// Returns true if user wants to go back to menu, false if quitting.
func RunBrowser(items []catalog.Item, width, height int) (goBack bool, err error) {
	model := NewBrowserModel(items, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(BrowserModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
