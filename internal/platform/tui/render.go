package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flag-quiz/internal/core"
)

// palette maps core.Color to terminal colors.
var palette = map[core.Color]lipgloss.Color{
	core.ColorRed:           lipgloss.Color("1"),
	core.ColorGreen:         lipgloss.Color("2"),
	core.ColorYellow:        lipgloss.Color("3"),
	core.ColorBlue:          lipgloss.Color("4"),
	core.ColorMagenta:       lipgloss.Color("5"),
	core.ColorCyan:          lipgloss.Color("6"),
	core.ColorWhite:         lipgloss.Color("7"),
	core.ColorBrightRed:     lipgloss.Color("9"),
	core.ColorBrightGreen:   lipgloss.Color("10"),
	core.ColorBrightYellow:  lipgloss.Color("11"),
	core.ColorBrightBlue:    lipgloss.Color("12"),
	core.ColorBrightMagenta: lipgloss.Color("13"),
	core.ColorBrightCyan:    lipgloss.Color("14"),
	core.ColorBrightWhite:   lipgloss.Color("15"),
	core.ColorOrange:        lipgloss.Color("208"),
	core.ColorGray:          lipgloss.Color("245"),
	core.ColorBlack:         lipgloss.Color("0"),
}

// styleKey identifies a run of identically styled cells.
type styleKey struct {
	color core.Color
	fill  bool
}

// styleFor returns the lipgloss style for a cell. Filled cells paint their
// color as background.
func styleFor(k styleKey) lipgloss.Style {
	style := lipgloss.NewStyle()
	c, ok := palette[k.color]
	if !ok {
		return style
	}
	if k.fill {
		return style.Background(c)
	}
	return style.Foreground(c)
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			start := styleKey{cell.Color, cell.Fill}

			// Collect consecutive cells with the same style
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (styleKey{cell.Color, cell.Fill}) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(start).Render(run.String()))
		}
	}
	return sb.String()
}
