package flags

import (
	"fmt"
	"math"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/vovakirdan/flag-quiz/internal/catalog"
	"github.com/vovakirdan/flag-quiz/internal/core"
	"github.com/vovakirdan/flag-quiz/internal/quiz"
)

const scoreMessage = "You scored %d of %d points"

func init() {
	//nolint:errcheck // Static message, falls back to the key if it fails
	message.Set(language.English, scoreMessage,
		plural.Selectf(2, "%d",
			plural.One, "You scored %[1]d of %[2]d point",
			plural.Other, "You scored %[1]d of %[2]d points",
		))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.width, g.height = dst.Width(), dst.Height()
	if g.engine == nil {
		return
	}

	snap := g.engine.Snapshot()
	switch snap.Mode {
	case quiz.ModeSplash:
		g.drawSplash(dst, snap)
	case quiz.ModeGameOver, quiz.ModeQuit:
		g.drawEndScreen(dst, snap)
	default:
		g.drawPlaying(dst, snap)
		if snap.Mode == quiz.ModeExitConfirm {
			drawMessageBox(dst, core.ColorBrightWhite,
				"Do you want to quit?",
				"",
				"Space - quit",
				"Esc - back to the game",
			)
		}
	}
}

func (g *Game) drawPlaying(dst *core.Screen, snap quiz.Snapshot) {
	w := dst.Width()
	l := computeLayout(w, dst.Height(), len(snap.Options))

	// HUD
	dst.DrawTextColor(1, hudRow, fmt.Sprintf("Score: %d", snap.Score), core.ColorBrightWhite)
	dst.DrawTextCenteredColor(hudRow, categoryLabel(snap), core.ColorBrightCyan)
	if snap.Rounds > 0 {
		round := fmt.Sprintf("Flag %d/%d", snap.Round, snap.Rounds)
		dst.DrawTextColor(w-1-core.RuneLen(round), hudRow, round, core.ColorGray)
	}

	if snap.Current.ID != "" {
		drawFlag(dst, l.flag, snap.Current.Flag, snap.Time)
	}

	for i, opt := range snap.Options {
		drawButton(dst, l.buttons[i], i, opt)
	}

	help := fmt.Sprintf("1-%d choose  ·  esc quit", len(snap.Options))
	dst.DrawTextCenteredColor(l.help, help, core.ColorGray)
}

// categoryLabel describes the session's category for the HUD.
func categoryLabel(snap quiz.Snapshot) string {
	switch snap.Kind {
	case "Continent":
		return "Countries: " + snap.Category
	case "Letter":
		return "Letter: " + snap.Category
	default:
		return "All countries"
	}
}

func drawButton(dst *core.Screen, r core.Rect, index int, opt quiz.Option) {
	boxColor, textColor := core.ColorWhite, core.ColorBrightWhite
	mark := ""
	switch {
	case opt.Highlighted:
		boxColor, textColor = core.ColorBrightGreen, core.ColorBrightGreen
		mark = " ✓"
	case opt.Disabled:
		boxColor, textColor = core.ColorGray, core.ColorGray
		mark = " ✗"
	}

	dst.DrawBox(r, boxColor)

	label := fitLabel(fmt.Sprintf("%d. %s%s", index+1, opt.Name, mark), r.W-4)
	x := r.X + (r.W-core.RuneLen(label))/2
	dst.DrawTextColor(x, r.Y+r.H/2, label, textColor)
}

// fitLabel shortens text to width runes, marking the cut with an ellipsis.
func fitLabel(text string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}

// waveOffset returns the vertical displacement in pixels of flag column px
// at animation time t. amp grows from 0 at the pole to 1 at the free edge.
func waveOffset(px, t, amp float64) float64 {
	return math.Sin(px/30-t*3)*8*amp +
		math.Sin(px/20-t*4)*4*amp +
		math.Sin(px/15-t*2)*2*amp +
		math.Sin(-t*2)*1.5*amp
}

// Flag geometry in the pixel space the wave formula was tuned for.
const (
	flagPixelWidth = 300
	pixelsPerRow   = 8
)

// drawFlag paints the flag's stripes into r, shifting each column by the wave.
func drawFlag(dst *core.Screen, r core.Rect, art catalog.FlagArt, t float64) {
	if r.W <= 0 || r.H <= 0 {
		return
	}

	colors := make([]core.Color, 0, len(art.Colors))
	for _, name := range art.Colors {
		c, ok := core.ParseColor(name)
		if !ok {
			c = core.ColorGray
		}
		colors = append(colors, c)
	}

	for col := 0; col < r.W; col++ {
		px := float64(col * flagPixelWidth / r.W)
		amp := float64(col) / float64(r.W)
		shift := int(math.Round(waveOffset(px, t, amp) / pixelsPerRow))

		for row := 0; row < r.H; row++ {
			dst.SetBlock(r.X+col, r.Y+row+shift, stripeColor(colors, art.Layout, col, row, r.W, r.H))
		}
	}
}

// stripeColor picks the colour of a flag cell. Flags without art get a
// neutral checker pattern.
func stripeColor(colors []core.Color, layout string, col, row, w, h int) core.Color {
	if len(colors) == 0 {
		if (col/3+row)%2 == 0 {
			return core.ColorGray
		}
		return core.ColorWhite
	}
	if layout == catalog.LayoutHorizontal {
		return colors[row*len(colors)/h]
	}
	return colors[col*len(colors)/w]
}

func (g *Game) drawSplash(dst *core.Screen, snap quiz.Snapshot) {
	h := dst.Height()
	mid := h / 2
	dst.DrawTextCenteredColor(mid-4, "Q U I Z", core.ColorBrightCyan)
	dst.DrawTextCenteredColor(mid-2, "F L A G S", core.ColorBrightYellow)
	dst.DrawTextCenteredColor(mid, "Name the country behind every flag", core.ColorBrightWhite)

	remaining := g.engine.Rules().SplashMillis - snap.Clock
	if remaining < 0 {
		remaining = 0
	}
	secs := (remaining + 999) / 1000
	dst.DrawTextCenteredColor(mid+2, fmt.Sprintf("Starting in %d…", secs), core.ColorGray)

	// A strip of the first flag waving under the title.
	if snap.Current.ID != "" && h >= 12 {
		fw := core.Min(30, dst.Width()-4)
		strip := core.NewRect((dst.Width()-fw)/2, mid+5, fw, core.Min(4, h-mid-7))
		drawFlag(dst, strip, snap.Current.Flag, snap.Time)
	}
}

func (g *Game) drawEndScreen(dst *core.Screen, snap quiz.Snapshot) {
	mid := dst.Height() / 2

	dst.DrawTextCenteredColor(mid-3, "GAME OVER", core.ColorBrightRed)
	dst.DrawTextCenteredColor(mid-1, ScoreLine(snap.Score, snap.MaxScore), core.ColorBrightWhite)
	if snap.Category != "" {
		dst.DrawTextCenteredColor(mid+1, categoryLabel(snap), core.ColorBrightCyan)
	}
	dst.DrawTextCenteredColor(mid+4, "Space - new game, Esc - quit", core.ColorGray)
}

// ScoreLine formats the final score with the right plural form.
func ScoreLine(score, max int) string {
	return message.NewPrinter(language.English).Sprintf(scoreMessage, score, max)
}

// drawMessageBox draws a bordered box with centered lines in the middle of
// the screen, clearing what is underneath.
func drawMessageBox(dst *core.Screen, c core.Color, lines ...string) {
	width := 0
	for _, line := range lines {
		width = core.Max(width, core.RuneLen(line))
	}

	boxW := width + 6
	boxH := len(lines) + 4
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, c)

	for i, line := range lines {
		x := box.X + (boxW-core.RuneLen(line))/2
		dst.DrawTextColor(x, box.Y+2+i, line, c)
	}
}
