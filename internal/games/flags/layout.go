package flags

import "github.com/vovakirdan/flag-quiz/internal/core"

// Layout constants
const (
	hudRow        = 0
	buttonHeight  = 3
	flagTop       = 2
	maxFlagHeight = 12
	minFlagHeight = 3
	waveRows      = 2 // Rows reserved above and below the flag for the wave
)

// layout holds the screen regions of the playing view.
type layout struct {
	flag    core.Rect
	buttons []core.Rect
	help    int // Row of the key help line
}

// computeLayout places the flag and option buttons for a w x h screen.
// Buttons form a grid of two columns, three when there are more than four.
func computeLayout(w, h, options int) layout {
	l := layout{help: h - 1}
	if options <= 0 || w <= 0 || h <= 0 {
		return l
	}

	cols := 2
	if options > 4 {
		cols = 3
	}
	rows := (options + cols - 1) / cols

	gridTop := l.help - rows*buttonHeight
	btnW := (w - 2 - (cols - 1)) / cols
	if btnW < 4 {
		btnW = 4
	}

	l.buttons = make([]core.Rect, options)
	for i := range l.buttons {
		col, row := i%cols, i/cols
		l.buttons[i] = core.NewRect(1+col*(btnW+1), gridTop+row*buttonHeight, btnW, buttonHeight)
	}

	avail := gridTop - 1 - flagTop
	fh := core.Clamp(avail-2*waveRows, minFlagHeight, maxFlagHeight)
	// Terminal cells are about twice as tall as wide; flags are roughly 3:2.
	fw := core.Min(fh*3, w-4)
	fy := flagTop + core.Max(0, (avail-fh)/2)
	l.flag = core.NewRect((w-fw)/2, fy, fw, fh)

	return l
}
