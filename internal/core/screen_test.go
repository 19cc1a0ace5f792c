package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(12, 4)

	if s.Width() != 12 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, want 12x4", s.Width(), s.Height())
	}
	want := strings.Repeat(strings.Repeat(" ", 12)+"\n", 3) + strings.Repeat(" ", 12)
	if got := s.String(); got != want {
		t.Errorf("new screen = %q, want blanks", got)
	}
}

func TestScreenBounds(t *testing.T) {
	s := NewScreen(5, 3)

	tests := []struct {
		name string
		x, y int
	}{
		{"left", -1, 0},
		{"top", 0, -1},
		{"right", 5, 0},
		{"bottom", 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.Set(tt.x, tt.y, 'X')
			s.SetColor(tt.x, tt.y, 'X', ColorRed)
			s.SetBlock(tt.x, tt.y, ColorRed)
			if c := s.GetCell(tt.x, tt.y); c.Rune != ' ' || c.Fill {
				t.Errorf("GetCell(%d, %d) = %+v, want blank", tt.x, tt.y, c)
			}
		})
	}

	if strings.ContainsRune(s.String(), 'X') {
		t.Error("out-of-bounds writes reached the buffer")
	}
}

func TestScreenCells(t *testing.T) {
	s := NewScreen(10, 3)
	s.Set(0, 0, 'a')
	s.DrawTextColor(1, 1, "Hi", ColorYellow)
	s.SetBlock(5, 1, ColorRed)

	tests := []struct {
		x, y int
		want Cell
	}{
		{0, 0, Cell{Rune: 'a'}},
		{1, 1, Cell{Rune: 'H', Color: ColorYellow}},
		{2, 1, Cell{Rune: 'i', Color: ColorYellow}},
		{5, 1, Cell{Rune: ' ', Color: ColorRed, Fill: true}},
		{9, 2, Cell{Rune: ' '}},
	}

	for _, tt := range tests {
		if got := s.GetCell(tt.x, tt.y); got != tt.want {
			t.Errorf("GetCell(%d, %d) = %+v, want %+v", tt.x, tt.y, got, tt.want)
		}
	}

	s.Clear()
	if c := s.GetCell(5, 1); c.Fill || c.Color != ColorDefault {
		t.Errorf("Clear left %+v", c)
	}
}

func TestScreenTextClipping(t *testing.T) {
	s := NewScreen(6, 1)
	s.DrawText(3, 0, "Chile")
	s.DrawText(-2, 0, "Peru")

	if got := s.String(); got != "ru Chi" {
		t.Errorf("clipped text = %q, want %q", got, "ru Chi")
	}
}

func TestDrawTextCenteredColor(t *testing.T) {
	tests := []struct {
		name  string
		width int
		text  string
		start int
	}{
		{"ascii", 20, "Hi", 9},
		{"multibyte", 11, "Чад", 4},
		{"wider than screen", 4, "Brazil", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScreen(tt.width, 1)
			s.DrawTextCenteredColor(0, tt.text, ColorCyan)

			runes := []rune(tt.text)
			for i, r := range runes {
				x := tt.start + i
				if x < 0 || x >= tt.width {
					continue
				}
				if c := s.GetCell(x, 0); c.Rune != r || c.Color != ColorCyan {
					t.Errorf("cell %d = %+v, want cyan %q", x, c, r)
				}
			}
		})
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawRect(NewRect(1, 1, 3, 2), '#')

	want := "      \n ###  \n ###  \n      "
	if got := s.String(); got != want {
		t.Errorf("DrawRect:\n%s\nwant:\n%s", got, want)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(NewRect(0, 0, 5, 4), ColorGreen)

	want := "┌───┐ \n│   │ \n│   │ \n└───┘ "
	if got := s.String(); got != want {
		t.Errorf("DrawBox:\n%s\nwant:\n%s", got, want)
	}
	if c := s.GetCell(4, 3); c.Color != ColorGreen {
		t.Errorf("corner color = %v, want green", c.Color)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 0, "Togo")
	s.SetBlock(3, 1, ColorBlue)

	s.Resize(6, 3)
	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, want 6x3", s.Width(), s.Height())
	}
	if got := strings.Split(s.String(), "\n")[0]; got != "Togo  " {
		t.Errorf("row 0 after grow = %q", got)
	}
	if !s.GetCell(3, 1).Fill {
		t.Error("block lost after grow")
	}

	s.Resize(2, 1)
	if got := s.String(); got != "To" {
		t.Errorf("after shrink = %q, want %q", got, "To")
	}
}

func TestRuneLen(t *testing.T) {
	if n := RuneLen("Côte d'Ivoire"); n != 13 {
		t.Errorf("RuneLen = %d, want 13", n)
	}
}
