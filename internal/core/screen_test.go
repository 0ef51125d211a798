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
	want := strings.Repeat(" ", 12)
	for y := 0; y < 4; y++ {
		if got := s.Row(y); got != want {
			t.Errorf("Row(%d) = %q, want blank", y, got)
		}
	}
}

func TestScreenClipsOutOfBounds(t *testing.T) {
	s := NewScreen(6, 2)
	s.Set(-1, 0, 'X')
	s.Set(6, 0, 'X')
	s.Set(0, 2, 'X')
	s.DrawTextColor(4, 1, "duck", ColorYellow)

	if got := s.String(); got != "      \n    du" {
		t.Errorf("String() = %q", got)
	}
	if s.Get(-3, 9) != ' ' || s.GetCell(99, 0).Color != ColorDefault {
		t.Error("out of bounds reads should return a blank default cell")
	}
}

func TestScreenDrawTextCenteredColor(t *testing.T) {
	s := NewScreen(11, 3)
	s.DrawTextCenteredColor(1, "GO!", ColorBrightYellow)

	if got := s.Row(1); got != "    GO!    " {
		t.Errorf("Row(1) = %q", got)
	}
	if c := s.GetCell(4, 1); c.Rune != 'G' || c.Color != ColorBrightYellow {
		t.Errorf("GetCell(4, 1) = %+v", c)
	}

	// Multi-byte runes count once.
	s.DrawTextCenteredColor(2, "♥♥♥", ColorRed)
	if s.Get(4, 2) != '♥' || s.Get(6, 2) != '♥' {
		t.Errorf("Row(2) = %q", s.Row(2))
	}
}

func TestScreenRectsAndLines(t *testing.T) {
	s := NewScreen(8, 5)
	s.DrawRectColor(NewRect(1, 1, 3, 2), '#', ColorGray)
	s.DrawHLineColor(0, 4, 8, '█', ColorGreen)

	want := []string{
		"        ",
		" ###    ",
		" ###    ",
		"        ",
		"████████",
	}
	for y, w := range want {
		if got := s.Row(y); got != w {
			t.Errorf("Row(%d) = %q, want %q", y, got, w)
		}
	}
	if s.GetCell(7, 4).Color != ColorGreen {
		t.Error("line should keep its color")
	}

	s.Fill('.')
	s.DrawRect(NewRect(6, 3, 5, 5), '@') // clipped at the corner
	if s.Row(3) != "......@@" || s.Row(4) != "......@@" {
		t.Errorf("clipped rect rows = %q, %q", s.Row(3), s.Row(4))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(7, 4)
	s.DrawBox(NewRect(1, 0, 5, 4))

	want := []string{
		" ┌───┐ ",
		" │   │ ",
		" │   │ ",
		" └───┘ ",
	}
	for y, w := range want {
		if got := s.Row(y); got != w {
			t.Errorf("Row(%d) = %q, want %q", y, got, w)
		}
	}
}

func TestScreenResizeKeepsOverlap(t *testing.T) {
	s := NewScreen(5, 2)
	s.DrawTextColor(0, 0, "quack", ColorWhite)
	s.DrawTextColor(0, 1, "bread", ColorWhite)

	s.Resize(3, 3)
	if s.Row(0) != "qua" || s.Row(1) != "bre" || s.Row(2) != "   " {
		t.Errorf("after shrink: %q", s.String())
	}

	s.Resize(3, 3) // no-op
	if s.Row(0) != "qua" {
		t.Error("same-size resize should keep content")
	}
	if s.Row(-1) != "   " {
		t.Error("Row out of range should be blank")
	}
}

func TestScreenBackground(t *testing.T) {
	s := NewScreen(10, 3)
	if _, ok := s.Background(); ok {
		t.Error("new screen should have no background")
	}
	s.SetBackground(RGB{135, 206, 235})
	bg, ok := s.Background()
	if !ok || bg.Hex() != "#87ceeb" {
		t.Errorf("Background() = %v, %v", bg, ok)
	}

	s.Clear()
	if _, ok := s.Background(); ok {
		t.Error("Clear should drop the background")
	}
}

func TestNearestColor(t *testing.T) {
	tests := []struct {
		rgb  RGB
		want Color
	}{
		{RGB{34, 139, 34}, ColorGreen},
		{RGB{255, 255, 255}, ColorBrightWhite},
		{RGB{250, 130, 10}, ColorOrange},
	}
	for _, tt := range tests {
		if got := NearestColor(tt.rgb); got != tt.want {
			t.Errorf("NearestColor(%v) = %d, want %d", tt.rgb, got, tt.want)
		}
	}
}
