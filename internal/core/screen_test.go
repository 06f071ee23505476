package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("NewScreen(80, 24) = %dx%d", s.Width(), s.Height())
	}
	for y := range s.Height() {
		if row := s.Row(y); strings.TrimSpace(row) != "" {
			t.Fatalf("row %d of a new screen = %q, expected blanks", y, row)
		}
	}
	if c := s.GetCell(0, 0); c.Color != ColorDefault {
		t.Errorf("new cell colour = %v, expected ColorDefault", c.Color)
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(4, 7, '×', ColorHit)
	if c := s.GetCell(4, 7); c.Rune != '×' || c.Color != ColorHit {
		t.Errorf("GetCell(4, 7) = %+v, expected '×' in ColorHit", c)
	}

	tests := []struct {
		name string
		x, y int
	}{
		{"left of screen", -1, 0},
		{"right of screen", 10, 0},
		{"above screen", 0, -1},
		{"below screen", 0, 10},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s.Set(tc.x, tc.y, 'o') // must not panic
			if got := s.Get(tc.x, tc.y); got != ' ' {
				t.Errorf("Get(%d, %d) = %q, expected space", tc.x, tc.y, got)
			}
		})
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(12, 3)
	s.DrawTextColored(0, 1, "■■■■■", ColorShip)

	s.Clear()

	if row := s.Row(1); strings.TrimSpace(row) != "" {
		t.Errorf("row 1 after Clear = %q", row)
	}
	if s.GetCell(0, 1).Color != ColorDefault {
		t.Error("Clear should reset colours")
	}
}

// A board row: row label, then one glyph every three columns.
func TestScreenBoardRow(t *testing.T) {
	s := NewScreen(40, 2)
	s.DrawTextColored(0, 0, " 1", ColorLabel)
	glyphs := []struct {
		r rune
		c Color
	}{
		{'■', ColorShip}, {'×', ColorHit}, {'o', ColorMiss}, {'·', ColorWater},
	}
	for i, g := range glyphs {
		s.SetColored(4+i*3, 0, g.r, g.c)
	}

	if got, want := strings.TrimRight(s.Row(0), " "), " 1  ■  ×  o  ·"; got != want {
		t.Errorf("Row(0) = %q, expected %q", got, want)
	}
	for i, g := range glyphs {
		if c := s.GetCell(4+i*3, 0); c.Rune != g.r || c.Color != g.c {
			t.Errorf("cell %d = %+v, expected %q in colour %v", i, c, g.r, g.c)
		}
	}
	if s.GetCell(0, 0).Color != ColorLabel || s.GetCell(5, 0).Color != ColorDefault {
		t.Error("label and gap colours are wrong")
	}
}

func TestScreenDrawTextClipped(t *testing.T) {
	s := NewScreen(20, 1)
	s.DrawText(14, 0, "Carrier(5)")

	if got := s.Row(0)[14:]; got != "Carri" {
		t.Errorf("clipped text = %q, expected %q", got, "Carri")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawTextCentered(1, "DEFEAT", ColorHit)

	x := (20 - len("DEFEAT")) / 2
	if got := s.Row(1)[x : x+6]; got != "DEFEAT" {
		t.Errorf("centered text = %q at %d", got, x)
	}
	if s.GetCell(x, 1).Color != ColorHit {
		t.Error("centered text should keep its colour")
	}
	// Rune count, not byte count, decides the position.
	s.DrawTextCentered(2, "×·×", ColorHit)
	if s.Get((20-3)/2, 2) != '×' {
		t.Errorf("multi-byte text is off centre: %q", s.Row(2))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 6)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorLabel)

	want := []string{
		"          ",
		" ┌───┐    ",
		" │   │    ",
		" │   │    ",
		" └───┘    ",
		"          ",
	}
	for y, line := range want {
		if got := s.Row(y); got != line {
			t.Errorf("Row(%d) = %q, expected %q", y, got, line)
		}
	}
	if s.GetCell(1, 1).Color != ColorLabel {
		t.Error("box should use the given colour")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 3)
	s.DrawText(0, 0, "ABC")
	s.DrawText(0, 1, " 1·")
	s.DrawText(0, 2, " 2×")

	if got, want := s.String(), "ABC\n 1·\n 2×"; got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawTextColored(0, 0, "Opponent", ColorTitle)

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Fatalf("after resize, dimensions = %dx%d, expected 8x4", s.Width(), s.Height())
	}
	if s.Row(0) != "Opponent" {
		t.Errorf("content should be preserved, row 0 = %q", s.Row(0))
	}

	s.Resize(15, 8)
	if !strings.HasPrefix(s.Row(0), "Opponent") || s.GetCell(0, 0).Color != ColorTitle {
		t.Errorf("content and colour should survive enlarging, row 0 = %q", s.Row(0))
	}
	if s.Row(-1) != strings.Repeat(" ", 15) {
		t.Error("out of bounds row should be blank")
	}
}
