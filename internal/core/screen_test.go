package core

import (
	"strings"
	"testing"
)

// rows returns the screen as a slice of row strings.
func rows(s *Screen) []string {
	return strings.Split(s.String(), "\n")
}

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(12, 4)
	if s.Width() != 12 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, expected 12x4", s.Width(), s.Height())
	}
	for y, row := range rows(s) {
		if row != strings.Repeat(" ", 12) {
			t.Errorf("row %d = %q, expected blanks", y, row)
		}
	}
}

func TestScreenOutOfBoundsIsIgnored(t *testing.T) {
	s := NewScreen(4, 2)
	for _, p := range []struct{ X, Y int }{{-1, 0}, {4, 0}, {0, -1}, {0, 2}} {
		s.Set(p.X, p.Y, '#')
		if got := s.Get(p.X, p.Y); got != ' ' {
			t.Errorf("Get(%d, %d) = %q, expected blank outside the screen", p.X, p.Y, got)
		}
	}
	if got := s.String(); got != "    \n    " {
		t.Errorf("out-of-bounds writes leaked into the buffer: %q", got)
	}
}

func TestScreenDrawing(t *testing.T) {
	tests := []struct {
		name string
		draw func(s *Screen)
		want []string
	}{
		{
			name: "text clipped at right edge",
			draw: func(s *Screen) { s.DrawText(5, 0, "Score") },
			want: []string{"     Sco", "        ", "        "},
		},
		{
			name: "filled rect",
			draw: func(s *Screen) { s.DrawRect(NewRect(1, 1, 3, 2), '░', ColorCloud) },
			want: []string{"        ", " ░░░    ", " ░░░    "},
		},
		{
			name: "rect partly off screen",
			draw: func(s *Screen) { s.DrawRect(NewRect(-2, 2, 4, 3), '═', ColorEnemy) },
			want: []string{"        ", "        ", "══      "},
		},
		{
			name: "horizontal line",
			draw: func(s *Screen) { s.DrawHLine(2, 2, 4, '─', ColorHUD) },
			want: []string{"        ", "        ", "  ────  "},
		},
		{
			name: "box outline",
			draw: func(s *Screen) { s.DrawBox(NewRect(0, 0, 4, 3), ColorHitBox) },
			want: []string{"┌──┐    ", "│  │    ", "└──┘    "},
		},
		{
			name: "single cell box",
			draw: func(s *Screen) { s.DrawBox(NewRect(7, 2, 1, 1), ColorHitBox) },
			want: []string{"        ", "        ", "       □"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(8, 3)
			tc.draw(s)
			got := rows(s)
			for y := range tc.want {
				if got[y] != tc.want[y] {
					t.Errorf("row %d = %q, expected %q", y, got[y], tc.want[y])
				}
			}
		})
	}
}

func TestScreenClearResetsRunesAndColors(t *testing.T) {
	s := NewScreen(3, 3)
	s.DrawRect(NewRect(0, 0, 3, 3), '█', ColorPlayer)
	s.Clear()
	for y := range 3 {
		for x := range 3 {
			if c := s.GetCell(x, y); c != blank {
				t.Fatalf("cell (%d, %d) = %+v after Clear", x, y, c)
			}
		}
	}
}

func TestScreenColoredCells(t *testing.T) {
	s := NewScreen(6, 3)
	s.SetColored(1, 1, '◄', ColorEnemy)
	s.DrawTextColored(0, 2, "ab", ColorHUD)

	if c := s.GetCell(1, 1); c.Rune != '◄' || c.Color != ColorEnemy {
		t.Errorf("GetCell(1, 1) = %+v, expected nose in enemy color", c)
	}
	if c := s.GetCell(1, 2); c.Rune != 'b' || c.Color != ColorHUD {
		t.Errorf("GetCell(1, 2) = %+v, expected 'b' in HUD color", c)
	}
	if c := s.GetCell(9, 9); c != blank {
		t.Errorf("out-of-bounds GetCell = %+v, expected blank", c)
	}
}

func TestScreenResizeKeepsTopLeft(t *testing.T) {
	s := NewScreen(10, 6)
	s.DrawText(0, 0, "Hello")
	s.DrawText(0, 5, "World")

	s.Resize(4, 3)
	if s.Width() != 4 || s.Height() != 3 {
		t.Fatalf("size after shrink = %dx%d, expected 4x3", s.Width(), s.Height())
	}
	if got := s.Row(0); got != "Hell" {
		t.Errorf("row 0 after shrink = %q", got)
	}

	s.Resize(12, 8)
	if got := s.Row(0); got != "Hell        " {
		t.Errorf("row 0 after grow = %q", got)
	}
	if got := s.Row(5); got != strings.Repeat(" ", 12) {
		t.Errorf("rows cut by the shrink should come back blank, got %q", got)
	}
}

func TestScreenRowOutOfBounds(t *testing.T) {
	s := NewScreen(5, 2)
	if got := s.Row(-1); got != "     " {
		t.Errorf("Row(-1) = %q, expected blanks", got)
	}
	if got := s.Row(2); got != "     " {
		t.Errorf("Row(2) = %q, expected blanks", got)
	}
}
