package core

import (
	"math"
	"testing"
)

// newTestCanvas maps an 800x400 field onto an 80x20 screen: 10 units per
// column, 20 units per row.
func newTestCanvas() (*Screen, *Canvas) {
	s := NewScreen(80, 20)
	return s, NewCanvas(s, s.Bounds(), 800, 400)
}

func TestCanvasFillRect(t *testing.T) {
	s, c := newTestCanvas()
	c.FillRect(20, 150, 15, 100)

	tests := []struct {
		name     string
		x, y     int
		expected rune
	}{
		{"top-left", 2, 7, FillRune},
		{"bottom-right", 3, 12, FillRune},
		{"left of rect", 1, 7, ' '},
		{"right of rect", 4, 7, ' '},
		{"above rect", 2, 6, ' '},
		{"below rect", 2, 13, ' '},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := s.Get(tc.x, tc.y); got != tc.expected {
				t.Errorf("Get(%d, %d) = %q, expected %q", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestCanvasFillRectMinimumCell(t *testing.T) {
	s, c := newTestCanvas()
	c.FillRect(0, 0, 1, 1)

	if s.Get(0, 0) != FillRune {
		t.Errorf("tiny rect should paint one cell, got %q", s.Get(0, 0))
	}
	if s.Get(1, 0) != ' ' || s.Get(0, 1) != ' ' {
		t.Error("tiny rect should paint exactly one cell")
	}
}

func TestCanvasFillCircle(t *testing.T) {
	s, c := newTestCanvas()
	c.FillCircle(400, 200, 12)

	for _, p := range [][2]int{{39, 9}, {40, 9}, {39, 10}, {40, 10}} {
		if s.Get(p[0], p[1]) != FillRune {
			t.Errorf("expected circle cell at (%d, %d), got %q", p[0], p[1], s.Get(p[0], p[1]))
		}
	}
	for _, p := range [][2]int{{38, 9}, {41, 10}, {39, 8}, {40, 11}} {
		if s.Get(p[0], p[1]) != ' ' {
			t.Errorf("expected blank at (%d, %d), got %q", p[0], p[1], s.Get(p[0], p[1]))
		}
	}
}

func TestCanvasFillCircleSmallerThanCell(t *testing.T) {
	s, c := newTestCanvas()
	c.FillCircle(403, 203, 1)

	if s.Get(40, 10) != DotRune {
		t.Errorf("sub-cell circle should paint its center cell with %q, got %q", DotRune, s.Get(40, 10))
	}
}

func TestCanvasDashedVLine(t *testing.T) {
	s, c := newTestCanvas()
	c.DashedVLine(400, 0, 400, 12)

	// Row centers sit at y = 10, 30, 50, 70...; dashes cover [0,12), [24,36), [48,60)...
	if s.Get(40, 0) != LineRune {
		t.Errorf("row 0 should be drawn, got %q", s.Get(40, 0))
	}
	if s.Get(40, 2) != LineRune {
		t.Errorf("row 2 should be drawn, got %q", s.Get(40, 2))
	}
	if s.Get(40, 3) != ' ' {
		t.Errorf("row 3 should be a gap, got %q", s.Get(40, 3))
	}

	s.Clear()
	c.DashedVLine(400, 0, 400, 0)
	for y := 0; y < s.Height(); y++ {
		if s.Get(40, y) != LineRune {
			t.Errorf("solid line missing at row %d", y)
		}
	}
}

func TestCanvasText(t *testing.T) {
	s, c := newTestCanvas()
	c.SetColor(ColorForeground)
	c.Text(340, 50, "12")

	if s.Get(33, 2) != '1' || s.Get(34, 2) != '2' {
		t.Errorf("text not centered, row 2 = %q", s.Row(2))
	}
	if s.GetCell(33, 2).Color != ColorForeground {
		t.Error("text should use the current color")
	}
}

func TestCanvasClipsToArea(t *testing.T) {
	s := NewScreen(80, 20)
	s.Set(0, 19, 'Z')
	c := NewCanvas(s, NewRect(0, 0, 80, 19), 800, 400)

	c.FillRect(0, 380, 10, 100)
	if s.Get(0, 19) != 'Z' {
		t.Errorf("drawing leaked outside the area, got %q", s.Get(0, 19))
	}

	c.Clear()
	if s.Get(0, 19) != 'Z' {
		t.Error("Clear should only blank the area")
	}
}

func TestCanvasToField(t *testing.T) {
	_, c := newTestCanvas()

	x, y := c.ToField(40, 10)
	if x != 405 || y != 210 {
		t.Errorf("ToField(40, 10) = (%v, %v), expected (405, 210)", x, y)
	}

	c.SetArea(NewRect(0, 0, 0, 0))
	x, y = c.ToField(1, 1)
	if !math.IsNaN(x) || !math.IsNaN(y) {
		t.Errorf("ToField on empty area = (%v, %v), expected NaN", x, y)
	}
}
