package core

import (
	"math"
	"unicode/utf8"
)

// Runes used by the canvas when rasterizing shapes.
const (
	FillRune = '█'
	DotRune  = '●'
	LineRune = '│'
)

// Canvas maps a continuous playfield (origin top-left, arbitrary units) onto
// an area of screen cells. Shapes are rasterized to the cells they cover;
// anything outside the area is clipped.
type Canvas struct {
	screen *Screen
	area   Rect
	fieldW float64
	fieldH float64
	color  Color
}

// NewCanvas creates a canvas drawing a fieldW x fieldH playfield into area.
func NewCanvas(dst *Screen, area Rect, fieldW, fieldH float64) *Canvas {
	return &Canvas{
		screen: dst,
		area:   area,
		fieldW: fieldW,
		fieldH: fieldH,
		color:  ColorDefault,
	}
}

// Area returns the screen area the playfield is drawn into.
func (c *Canvas) Area() Rect {
	return c.area
}

// SetArea moves the playfield to a new screen area, e.g. after a resize.
func (c *Canvas) SetArea(area Rect) {
	c.area = area
}

// SetColor sets the color used by subsequent drawing calls.
func (c *Canvas) SetColor(color Color) {
	c.color = color
}

// Clear blanks the playfield area.
func (c *Canvas) Clear() {
	c.screen.ClearRect(c.area)
}

func (c *Canvas) scaleX() float64 { return float64(c.area.W) / c.fieldW }
func (c *Canvas) scaleY() float64 { return float64(c.area.H) / c.fieldH }

// col returns the column containing field coordinate x.
func (c *Canvas) col(x float64) int {
	return c.area.X + int(math.Floor(x*c.scaleX()))
}

// row returns the row containing field coordinate y.
func (c *Canvas) row(y float64) int {
	return c.area.Y + int(math.Floor(y*c.scaleY()))
}

// lastCol returns the last column touched by a span ending at x.
func (c *Canvas) lastCol(x float64) int {
	return c.area.X + int(math.Ceil(x*c.scaleX())) - 1
}

// lastRow returns the last row touched by a span ending at y.
func (c *Canvas) lastRow(y float64) int {
	return c.area.Y + int(math.Ceil(y*c.scaleY())) - 1
}

// ToField returns the playfield coordinates of the center of a screen cell.
// Cells outside the area map to coordinates outside the field.
func (c *Canvas) ToField(col, row int) (x, y float64) {
	if c.area.Empty() {
		return math.NaN(), math.NaN()
	}
	x = (float64(col-c.area.X) + 0.5) / c.scaleX()
	y = (float64(row-c.area.Y) + 0.5) / c.scaleY()
	return x, y
}

// set paints a single cell, clipped to the area.
func (c *Canvas) set(col, row int, r rune) {
	if !c.area.Contains(col, row) {
		return
	}
	c.screen.SetCell(col, row, Cell{Rune: r, Color: c.color})
}

// FillRect fills every cell the rectangle touches, at least one cell.
func (c *Canvas) FillRect(x, y, w, h float64) {
	if c.area.Empty() {
		return
	}
	c0, r0 := c.col(x), c.row(y)
	c1, r1 := max(c0, c.lastCol(x+w)), max(r0, c.lastRow(y+h))
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			c.set(col, row, FillRune)
		}
	}
}

// FillCircle fills the cells whose centers lie inside the circle. A circle
// smaller than a cell still paints the cell containing its center.
func (c *Canvas) FillCircle(cx, cy, r float64) {
	if c.area.Empty() {
		return
	}
	painted := 0
	for row := c.row(cy - r); row <= c.row(cy+r); row++ {
		for col := c.col(cx - r); col <= c.col(cx+r); col++ {
			fx, fy := c.ToField(col, row)
			if (fx-cx)*(fx-cx)+(fy-cy)*(fy-cy) <= r*r {
				c.set(col, row, FillRune)
				painted++
			}
		}
	}
	if painted == 0 {
		c.set(c.col(cx), c.row(cy), DotRune)
	}
}

// DashedVLine draws a vertical line at x from y0 to y1, alternating dash-long
// drawn and blank segments starting with a drawn one. A non-positive dash
// draws a solid line.
func (c *Canvas) DashedVLine(x, y0, y1, dash float64) {
	if c.area.Empty() {
		return
	}
	col := c.col(x)
	for row := c.row(y0); row <= c.lastRow(y1); row++ {
		_, fy := c.ToField(col, row)
		if dash > 0 && int(math.Floor((fy-y0)/dash))%2 != 0 {
			continue
		}
		c.set(col, row, LineRune)
	}
}

// Text draws s horizontally centered on the cell containing (x, y).
func (c *Canvas) Text(x, y float64, s string) {
	if c.area.Empty() {
		return
	}
	col := c.col(x) - utf8.RuneCountInString(s)/2
	row := c.row(y)
	i := 0
	for _, r := range s {
		c.set(col+i, row, r)
		i++
	}
}
