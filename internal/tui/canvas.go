package tui

import (
	"math"
	"strings"
)

// runeCanvas is a fixed-size character grid for the parametric geometry
// pages (ground-track curves, the coverage disc). Out-of-range plots are
// clipped, never an error, so redrawing against any terminal size is safe.
type runeCanvas struct {
	w, h  int
	cells [][]rune
}

func newRuneCanvas(w, h int) *runeCanvas {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	cells := make([][]rune, h)
	for y := range cells {
		row := make([]rune, w)
		for x := range row {
			row[x] = ' '
		}
		cells[y] = row
	}
	return &runeCanvas{w: w, h: h, cells: cells}
}

func (c *runeCanvas) set(x, y int, ch rune) {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return
	}
	c.cells[y][x] = ch
}

// plotCurve draws f over x in [0,1] where f returns a value in [-1,1]
// mapped to the vertical extent (positive up).
func (c *runeCanvas) plotCurve(f func(x float64) float64, ch rune) {
	for px := 0; px < c.w; px++ {
		x := 0.0
		if c.w > 1 {
			x = float64(px) / float64(c.w-1)
		}
		v := f(x)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if v > 1 {
			v = 1
		}
		if v < -1 {
			v = -1
		}
		py := int(math.Round((1 - (v+1)/2) * float64(c.h-1)))
		c.set(px, py, ch)
	}
}

// hLine draws a horizontal rule across row y.
func (c *runeCanvas) hLine(y int, ch rune) {
	for x := 0; x < c.w; x++ {
		c.set(x, y, ch)
	}
}

// disc fills a circle centred at (cx, cy) with radius r in cell units,
// compensating for the roughly 2:1 aspect of terminal cells.
func (c *runeCanvas) disc(cx, cy int, r float64, fill, rim rune) {
	if r <= 0 {
		return
	}
	for y := 0; y < c.h; y++ {
		for x := 0; x < c.w; x++ {
			dx := float64(x-cx) / 2.0
			dy := float64(y - cy)
			d := math.Sqrt(dx*dx + dy*dy)
			switch {
			case d <= r-0.5:
				c.set(x, y, fill)
			case d <= r+0.5:
				c.set(x, y, rim)
			}
		}
	}
}

func (c *runeCanvas) String() string {
	rows := make([]string, c.h)
	for y, row := range c.cells {
		rows[y] = string(row)
	}
	return strings.Join(rows, "\n")
}
