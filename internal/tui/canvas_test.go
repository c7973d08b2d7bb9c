package tui

import (
	"math"
	"strings"
	"testing"
)

func TestRuneCanvas_OutOfRangeSetClipped(t *testing.T) {
	t.Parallel()

	c := newRuneCanvas(4, 3)
	c.set(-1, 0, 'x')
	c.set(0, -1, 'x')
	c.set(4, 0, 'x')
	c.set(0, 3, 'x')

	if strings.ContainsRune(c.String(), 'x') {
		t.Error("out-of-range set leaked onto the canvas")
	}
}

func TestRuneCanvas_PlotCurveCoversAllColumns(t *testing.T) {
	t.Parallel()

	c := newRuneCanvas(20, 7)
	c.plotCurve(func(x float64) float64 { return math.Sin(2 * math.Pi * x) }, '•')

	for x := 0; x < 20; x++ {
		col := false
		for y := 0; y < 7; y++ {
			if c.cells[y][x] == '•' {
				col = true
				break
			}
		}
		if !col {
			t.Errorf("column %d has no plotted point", x)
		}
	}
}

func TestRuneCanvas_PlotCurveClampsExtremes(t *testing.T) {
	t.Parallel()

	c := newRuneCanvas(10, 5)
	c.plotCurve(func(float64) float64 { return 100 }, '^')
	c.plotCurve(func(float64) float64 { return -100 }, 'v')
	c.plotCurve(func(float64) float64 { return math.NaN() }, '?')

	out := c.String()
	lines := strings.Split(out, "\n")
	if !strings.Contains(lines[0], "^") {
		t.Error("clamped high curve missing from top row")
	}
	if !strings.Contains(lines[len(lines)-1], "v") {
		t.Error("clamped low curve missing from bottom row")
	}
	if strings.Contains(out, "?") {
		t.Error("NaN points must be skipped")
	}
}

func TestRuneCanvas_DegenerateSizes(t *testing.T) {
	t.Parallel()

	// Zero and negative sizes collapse to a 1x1 canvas.
	c := newRuneCanvas(0, -3)
	c.plotCurve(func(float64) float64 { return 0 }, '•')
	c.disc(0, 0, 5, '▒', '█')
	if got := c.String(); got == "" {
		t.Error("degenerate canvas rendered empty string")
	}
}

func TestRuneCanvas_DiscZeroRadius(t *testing.T) {
	t.Parallel()

	c := newRuneCanvas(10, 5)
	c.disc(5, 2, 0, '▒', '█')

	if out := c.String(); strings.ContainsAny(out, "▒█") {
		t.Error("zero-radius disc drew cells")
	}
}

func TestRuneCanvas_DiscStaysInside(t *testing.T) {
	t.Parallel()

	c := newRuneCanvas(20, 9)
	c.disc(10, 4, 3, '▒', '█')

	if !strings.Contains(c.String(), "▒") {
		t.Error("disc fill missing")
	}
}
