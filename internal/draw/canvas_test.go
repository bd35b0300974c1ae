package draw

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

// newTestCanvas maps a 100x100 logical area onto 10 columns x 5 rows
// (10 sub-pixel rows), so one pixel is 10x10 logical units.
func newTestCanvas() *Canvas {
	return NewScaledCanvas(10, 5, 100, 100, NewPalette(io.Discard))
}

func TestCanvasFillRect(t *testing.T) {
	c := newTestCanvas()
	c.FillRect(20, 30, 20, 20, ColorBlue)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			want := ColorNone
			if x >= 2 && x <= 3 && y >= 3 && y <= 4 {
				want = ColorBlue
			}
			if got := c.PixelAt(x, y); got != want {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestCanvasFillRectClipsOffCanvas(t *testing.T) {
	c := newTestCanvas()
	c.FillRect(-50, -50, 60, 60, ColorBlue)
	if got := c.PixelAt(0, 0); got != ColorBlue {
		t.Fatalf("pixel (0,0) = %v, want blue", got)
	}
	if got := c.PixelAt(1, 1); got != ColorNone {
		t.Fatalf("pixel (1,1) = %v, want none", got)
	}
}

func TestCanvasFillCircleNeverVanishes(t *testing.T) {
	c := newTestCanvas()
	c.FillCircle(55, 55, 1, ColorRed)
	if got := c.PixelAt(6, 6); got != ColorRed {
		t.Fatalf("centre pixel = %v, want red", got)
	}
}

func TestCanvasApplySkipsText(t *testing.T) {
	c := newTestCanvas()
	c.Apply([]Command{
		Text(ColorWhite, 0, 0, "Score: 0"),
		Rect(ColorBlue, 0, 0, 10, 10),
	})
	if got := c.PixelAt(0, 0); got != ColorBlue {
		t.Fatalf("pixel (0,0) = %v, want blue", got)
	}
}

func TestCanvasRenderOnlyWritesChanges(t *testing.T) {
	c := newTestCanvas()
	c.FillRect(0, 0, 10, 20, ColorGreen)

	var first bytes.Buffer
	c.Render(&first)
	if !strings.Contains(first.String(), "\033[1;1H") {
		t.Fatalf("first render did not position the filled cell: %q", first.String())
	}

	var second bytes.Buffer
	c.Render(&second)
	if second.Len() != 0 {
		t.Fatalf("unchanged frame wrote %q, want nothing", second.String())
	}

	c.Clear()
	var third bytes.Buffer
	c.Render(&third)
	if !strings.Contains(third.String(), "\033[1;1H ") {
		t.Fatalf("cleared cell was not blanked: %q", third.String())
	}
}

func TestCanvasForceRedraw(t *testing.T) {
	c := newTestCanvas()
	var buf bytes.Buffer
	c.Render(&buf)
	buf.Reset()

	c.ForceRedraw()
	c.Render(&buf)
	if got := strings.Count(buf.String(), "H "); got != 50 {
		t.Fatalf("forced redraw blanked %d cells, want 50", got)
	}
}

func TestLogicalToTerminal(t *testing.T) {
	c := newTestCanvas()
	col, row := c.LogicalToTerminal(50, 50)
	if col != 6 || row != 3 {
		t.Fatalf("LogicalToTerminal(50,50) = (%d,%d), want (6,3)", col, row)
	}
}
