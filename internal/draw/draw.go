// Package draw turns draw commands into terminal output.
package draw

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Color is a palette index. The zero value means "nothing drawn".
type Color uint8

const (
	ColorNone Color = iota
	ColorGreen
	ColorRed
	ColorBlue
	ColorWhite
	ColorYellow
)

// Kind identifies the primitive a Command describes.
type Kind int

const (
	KindPolygon Kind = iota // Filled polygon through Points
	KindCircle              // Filled circle at X, Y with radius R
	KindRect                // Filled rectangle at X, Y of size W x H
	KindText                // Text with its top-left near X, Y
)

// Command is a single draw primitive in logical play-area coordinates.
type Command struct {
	Kind   Kind
	Color  Color
	Points []Point
	X, Y   float64
	W, H   float64
	R      float64
	Text   string
}

// Polygon returns a filled polygon command.
func Polygon(c Color, points ...Point) Command {
	return Command{Kind: KindPolygon, Color: c, Points: points}
}

// Circle returns a filled circle command.
func Circle(c Color, x, y, r float64) Command {
	return Command{Kind: KindCircle, Color: c, X: x, Y: y, R: r}
}

// Rect returns a filled rectangle command.
func Rect(c Color, x, y, w, h float64) Command {
	return Command{Kind: KindRect, Color: c, X: x, Y: y, W: w, H: h}
}

// Text returns a text command.
func Text(c Color, x, y float64, s string) Command {
	return Command{Kind: KindText, Color: c, X: x, Y: y, Text: s}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
