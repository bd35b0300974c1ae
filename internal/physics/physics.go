// Package physics provides collision detection and bounds utilities.
package physics

// Rect is an axis-aligned bounding box. X, Y is the top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// SquareAround returns the bounding box of a circle: a square of side
// 2*radius centred on (cx, cy).
func SquareAround(cx, cy, radius float64) Rect {
	return Rect{X: cx - radius, Y: cy - radius, W: 2 * radius, H: 2 * radius}
}

// Overlaps reports whether two boxes overlap. Touching edges do not count.
func Overlaps(a, b Rect) bool {
	return a.Right() > b.X &&
		a.X < b.Right() &&
		a.Bottom() > b.Y &&
		a.Y < b.Bottom()
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
