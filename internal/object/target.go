package object

import (
	"math/rand"

	"github.com/tomz197/cannonfall/internal/draw"
	"github.com/tomz197/cannonfall/internal/physics"
)

// Target dimensions in logical units.
const (
	TargetWidth  = 50.0
	TargetHeight = 50.0
)

// Target is a falling block. Its speed is fixed when it spawns.
type Target struct {
	X, Y   float64 // Top-left corner
	Width  float64
	Height float64
	Speed  float64 // Per tick, downward
}

// NewTarget creates a target with its top-left corner at (x, y).
func NewTarget(x, y, speed float64) *Target {
	return &Target{
		X:      x,
		Y:      y,
		Width:  TargetWidth,
		Height: TargetHeight,
		Speed:  speed,
	}
}

// NewTargetAbove creates a target just above the visible area at a uniformly
// random x in [0, playWidth-TargetWidth].
func NewTargetAbove(rng *rand.Rand, playWidth, speed float64) *Target {
	span := playWidth - TargetWidth
	if span < 0 {
		span = 0
	}
	return NewTarget(rng.Float64()*span, -TargetHeight, speed)
}

// Advance moves the target one tick down.
func (t *Target) Advance() {
	t.Y += t.Speed
}

// Landed reports whether the target has passed the bottom of the play area.
func (t *Target) Landed(playHeight float64) bool {
	return t.Y > playHeight
}

// Bounds returns the target's box.
func (t *Target) Bounds() physics.Rect {
	return physics.Rect{X: t.X, Y: t.Y, W: t.Width, H: t.Height}
}

// Draw renders the target as a filled rectangle.
func (t *Target) Draw(cmds []draw.Command) []draw.Command {
	return append(cmds, draw.Rect(draw.ColorBlue, t.X, t.Y, t.Width, t.Height))
}
