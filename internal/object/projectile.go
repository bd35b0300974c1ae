package object

import (
	"github.com/tomz197/cannonfall/internal/draw"
	"github.com/tomz197/cannonfall/internal/physics"
)

// ProjectileRadius is the drawn and collision radius of a projectile.
const ProjectileRadius = 10.0

// Projectile is a shot travelling straight up.
type Projectile struct {
	X, Y   float64 // Centre
	Radius float64
	Speed  float64 // Per tick, upward
}

// NewProjectile creates a projectile centred at (x, y).
func NewProjectile(x, y, speed float64) *Projectile {
	return &Projectile{
		X:      x,
		Y:      y,
		Radius: ProjectileRadius,
		Speed:  speed,
	}
}

// Advance moves the projectile one tick and reports whether it has left the
// top of the play area.
func (p *Projectile) Advance() (out bool) {
	p.Y -= p.Speed
	return p.Y < 0
}

// Bounds approximates the circle by its bounding square.
func (p *Projectile) Bounds() physics.Rect {
	return physics.SquareAround(p.X, p.Y, p.Radius)
}

// Draw renders the projectile as a filled circle.
func (p *Projectile) Draw(cmds []draw.Command) []draw.Command {
	return append(cmds, draw.Circle(draw.ColorRed, p.X, p.Y, p.Radius))
}
