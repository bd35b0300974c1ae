package object

import (
	"github.com/tomz197/cannonfall/internal/draw"
	"github.com/tomz197/cannonfall/internal/physics"
)

// Player dimensions and movement, in logical units.
const (
	PlayerWidth  = 70.0
	PlayerHeight = 30.0
	PlayerSpeed  = 7.0 // Per tick
	PlayerMargin = 60.0
	MuzzleOffset = 10.0 // Projectiles spawn this far above the player's top edge
)

// Player is the cannon at the bottom of the play area.
type Player struct {
	X, Y   float64 // Top-left corner
	Width  float64
	Height float64
	Speed  float64
}

// NewPlayer creates the cannon for a play area of the given size, with its
// left edge at the horizontal centre and PlayerMargin above the bottom.
func NewPlayer(playWidth, playHeight float64) *Player {
	return &Player{
		X:      playWidth / 2,
		Y:      playHeight - PlayerMargin,
		Width:  PlayerWidth,
		Height: PlayerHeight,
		Speed:  PlayerSpeed,
	}
}

// MaxX returns the largest x the player may occupy in a play area of the given width.
func (p *Player) MaxX(playWidth float64) float64 {
	return playWidth - p.Width
}

// Muzzle returns where a fired projectile starts.
func (p *Player) Muzzle() (x, y float64) {
	return p.X + p.Width/2, p.Y - MuzzleOffset
}

// Bounds returns the player's box.
func (p *Player) Bounds() physics.Rect {
	return physics.Rect{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

// Draw renders the cannon as a downward-pointing triangle.
func (p *Player) Draw(cmds []draw.Command) []draw.Command {
	return append(cmds, draw.Polygon(draw.ColorGreen,
		draw.Point{X: p.X, Y: p.Y},
		draw.Point{X: p.X + p.Width, Y: p.Y},
		draw.Point{X: p.X + p.Width/2, Y: p.Y + p.Height},
	))
}
