package object

import "github.com/tomz197/cannonfall/internal/draw"

// Text is a static HUD label in logical coordinates.
type Text struct {
	X, Y  float64
	Value string
	Color draw.Color
}

// Draw appends the label, skipping empty text.
func (t Text) Draw(cmds []draw.Command) []draw.Command {
	if t.Value == "" {
		return cmds
	}
	return append(cmds, draw.Text(t.Color, t.X, t.Y, t.Value))
}
