package loop

import (
	"strconv"

	"github.com/tomz197/cannonfall/internal/draw"
	"github.com/tomz197/cannonfall/internal/object"
)

// Score label position, logical units.
const (
	scoreX = 20
	scoreY = 30
)

// Frame is the render output of one tick.
type Frame struct {
	Commands []draw.Command
	Score    int
	Over     bool
}

// Render describes the world as draw commands: the player, then projectiles,
// then targets, then the score label. It does not modify the world.
func Render(w *World) []draw.Command {
	cmds := make([]draw.Command, 0, 2+len(w.Projectiles)+len(w.Targets))
	cmds = w.Player.Draw(cmds)
	for _, p := range w.Projectiles {
		cmds = p.Draw(cmds)
	}
	for _, t := range w.Targets {
		cmds = t.Draw(cmds)
	}
	score := object.Text{
		X:     scoreX,
		Y:     scoreY,
		Value: "Score: " + strconv.Itoa(w.Score),
		Color: draw.ColorWhite,
	}
	return score.Draw(cmds)
}

func frameOf(w *World) Frame {
	return Frame{Commands: Render(w), Score: w.Score, Over: w.Over}
}
