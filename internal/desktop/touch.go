package desktop

import (
	"github.com/tomz197/cannonfall/internal/loop"
)

// Touch is one active touch in play-area coordinates.
type Touch struct {
	X           float64
	JustPressed bool // Began this frame
}

// touchInput maps touches to cannon input. A touch that began this frame
// fires; a held touch left or right of the cannon moves it that way. Touches
// within half a cannon width of its centre only fire.
func touchInput(touches []Touch, cannonCenter, cannonWidth float64) loop.Input {
	var in loop.Input
	dead := cannonWidth / 2
	for _, t := range touches {
		if t.JustPressed {
			in.FireRequested = true
			continue
		}
		switch {
		case t.X < cannonCenter-dead:
			in.MoveLeft = true
		case t.X > cannonCenter+dead:
			in.MoveRight = true
		}
	}
	return in
}
