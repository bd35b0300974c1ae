// Package object defines the entities that live in the play area.
package object

import (
	"github.com/tomz197/cannonfall/internal/draw"
	"github.com/tomz197/cannonfall/internal/physics"
)

// Object is a play-area entity that can describe itself as draw commands.
type Object interface {
	// Bounds returns the box used for collision tests.
	Bounds() physics.Rect

	// Draw appends the object's draw commands to cmds.
	Draw(cmds []draw.Command) []draw.Command
}

// Compile-time checks that all entities implement Object.
var (
	_ Object = (*Player)(nil)
	_ Object = (*Projectile)(nil)
	_ Object = (*Target)(nil)
)
