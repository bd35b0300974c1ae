// Package loop runs the simulation: the per-frame tick, the target spawner
// and the session that owns them both.
package loop

import (
	"github.com/tomz197/cannonfall/internal/object"
)

// World holds all game state for one session.
type World struct {
	Player      *object.Player
	Projectiles []*object.Projectile // Fire order
	Targets     []*object.Target     // Spawn order
	Score       int
	Over        bool // Set once a target lands; only a reset clears it
	Difficulty  Difficulty
	Width       float64 // Play area, logical units
	Height      float64
	Ticks       uint64 // Ticks run since the last reset
}

// NewWorld creates a reset world for a play area of the given size.
func NewWorld(width, height float64, d Difficulty) *World {
	w := &World{Width: width, Height: height}
	w.Reset(d)
	return w
}

// Reset returns the world to its initial state under difficulty d.
func (w *World) Reset(d Difficulty) {
	w.Player = object.NewPlayer(w.Width, w.Height)
	clear(w.Projectiles)
	clear(w.Targets)
	w.Projectiles = w.Projectiles[:0]
	w.Targets = w.Targets[:0]
	w.Score = 0
	w.Over = false
	w.Difficulty = d
	w.Ticks = 0
}

// AddTarget appends a target to the world.
func (w *World) AddTarget(t *object.Target) {
	w.Targets = append(w.Targets, t)
}

// Clone returns a deep copy of the world.
func (w *World) Clone() World {
	c := *w
	if w.Player != nil {
		p := *w.Player
		c.Player = &p
	}
	c.Projectiles = make([]*object.Projectile, len(w.Projectiles))
	for i, p := range w.Projectiles {
		cp := *p
		c.Projectiles[i] = &cp
	}
	c.Targets = make([]*object.Target, len(w.Targets))
	for i, t := range w.Targets {
		ct := *t
		c.Targets[i] = &ct
	}
	return c
}
