package loop

import (
	"github.com/tomz197/cannonfall/internal/object"
	"github.com/tomz197/cannonfall/internal/physics"
)

// Input is the input state sampled once per tick. MoveLeft and MoveRight are
// levels; FireRequested is an edge that the input source clears once sampled.
type Input struct {
	MoveLeft      bool
	MoveRight     bool
	FireRequested bool
}

// Step advances the world by one tick and reports whether the session should
// continue. Steps run in a fixed order: movement, fire, projectiles, targets,
// collisions, loss check. Step never touches a world that is already over.
func Step(w *World, in Input) bool {
	if w.Over {
		return false
	}
	w.Ticks++

	applyInput(w, in)
	if in.FireRequested {
		fire(w)
	}
	advanceProjectiles(w)
	advanceTargets(w)
	resolveCollisions(w)
	checkLoss(w)

	return !w.Over
}

// applyInput moves the player. Left and right are checked independently, so
// holding both applies both deltas, which cancel out. The result is then
// clamped: a step that starts just inside a bound may not end past it.
func applyInput(w *World, in Input) {
	p := w.Player
	maxX := p.MaxX(w.Width)
	if in.MoveLeft && p.X > 0 {
		p.X -= p.Speed
	}
	if in.MoveRight && p.X < maxX {
		p.X += p.Speed
	}
	p.X = physics.Clamp(p.X, 0, maxX)
}

// fire appends one projectile at the player's muzzle.
func fire(w *World) {
	x, y := w.Player.Muzzle()
	w.Projectiles = append(w.Projectiles, object.NewProjectile(x, y, w.Difficulty.ProjectileSpeed))
}

// advanceProjectiles moves every projectile and drops those past the top.
func advanceProjectiles(w *World) {
	kept := w.Projectiles[:0] // reuse backing array
	for _, p := range w.Projectiles {
		if !p.Advance() {
			kept = append(kept, p)
		}
	}
	clear(w.Projectiles[len(kept):])
	w.Projectiles = kept
}

// advanceTargets moves every target down at its own spawn-time speed.
func advanceTargets(w *World) {
	for _, t := range w.Targets {
		t.Advance()
	}
}

// checkLoss ends the session if any target has passed the bottom.
func checkLoss(w *World) {
	for _, t := range w.Targets {
		if t.Landed(w.Height) {
			w.Over = true
			return
		}
	}
}
