package loop

import (
	"github.com/tomz197/cannonfall/internal/loop/config"
	"github.com/tomz197/cannonfall/internal/object"
	"github.com/tomz197/cannonfall/internal/physics"
)

// resolveCollisions removes every projectile/target pair that overlaps and
// scores each one. Targets are the outer loop and projectiles the inner, both
// in collection order; the first projectile to hit a target consumes it, and
// a consumed projectile takes no part in later tests this tick.
func resolveCollisions(w *World) {
	if len(w.Projectiles) == 0 || len(w.Targets) == 0 {
		return
	}

	keptTargets := w.Targets[:0]
	for _, t := range w.Targets {
		if i := firstHit(w.Projectiles, t); i >= 0 {
			w.Projectiles = removeProjectile(w.Projectiles, i)
			w.Score += config.HitScore
			continue
		}
		keptTargets = append(keptTargets, t)
	}
	clear(w.Targets[len(keptTargets):])
	w.Targets = keptTargets
}

// firstHit returns the index of the first projectile overlapping t, or -1.
func firstHit(projectiles []*object.Projectile, t *object.Target) int {
	tb := t.Bounds()
	for i, p := range projectiles {
		if physics.Overlaps(p.Bounds(), tb) {
			return i
		}
	}
	return -1
}

// removeProjectile deletes index i, preserving order.
func removeProjectile(projectiles []*object.Projectile, i int) []*object.Projectile {
	copy(projectiles[i:], projectiles[i+1:])
	projectiles[len(projectiles)-1] = nil
	return projectiles[:len(projectiles)-1]
}
