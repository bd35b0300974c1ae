package loop

import (
	"testing"

	"github.com/tomz197/cannonfall/internal/object"
)

func TestResolveCollisionsHit(t *testing.T) {
	w := newTestWorld()
	w.Projectiles = append(w.Projectiles, object.NewProjectile(100, 50, 5))
	w.AddTarget(object.NewTarget(90, 40, 3))

	resolveCollisions(w)

	if len(w.Projectiles) != 0 || len(w.Targets) != 0 {
		t.Fatalf("got %d projectiles, %d targets; want both removed", len(w.Projectiles), len(w.Targets))
	}
	if w.Score != 10 {
		t.Fatalf("score = %d, want 10", w.Score)
	}
}

func TestResolveCollisionsMiss(t *testing.T) {
	w := newTestWorld()
	w.Projectiles = append(w.Projectiles, object.NewProjectile(300, 300, 5))
	w.AddTarget(object.NewTarget(90, 40, 3))

	resolveCollisions(w)

	if len(w.Projectiles) != 1 || len(w.Targets) != 1 || w.Score != 0 {
		t.Fatalf("miss changed the world: %d projectiles, %d targets, score %d",
			len(w.Projectiles), len(w.Targets), w.Score)
	}
}

func TestResolveCollisionsTargetConsumedOnce(t *testing.T) {
	w := newTestWorld()
	first := object.NewProjectile(100, 50, 5)
	second := object.NewProjectile(110, 55, 5)
	w.Projectiles = append(w.Projectiles, first, second)
	w.AddTarget(object.NewTarget(90, 40, 3))

	resolveCollisions(w)

	if w.Score != 10 {
		t.Fatalf("score = %d, want 10", w.Score)
	}
	if len(w.Projectiles) != 1 || w.Projectiles[0] != second {
		t.Fatal("the first projectile in order should be the one consumed")
	}
}

func TestResolveCollisionsProjectileConsumedOnce(t *testing.T) {
	w := newTestWorld()
	w.Projectiles = append(w.Projectiles, object.NewProjectile(100, 50, 5))
	first := object.NewTarget(90, 40, 3)
	second := object.NewTarget(95, 45, 3)
	w.AddTarget(first)
	w.AddTarget(second)

	resolveCollisions(w)

	if w.Score != 10 {
		t.Fatalf("score = %d, want 10", w.Score)
	}
	if len(w.Targets) != 1 || w.Targets[0] != second {
		t.Fatal("the first target in order should be the one consumed")
	}
}

func TestResolveCollisionsPairsInOrder(t *testing.T) {
	w := newTestWorld()
	a := object.NewTarget(0, 100, 1)
	b := object.NewTarget(400, 100, 1)
	c := object.NewTarget(700, 100, 1)
	w.AddTarget(a)
	w.AddTarget(b)
	w.AddTarget(c)
	w.Projectiles = append(w.Projectiles,
		object.NewProjectile(725, 125, 5),
		object.NewProjectile(25, 125, 5),
	)

	resolveCollisions(w)

	if w.Score != 20 {
		t.Fatalf("score = %d, want 20", w.Score)
	}
	if len(w.Projectiles) != 0 {
		t.Fatalf("%d projectiles left, want 0", len(w.Projectiles))
	}
	if len(w.Targets) != 1 || w.Targets[0] != b {
		t.Fatal("only the middle target should remain")
	}
}

func TestStepScoresThroughCollision(t *testing.T) {
	w := newTestWorld()
	w.Projectiles = append(w.Projectiles, object.NewProjectile(100, 80, 5))
	w.AddTarget(object.NewTarget(90, 40, 3))

	prev := w.Score
	for i := 0; i < 5; i++ {
		Step(w, Input{})
		if w.Score < prev {
			t.Fatalf("score decreased from %d to %d", prev, w.Score)
		}
		prev = w.Score
	}
	if w.Score != 10 {
		t.Fatalf("score = %d, want 10", w.Score)
	}
}
