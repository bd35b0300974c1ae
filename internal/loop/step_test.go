package loop

import (
	"testing"

	"github.com/tomz197/cannonfall/internal/object"
)

func newTestWorld() *World {
	return NewWorld(800, 600, Medium)
}

func TestStepKeepsPlayerInBounds(t *testing.T) {
	tests := []struct {
		name  string
		in    Input
		ticks int
		wantX float64
	}{
		{"far left", Input{MoveLeft: true}, 200, 0},
		{"far right", Input{MoveRight: true}, 200, 730},
		{"one step left", Input{MoveLeft: true}, 1, 393},
		{"one step right", Input{MoveRight: true}, 1, 407},
		{"both cancel out", Input{MoveLeft: true, MoveRight: true}, 50, 400},
		{"idle", Input{}, 10, 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld()
			for i := 0; i < tt.ticks; i++ {
				Step(w, tt.in)
				if x := w.Player.X; x < 0 || x > w.Player.MaxX(w.Width) {
					t.Fatalf("tick %d: player x = %v outside [0, %v]", i, x, w.Player.MaxX(w.Width))
				}
			}
			if w.Player.X != tt.wantX {
				t.Fatalf("player x = %v, want %v", w.Player.X, tt.wantX)
			}
		})
	}
}

func TestStepBothDirectionsAtLeftEdge(t *testing.T) {
	// Left is skipped at x=0 while right still applies.
	w := newTestWorld()
	w.Player.X = 0
	Step(w, Input{MoveLeft: true, MoveRight: true})
	if w.Player.X != 7 {
		t.Fatalf("player x = %v, want 7", w.Player.X)
	}
}

func TestStepFireOncePerEdge(t *testing.T) {
	w := newTestWorld()

	Step(w, Input{FireRequested: true})
	Step(w, Input{})
	Step(w, Input{})

	if len(w.Projectiles) != 1 {
		t.Fatalf("got %d projectiles, want 1", len(w.Projectiles))
	}
	p := w.Projectiles[0]
	mx, my := w.Player.Muzzle()
	if p.X != mx {
		t.Errorf("projectile x = %v, want %v", p.X, mx)
	}
	if want := my - 3*Medium.ProjectileSpeed; p.Y != want {
		t.Errorf("projectile y = %v, want %v", p.Y, want)
	}
	if p.Speed != Medium.ProjectileSpeed {
		t.Errorf("projectile speed = %v, want %v", p.Speed, Medium.ProjectileSpeed)
	}
}

func TestStepRemovesProjectilesPastTop(t *testing.T) {
	w := newTestWorld()
	w.Projectiles = append(w.Projectiles,
		object.NewProjectile(100, 4, 5),
		object.NewProjectile(200, 5, 5),
		object.NewProjectile(300, 300, 5),
	)

	Step(w, Input{})

	if len(w.Projectiles) != 2 {
		t.Fatalf("got %d projectiles, want 2", len(w.Projectiles))
	}
	if w.Projectiles[0].X != 200 || w.Projectiles[1].X != 300 {
		t.Fatalf("wrong projectiles kept or order changed: %v, %v", w.Projectiles[0].X, w.Projectiles[1].X)
	}
}

func TestStepTargetReachesBottom(t *testing.T) {
	w := newTestWorld()
	w.AddTarget(object.NewTarget(100, w.Height-1, 4))

	if cont := Step(w, Input{}); cont {
		t.Fatal("Step should report the game over")
	}
	if w.Targets[0].Y != w.Height+3 {
		t.Fatalf("target y = %v, want %v", w.Targets[0].Y, w.Height+3)
	}
	if !w.Over {
		t.Fatal("world not over")
	}

	ticks := w.Ticks
	if cont := Step(w, Input{MoveLeft: true}); cont {
		t.Fatal("Step on a finished world must not continue")
	}
	if w.Ticks != ticks || !w.Over {
		t.Fatal("Step changed a finished world")
	}
}

func TestStepTargetAtBottomEdgeContinues(t *testing.T) {
	w := newTestWorld()
	w.AddTarget(object.NewTarget(100, w.Height-4, 4))

	if cont := Step(w, Input{}); !cont {
		t.Fatal("target exactly at the bottom must not end the game")
	}
}

func TestStepTargetSpeedFrozenAtSpawn(t *testing.T) {
	w := newTestWorld()
	w.AddTarget(object.NewTarget(100, 0, Easy.TargetSpeed))
	w.Difficulty = Hard

	Step(w, Input{})

	if w.Targets[0].Y != Easy.TargetSpeed {
		t.Fatalf("target y = %v, want %v", w.Targets[0].Y, Easy.TargetSpeed)
	}
}

func TestWorldResetAndClone(t *testing.T) {
	w := newTestWorld()
	w.AddTarget(object.NewTarget(1, 2, 3))
	Step(w, Input{FireRequested: true, MoveLeft: true})

	c := w.Clone()
	c.Targets[0].Y = 999
	c.Player.X = 1
	if w.Targets[0].Y == 999 || w.Player.X == 1 {
		t.Fatal("Clone shares entities with the original")
	}

	w.Score = 30
	w.Over = true
	w.Reset(Hard)
	if w.Score != 0 || w.Over || len(w.Targets) != 0 || len(w.Projectiles) != 0 || w.Ticks != 0 {
		t.Fatalf("Reset left state behind: %+v", w)
	}
	if w.Difficulty != Hard || w.Player.X != 400 {
		t.Fatalf("Reset did not apply difficulty or recreate the player")
	}
}
