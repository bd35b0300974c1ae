package object

import (
	"math/rand"
	"testing"

	"github.com/tomz197/cannonfall/internal/draw"
)

func TestNewPlayer(t *testing.T) {
	p := NewPlayer(800, 600)
	if p.X != 400 || p.Y != 540 {
		t.Fatalf("player at (%v,%v), want (400,540)", p.X, p.Y)
	}
	if got := p.MaxX(800); got != 730 {
		t.Fatalf("MaxX = %v, want 730", got)
	}
	mx, my := p.Muzzle()
	if mx != 435 || my != 530 {
		t.Fatalf("muzzle at (%v,%v), want (435,530)", mx, my)
	}
}

func TestProjectileAdvance(t *testing.T) {
	p := NewProjectile(100, 6, 5)
	if out := p.Advance(); out {
		t.Fatalf("projectile at y=%v reported out of bounds", p.Y)
	}
	if p.Y != 1 {
		t.Fatalf("y = %v, want 1", p.Y)
	}
	if out := p.Advance(); !out {
		t.Fatalf("projectile at y=%v should be out of bounds", p.Y)
	}
}

func TestTargetAdvanceAndLanded(t *testing.T) {
	tg := NewTarget(10, 599, 4)
	if tg.Landed(600) {
		t.Fatal("target above the bottom reported landed")
	}
	tg.Advance()
	if tg.Y != 603 {
		t.Fatalf("y = %v, want 603", tg.Y)
	}
	if !tg.Landed(600) {
		t.Fatal("target below the bottom not landed")
	}
}

func TestNewTargetAbove(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		tg := NewTargetAbove(rng, 800, 3)
		if tg.X < 0 || tg.X > 800-TargetWidth {
			t.Fatalf("x = %v outside [0, %v]", tg.X, 800-TargetWidth)
		}
		if tg.Y != -TargetHeight {
			t.Fatalf("y = %v, want %v", tg.Y, -TargetHeight)
		}
		if tg.Speed != 3 {
			t.Fatalf("speed = %v, want 3", tg.Speed)
		}
	}
}

func TestDrawCommands(t *testing.T) {
	var cmds []draw.Command
	cmds = NewPlayer(800, 600).Draw(cmds)
	cmds = NewProjectile(1, 2, 3).Draw(cmds)
	cmds = NewTarget(4, 5, 6).Draw(cmds)
	cmds = Text{Value: ""}.Draw(cmds)
	cmds = Text{X: 20, Y: 30, Value: "Score: 0", Color: draw.ColorWhite}.Draw(cmds)

	want := []draw.Kind{draw.KindPolygon, draw.KindCircle, draw.KindRect, draw.KindText}
	if len(cmds) != len(want) {
		t.Fatalf("got %d commands, want %d", len(cmds), len(want))
	}
	for i, k := range want {
		if cmds[i].Kind != k {
			t.Errorf("command %d kind = %v, want %v", i, cmds[i].Kind, k)
		}
	}
	if len(cmds[0].Points) != 3 {
		t.Errorf("player polygon has %d points, want 3", len(cmds[0].Points))
	}
}
