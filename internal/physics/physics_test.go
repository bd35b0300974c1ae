package physics

import "testing"

func TestOverlaps(t *testing.T) {
	target := Rect{X: 90, Y: 40, W: 50, H: 50}

	tests := []struct {
		name string
		box  Rect
		want bool
	}{
		{"inside", SquareAround(100, 50, 10), true},
		{"left of target", SquareAround(70, 60, 10), false},
		{"touching left edge", SquareAround(80, 60, 10), false},
		{"one unit into left edge", SquareAround(81, 60, 10), true},
		{"below target", SquareAround(100, 101, 10), false},
		{"touching bottom edge", SquareAround(100, 100, 10), false},
		{"above target", SquareAround(100, 20, 10), false},
		{"right of target", SquareAround(151, 60, 10), false},
		{"covers target", Rect{X: 0, Y: 0, W: 500, H: 500}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.box, target); got != tt.want {
				t.Errorf("Overlaps(%+v, %+v) = %v, want %v", tt.box, target, got, tt.want)
			}
			if got := Overlaps(target, tt.box); got != tt.want {
				t.Errorf("Overlaps is not symmetric for %+v", tt.box)
			}
		})
	}
}

func TestSquareAround(t *testing.T) {
	r := SquareAround(100, 50, 10)
	want := Rect{X: 90, Y: 40, W: 20, H: 20}
	if r != want {
		t.Fatalf("SquareAround = %+v, want %+v", r, want)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(-3, 0, 10); got != 0 {
		t.Errorf("Clamp(-3) = %v, want 0", got)
	}
	if got := Clamp(13, 0, 10); got != 10 {
		t.Errorf("Clamp(13) = %v, want 10", got)
	}
	if got := Clamp(4.5, 0, 10); got != 4.5 {
		t.Errorf("Clamp(4.5) = %v, want 4.5", got)
	}
}
