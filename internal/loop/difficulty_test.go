package loop

import (
	"testing"
	"time"
)

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    Difficulty
		wantErr bool
	}{
		{"easy", Easy, false},
		{"EASY", Easy, false},
		{"1", Easy, false},
		{"medium", Medium, false},
		{"m", Medium, false},
		{" hard ", Hard, false},
		{"3", Hard, false},
		{"nightmare", Difficulty{}, true},
		{"", Difficulty{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDifficulty(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDifficulty(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Fatalf("ParseDifficulty(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		d        Difficulty
		interval time.Duration
		target   float64
		bullet   float64
	}{
		{Easy, 2500 * time.Millisecond, 1, 4},
		{Medium, 1800 * time.Millisecond, 3, 5},
		{Hard, 1200 * time.Millisecond, 4, 6},
	}
	for _, tt := range tests {
		if tt.d.SpawnInterval != tt.interval || tt.d.TargetSpeed != tt.target || tt.d.ProjectileSpeed != tt.bullet {
			t.Errorf("%s = %+v, want {%v %v %v}", tt.d, tt.d, tt.interval, tt.target, tt.bullet)
		}
	}
}
