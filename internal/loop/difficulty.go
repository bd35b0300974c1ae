package loop

import (
	"fmt"
	"strings"
	"time"
)

// Difficulty is a named preset of spawn interval and speeds.
// Speeds are logical units per tick.
type Difficulty struct {
	Name            string
	SpawnInterval   time.Duration
	TargetSpeed     float64
	ProjectileSpeed float64
}

// Difficulty presets.
var (
	Easy   = Difficulty{Name: "easy", SpawnInterval: 2500 * time.Millisecond, TargetSpeed: 1, ProjectileSpeed: 4}
	Medium = Difficulty{Name: "medium", SpawnInterval: 1800 * time.Millisecond, TargetSpeed: 3, ProjectileSpeed: 5}
	Hard   = Difficulty{Name: "hard", SpawnInterval: 1200 * time.Millisecond, TargetSpeed: 4, ProjectileSpeed: 6}
)

// Difficulties lists the presets in menu order.
var Difficulties = []Difficulty{Easy, Medium, Hard}

// String returns the preset name.
func (d Difficulty) String() string {
	return d.Name
}

// ParseDifficulty accepts a preset name, its initial, or its 1-based menu number.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy", "e", "1":
		return Easy, nil
	case "medium", "m", "2":
		return Medium, nil
	case "hard", "h", "3":
		return Hard, nil
	}
	return Difficulty{}, fmt.Errorf("unknown difficulty %q (want easy, medium or hard)", s)
}
