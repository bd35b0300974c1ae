package config

import (
	"fmt"

	"github.com/tomz197/cannonfall/internal/loop"
	loopconfig "github.com/tomz197/cannonfall/internal/loop/config"
)

// Play holds the game settings read from the environment.
type Play struct {
	Difficulty loop.Difficulty
	AutoStart  bool // CANNON_DIFFICULTY was set, so the menu is skipped
	Width      float64
	Height     float64
}

// LoadPlay reads CANNON_DIFFICULTY, CANNON_WIDTH and CANNON_HEIGHT.
func LoadPlay() (Play, error) {
	p := Play{
		Difficulty: loop.Medium,
		Width:      loopconfig.PlayWidth,
		Height:     loopconfig.PlayHeight,
	}

	if name := GetEnv("CANNON_DIFFICULTY", ""); name != "" {
		d, err := loop.ParseDifficulty(name)
		if err != nil {
			return p, fmt.Errorf("CANNON_DIFFICULTY: %w", err)
		}
		p.Difficulty = d
		p.AutoStart = true
	}

	w, err := GetEnvInt("CANNON_WIDTH", loopconfig.PlayWidth)
	if err != nil {
		return p, err
	}
	h, err := GetEnvInt("CANNON_HEIGHT", loopconfig.PlayHeight)
	if err != nil {
		return p, err
	}
	if w < minPlaySize || h < minPlaySize {
		return p, fmt.Errorf("play area %dx%d is smaller than %dx%d", w, h, minPlaySize, minPlaySize)
	}
	p.Width, p.Height = float64(w), float64(h)
	return p, nil
}

// minPlaySize fits the cannon and one target side by side.
const minPlaySize = 200
