// Package config centralizes all tunable game parameters.
package config

import "time"

// Play area - the logical resolution the simulation runs in.
// Actual rendering scales to fit the terminal or window.
const (
	PlayWidth  = 800
	PlayHeight = 600
)

// Scoring
const (
	HitScore = 10 // Awarded per projectile/target collision
)

// Frame driver. One simulation tick per frame, like a browser's
// animation callback on a 60 Hz display.
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
)

// Terminal rendering. Larger terminals get a centred, bordered area.
const (
	MaxTermWidth  = 160
	MaxTermHeight = 60
)

// Inactivity (SSH sessions)
const (
	InactivityWarnUser       = 90  // Seconds
	InactivityDisconnectUser = 120 // Seconds
)

// Shutdown
const (
	ShutdownDisplaySeconds = 10.0 // Seconds to show shutdown message before auto-disconnect
)
