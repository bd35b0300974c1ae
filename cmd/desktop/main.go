package main

import (
	"context"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tomz197/cannonfall/internal/config"
	"github.com/tomz197/cannonfall/internal/desktop"
)

func main() {
	logger := config.NewLogger("desktop")

	play, err := config.LoadPlay()
	if err != nil {
		logger.Fatal("invalid configuration", "err", err)
	}

	g := desktop.NewGame(context.Background(), desktop.Options{
		Difficulty: play.Difficulty,
		AutoStart:  play.AutoStart,
		Width:      play.Width,
		Height:     play.Height,
		Logger:     logger,
	})
	defer g.Close()

	ebiten.SetWindowSize(int(play.Width), int(play.Height))
	ebiten.SetWindowTitle("Cannonfall")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(g); err != nil {
		logger.Fatal("game error", "err", err)
	}
}
