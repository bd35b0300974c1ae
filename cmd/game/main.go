package main

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/tomz197/cannonfall/internal/client"
	"github.com/tomz197/cannonfall/internal/config"
	"golang.org/x/term"
)

func main() {
	logger := config.NewLogger("cannonfall")

	play, err := config.LoadPlay()
	if err != nil {
		logger.Fatal("invalid configuration", "err", err)
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		logger.Fatal("failed to enable raw mode", "err", err)
	}

	var best int
	c := client.NewClient(context.Background(), bufio.NewReader(os.Stdin), os.Stdout, client.ClientOptions{
		Difficulty: play.Difficulty,
		AutoStart:  play.AutoStart,
		Width:      play.Width,
		Height:     play.Height,
		OnGameOver: func(score int) {
			if score > best {
				best = score
			}
		},
	})
	runErr := c.Run()

	_ = term.Restore(fd, oldState)
	if runErr != nil {
		logger.Fatal("game error", "err", runErr)
	}
	fmt.Printf("Thanks for playing. Best score: %d\n", best)
}
