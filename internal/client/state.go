package client

import (
	"time"

	"github.com/tomz197/cannonfall/internal/input"
	"github.com/tomz197/cannonfall/internal/loop"
)

// GameState represents the current screen for a client.
type GameState int

const (
	GameStateMenu     GameState = iota // Difficulty selection
	GameStatePlaying                   // Active gameplay
	GameStateOver                      // A target landed, show restart prompt
	GameStateShutdown                  // Server is shutting down
)

func (g GameState) String() string {
	switch g {
	case GameStateMenu:
		return "menu"
	case GameStatePlaying:
		return "playing"
	case GameStateOver:
		return "over"
	case GameStateShutdown:
		return "shutdown"
	}
	return "unknown"
}

// ClientState holds per-connection state that lives outside the session.
type ClientState struct {
	Input      input.Input
	GameState  GameState
	Selected   loop.Difficulty // Highlighted on the menu, used by the next Start
	Frame      loop.Frame      // Last frame from the session
	FinalScore int
	BestScore  int // Best score on this connection
	Running    bool

	delta         time.Duration
	shutdownTimer float64
	isInactive    bool
	prevGameState GameState
	wasInactive   bool
}

// NewClientState creates a client state showing the menu.
func NewClientState(d loop.Difficulty) *ClientState {
	return &ClientState{
		GameState: GameStateMenu,
		Selected:  d,
		Running:   true,
	}
}
