// Package client runs one player's game on a terminal: it reads keys, drives
// a loop.Session at the frame rate and draws each frame with half-block cells.
package client

import (
	"bufio"
	"context"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/cannonfall/internal/draw"
	"github.com/tomz197/cannonfall/internal/input"
	"github.com/tomz197/cannonfall/internal/loop"
	"github.com/tomz197/cannonfall/internal/loop/config"
)

// Client handles rendering and input for a single terminal.
type Client struct {
	session      *loop.Session
	hub          *Hub
	handle       *Handle // nil when not connected to a hub
	state        *ClientState
	canvas       *draw.Canvas
	palette      *draw.Palette
	chunkWriter  *draw.ChunkWriter // Accumulates UI text for chunked output
	writer       io.Writer
	inputStream  *input.Stream
	lastInput    time.Time
	termSizeFunc draw.TermSizeFunc
	logger       *log.Logger
}

// ClientOptions configures the client.
type ClientOptions struct {
	TermSizeFunc draw.TermSizeFunc
	Username     string
	Difficulty   loop.Difficulty // Preselected on the menu; Medium if unset
	AutoStart    bool            // Skip the menu and start at Difficulty
	Width        float64         // Logical play area; config.PlayWidth if unset
	Height       float64
	Logger       *log.Logger
	Hub          *Hub            // Optional; lets a server announce its shutdown
	OnGameOver   func(score int) // Called once per finished game
	Session      []loop.Option   // Extra session options
}

// NewClient creates a client that reads keys from r and draws to w. The
// client's session stops when ctx is cancelled.
func NewClient(ctx context.Context, r *bufio.Reader, w io.Writer, opts ClientOptions) *Client {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Username != "" {
		logger = logger.With("user", opts.Username)
	}
	d := opts.Difficulty
	if d.Name == "" {
		d = loop.Medium
	}

	width, height := opts.Width, opts.Height
	if width <= 0 || height <= 0 {
		width, height = config.PlayWidth, config.PlayHeight
	}

	sessionOpts := []loop.Option{loop.WithLogger(logger)}
	if opts.OnGameOver != nil {
		sessionOpts = append(sessionOpts, loop.WithOnGameOver(opts.OnGameOver))
	}
	sessionOpts = append(sessionOpts, opts.Session...)
	session := loop.NewSession(ctx, width, height, sessionOpts...)

	// Create canvas with clamped dimensions for max render resolution
	termWidth, termHeight, err := termSizeFunc()
	if err != nil {
		logger.Warn("could not read terminal size", "err", err)
		termWidth, termHeight = 80, 24
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	palette := draw.NewPalette(w)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, width, height, palette)
	canvas.SetOffset(offsetCol, offsetRow)

	c := &Client{
		session:      session,
		hub:          opts.Hub,
		state:        NewClientState(d),
		canvas:       canvas,
		palette:      palette,
		chunkWriter:  draw.NewChunkWriter(w, offsetCol, offsetRow),
		writer:       w,
		inputStream:  input.StartStream(r),
		lastInput:    time.Now(),
		termSizeFunc: termSizeFunc,
		logger:       logger,
	}
	if opts.Hub != nil {
		c.handle = opts.Hub.Register(opts.Username)
	}
	if opts.AutoStart {
		c.startGame(d)
	}
	return c
}

// Run starts the client loop. Blocks until the player quits, the input
// closes or the server shuts down.
func (c *Client) Run() error {
	draw.HideCursor(c.writer)
	defer draw.ShowCursor(c.writer)
	draw.ClearScreen(c.writer)

	defer c.session.Stop()
	if c.hub != nil {
		defer c.hub.Unregister(c.handle.ID)
	}

	lastTime := time.Now()

	for c.state.Running {
		frameStart := time.Now()
		c.state.delta = frameStart.Sub(lastTime)
		lastTime = frameStart

		c.processInput()
		c.processHubEvents()
		c.updateScreen()
		c.update()

		if err := c.drawFrame(); err != nil {
			return err
		}

		elapsed := time.Since(frameStart)
		if elapsed < config.TargetFrameTime {
			time.Sleep(config.TargetFrameTime - elapsed)
		}
	}

	draw.ClearScreen(c.writer)
	return nil
}

// update advances the current screen by one frame.
func (c *Client) update() {
	switch c.state.GameState {
	case GameStateMenu:
		c.updateMenuState()
	case GameStatePlaying:
		c.updatePlayingState()
	case GameStateOver:
		c.updateOverState()
	case GameStateShutdown:
		c.updateShutdownState()
	}
}

// processInput reads this frame's keys and tracks inactivity.
func (c *Client) processInput() {
	c.state.Input = input.ReadInput(c.inputStream)

	if c.state.Input.Any {
		c.lastInput = time.Now()
		c.state.isInactive = false
	} else if time.Since(c.lastInput).Seconds() > config.InactivityDisconnectUser {
		c.logger.Info("disconnecting inactive player")
		c.state.Running = false
	} else if time.Since(c.lastInput).Seconds() > config.InactivityWarnUser {
		c.state.isInactive = true
	}

	if c.state.Input.Quit || c.inputStream.Closed() {
		c.state.Running = false
	}
}

// processHubEvents handles events from the hub.
func (c *Client) processHubEvents() {
	if c.handle == nil {
		return
	}
	for {
		select {
		case event, ok := <-c.handle.EventsCh:
			if !ok {
				c.state.Running = false
				return
			}
			if event.Type == EventServerShutdown {
				c.session.Stop()
				c.state.GameState = GameStateShutdown
				c.state.shutdownTimer = config.ShutdownDisplaySeconds
			}
		default:
			return
		}
	}
}

// updateScreen handles terminal resize, clamping to max render resolution.
// On actual size changes, clears the terminal to remove residual pixels
// outside the new canvas area.
func (c *Client) updateScreen() {
	termWidth, termHeight, err := c.termSizeFunc()
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)

	if renderWidth != c.canvas.TerminalWidth() || renderHeight != c.canvas.TerminalHeight() ||
		offsetCol != c.canvas.OffsetCol() || offsetRow != c.canvas.OffsetRow() {
		draw.ClearScreen(c.writer)
		c.canvas.Resize(renderWidth, renderHeight)
		c.canvas.ForceRedraw()
	}

	c.canvas.SetOffset(offsetCol, offsetRow)
	c.chunkWriter.SetOffset(offsetCol, offsetRow)
}

// clampTermSize clamps terminal dimensions to the max render resolution and computes
// the centering offset for the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = termWidth
	renderHeight = termHeight
	if renderWidth > config.MaxTermWidth {
		renderWidth = config.MaxTermWidth
	}
	if renderHeight > config.MaxTermHeight {
		renderHeight = config.MaxTermHeight
	}
	offsetCol = (termWidth - renderWidth) / 2
	offsetRow = (termHeight - renderHeight) / 2
	return
}

// pickDifficulty returns the preset chosen by a digit or initial this frame.
func pickDifficulty(in input.Input) (loop.Difficulty, bool) {
	if in.Number > 0 {
		if d, err := loop.ParseDifficulty(strconv.Itoa(in.Number)); err == nil {
			return d, true
		}
	}
	switch in.Letter {
	case 'e', 'm', 'h':
		d, err := loop.ParseDifficulty(string(in.Letter))
		return d, err == nil
	}
	return loop.Difficulty{}, false
}

// updateMenuState starts a game once a difficulty is chosen.
func (c *Client) updateMenuState() {
	if d, ok := pickDifficulty(c.state.Input); ok {
		c.startGame(d)
		return
	}
	if c.state.Input.Fire || c.state.Input.Enter {
		c.startGame(c.state.Selected)
	}
}

// updatePlayingState runs one simulation tick with this frame's keys.
func (c *Client) updatePlayingState() {
	in := c.state.Input
	frame, cont := c.session.Tick(loop.Input{
		MoveLeft:      in.Left,
		MoveRight:     in.Right,
		FireRequested: in.Fire,
	})
	c.state.Frame = frame
	if !cont {
		c.state.FinalScore = frame.Score
		if frame.Score > c.state.BestScore {
			c.state.BestScore = frame.Score
		}
		c.state.GameState = GameStateOver
	}
}

// updateOverState restarts on SPACE or Enter, or starts a new difficulty.
func (c *Client) updateOverState() {
	if d, ok := pickDifficulty(c.state.Input); ok {
		c.startGame(d)
		return
	}
	if c.state.Input.Fire || c.state.Input.Enter {
		c.restartGame()
	}
}

// startGame starts a new game at difficulty d.
func (c *Client) startGame(d loop.Difficulty) {
	input.ResetKeyInput(c.inputStream)
	c.session.Start(d)
	c.state.Selected = d
	c.state.Frame = c.session.Frame()
	c.state.GameState = GameStatePlaying
}

// restartGame starts a new game at the last difficulty.
func (c *Client) restartGame() {
	input.ResetKeyInput(c.inputStream)
	if err := c.session.Restart(); err != nil {
		c.logger.Warn("restart failed, starting fresh", "err", err)
		c.session.Start(c.state.Selected)
	}
	c.state.Frame = c.session.Frame()
	c.state.GameState = GameStatePlaying
}

// updateShutdownState handles the shutdown screen countdown.
func (c *Client) updateShutdownState() {
	c.state.shutdownTimer -= c.state.delta.Seconds()
	if c.state.shutdownTimer <= 0 {
		c.state.Running = false
	}
}
