// Package desktop runs the game in a window with ebiten. Each ebiten update
// runs one simulation tick, so the window's refresh drives the session.
package desktop

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tomz197/cannonfall/internal/loop"
	"github.com/tomz197/cannonfall/internal/loop/config"
	"github.com/tomz197/cannonfall/internal/object"
)

type screen int

const (
	screenMenu screen = iota
	screenPlaying
	screenOver
)

// Options configures a Game.
type Options struct {
	Difficulty loop.Difficulty // Preselected on the menu; Medium if unset
	AutoStart  bool
	Width      float64 // Logical play area; config.PlayWidth if unset
	Height     float64
	Logger     *log.Logger
	Session    []loop.Option
}

// Game implements ebiten.Game around one loop.Session.
type Game struct {
	session  *loop.Session
	screen   screen
	selected loop.Difficulty
	frame    loop.Frame
	final    int
	best     int
	width    float64
	height   float64
	logger   *log.Logger
	renderer *renderer

	touchIDs []ebiten.TouchID
	justIDs  []ebiten.TouchID
	touches  []Touch
}

var _ ebiten.Game = (*Game)(nil)

// controls is one update's input, already mapped from keys and touches.
type controls struct {
	Play    loop.Input
	Pick    loop.Difficulty // Zero unless a difficulty key was pressed
	Confirm bool            // SPACE, Enter or a new touch
	Quit    bool
}

// NewGame creates a game showing the menu, or already playing if
// opts.AutoStart is set. The session stops when ctx is cancelled.
func NewGame(ctx context.Context, opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	d := opts.Difficulty
	if d.Name == "" {
		d = loop.Medium
	}
	width, height := opts.Width, opts.Height
	if width <= 0 || height <= 0 {
		width, height = config.PlayWidth, config.PlayHeight
	}

	sessionOpts := append([]loop.Option{loop.WithLogger(logger)}, opts.Session...)
	g := &Game{
		session:  loop.NewSession(ctx, width, height, sessionOpts...),
		selected: d,
		width:    width,
		height:   height,
		logger:   logger,
		renderer: newRenderer(),
	}
	g.frame = g.session.Frame()
	if opts.AutoStart {
		g.start(d)
	}
	return g
}

// Update polls input and advances the current screen by one frame.
func (g *Game) Update() error {
	return g.apply(g.poll())
}

// Draw renders the last frame and the current screen's overlay.
func (g *Game) Draw(dst *ebiten.Image) {
	dst.Fill(background)
	if g.screen != screenMenu {
		g.renderer.drawCommands(dst, g.frame.Commands)
	}
	switch g.screen {
	case screenMenu:
		g.drawMenu(dst)
	case screenOver:
		g.drawOver(dst)
	}
}

// Layout keeps the logical play area; ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.width), int(g.height)
}

// Close stops the session's spawner.
func (g *Game) Close() {
	g.session.Stop()
}

// apply advances the game by one frame of input.
func (g *Game) apply(c controls) error {
	if c.Quit {
		g.session.Stop()
		return ebiten.Termination
	}

	switch g.screen {
	case screenMenu:
		if c.Pick.Name != "" {
			g.start(c.Pick)
		} else if c.Confirm {
			g.start(g.selected)
		}
	case screenPlaying:
		frame, cont := g.session.Tick(c.Play)
		g.frame = frame
		if !cont {
			g.final = frame.Score
			g.best = max(g.best, frame.Score)
			g.screen = screenOver
			g.logger.Info("final score", "score", frame.Score, "difficulty", g.selected)
		}
	case screenOver:
		if c.Pick.Name != "" {
			g.start(c.Pick)
		} else if c.Confirm {
			g.restart()
		}
	}
	return nil
}

func (g *Game) start(d loop.Difficulty) {
	g.session.Start(d)
	g.selected = d
	g.frame = g.session.Frame()
	g.screen = screenPlaying
}

func (g *Game) restart() {
	if err := g.session.Restart(); err != nil {
		g.logger.Warn("restart failed, starting fresh", "err", err)
		g.session.Start(g.selected)
	}
	g.frame = g.session.Frame()
	g.screen = screenPlaying
}

// difficultyKeys maps keys to the preset they select.
var difficultyKeys = []struct {
	keys []ebiten.Key
	d    loop.Difficulty
}{
	{[]ebiten.Key{ebiten.KeyDigit1, ebiten.KeyNumpad1, ebiten.KeyE}, loop.Easy},
	{[]ebiten.Key{ebiten.KeyDigit2, ebiten.KeyNumpad2, ebiten.KeyM}, loop.Medium},
	{[]ebiten.Key{ebiten.KeyDigit3, ebiten.KeyNumpad3, ebiten.KeyH}, loop.Hard},
}

// poll reads the keyboard and touch screen.
func (g *Game) poll() controls {
	var c controls

	c.Play.MoveLeft = ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA)
	c.Play.MoveRight = ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD)
	c.Play.FireRequested = inpututil.IsKeyJustPressed(ebiten.KeySpace)

	c.Confirm = inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter)
	c.Quit = inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ)

	for _, dk := range difficultyKeys {
		for _, k := range dk.keys {
			if inpututil.IsKeyJustPressed(k) {
				c.Pick = dk.d
			}
		}
	}

	if touches := g.pollTouches(); len(touches) > 0 {
		player := g.session.Snapshot().Player
		t := touchInput(touches, player.X+player.Width/2, object.PlayerWidth)
		c.Play.MoveLeft = c.Play.MoveLeft || t.MoveLeft
		c.Play.MoveRight = c.Play.MoveRight || t.MoveRight
		c.Play.FireRequested = c.Play.FireRequested || t.FireRequested
		c.Confirm = c.Confirm || t.FireRequested
	}

	return c
}

// pollTouches returns the active touches in play-area coordinates.
func (g *Game) pollTouches() []Touch {
	g.touchIDs = ebiten.AppendTouchIDs(g.touchIDs[:0])
	g.justIDs = inpututil.AppendJustPressedTouchIDs(g.justIDs[:0])
	g.touches = g.touches[:0]
	for _, id := range g.touchIDs {
		x, _ := ebiten.TouchPosition(id)
		just := false
		for _, j := range g.justIDs {
			if j == id {
				just = true
				break
			}
		}
		g.touches = append(g.touches, Touch{X: float64(x), JustPressed: just})
	}
	return g.touches
}
