package loop

import (
	"context"
	"errors"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/cannonfall/internal/object"
)

// ErrNotStarted is returned by Restart before the first Start.
var ErrNotStarted = errors.New("loop: session not started")

// Session owns one game: its World, the target spawner and the lifecycle
// around them. The frame driver calls Tick; the spawner goroutine appends
// targets. Both take the same lock, so neither ever sees the other's
// half-applied changes.
type Session struct {
	ctx context.Context

	life sync.Mutex // Serialises Start, Restart and Stop

	mu      sync.Mutex // Guards everything below
	world   *World
	spawner *Spawner
	gen     uint64 // Bumped whenever the current spawner is replaced or stopped
	started bool
	running bool
	last    Frame
	rng     *rand.Rand

	newTicker  TickerFunc
	onGameOver func(score int)
	logger     *log.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

// WithOnGameOver registers a hook called once per game, with the final score,
// after the tick that ended it. The hook runs outside the session lock.
func WithOnGameOver(fn func(score int)) Option {
	return func(s *Session) {
		s.onGameOver = fn
	}
}

// WithTicker replaces the spawner's clock.
func WithTicker(fn TickerFunc) Option {
	return func(s *Session) {
		s.newTicker = fn
	}
}

// WithRand sets the random source used for target placement.
func WithRand(r *rand.Rand) Option {
	return func(s *Session) {
		s.rng = r
	}
}

// NewSession creates an idle session for a play area of the given size.
// Cancelling ctx stops any running spawner; it does not end the game.
func NewSession(ctx context.Context, width, height float64, opts ...Option) *Session {
	s := &Session{
		ctx:       ctx,
		world:     NewWorld(width, height, Easy),
		newTicker: NewTimeTicker,
		logger:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	s.last = frameOf(s.world)
	return s
}

// Start resets the world under difficulty d and starts a new spawner. Any
// spawner from an earlier game is stopped first, and its goroutine has exited
// by the time the new one starts.
func (s *Session) Start(d Difficulty) {
	s.life.Lock()
	defer s.life.Unlock()
	s.start(d)
	s.logger.Info("game started", "difficulty", d.Name)
}

// Restart starts a new game with the last difficulty.
func (s *Session) Restart() error {
	s.life.Lock()
	defer s.life.Unlock()

	s.mu.Lock()
	started, d := s.started, s.world.Difficulty
	s.mu.Unlock()
	if !started {
		return ErrNotStarted
	}

	s.start(d)
	s.logger.Info("game restarted", "difficulty", d.Name)
	return nil
}

// Stop halts the game and waits for the spawner to exit. Later ticks are
// no-ops until the next Start.
func (s *Session) Stop() {
	s.life.Lock()
	defer s.life.Unlock()
	s.stopSpawner()
}

// start must be called with s.life held.
func (s *Session) start(d Difficulty) {
	s.stopSpawner()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.world.Reset(d)
	s.started = true
	s.running = true
	gen := s.gen
	s.spawner = startSpawner(s.ctx, s.newTicker(d.SpawnInterval), func() {
		s.spawn(gen)
	})
	s.last = frameOf(s.world)
}

// stopSpawner invalidates and stops the current spawner. It waits for the
// spawner goroutine without holding s.mu, since that goroutine may be
// blocked on s.mu inside spawn.
func (s *Session) stopSpawner() {
	s.mu.Lock()
	old := s.spawner
	s.spawner = nil
	s.running = false
	s.gen++
	s.mu.Unlock()

	if old != nil {
		old.Stop()
	}
}

// spawn appends one target, unless the spawner that called it has been
// replaced or the game is over.
func (s *Session) spawn(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen || !s.running {
		return
	}
	w := s.world
	w.AddTarget(object.NewTargetAbove(s.rng, w.Width, w.Difficulty.TargetSpeed))
}

// Tick runs one simulation step and returns the rendered frame and whether
// the game continues. Once the game is over, or before it starts, Tick
// returns the last frame and false without changing anything.
func (s *Session) Tick(in Input) (Frame, bool) {
	s.mu.Lock()
	if !s.running {
		f := s.last
		s.mu.Unlock()
		return f, false
	}

	cont := Step(s.world, in)
	s.last = frameOf(s.world)
	f, ticks := s.last, s.world.Ticks

	var hook func(int)
	if !cont {
		s.running = false
		s.gen++
		if s.spawner != nil {
			s.spawner.Cancel()
		}
		hook = s.onGameOver
	}
	s.mu.Unlock()

	if !cont {
		s.logger.Info("game over", "score", f.Score, "ticks", ticks)
		if hook != nil {
			hook(f.Score)
		}
	}
	return f, cont
}

// Frame returns the most recently rendered frame.
func (s *Session) Frame() Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// Snapshot returns a deep copy of the world.
func (s *Session) Snapshot() World {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.world.Clone()
}

// Running reports whether a game is in progress.
func (s *Session) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Started reports whether Start has ever been called.
func (s *Session) Started() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.started
}

// Score returns the current score.
func (s *Session) Score() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.world.Score
}

// Difficulty returns the difficulty of the current or last game.
func (s *Session) Difficulty() Difficulty {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.world.Difficulty
}
