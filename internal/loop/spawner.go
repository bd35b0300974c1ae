package loop

import (
	"context"
	"time"
)

// Ticker is the part of *time.Ticker the spawner uses.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// TickerFunc creates a Ticker firing every d.
type TickerFunc func(d time.Duration) Ticker

type timeTicker struct {
	t *time.Ticker
}

func (t timeTicker) C() <-chan time.Time { return t.t.C }
func (t timeTicker) Stop()               { t.t.Stop() }

// NewTimeTicker wraps time.NewTicker.
func NewTimeTicker(d time.Duration) Ticker {
	return timeTicker{t: time.NewTicker(d)}
}

// Spawner calls its spawn function on every tick of its ticker until it is
// cancelled. A Spawner is single-use: once cancelled it never starts again.
type Spawner struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// startSpawner runs spawn on every tick in a new goroutine.
func startSpawner(ctx context.Context, ticker Ticker, spawn func()) *Spawner {
	ctx, cancel := context.WithCancel(ctx)
	s := &Spawner{
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go func() {
		defer close(s.done)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C():
				// Both cases may be ready at once; cancellation wins.
				if ctx.Err() != nil {
					return
				}
				spawn()
			}
		}
	}()

	return s
}

// Cancel stops further spawns without waiting for the goroutine to exit.
func (s *Spawner) Cancel() {
	s.cancel()
}

// Stop cancels the spawner and waits for its goroutine to exit.
func (s *Spawner) Stop() {
	s.cancel()
	<-s.done
}

// Done is closed once the spawner's goroutine has exited.
func (s *Spawner) Done() <-chan struct{} {
	return s.done
}
