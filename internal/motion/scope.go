package motion

import (
	"context"
	"errors"
	"sync"
	"time"
)

var (
	// ErrScopeRunning is returned by Start when the scope is already running.
	ErrScopeRunning = errors.New("scope already running")
	// ErrScopeReverting is returned by Start while Revert waits for the loops to stop.
	ErrScopeReverting = errors.New("scope is reverting")
)

// Frame is one sample of a running loop.
type Frame struct {
	Scope   string
	Target  string
	Elapsed time.Duration
	Values  map[string]float64
}

// Scope groups loops that share a component's lifetime: they start together
// and are reverted together.
type Scope struct {
	Name  string
	Loops []Tween

	mu        sync.Mutex
	cancel    context.CancelFunc
	reverting bool
	wg        sync.WaitGroup
	active    int
}

// NewScope creates a scope over the given loops.
func NewScope(name string, loops ...Tween) *Scope {
	return &Scope{Name: name, Loops: loops}
}

// Start runs every loop as its own repeating task sampling at interval.
// Finite loops stop after their final frame; infinite ones run until Revert or ctx ends.
func (s *Scope) Start(ctx context.Context, interval time.Duration, fn func(Frame)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.reverting {
		return ErrScopeReverting
	}
	if s.cancel != nil {
		return ErrScopeRunning
	}
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	began := time.Now()
	for _, loop := range s.Loops {
		s.wg.Add(1)
		s.active++
		go s.run(ctx, loop, began, interval, fn)
	}
	return nil
}

func (s *Scope) run(ctx context.Context, loop Tween, began time.Time, interval time.Duration, fn func(Frame)) {
	defer func() {
		s.mu.Lock()
		s.active--
		s.mu.Unlock()
		s.wg.Done()
	}()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			// Revert may have raced the tick.
			if ctx.Err() != nil {
				return
			}
			elapsed := now.Sub(began)
			_, done := loop.Progress(elapsed)
			fn(Frame{Scope: s.Name, Target: loop.Target, Elapsed: elapsed, Values: loop.Sample(elapsed)})
			if done {
				return
			}
		}
	}
}

// Active returns the number of loops still running.
func (s *Scope) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Revert cancels every loop and waits for them to stop. No frame is
// delivered after Revert returns. The scope can be started again afterwards,
// but not while Revert is still waiting.
func (s *Scope) Revert() {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	if cancel != nil {
		s.reverting = true
	}
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	s.wg.Wait()

	s.mu.Lock()
	s.reverting = false
	s.mu.Unlock()
}
