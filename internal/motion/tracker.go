package motion

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	// ErrAlreadyAttached is returned when targets are registered a second time.
	ErrAlreadyAttached = errors.New("reveal targets already attached")
	// ErrDetached is returned when a detached tracker is reused.
	ErrDetached = errors.New("tracker detached")
)

// Target is a revealable element with its final layout geometry, in document pixels.
type Target struct {
	ID     string
	Top    float64
	Height float64
}

// Tracker models one-shot scroll reveals: each target fires at most once, the
// first time its start edge crosses the trigger line, and never hides again.
type Tracker struct {
	mu       sync.Mutex
	start    Start
	viewport float64
	offset   float64
	targets  []Target
	revealed map[string]bool
	attached bool
	detached bool
}

// NewTracker creates a tracker for a viewport height and trigger.
func NewTracker(viewport float64, trigger Trigger) (*Tracker, error) {
	if viewport <= 0 {
		return nil, fmt.Errorf("viewport height must be positive, got %v", viewport)
	}
	start, err := ParseStart(trigger.Start)
	if err != nil {
		return nil, err
	}
	return &Tracker{
		start:    start,
		viewport: viewport,
		revealed: make(map[string]bool),
	}, nil
}

// Attach registers the fixed target set. It runs once, against final layout,
// and immediately reveals whatever is already past the trigger line.
func (t *Tracker) Attach(targets []Target) ([]string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.detached {
		return nil, ErrDetached
	}
	if t.attached {
		return nil, ErrAlreadyAttached
	}
	t.attached = true
	t.targets = append([]Target(nil), targets...)
	sort.SliceStable(t.targets, func(i, j int) bool { return t.targets[i].Top < t.targets[j].Top })

	return t.evaluate(), nil
}

// Scroll moves the viewport to offset and returns the targets revealed by the move, in document order.
func (t *Tracker) Scroll(offset float64) []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.attached || t.detached {
		return nil
	}
	t.offset = offset
	return t.evaluate()
}

func (t *Tracker) evaluate() []string {
	line := t.offset + t.start.Viewport*t.viewport
	var fired []string
	for _, target := range t.targets {
		if t.revealed[target.ID] {
			continue
		}
		if target.Top+t.start.Edge*target.Height <= line {
			t.revealed[target.ID] = true
			fired = append(fired, target.ID)
		}
	}
	return fired
}

// Revealed reports whether the target has fired.
func (t *Tracker) Revealed(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.revealed[id]
}

// Pending returns the targets that have not fired yet, in document order.
func (t *Tracker) Pending() []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	var ids []string
	for _, target := range t.targets {
		if !t.revealed[target.ID] {
			ids = append(ids, target.ID)
		}
	}
	return ids
}

// Detach drops every observer. Later scrolls are ignored.
func (t *Tracker) Detach() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.detached = true
	t.targets = nil
}
