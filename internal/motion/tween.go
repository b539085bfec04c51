package motion

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Forever is the Repeat value of a loop that never ends.
const Forever = -1

// Vars holds animated properties. Values are numbers or unit strings such as "-200%".
type Vars map[string]any

// Tween animates the properties of Target from From to To.
// Properties missing from From start at zero, their resting value.
type Tween struct {
	Target      string
	From        Vars
	To          Vars
	Duration    time.Duration
	Ease        Ease
	Repeat      int
	Yoyo        bool
	RepeatDelay time.Duration
	Stagger     time.Duration
	Trigger     *Trigger
}

// Infinite reports whether the tween loops forever.
func (t Tween) Infinite() bool { return t.Repeat < 0 }

// Validate checks the tween can be played.
func (t Tween) Validate() error {
	if t.Target == "" {
		return fmt.Errorf("tween has no target")
	}
	if t.Duration <= 0 {
		return fmt.Errorf("tween %s: duration must be positive", t.Target)
	}
	if _, err := t.Ease.Func(); err != nil {
		return fmt.Errorf("tween %s: %w", t.Target, err)
	}
	if t.Trigger != nil {
		if _, err := ParseStart(t.Trigger.Start); err != nil {
			return fmt.Errorf("tween %s: %w", t.Target, err)
		}
	}
	return nil
}

// Progress returns the eased progress at elapsed time and whether the tween has finished.
func (t Tween) Progress(elapsed time.Duration) (float64, bool) {
	ease, err := t.Ease.Func()
	if err != nil {
		ease, _ = Linear.Func()
	}
	if t.Duration <= 0 {
		return ease(1), true
	}
	if elapsed < 0 {
		elapsed = 0
	}

	if !t.Infinite() {
		total := time.Duration(t.Repeat+1)*t.Duration + time.Duration(t.Repeat)*t.RepeatDelay
		if elapsed >= total {
			raw := 1.0
			if t.Yoyo && t.Repeat%2 == 1 {
				raw = 0
			}
			return ease(raw), true
		}
	}

	cycle := t.Duration + t.RepeatDelay
	iteration := int(elapsed / cycle)
	within := elapsed - time.Duration(iteration)*cycle

	raw := float64(within) / float64(t.Duration)
	if raw > 1 {
		raw = 1
	}
	if t.Yoyo && iteration%2 == 1 {
		raw = 1 - raw
	}
	return ease(raw), false
}

// Sample interpolates every numeric property of To at elapsed time.
func (t Tween) Sample(elapsed time.Duration) map[string]float64 {
	p, _ := t.Progress(elapsed)
	values := make(map[string]float64, len(t.To))
	for key, to := range t.To {
		end, ok := number(to)
		if !ok {
			continue
		}
		start, _ := number(t.From[key])
		values[key] = start + (end-start)*p
	}
	return values
}

// number extracts the numeric part of a property value.
func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimRight(n, "%pxdeg"), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

type tweenJSON struct {
	Target      string   `json:"target"`
	From        Vars     `json:"from,omitempty"`
	To          Vars     `json:"to"`
	Duration    float64  `json:"duration"`
	Ease        Ease     `json:"ease"`
	Repeat      int      `json:"repeat,omitempty"`
	Yoyo        bool     `json:"yoyo,omitempty"`
	RepeatDelay float64  `json:"repeatDelay,omitempty"`
	Stagger     float64  `json:"stagger,omitempty"`
	Trigger     *Trigger `json:"scrollTrigger,omitempty"`
}

// MarshalJSON encodes durations in seconds, the unit GSAP expects.
func (t Tween) MarshalJSON() ([]byte, error) {
	return json.Marshal(tweenJSON{
		Target:      t.Target,
		From:        t.From,
		To:          t.To,
		Duration:    t.Duration.Seconds(),
		Ease:        t.Ease,
		Repeat:      t.Repeat,
		Yoyo:        t.Yoyo,
		RepeatDelay: t.RepeatDelay.Seconds(),
		Stagger:     t.Stagger.Seconds(),
		Trigger:     t.Trigger,
	})
}
