package motion

import (
	"encoding/json"
	"fmt"
	"time"
)

// Selectors the page markup and the browser shim agree on.
const (
	RevealSelector       = "[data-reveal]"
	StaggerGroupSelector = "[data-stagger]"
	StaggerItemSelector  = "[data-stagger-item]"
	ScopeAttr            = "data-motion-scope"
	ScrollTargetAttr     = "data-scroll-target"
)

// SealScope names the guarantee seal's loops.
const SealScope = "seal"

// Reveal applies a tween to every element matching Selector. When Group is set,
// elements are revealed per enclosing group, which also acts as the trigger.
type Reveal struct {
	Selector string `json:"selector"`
	Group    string `json:"group,omitempty"`
	Tween    Tween  `json:"tween"`
}

// Config is the page's complete motion description.
type Config struct {
	Reveal  Reveal             `json:"reveal"`
	Stagger Reveal             `json:"stagger"`
	Scopes  map[string][]Tween `json:"scopes"`
}

// Default returns the motion of the landing page.
func Default() Config {
	return Config{
		Reveal: Reveal{
			Selector: RevealSelector,
			Tween: Tween{
				Target:   RevealSelector,
				From:     Vars{"opacity": 0, "y": 30},
				To:       Vars{"opacity": 1, "y": 0},
				Duration: time.Second,
				Ease:     Power3Out,
				Trigger:  &Trigger{Start: "top 85%", Once: true},
			},
		},
		Stagger: Reveal{
			Selector: StaggerItemSelector,
			Group:    StaggerGroupSelector,
			Tween: Tween{
				Target:   StaggerItemSelector,
				From:     Vars{"opacity": 0, "y": 100},
				To:       Vars{"opacity": 1, "y": 0},
				Duration: 800 * time.Millisecond,
				Ease:     Power3Out,
				Stagger:  150 * time.Millisecond,
				Trigger:  &Trigger{Start: "top 75%", Once: true},
			},
		},
		Scopes: map[string][]Tween{
			SealScope: SealLoops(),
		},
	}
}

// SealLoops returns the guarantee seal's three independent loops: float, ring and sheen.
func SealLoops() []Tween {
	return []Tween{
		{
			Target:   ".seal-container",
			To:       Vars{"y": -15},
			Duration: 2 * time.Second,
			Ease:     Power1Both,
			Repeat:   Forever,
			Yoyo:     true,
		},
		{
			Target:   ".seal-ring",
			To:       Vars{"rotation": 360},
			Duration: 20 * time.Second,
			Ease:     Linear,
			Repeat:   Forever,
		},
		{
			Target:      ".seal-sheen",
			From:        Vars{"x": "-200%", "opacity": 0},
			To:          Vars{"x": "200%", "opacity": 0.6},
			Duration:    1500 * time.Millisecond,
			Ease:        Power2Both,
			Repeat:      Forever,
			RepeatDelay: 3 * time.Second,
		},
	}
}

// Scope builds a runnable scope from the named loops.
func (c Config) Scope(name string) (*Scope, error) {
	loops, ok := c.Scopes[name]
	if !ok {
		return nil, fmt.Errorf("unknown motion scope %q", name)
	}
	return NewScope(name, loops...), nil
}

// Validate checks every tween of the config.
func (c Config) Validate() error {
	if err := c.Reveal.Tween.Validate(); err != nil {
		return fmt.Errorf("reveal: %w", err)
	}
	if err := c.Stagger.Tween.Validate(); err != nil {
		return fmt.Errorf("stagger: %w", err)
	}
	for name, loops := range c.Scopes {
		for _, loop := range loops {
			if err := loop.Validate(); err != nil {
				return fmt.Errorf("scope %s: %w", name, err)
			}
		}
	}
	return nil
}

// JSON encodes the config for embedding into the page.
func (c Config) JSON() (string, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to encode motion config: %w", err)
	}
	return string(data), nil
}

// Marquee concatenates items with themselves so a strip translated by half its
// width loops seamlessly: when the first copy leaves, the second is in place.
func Marquee[T any](items []T) []T {
	out := make([]T, 0, 2*len(items))
	out = append(out, items...)
	return append(out, items...)
}
