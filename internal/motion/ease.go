package motion

import (
	"fmt"
	"math"
	"strings"
)

// Ease names an easing curve using GSAP's vocabulary.
type Ease string

const (
	Linear     Ease = "none"
	Power1In   Ease = "power1.in"
	Power1Out  Ease = "power1.out"
	Power1Both Ease = "power1.inOut"
	Power2In   Ease = "power2.in"
	Power2Out  Ease = "power2.out"
	Power2Both Ease = "power2.inOut"
	Power3In   Ease = "power3.in"
	Power3Out  Ease = "power3.out"
	Power3Both Ease = "power3.inOut"
)

// Func returns the curve mapping linear progress in [0,1] to eased progress.
// powerN is a polynomial of degree N+1.
func (e Ease) Func() (func(float64) float64, error) {
	name := string(e)
	if name == "" || name == "none" || name == "linear" {
		return func(p float64) float64 { return p }, nil
	}

	base, mode, ok := strings.Cut(name, ".")
	if !ok {
		mode = "out"
	}
	var degree float64
	switch base {
	case "power1":
		degree = 2
	case "power2":
		degree = 3
	case "power3":
		degree = 4
	case "power4":
		degree = 5
	default:
		return nil, fmt.Errorf("unknown ease %q", name)
	}

	in := func(p float64) float64 { return math.Pow(p, degree) }
	switch mode {
	case "in":
		return in, nil
	case "out":
		return func(p float64) float64 { return 1 - in(1-p) }, nil
	case "inOut":
		return func(p float64) float64 {
			if p < 0.5 {
				return in(p*2) / 2
			}
			return 1 - in((1-p)*2)/2
		}, nil
	default:
		return nil, fmt.Errorf("unknown ease mode %q", name)
	}
}
