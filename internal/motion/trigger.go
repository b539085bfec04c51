package motion

import (
	"fmt"
	"strconv"
	"strings"
)

// Trigger starts a tween when its element scrolls into position.
type Trigger struct {
	// Start uses ScrollTrigger's "<element edge> <viewport position>" syntax, e.g. "top 85%".
	Start string `json:"start"`
	// Once kills the trigger after the first activation.
	Once bool `json:"once"`
}

// Start is a parsed trigger start position.
type Start struct {
	// Edge is the element's anchor as a fraction of its height: top 0, center 0.5, bottom 1.
	Edge float64
	// Viewport is the viewport line as a fraction of its height, from the top.
	Viewport float64
}

// ParseStart parses "top 85%", "center center", "bottom 100%" and similar.
func ParseStart(s string) (Start, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return Start{}, fmt.Errorf("invalid trigger start %q", s)
	}
	edge, err := position(fields[0])
	if err != nil {
		return Start{}, fmt.Errorf("invalid trigger start %q: %w", s, err)
	}
	viewport, err := position(fields[1])
	if err != nil {
		return Start{}, fmt.Errorf("invalid trigger start %q: %w", s, err)
	}
	return Start{Edge: edge, Viewport: viewport}, nil
}

func position(word string) (float64, error) {
	switch word {
	case "top":
		return 0, nil
	case "center":
		return 0.5, nil
	case "bottom":
		return 1, nil
	}
	pct, ok := strings.CutSuffix(word, "%")
	if !ok {
		return 0, fmt.Errorf("unknown position %q", word)
	}
	v, err := strconv.ParseFloat(pct, 64)
	if err != nil {
		return 0, fmt.Errorf("unknown position %q", word)
	}
	return v / 100, nil
}
