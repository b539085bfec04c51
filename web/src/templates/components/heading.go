package components

import (
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/funnel/internal/content"
)

// SectionTitle renders a centered, revealable section heading around arbitrary inline content.
func SectionTitle(class string, children ...g.Node) g.Node {
	return H2(
		Class(strings.TrimSpace("text-4xl md:text-6xl font-anton text-center mb-8 "+class)),
		Revealable(),
		g.Group(children),
	)
}

// Heading renders a content heading with its highlighted tail.
func Heading(h content.Heading) g.Node {
	return SectionTitle("", HeadingText(h, "text-cyan-500"))
}

// HeadingText renders the heading's inline content without the wrapper.
func HeadingText(h content.Heading, highlightClass string) g.Node {
	if h.Highlight == "" {
		return g.Text(h.Text)
	}
	return g.Group{
		g.Text(h.Text + " "),
		Span(Class(highlightClass), g.Text(h.Highlight)),
	}
}

// Revealable flags an element for the one-shot scroll reveal.
func Revealable() g.Node {
	return g.Attr("data-reveal")
}
