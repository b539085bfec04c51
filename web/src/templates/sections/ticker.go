package sections

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/funnel/internal/content"
)

// Ticker is the scrolling text strip between the carousel and the steps.
func Ticker(t content.Ticker) g.Node {
	items := make(g.Group, 0, t.Repeat)
	for i := 0; i < t.Repeat; i++ {
		items = append(items, Span(Class("text-2xl font-anton mx-8"), g.Text(t.Text)))
	}
	return Div(
		Class("bg-cyan-700 py-4 overflow-hidden border-y-2 border-cyan-400 relative z-10"),
		Aria("hidden", "true"),
		Div(Class("sliding-container"), items),
	)
}
