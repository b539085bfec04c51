package components

import (
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// CheckoutAnchor is the id of the pricing section every call to action scrolls to.
const CheckoutAnchor = "checkout"

// corners are the four decorative accents drawn on every game button.
func corners() g.Node {
	return g.Group{
		Span(Class("square top-left")),
		Span(Class("square top-right")),
		Span(Class("square bottom-right")),
		Span(Class("square bottom-left")),
	}
}

func buttonClass(extra string) string {
	return strings.TrimSpace("game-button " + extra)
}

// GameButton renders a call to action. When scrollTarget is set the browser
// smooth-scrolls to that anchor on click, and does nothing if it is missing.
func GameButton(text, scrollTarget, class string) g.Node {
	return Button(
		Type("button"),
		Class(buttonClass(class)),
		g.If(scrollTarget != "", Data("scroll-target", scrollTarget)),
		P(g.Text(text)),
		corners(),
	)
}

// GameLink is a call to action styled as a game button that navigates to href
// in a new tab.
func GameLink(text, href, class string) g.Node {
	return A(
		Href(href),
		Target("_blank"),
		Rel("noopener noreferrer"),
		Class(buttonClass(class)),
		P(g.Text(text)),
		corners(),
	)
}
