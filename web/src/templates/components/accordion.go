package components

import (
	"fmt"
	"strconv"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"
)

// AccordionItem is the view-model of one FAQ entry. Open is owned by this
// entry alone; toggling it never touches a sibling.
type AccordionItem struct {
	Index    int
	Question string
	Answer   string
	Open     bool
}

// Toggled returns the entry in the opposite state.
func (a AccordionItem) Toggled() AccordionItem {
	a.Open = !a.Open
	return a
}

// ToggleURL is the fragment endpoint that renders the entry in the opposite state.
func (a AccordionItem) ToggleURL() string {
	return fmt.Sprintf("/faq/%d?open=%t", a.Index, !a.Open)
}

// ElementID is the DOM id of the entry.
func (a AccordionItem) ElementID() string {
	return fmt.Sprintf("faq-%d", a.Index)
}

func (a AccordionItem) answerID() string {
	return a.ElementID() + "-answer"
}

// Accordion renders the entry. A header click swaps only this entry for its
// toggled rendering. While closed the answer is not in the markup at all.
func Accordion(a AccordionItem) g.Node {
	return Div(
		ID(a.ElementID()),
		Class("faq-item border-b border-white/10"),
		Button(
			Type("button"),
			Class("w-full py-6 flex justify-between items-center text-left hover:text-cyan-400 transition-colors"),
			hx.Get(a.ToggleURL()),
			hx.Target("#"+a.ElementID()),
			hx.Swap("outerHTML"),
			Aria("expanded", strconv.FormatBool(a.Open)),
			Aria("controls", a.answerID()),
			accordionHeader(a),
		),
		g.If(a.Open, accordionAnswer(a)),
	)
}

// StaticAccordion renders the entry for pages served without the fragment
// endpoint. The answer lives in an inert <template> that the browser shim
// mounts on open and removes on close.
func StaticAccordion(a AccordionItem) g.Node {
	return Div(
		ID(a.ElementID()),
		Class("faq-item border-b border-white/10"),
		Data("faq-static", ""),
		Button(
			Type("button"),
			Class("w-full py-6 flex justify-between items-center text-left hover:text-cyan-400 transition-colors"),
			Data("faq-toggle", ""),
			Aria("expanded", "false"),
			Aria("controls", a.answerID()),
			accordionHeader(a),
		),
		g.El("template", accordionAnswer(a)),
	)
}

func accordionHeader(a AccordionItem) g.Node {
	chevron := "chevron-down"
	if a.Open {
		chevron = "chevron-up"
	}
	return g.Group{
		Span(Class("text-lg font-bold"), g.Text(a.Question)),
		Span(Class("faq-chevron"), Data("icon", chevron), Icon(chevron, 24, "")),
	}
}

func accordionAnswer(a AccordionItem) g.Node {
	return Div(
		ID(a.answerID()),
		Class("pb-6 text-gray-400 animate-in slide-in-from-top-2 duration-300"),
		P(g.Text(a.Answer)),
	)
}
