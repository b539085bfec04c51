package sections

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/funnel/internal/content"
	c "github.com/nfrund/funnel/web/src/templates/components"
)

// FAQItems builds the view-models for the questions, all closed.
func FAQItems(f content.FAQ) []c.AccordionItem {
	items := make([]c.AccordionItem, len(f.Items))
	for i, qa := range f.Items {
		items[i] = c.AccordionItem{Index: i, Question: qa.Question, Answer: qa.Answer}
	}
	return items
}

// FAQ renders the question list. With static set the entries toggle in the
// browser instead of fetching fragments from the server.
func FAQ(f content.FAQ, static bool) g.Node {
	render := c.Accordion
	if static {
		render = c.StaticAccordion
	}
	return Section(
		ID("faq"),
		Class("py-20 bg-[#020617]"),
		Div(
			Class("container mx-auto px-4 max-w-3xl"),
			c.Heading(f.Heading),
			Div(
				Class("mt-12"),
				c.Revealable(),
				g.Map(FAQItems(f), render),
			),
		),
	)
}
