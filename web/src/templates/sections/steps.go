package sections

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/funnel/internal/content"
	c "github.com/nfrund/funnel/web/src/templates/components"
)

// Steps is the "how it works in practice" timeline.
func Steps(s content.Steps) g.Node {
	return Section(
		ID("steps"),
		Class("py-20 bg-[#020617] relative overflow-hidden"),
		Div(
			Class("container mx-auto px-4 max-w-3xl relative z-10"),
			c.Heading(s.Heading),
			Div(
				Class("mt-12 flex flex-col gap-8 relative"),
				Div(Class("absolute left-[27px] top-6 bottom-6 w-0.5 bg-gradient-to-b from-cyan-500/50 to-transparent")),
				g.Map(s.Items, func(step content.Step) g.Node {
					return c.StepCard(step.Icon, step.Title, step.Description)
				}),
			),
			Div(
				Class("mt-12 text-center"),
				c.Revealable(),
				c.GameButton(s.CTA, c.CheckoutAnchor, ""),
			),
		),
	)
}
