package sections

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/funnel/internal/content"
	c "github.com/nfrund/funnel/web/src/templates/components"
)

// Benefits is the light introduction section with its benefit grid.
func Benefits(b content.Benefits) g.Node {
	return Section(
		ID("benefits"),
		Class("py-24 bg-white text-[#020617] relative z-10"),
		Div(
			Class("container mx-auto px-4"),
			Div(
				Class("max-w-3xl mx-auto text-center mb-16"),
				c.Revealable(),
				H2(Class("text-4xl md:text-5xl font-anton mb-6 leading-tight"), g.Text(b.Title)),
				// Intro is sanitized when the content is loaded.
				P(Class("text-lg text-gray-600"), g.Raw(b.Intro.String())),
			),
			Div(
				Class("grid grid-cols-1 md:grid-cols-2 gap-6 max-w-5xl mx-auto"),
				c.Revealable(),
				g.Map(b.Items, func(item content.Item) g.Node {
					return c.BenefitCard(item.Title, item.Description)
				}),
			),
		),
	)
}
