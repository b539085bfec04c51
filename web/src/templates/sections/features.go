package sections

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/funnel/internal/content"
	c "github.com/nfrund/funnel/web/src/templates/components"
)

// Features is the program feature grid. Its cards reveal in sequence, triggered by the grid itself.
func Features(f content.Features) g.Node {
	return Section(
		ID("features"),
		Class("py-20 bg-[#020617]"),
		Data("stagger", ""),
		Div(
			Class("container mx-auto px-4"),
			c.Heading(f.Heading),
			Div(
				Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-3 gap-8 mt-12"),
				g.Map(f.Items, func(item content.Item) g.Node {
					return Div(
						Class("feature-card-item"),
						Data("stagger-item", ""),
						c.FeatureCard(item.Title, item.Description),
					)
				}),
			),
		),
	)
}
