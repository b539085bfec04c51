package sections

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/funnel/internal/content"
	c "github.com/nfrund/funnel/web/src/templates/components"
)

// Guarantee is the risk-free pitch next to the animated seal. Both columns reveal on scroll.
func Guarantee(gu content.Guarantee) g.Node {
	return Section(
		ID("guarantee"),
		Class("py-20 bg-white text-[#020617] overflow-hidden"),
		Div(
			Class("container mx-auto px-4 flex flex-col md:flex-row items-center justify-between gap-12"),
			Div(
				Class("md:w-1/2"),
				c.Revealable(),
				H2(Class("text-4xl font-anton mb-6 text-[#020617]"), c.HeadingText(gu.Heading, "text-cyan-600")),
				P(Class("text-lg text-gray-600 mb-6"), g.Text(gu.Body)),
				P(Class("font-bold text-xl italic"), g.Text(gu.Closing)),
			),
			Div(
				Class("md:w-1/3 flex justify-center text-center"),
				c.Revealable(),
				c.GuaranteeSeal(gu.Seal),
			),
		),
	)
}
