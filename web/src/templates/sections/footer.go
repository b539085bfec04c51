package sections

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/funnel/internal/content"
	c "github.com/nfrund/funnel/web/src/templates/components"
)

// PageFooter renders the legal strip. The year comes from the caller so a render is reproducible.
func PageFooter(f content.Footer, year int) g.Node {
	return Footer(
		Class("py-10 bg-black border-t border-white/5 text-center text-gray-500 text-sm"),
		Div(
			Class("container mx-auto px-4"),
			P(g.Text("© "+strconv.Itoa(year)+" - "+f.Company)),
			P(Class("mt-2"), g.Text(f.TaxID)),
			Div(
				Class("flex justify-center gap-6 mt-4"),
				g.Map(f.Links, func(l content.Link) g.Node {
					return A(Href(l.URL), Class("hover:text-cyan-500"), g.Text(l.Label))
				}),
			),
			Div(
				Class("flex justify-center gap-4 mt-6"),
				A(Href("#"), Aria("label", "Instagram"), c.Icon("instagram", 20, "hover:text-cyan-500 cursor-pointer")),
				A(Href("#"), Aria("label", "YouTube"), c.Icon("youtube", 20, "hover:text-cyan-500 cursor-pointer")),
			),
		),
	)
}
