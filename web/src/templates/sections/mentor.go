package sections

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/funnel/internal/content"
	c "github.com/nfrund/funnel/web/src/templates/components"
)

// Mentor is the specialist bio with a photo.
func Mentor(m content.Mentor) g.Node {
	return Section(
		ID("mentor"),
		Class("py-20 bg-white text-black"),
		Div(
			Class("container mx-auto px-4 flex flex-col md:flex-row items-center gap-12"),
			Div(
				Class("md:w-1/2 order-2 md:order-1"),
				c.Revealable(),
				H2(Class("text-5xl font-anton mb-6"), g.Text(m.Title)),
				Div(
					Class("space-y-4 text-lg text-gray-700 leading-relaxed"),
					g.Map(m.Paragraphs, func(p content.Rich) g.Node {
						return P(g.Raw(p.String()))
					}),
				),
			),
			Div(
				Class("md:w-1/2 order-1 md:order-2"),
				c.Revealable(),
				Div(
					Class("aspect-[4/5] bg-gray-100 rounded-3xl overflow-hidden shadow-2xl relative group"),
					Img(Src(m.PhotoURL), Alt(m.PhotoAlt), g.Attr("loading", "lazy"), Class("w-full h-full object-cover transition-transform duration-700 hover:scale-105")),
					Div(Class("absolute inset-0 bg-gradient-to-t from-cyan-900/20 to-transparent pointer-events-none")),
				),
			),
		),
	)
}
