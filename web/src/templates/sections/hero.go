package sections

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/funnel/internal/content"
	c "github.com/nfrund/funnel/web/src/templates/components"
)

// Hero is the first screen: brand badge, headline, video placeholder and call to action.
func Hero(h content.Hero) g.Node {
	return Section(
		ID("hero"),
		Class("relative min-h-[110vh] flex flex-col items-center justify-center px-4 pt-20 pb-40 overflow-hidden"),
		c.HeroBackground(),
		Div(
			Class("max-w-4xl w-full text-center z-10"),
			Div(
				Class("mx-auto mb-8 bg-white/10 backdrop-blur-md px-6 py-2 rounded-full inline-block border border-white/20"),
				c.Revealable(),
				Span(Class("font-anton tracking-widest text-cyan-400"), g.Text(h.Brand)),
			),
			H1(
				Class("text-4xl md:text-7xl mb-6 leading-tight"),
				c.Revealable(),
				g.Text(h.Headline+" "),
				Br(),
				Span(Class("bg-gradient-to-r from-cyan-600 to-blue-800 px-4 py-1 inline-block mt-2 shadow-xl"), g.Text(h.HeadlineHighlight)),
			),
			Div(
				Class("pulse-text flex items-center justify-center gap-2 text-cyan-400 font-bold mb-8"),
				c.Revealable(),
				c.Icon("arrow-down", 20, ""),
				Span(g.Text(h.Prompt)),
				c.Icon("arrow-down", 20, ""),
			),
			Div(
				Class("relative aspect-video w-full max-w-3xl mx-auto rounded-2xl overflow-hidden border-4 border-cyan-900/50 shadow-[0_0_50px_rgba(6,182,212,0.2)] mb-12 bg-black/40 backdrop-blur-sm flex items-center justify-center group cursor-pointer"),
				c.Revealable(),
				Div(
					Class("absolute inset-0 flex items-center justify-center bg-black/40 group-hover:bg-black/20 transition-all"),
					Div(
						Class("w-20 h-20 bg-cyan-600 rounded-full flex items-center justify-center shadow-lg group-hover:scale-110 transition-transform"),
						c.Icon("globe", 40, "text-white"),
					),
				),
				P(Class("z-10 text-white/50 px-4 text-center"), g.Text(h.VideoPlaceholder)),
			),
			Div(
				c.Revealable(),
				c.GameButton(h.CTA, c.CheckoutAnchor, "font-normal"),
			),
			P(Class("mt-6 text-gray-400 italic"), c.Revealable(), g.Text(h.SocialProof)),
		),
	)
}
