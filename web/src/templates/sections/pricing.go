package sections

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/funnel/internal/content"
	c "github.com/nfrund/funnel/web/src/templates/components"
)

// Pricing is the offer card. Its section carries the id every call to action scrolls to.
// checkoutHref is where the purchase link points.
func Pricing(p content.Pricing, checkoutHref string) g.Node {
	return Section(
		ID(c.CheckoutAnchor),
		Class("py-20 bg-gradient-to-b from-[#0f172a] to-black"),
		Div(
			Class("container mx-auto px-4 text-center"),
			H2(Class("text-3xl font-anton text-cyan-400 mb-2"), g.Text(p.Headline)),
			P(Class("text-xl mb-12"), g.Text(p.Subheadline)),
			Div(
				Class("max-w-md mx-auto card-dark p-10 rounded-3xl border-2 border-cyan-500 shadow-[0_0_50px_rgba(6,182,212,0.3)]"),
				H3(Class("text-2xl font-anton mb-4"), g.Text(p.Plan)),
				P(Class("text-gray-400 line-through text-xl"), Data("price", "original"), g.Text("De: "+p.Original.Full())),
				Div(
					Class("my-6"),
					P(Class("text-lg font-bold"), g.Text(p.OfferLead)),
					P(Class("text-7xl font-anton text-cyan-500"), Data("price", "offer"), g.Text(p.Offer.Short())),
					P(Class("text-cyan-300 font-bold italic"), g.Text(p.Installments)),
				),
				Div(
					Class("space-y-4 text-sm text-gray-300 mb-8"),
					P(g.Text(p.Payment)),
					P(Class("underline font-bold"), g.Text(p.Access)),
				),
				Div(
					Class("flex justify-center items-center gap-2 mb-6"),
					c.Icon("check", 16, "text-green-500"),
					Span(Class("text-xs uppercase tracking-widest font-bold"), g.Text(p.Secure)),
				),
				c.GameLink(p.CTA, checkoutHref, "w-full text-lg"),
			),
		),
	)
}
