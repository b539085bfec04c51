package sections

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/funnel/internal/content"
	"github.com/nfrund/funnel/internal/motion"
	c "github.com/nfrund/funnel/web/src/templates/components"
)

// Carousel renders the testimonial marquee. The track holds the images twice
// so the CSS loop translating it by half its width never shows a seam.
func Carousel(cr content.Carousel) g.Node {
	track := motion.Marquee(cr.Images)

	slides := make(g.Group, 0, len(track))
	for i, src := range track {
		slides = append(slides, slide(i, src, cr.Caption))
	}

	return Section(
		ID("results"),
		Class("py-20 bg-[#020617] overflow-hidden relative"),
		Div(Class("container mx-auto px-4 mb-10"), c.Heading(cr.Heading)),
		Div(
			Class("w-full relative"),
			Div(Class("absolute left-0 top-0 bottom-0 w-12 md:w-32 bg-gradient-to-r from-[#020617] to-transparent z-10 pointer-events-none")),
			Div(Class("absolute right-0 top-0 bottom-0 w-12 md:w-32 bg-gradient-to-l from-[#020617] to-transparent z-10 pointer-events-none")),
			Div(Class("animate-scroll flex gap-6 px-4"), Data("marquee", ""), slides),
		),
		Div(
			Class("mt-12 text-center relative z-20"),
			c.Revealable(),
			c.GameButton(cr.CTA, c.CheckoutAnchor, ""),
		),
	)
}

func slide(i int, src, caption string) g.Node {
	return Div(
		Class("marquee-item w-[180px] md:w-[220px] aspect-[9/16] shrink-0 rounded-2xl overflow-hidden border border-cyan-500/30 relative group shadow-[0_0_20px_rgba(6,182,212,0.1)]"),
		Img(
			Src(src),
			Alt(fmt.Sprintf("História de sucesso %d", i+1)),
			g.Attr("loading", "lazy"),
			Class("w-full h-full object-cover transition-transform duration-500 group-hover:scale-105"),
		),
		Div(
			Class("absolute inset-0 bg-gradient-to-t from-black/90 via-transparent to-transparent opacity-0 group-hover:opacity-100 transition-opacity duration-300 flex items-end p-4"),
			Div(
				Div(Class("flex text-amber-400 mb-1"), c.Stars(5, "text-xs")),
				P(Class("text-white font-bold text-sm"), g.Text(caption)),
			),
		),
	)
}
