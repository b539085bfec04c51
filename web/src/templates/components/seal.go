package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/funnel/internal/content"
	"github.com/nfrund/funnel/internal/motion"
)

// GuaranteeSeal renders the badge. Its float, ring and sheen loops belong to
// the seal motion scope and live exactly as long as this element.
func GuaranteeSeal(seal content.Seal) g.Node {
	return Div(
		Class("relative inline-flex justify-center items-center p-10"),
		g.Attr(motion.ScopeAttr, motion.SealScope),
		Div(Class("absolute inset-0 bg-amber-500/30 blur-[60px] rounded-full animate-pulse")),
		Div(
			Class("seal-container relative z-10"),
			Div(Class("seal-ring absolute -inset-4 border-[3px] border-dashed border-amber-500/60 rounded-full")),
			Div(
				Class("w-56 h-56 bg-gradient-to-br from-[#f59e0b] via-[#d97706] to-[#b45309] rounded-full flex flex-col items-center justify-center shadow-[0_20px_50px_rgba(217,119,6,0.5)] border-4 border-white/20 relative overflow-hidden ring-4 ring-amber-500/20"),
				Div(Class("seal-sheen absolute inset-0 bg-gradient-to-tr from-transparent via-white to-transparent skew-x-12 w-full h-full")),
				Div(
					Class("relative z-10 text-center text-white drop-shadow-[0_2px_4px_rgba(0,0,0,0.3)]"),
					Div(Class("flex items-center justify-center gap-1 mb-1"), Stars(5, "text-[10px] text-amber-200")),
					Span(Class("block font-anton text-8xl leading-[0.8]"), g.Text(strconv.Itoa(seal.Days))),
					Span(Class("block font-anton text-2xl tracking-[0.2em] uppercase mt-1"), g.Text(seal.Unit)),
					Div(Class("w-12 h-0.5 bg-white/50 mx-auto my-2 rounded-full")),
					Span(Class("block text-[10px] font-bold uppercase tracking-[0.3em] text-amber-100"), g.Text(seal.Label)),
				),
			),
		),
	)
}
