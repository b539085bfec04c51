package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const textureURL = "https://www.transparenttextures.com/patterns/carbon-fibre.png"

// HeroBackground is the purely visual backdrop behind the hero.
func HeroBackground() g.Node {
	return Div(
		Class("absolute inset-0 z-0 overflow-hidden pointer-events-none"),
		Aria("hidden", "true"),
		Div(Class("absolute inset-0 bg-[#020617]")),
		Div(Class("absolute top-[-10%] left-[-5%] w-[600px] h-[600px] bg-cyan-600/20 blur-[120px] rounded-full animate-pulse")),
		Div(Class("absolute bottom-[20%] right-[-5%] w-[500px] h-[500px] bg-blue-900/30 blur-[100px] rounded-full")),
		Div(Class("absolute top-[30%] left-[20%] w-[300px] h-[300px] bg-teal-600/10 blur-[80px] rounded-full")),
		Div(Class("absolute inset-0 opacity-[0.03]"), g.Attr("style", "background-image: url('"+textureURL+"')")),
		Div(
			Class("absolute top-0 right-0 w-1/3 h-full bg-gradient-to-l from-blue-950/20 to-transparent"),
			g.Attr("style", "clip-path: polygon(100% 0, 0 0, 100% 100%)"),
		),
		Div(
			Class("absolute bottom-0 left-0 w-full h-32 bg-white"),
			g.Attr("style", "clip-path: polygon(0 100%, 100% 100%, 100% 0)"),
		),
		Div(Class("absolute inset-0 hero-grid")),
	)
}
