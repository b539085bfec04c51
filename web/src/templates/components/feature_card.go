package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// FeatureCard renders a checkmark, a title and a description. Hover only
// changes colors.
func FeatureCard(title, description string) g.Node {
	return Div(
		Class("feature-card p-8 rounded-2xl flex flex-col gap-5 border-l-4 border-cyan-500 group cursor-default"),
		Div(
			Class("icon-box bg-cyan-700 w-12 h-12 rounded-xl flex items-center justify-center shrink-0"),
			Icon("check", 24, "text-white group-hover:text-black transition-colors"),
		),
		Div(
			H3(Class("text-xl text-cyan-400 font-sans font-bold mb-2 group-hover:text-cyan-300 transition-colors"), g.Text(title)),
			P(Class("text-gray-400 leading-relaxed group-hover:text-gray-200 transition-colors"), g.Text(description)),
		),
	)
}

// BenefitCard is the light variant used by the benefits grid.
func BenefitCard(title, description string) g.Node {
	return Div(
		Class("flex items-start gap-4 p-6 rounded-2xl bg-slate-50 border border-slate-100 hover:border-cyan-200 transition-colors shadow-sm hover:shadow-md"),
		Div(Class("bg-cyan-600 text-white p-2 rounded-lg shrink-0"), Icon("check", 24, "")),
		Div(
			H3(Class("text-2xl mb-2 text-black font-sans font-normal"), g.Text(title)),
			P(Class("text-gray-800 leading-relaxed"), g.Text(description)),
		),
	)
}

// StepCard renders one entry of the practical steps timeline.
func StepCard(icon, title, description string) g.Node {
	iconClass := "text-cyan-400"
	if icon == "play" {
		iconClass += " ml-1"
	}
	return Div(
		Class("flex gap-6 relative"),
		Revealable(),
		Div(
			Class("relative z-10 w-14 h-14 rounded-full bg-[#0f172a] border-2 border-cyan-500 flex items-center justify-center shrink-0 shadow-[0_0_15px_rgba(6,182,212,0.3)]"),
			Icon(icon, 24, iconClass),
		),
		Div(
			Class("flex-1 bg-white/5 backdrop-blur-md border border-white/10 p-6 rounded-2xl hover:border-cyan-500/30 transition-colors"),
			H3(Class("text-xl font-normal text-cyan-300 mb-2"), g.Text(title)),
			P(Class("text-gray-400 leading-relaxed"), g.Text(description)),
		),
	)
}
