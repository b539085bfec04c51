package components

import (
	"fmt"
	"html"

	g "maragu.dev/gomponents"
)

// Icon paths from the Lucide set (ISC licence), 24x24 viewBox, stroke based.
var iconPaths = map[string]string{
	"check":        `<path d="M20 6 9 17l-5-5"/>`,
	"chevron-down": `<path d="m6 9 6 6 6-6"/>`,
	"chevron-up":   `<path d="m18 15-6-6-6 6"/>`,
	"arrow-down":   `<path d="M12 5v14"/><path d="m19 12-7 7-7-7"/>`,
	"globe":        `<circle cx="12" cy="12" r="10"/><path d="M12 2a14.5 14.5 0 0 0 0 20 14.5 14.5 0 0 0 0-20"/><path d="M2 12h20"/>`,
	"play":         `<polygon points="6 3 20 12 6 21 6 3"/>`,
	"trending-up":  `<polyline points="22 7 13.5 15.5 8.5 10.5 2 17"/><polyline points="16 7 22 7 22 13"/>`,
	"award":        `<path d="m15.477 12.89 1.515 8.526a.5.5 0 0 1-.81.47l-3.58-2.687a1 1 0 0 0-1.197 0l-3.586 2.686a.5.5 0 0 1-.81-.469l1.514-8.526"/><circle cx="12" cy="8" r="6"/>`,
	"instagram":    `<rect width="20" height="20" x="2" y="2" rx="5" ry="5"/><path d="M16 11.37A4 4 0 1 1 12.63 8 4 4 0 0 1 16 11.37z"/><line x1="17.5" x2="17.51" y1="6.5" y2="6.5"/>`,
	"youtube":      `<path d="M2.5 17a24.12 24.12 0 0 1 0-10 2 2 0 0 1 1.4-1.4 49.56 49.56 0 0 1 16.2 0A2 2 0 0 1 21.5 7a24.12 24.12 0 0 1 0 10 2 2 0 0 1-1.4 1.4 49.55 49.55 0 0 1-16.2 0A2 2 0 0 1 2.5 17"/><path d="m10 15 5-3-5-3z"/>`,
}

// Icon renders an inline, decorative SVG icon. Unknown names render nothing.
func Icon(name string, size int, class string) g.Node {
	paths, ok := iconPaths[name]
	if !ok {
		return nil
	}
	return g.Raw(fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" class="%s" aria-hidden="true">%s</svg>`,
		size, size, html.EscapeString(class), paths,
	))
}

// Stars renders n decorative star glyphs.
func Stars(n int, class string) g.Node {
	stars := make(g.Group, 0, n)
	for i := 0; i < n; i++ {
		stars = append(stars, g.El("span", g.Attr("class", class), g.Text("★")))
	}
	return stars
}
