package pages

import (
	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/nfrund/funnel/internal/content"
	"github.com/nfrund/funnel/internal/view"
	"github.com/nfrund/funnel/web/src/templates/layouts"
	"github.com/nfrund/funnel/web/src/templates/sections"
)

// Options carries the per-render inputs that are not content.
type Options struct {
	Year         int
	CheckoutHref string
	// StaticFAQ renders the questions for browser-side toggling.
	StaticFAQ    bool
	MotionConfig []byte
	AssetPrefix  string
}

// Body renders the sections in their fixed order.
func Body(page *content.Page, opts Options) g.Node {
	return h.Main(
		h.Class("relative"),
		sections.Hero(page.Hero),
		sections.Benefits(page.Benefits),
		sections.Carousel(page.Carousel),
		sections.Ticker(page.Ticker),
		sections.Steps(page.Steps),
		sections.Features(page.Features),
		sections.Mentor(page.Mentor),
		sections.Pricing(page.Pricing, opts.CheckoutHref),
		sections.Guarantee(page.Guarantee),
		sections.FAQ(page.FAQ, opts.StaticFAQ),
		sections.PageFooter(page.Footer, opts.Year),
	)
}

// Landing is the full document.
func Landing(page *content.Page, opts Options) templ.Component {
	meta := layouts.Meta{
		Title:        page.Title,
		Description:  page.Description,
		MotionConfig: opts.MotionConfig,
		AssetPrefix:  opts.AssetPrefix,
	}
	return layouts.Base(meta, view.AdaptGomponentToTempl(Body(page, opts)))
}
