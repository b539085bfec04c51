package layouts

import (
	"context"
	"encoding/json"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/nfrund/funnel/internal/view"
)

// MotionConfigID is the id of the JSON script the browser motion shim reads.
const MotionConfigID = "motion-config"

// Meta is the document-level data of a page.
type Meta struct {
	Title       string
	Description string
	// MotionConfig is the serialized motion configuration embedded in the head.
	MotionConfig []byte
	// AssetPrefix is prepended to local asset paths; empty for the live server.
	AssetPrefix string
}

// Base wraps body in the document shell: head metadata, styles, the motion
// runtime and its configuration.
func Base(meta Meta, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!doctype html><html lang="pt-BR"><head>`); err != nil {
			return err
		}
		if err := view.AdaptGomponentToTempl(head(meta)).Render(ctx, w); err != nil {
			return err
		}
		if len(meta.MotionConfig) > 0 {
			if err := templ.JSONScript(MotionConfigID, json.RawMessage(meta.MotionConfig)).Render(ctx, w); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</head><body class="bg-[#020617] text-white font-sans selection:bg-cyan-500 selection:text-white overflow-x-hidden">`); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}

func head(meta Meta) g.Node {
	return g.Group{
		h.Meta(h.Charset("utf-8")),
		h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
		h.TitleEl(g.Text(CalculateTitle(meta.Title))),
		g.If(meta.Description != "", h.Meta(h.Name("description"), h.Content(meta.Description))),
		h.Link(h.Rel("preconnect"), h.Href("https://fonts.googleapis.com")),
		h.Link(h.Rel("stylesheet"), h.Href("https://fonts.googleapis.com/css2?family=Anton&family=Inter:wght@400;600;700;900&display=swap")),
		h.Script(h.Src("https://cdn.tailwindcss.com")),
		h.Link(h.Rel("stylesheet"), h.Href(meta.AssetPrefix+"/static/css/funnel.css")),
		h.Script(h.Src("https://unpkg.com/htmx.org@2.0.4"), h.Defer()),
		h.Script(h.Src("https://cdn.jsdelivr.net/npm/gsap@3.12.5/dist/gsap.min.js"), h.Defer()),
		h.Script(h.Src("https://cdn.jsdelivr.net/npm/gsap@3.12.5/dist/ScrollTrigger.min.js"), h.Defer()),
		h.Script(h.Src(meta.AssetPrefix+"/static/js/motion.js"), h.Defer()),
	}
}
