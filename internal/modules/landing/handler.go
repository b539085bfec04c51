package landing

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/funnel/internal/content"
	"github.com/nfrund/funnel/internal/handlers"
	"github.com/nfrund/funnel/internal/middleware"
	"github.com/nfrund/funnel/internal/modules/landing/events"
	"github.com/nfrund/funnel/internal/pubsub"
	"github.com/nfrund/funnel/internal/rendering"
	"github.com/nfrund/funnel/web/src/templates/components"
	"github.com/nfrund/funnel/web/src/templates/pages"
)

// CheckoutPath is the tracked redirect the pricing link points at.
const CheckoutPath = "/go/checkout"

// Handler serves the landing page and its fragments.
type Handler struct {
	store        *content.Store
	renderer     rendering.Renderer
	publisher    pubsub.Publisher
	motionConfig []byte
	checkoutURL  string
	now          func() time.Time
}

// NewHandler creates the landing handler. motionConfig is embedded verbatim in every page.
func NewHandler(store *content.Store, renderer rendering.Renderer, publisher pubsub.Publisher, motionConfig []byte, checkoutURL string) *Handler {
	return &Handler{
		store:        store,
		renderer:     renderer,
		publisher:    publisher,
		motionConfig: motionConfig,
		checkoutURL:  checkoutURL,
		now:          time.Now,
	}
}

// Page renders the full landing page.
func (h *Handler) Page(c echo.Context) error {
	page := h.store.Page()
	component := pages.Landing(page, pages.Options{
		Year:         h.now().Year(),
		CheckoutHref: CheckoutPath + "?from=pricing",
		MotionConfig: h.motionConfig,
	})

	h.emitViewed(c)
	return h.renderer.RenderPage(c, http.StatusOK, component)
}

// FAQ renders one question in the requested state. Only the addressed entry
// is returned; its siblings stay as they are on the client.
func (h *Handler) FAQ(c echo.Context) error {
	var req handlers.FAQRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(err)
	}

	page := h.store.Page()
	if req.Index >= len(page.FAQ.Items) {
		return echo.NewHTTPError(http.StatusNotFound, "FAQ entry not found")
	}
	qa := page.FAQ.Items[req.Index]

	ctx := c.Request().Context()
	if err := pubsub.Publish(ctx, h.publisher, events.Toggled, events.FAQToggled{Index: req.Index, Open: req.Open}); err != nil {
		middleware.FromContext(ctx).Warn("Failed to publish FAQ toggle", "error", err)
	}

	item := components.AccordionItem{
		Index:    req.Index,
		Question: qa.Question,
		Answer:   qa.Answer,
		Open:     req.Open,
	}
	return h.renderer.RenderPage(c, http.StatusOK, components.Accordion(item))
}

// Checkout records the click and sends the visitor to the external checkout.
func (h *Handler) Checkout(c echo.Context) error {
	var req handlers.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(err)
	}
	if req.From == "" {
		req.From = "direct"
	}

	ctx := c.Request().Context()
	payload := events.CheckoutClicked{Source: req.From, Referrer: c.Request().Referer()}
	if err := pubsub.Publish(ctx, h.publisher, events.Clicked, payload); err != nil {
		middleware.FromContext(ctx).Warn("Failed to publish checkout click", "error", err)
	}

	return c.Redirect(http.StatusSeeOther, h.checkoutURL)
}

func (h *Handler) emitViewed(c echo.Context) {
	req := c.Request()
	payload := events.PageViewed{
		Path:      req.URL.Path,
		Referrer:  req.Referer(),
		UserAgent: req.UserAgent(),
	}
	if err := pubsub.Publish(req.Context(), h.publisher, events.Viewed, payload); err != nil {
		middleware.FromContext(req.Context()).Warn("Failed to publish page view", "error", err)
	}
}

func badRequest(err error) error {
	return echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
}
