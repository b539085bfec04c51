package landing

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/nfrund/funnel/internal/modules/landing/events"
	"github.com/nfrund/funnel/internal/pubsub"
)

// Analytics turns landing events into log lines and Prometheus counters.
type Analytics struct {
	subscriber pubsub.Subscriber

	views     prometheus.Counter
	toggles   *prometheus.CounterVec
	checkouts *prometheus.CounterVec
}

// NewAnalytics creates the subscriber and registers its counters on reg.
func NewAnalytics(sub pubsub.Subscriber, reg prometheus.Registerer) (*Analytics, error) {
	a := &Analytics{
		subscriber: sub,
		views: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "funnel",
			Name:      "page_views_total",
			Help:      "Full landing page renders.",
		}),
		toggles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "funnel",
			Name:      "faq_toggles_total",
			Help:      "FAQ entries opened or closed, by entry and resulting state.",
		}, []string{"index", "open"}),
		checkouts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "funnel",
			Name:      "checkout_clicks_total",
			Help:      "Redirects to the external checkout, by call to action.",
		}, []string{"source"}),
	}

	for _, c := range []prometheus.Collector{a.views, a.toggles, a.checkouts} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register landing metrics: %w", err)
		}
	}
	return a, nil
}

// Start subscribes to every landing event. Delivery stops when ctx is
// canceled or the bus is closed.
func (a *Analytics) Start(ctx context.Context) error {
	slog.Info("Starting landing analytics subscriber")

	if err := pubsub.Subscribe(ctx, a.subscriber, events.Viewed, a.handleViewed); err != nil {
		return fmt.Errorf("subscribe %s: %w", events.Viewed.Name(), err)
	}
	if err := pubsub.Subscribe(ctx, a.subscriber, events.Toggled, a.handleToggled); err != nil {
		return fmt.Errorf("subscribe %s: %w", events.Toggled.Name(), err)
	}
	if err := pubsub.Subscribe(ctx, a.subscriber, events.Clicked, a.handleClicked); err != nil {
		return fmt.Errorf("subscribe %s: %w", events.Clicked.Name(), err)
	}
	return nil
}

func (a *Analytics) handleViewed(ctx context.Context, e events.PageViewed) error {
	a.views.Inc()
	slog.DebugContext(ctx, "Page viewed", "path", e.Path, "referrer", e.Referrer)
	return nil
}

func (a *Analytics) handleToggled(ctx context.Context, e events.FAQToggled) error {
	a.toggles.WithLabelValues(strconv.Itoa(e.Index), strconv.FormatBool(e.Open)).Inc()
	slog.DebugContext(ctx, "FAQ toggled", "index", e.Index, "open", e.Open)
	return nil
}

func (a *Analytics) handleClicked(ctx context.Context, e events.CheckoutClicked) error {
	a.checkouts.WithLabelValues(e.Source).Inc()
	slog.InfoContext(ctx, "Checkout clicked", "source", e.Source, "referrer", e.Referrer)
	return nil
}
