package landing

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/funnel/internal/middleware"
	"github.com/nfrund/funnel/internal/module"
	"github.com/nfrund/funnel/internal/registry"
)

// LandingModule serves the sales page.
type LandingModule struct {
	module.BaseModule

	mu     sync.Mutex
	cancel context.CancelFunc
}

// New creates a new instance of the LandingModule.
func New() *LandingModule {
	return &LandingModule{}
}

// Name returns the unique name for the module.
func (m *LandingModule) Name() string {
	return "landing"
}

// Boot mounts the routes, starts the analytics subscriber and, when
// configured, the content watcher.
func (m *LandingModule) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	cfg := reg.Config()
	store := registry.MustGet(reg, registry.ContentStoreKey)
	renderer := registry.MustGet(reg, registry.RendererKey)
	publisher := registry.MustGet(reg, registry.PublisherKey)
	subscriber := registry.MustGet(reg, registry.SubscriberKey)
	metrics := registry.MustGet(reg, registry.MetricsRegistererKey)

	motionJSON, err := registry.MustGet(reg, registry.MotionConfigKey).JSON()
	if err != nil {
		return err
	}

	runCtx, cancel := context.WithCancel(ctx)
	m.mu.Lock()
	m.cancel = cancel
	m.mu.Unlock()

	analytics, err := NewAnalytics(subscriber, metrics)
	if err != nil {
		return err
	}
	if err := analytics.Start(runCtx); err != nil {
		return err
	}

	if cfg.ContentFile != "" && cfg.ContentWatch {
		if err := store.Watch(runCtx, cfg.ContentFile); err != nil {
			return fmt.Errorf("failed to watch content: %w", err)
		}
		slog.Info("Watching page content", "path", cfg.ContentFile)
	}

	slog.Info("Booting LandingModule: Setting up routes...")
	h := NewHandler(store, renderer, publisher, []byte(motionJSON), cfg.CheckoutURL)

	g.GET("/", h.Page)
	g.GET("/faq/:index", h.FAQ, middleware.RateLimiter(cfg.RateLimit))
	g.GET(CheckoutPath, h.Checkout)
	return nil
}

// Shutdown stops the content watcher and the analytics subscriptions.
func (m *LandingModule) Shutdown(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	return nil
}
