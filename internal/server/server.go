package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/nfrund/funnel/internal/config"
	"github.com/nfrund/funnel/internal/content"
	"github.com/nfrund/funnel/internal/handlers"
	"github.com/nfrund/funnel/internal/middleware"
	"github.com/nfrund/funnel/internal/module"
	"github.com/nfrund/funnel/internal/motion"
	"github.com/nfrund/funnel/internal/pubsub"
	"github.com/nfrund/funnel/internal/registry"
	"github.com/nfrund/funnel/internal/rendering"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E        *echo.Echo
	Cfg      *config.Config
	Registry *registry.Registry
	Metrics  *prometheus.Registry

	bus            *pubsub.WatermillBridge
	modules        []module.Module
	cleanupTracing func()
}

// New wires the server: content, motion, event bus, metrics, middleware and
// every module in AppModules. Modules are registered and booted here.
func New(ctx context.Context, cfg *config.Config) (*Server, error) {
	tracer, cleanupTracing, err := pubsub.SetupOTel(ctx, cfg.Tracing)
	if err != nil {
		return nil, fmt.Errorf("failed to set up tracing: %w", err)
	}
	bus := pubsub.NewWatermillBridgeWithTracer(tracer)

	store := content.NewStore(content.Default())
	if cfg.ContentFile != "" {
		if err := store.Load(cfg.ContentFile); err != nil {
			cleanupTracing()
			return nil, err
		}
		slog.Info("Loaded page content", "path", cfg.ContentFile)
	}

	motionConfig := motion.Default()
	if err := motionConfig.Validate(); err != nil {
		cleanupTracing()
		return nil, err
	}

	metrics := prometheus.NewRegistry()
	metrics.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	renderer := rendering.NewUniversalRenderer()

	reg := registry.New(cfg)
	registry.Set(reg, registry.ContentStoreKey, store)
	registry.Set(reg, registry.MotionConfigKey, motionConfig)
	registry.Set[pubsub.Publisher](reg, registry.PublisherKey, bus)
	registry.Set[pubsub.Subscriber](reg, registry.SubscriberKey, bus)
	registry.Set[rendering.Renderer](reg, registry.RendererKey, renderer)
	registry.Set[prometheus.Registerer](reg, registry.MetricsRegistererKey, metrics)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.Renderer = renderer
	e.IPExtractor = echo.ExtractIPDirect()
	if cfg.TrustProxy {
		e.IPExtractor = echo.ExtractIPFromXFFHeader()
	}
	setupErrorHandling(e)

	e.Use(echomw.Recover())
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.Logger)
	e.Use(echomw.Logger())
	e.Use(metricsMiddleware(metrics))

	s := &Server{
		E:              e,
		Cfg:            cfg,
		Registry:       reg,
		Metrics:        metrics,
		bus:            bus,
		modules:        AppModules(),
		cleanupTracing: cleanupTracing,
	}
	s.RegisterRoutes()

	if err := s.bootModules(ctx); err != nil {
		s.bus.Close()
		cleanupTracing()
		return nil, err
	}
	return s, nil
}
