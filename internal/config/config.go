package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Version is the build version, set with -ldflags "-X github.com/nfrund/funnel/internal/config.Version=...".
var Version = "dev"

// Config holds all configuration for the application.
type Config struct {
	// Addr is the listen address of the HTTP server.
	Addr       string `env:"ADDR" envDefault:":8080"`
	AppBaseURL string `env:"APP_BASE_URL" envDefault:"http://localhost:8080"`

	// CheckoutURL is the external payment processor page behind /go/checkout.
	CheckoutURL string `env:"CHECKOUT_URL" envDefault:"https://pay.hotmart.com/"`

	// ContentFile optionally points at a YAML overlay for the page copy.
	ContentFile  string `env:"CONTENT_FILE"`
	ContentWatch bool   `env:"CONTENT_WATCH" envDefault:"false"`

	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"debug"`

	// RateLimit is the number of fragment requests per minute allowed per IP.
	RateLimit int `env:"RATE_LIMIT" envDefault:"120"`
	// TrustProxy takes the client IP from X-Forwarded-For when the request
	// comes from a private or loopback address. Otherwise the peer address is used.
	TrustProxy bool `env:"TRUST_PROXY" envDefault:"false"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	Tracing TracingConfig
}

// TracingConfig controls OpenTelemetry tracing of the event bus.
type TracingConfig struct {
	Enabled     bool   `env:"PUBSUB_TRACING_ENABLED" envDefault:"false"`
	ServiceName string `env:"PUBSUB_TRACING_SERVICE_NAME" envDefault:"funnel"`
	ZipkinURL   string `env:"PUBSUB_TRACING_ZIPKIN_URL" envDefault:"http://localhost:9411/api/v2/spans"`
}

// New loads configuration from the .env file (when present) and the environment.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	return Parse()
}

// Parse reads the configuration from the current environment only.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.RateLimit <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT must be positive, got %d", cfg.RateLimit)
	}
	return cfg, nil
}
