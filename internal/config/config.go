package config

import (
	"fmt"
	"time"

	pkgconfig "github.com/mockmate/reviews-service/pkg/config"
)

// demoKeyPlaceholder is the placeholder credential that also forces demo
// mode, kept for compatibility with existing deployments of the web app.
const demoKeyPlaceholder = "demo-key"

// Config holds all configuration for the reviews service.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// HTTP server
	HTTPPort int `env:"REVIEWS_HTTP_PORT" envDefault:"8010"`

	// External JSON document store. An empty API key switches the whole
	// process into demo mode for its lifetime.
	StoreAPIURL  string        `env:"STORE_API_URL" envDefault:"https://api.jsonbin.io/v3/b"`
	StoreBinID   string        `env:"STORE_BIN_ID" envDefault:"675a1b2e1f5677401f2a3c4d"`
	StoreAPIKey  string        `env:"STORE_API_KEY"`
	StoreTimeout time.Duration `env:"STORE_TIMEOUT" envDefault:"5s"`

	// Kafka
	KafkaBrokers []string `env:"KAFKA_BROKERS" envDefault:"localhost:9092" envSeparator:","`

	// CORS
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`

	// Tracing
	TracingEnabled bool    `env:"TRACING_ENABLED" envDefault:"false"`
	OTLPEndpoint   string  `env:"OTLP_ENDPOINT" envDefault:"localhost:4318"`
	TraceSample    float64 `env:"TRACE_SAMPLE_RATE" envDefault:"1.0"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := pkgconfig.Load(cfg); err != nil {
		return nil, fmt.Errorf("load reviews config: %w", err)
	}
	if cfg.HTTPPort < 1 || cfg.HTTPPort > 65535 {
		return nil, fmt.Errorf("invalid HTTP port: %d", cfg.HTTPPort)
	}
	if cfg.StoreTimeout <= 0 {
		return nil, fmt.Errorf("invalid store timeout: %s", cfg.StoreTimeout)
	}
	return cfg, nil
}

// DemoMode reports whether the process runs against the in-memory store
// instead of the external document store. Evaluated once at startup; there
// is no runtime toggle.
func (c *Config) DemoMode() bool {
	return c.StoreAPIKey == "" || c.StoreAPIKey == demoKeyPlaceholder
}

// BinURL returns the document endpoint for the configured bin.
func (c *Config) BinURL() string {
	return fmt.Sprintf("%s/%s", c.StoreAPIURL, c.StoreBinID)
}
