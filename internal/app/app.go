// Package app wires together all dependencies and runs the reviews service.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/mockmate/reviews-service/internal/config"
	"github.com/mockmate/reviews-service/internal/event"
	handler "github.com/mockmate/reviews-service/internal/handler/http"
	"github.com/mockmate/reviews-service/internal/repository"
	"github.com/mockmate/reviews-service/internal/repository/jsonbin"
	"github.com/mockmate/reviews-service/internal/repository/memory"
	"github.com/mockmate/reviews-service/internal/service"
	"github.com/mockmate/reviews-service/pkg/health"
	"github.com/mockmate/reviews-service/pkg/httpclient"
	pkgkafka "github.com/mockmate/reviews-service/pkg/kafka"
)

// App holds the running components of the reviews service.
type App struct {
	cfg        *config.Config
	logger     *slog.Logger
	producer   *pkgkafka.Producer
	httpServer *http.Server
}

// NewApp creates a new application instance, initializing all dependencies.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	// Pick the review store. Without a real API key the whole process runs
	// against the seeded in-memory store for its lifetime.
	var (
		store    repository.ReviewStore
		fallback = memory.NewSeeded()
	)

	healthHandler := health.NewHandler()

	if cfg.DemoMode() {
		store = fallback
		logger.Warn("no store API key configured, running in demo mode")
	} else {
		clientCfg := httpclient.DefaultConfig()
		clientCfg.Timeout = cfg.StoreTimeout
		cbClient := httpclient.NewCircuitBreakerClient(
			httpclient.New(clientCfg),
			httpclient.DefaultCircuitBreakerConfig("jsonbin"),
			logger,
		)

		jsonbinStore := jsonbin.New(cbClient, cfg.BinURL(), cfg.StoreAPIKey, logger)
		store = jsonbinStore
		healthHandler.Register("jsonbin", jsonbinStore.Ping)
		logger.Info("using external document store",
			slog.String("bin_url", cfg.BinURL()),
		)
	}

	// Kafka producer for domain events.
	kafkaCfg := pkgkafka.DefaultProducerConfig(cfg.KafkaBrokers)
	producer := pkgkafka.NewProducer(kafkaCfg, logger)
	healthHandler.Register("kafka", producer.Ping)
	logger.Info("kafka producer initialized", slog.Any("brokers", cfg.KafkaBrokers))

	// Build the dependency graph.
	eventProducer := event.NewProducer(producer, logger)
	reviewService := service.NewReviewService(store, fallback, cfg.DemoMode(), eventProducer, logger)
	reviewHandler := handler.NewReviewHandler(reviewService, logger)

	router := handler.NewRouter(handler.RouterConfig{
		ReviewHandler:  reviewHandler,
		HealthHandler:  healthHandler,
		Logger:         logger,
		AllowedOrigins: cfg.CORSAllowedOrigins,
		Environment:    cfg.Environment,
	})

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &App{
		cfg:        cfg,
		logger:     logger,
		producer:   producer,
		httpServer: httpServer,
	}, nil
}

// Run starts the HTTP server and blocks until the context is canceled.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("starting HTTP server",
			slog.String("addr", a.httpServer.Addr),
			slog.Bool("demo_mode", a.cfg.DemoMode()),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.Shutdown()
}

// Shutdown gracefully stops all components.
func (a *App) Shutdown() error {
	a.logger.Info("shutting down application...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("http server shutdown error", slog.String("error", err.Error()))
	}

	if err := a.producer.Close(); err != nil {
		a.logger.Error("kafka producer close error", slog.String("error", err.Error()))
	}

	a.logger.Info("application shutdown complete")
	return nil
}
