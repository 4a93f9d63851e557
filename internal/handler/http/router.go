// Package http wires the review endpoints, operational endpoints and the
// shared middleware chain into a chi router.
package http

import (
	"log/slog"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mockmate/reviews-service/pkg/health"
	"github.com/mockmate/reviews-service/pkg/middleware"
)

const serviceName = "reviews"

// RouterConfig carries the handler dependencies and request policy knobs.
type RouterConfig struct {
	ReviewHandler  *ReviewHandler
	HealthHandler  *health.Handler
	Logger         *slog.Logger
	AllowedOrigins []string
	Environment    string
}

// NewRouter builds the HTTP router for the reviews service.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.CORS(middleware.CORSConfig{
		AllowedOrigins: cfg.AllowedOrigins,
		Environment:    cfg.Environment,
	}))
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(chimiddleware.Compress(5))
	r.Use(chimiddleware.Timeout(30 * time.Second))
	r.Use(middleware.RequestLogging(cfg.Logger))
	r.Use(middleware.Tracing(serviceName))
	r.Use(middleware.PrometheusMetrics(serviceName))

	r.Get("/health/live", cfg.HealthHandler.LivenessHandler())
	r.Get("/health/ready", cfg.HealthHandler.ReadinessHandler())
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1/reviews", func(r chi.Router) {
		r.Use(ContentTypeJSON)
		r.Get("/", cfg.ReviewHandler.ListReviews)
		r.Post("/", cfg.ReviewHandler.CreateReview)
		r.Put("/", cfg.ReviewHandler.VoteHelpful)
	})

	return r
}
