package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/iho/budgetbook/internal/adapter/http/handler"
	"github.com/iho/budgetbook/internal/adapter/http/middleware"
	"github.com/iho/budgetbook/internal/infrastructure/metrics"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	RecordHandler  *handler.RecordHandler
	SummaryHandler *handler.SummaryHandler
	LedgerHandler  *handler.LedgerHandler
	HealthHandler  *handler.HealthHandler

	Logger zerolog.Logger
	// Metrics enables request metrics when set.
	Metrics *metrics.Metrics
	// MetricsHandler serves /metrics; defaults to the default gatherer.
	MetricsHandler http.Handler
	// RateLimiter throttles /api/v1 when set.
	RateLimiter *middleware.RateLimiter
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Recovery(cfg.Logger))
	if cfg.Metrics != nil {
		r.Use(middleware.NewMetricsMiddleware(cfg.Metrics).Wrap)
	}

	// Health endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)

	metricsHandler := cfg.MetricsHandler
	if metricsHandler == nil {
		metricsHandler = promhttp.Handler()
	}
	r.Method(http.MethodGet, "/metrics", metricsHandler)

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		if cfg.RateLimiter != nil {
			r.Use(cfg.RateLimiter.Limit)
		}

		// Records
		r.Route("/records", func(r chi.Router) {
			r.Post("/", cfg.RecordHandler.Create)
			r.Get("/", cfg.RecordHandler.List)
			r.Get("/displayed/{n}", cfg.RecordHandler.Displayed)
			r.Get("/{id}", cfg.RecordHandler.Get)
			r.Patch("/{id}", cfg.RecordHandler.Update)
			r.Delete("/{id}", cfg.RecordHandler.Delete)
		})

		// Aggregates
		r.Get("/summary", cfg.SummaryHandler.Totals)
		r.Get("/summary/month", cfg.SummaryHandler.Monthly)
		r.Get("/summary/month/{period}", cfg.SummaryHandler.Monthly)
		r.Get("/categories/{kind}", cfg.SummaryHandler.Categories)

		// Ledger
		r.Route("/ledger", func(r chi.Router) {
			r.Post("/save", cfg.LedgerHandler.Save)
			r.Post("/load", cfg.LedgerHandler.Load)
			r.Get("/events", cfg.LedgerHandler.Events)
		})
	})

	return r
}
