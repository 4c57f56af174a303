package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	httpAdapter "github.com/iho/budgetbook/internal/adapter/http"
	"github.com/iho/budgetbook/internal/adapter/http/handler"
	"github.com/iho/budgetbook/internal/adapter/http/middleware"
	"github.com/iho/budgetbook/internal/infrastructure/config"
	"github.com/iho/budgetbook/internal/infrastructure/eventpublisher"
	"github.com/iho/budgetbook/internal/infrastructure/logger"
	"github.com/iho/budgetbook/internal/infrastructure/metrics"
	"github.com/iho/budgetbook/internal/infrastructure/storage"
	"github.com/iho/budgetbook/internal/usecase"
)

func main() {
	// Load configuration
	if err := config.LoadDotenv(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to read .env: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}

// app is the wired server before it starts listening.
type app struct {
	server    *http.Server
	ledgerUC  *usecase.LedgerUseCase
	events    *eventpublisher.EventPublisher
	storage   *storage.Ledger
	limiter   *middleware.RateLimiter
	shutdownT time.Duration
}

func newApp(ctx context.Context, cfg *config.Config, log zerolog.Logger, registry *prometheus.Registry) (*app, error) {
	m := metrics.NewWithRegistry(registry)

	// Storage
	st, err := storage.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}
	log.Info().Str("location", st.Repository.Location()).Msg("ledger storage ready")

	// Events
	events := eventpublisher.NewEventPublisher(eventpublisher.Config{
		Publishers: []eventpublisher.Publisher{
			eventpublisher.NewLogPublisher(log),
			eventpublisher.NewMetricsPublisher(m),
		},
		Logger: log,
	})

	// Use case
	ledgerUC := usecase.NewLedgerUseCase(usecase.LedgerConfig{
		Repository: st.Repository,
		Events:     events,
		AutoSave:   cfg.AutoSave,
	})

	found, err := ledgerUC.LoadOrInit(ctx)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("load ledger: %w", err)
	}
	if !found {
		log.Info().Msg("no stored ledger yet, starting empty")
	}

	// Handlers
	var limiter *middleware.RateLimiter
	if cfg.HTTPRateLimit > 0 {
		limiter = middleware.NewRateLimiter(cfg.HTTPRateLimit, cfg.HTTPRateBurst)
	}

	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		RecordHandler:  handler.NewRecordHandler(ledgerUC),
		SummaryHandler: handler.NewSummaryHandler(ledgerUC),
		LedgerHandler:  handler.NewLedgerHandler(ledgerUC, events, st.Repository.Location()),
		HealthHandler:  handler.NewHealthHandler(map[string]handler.Pinger{"storage": st}),
		Logger:         log,
		Metrics:        m,
		MetricsHandler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		RateLimiter:    limiter,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	return &app{
		server:    server,
		ledgerUC:  ledgerUC,
		events:    events,
		storage:   st,
		limiter:   limiter,
		shutdownT: cfg.HTTPShutdownTimeout,
	}, nil
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	a, err := newApp(ctx, cfg, log, registry)
	if err != nil {
		return err
	}
	defer a.storage.Close()

	eventsCtx, stopEvents := context.WithCancel(context.Background())
	eventsDone := make(chan struct{})
	go func() {
		defer close(eventsDone)
		_ = a.events.Start(eventsCtx)
	}()

	if a.limiter != nil {
		go pruneLimiter(ctx, a.limiter)
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
	case err := <-serveErr:
		if err != nil {
			stopEvents()
			<-eventsDone
			return err
		}
	}

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownT)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	if err := a.ledgerUC.Save(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("failed to save ledger on shutdown")
	}

	stopEvents()
	<-eventsDone

	log.Info().Msg("server stopped")
	return nil
}

func pruneLimiter(ctx context.Context, rl *middleware.RateLimiter) {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.Prune(time.Hour)
		}
	}
}
