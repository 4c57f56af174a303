// Package eventpublisher fans ledger events out to publishers and keeps a
// bounded history of the most recent ones.
package eventpublisher

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/iho/budgetbook/internal/domain"
	"github.com/iho/budgetbook/internal/infrastructure/metrics"
)

// Publisher receives every emitted event.
type Publisher interface {
	Publish(ctx context.Context, event domain.Event) error
}

// Config for EventPublisher.
type Config struct {
	Publishers  []Publisher
	Logger      zerolog.Logger
	QueueSize   int // Events buffered before Emit starts dropping
	HistorySize int // Events kept for Recent
}

// EventPublisher implements usecase.EventSink. Emit never blocks; events are
// delivered by Start or Drain.
type EventPublisher struct {
	publishers []Publisher
	logger     zerolog.Logger
	queue      chan domain.Event

	mu      sync.Mutex
	history []domain.Event
	limit   int
	dropped int
}

// NewEventPublisher creates a new EventPublisher.
func NewEventPublisher(cfg Config) *EventPublisher {
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 256
	}
	if cfg.HistorySize <= 0 {
		cfg.HistorySize = 100
	}

	return &EventPublisher{
		publishers: cfg.Publishers,
		logger:     cfg.Logger,
		queue:      make(chan domain.Event, cfg.QueueSize),
		limit:      cfg.HistorySize,
	}
}

// Emit records event in the history and queues it for the publishers.
func (ep *EventPublisher) Emit(ctx context.Context, event domain.Event) {
	ep.mu.Lock()
	ep.history = append(ep.history, event)
	if len(ep.history) > ep.limit {
		ep.history = ep.history[len(ep.history)-ep.limit:]
	}
	ep.mu.Unlock()

	select {
	case ep.queue <- event:
	default:
		ep.mu.Lock()
		ep.dropped++
		ep.mu.Unlock()
		ep.logger.Warn().Str("event_type", event.Type).Msg("event queue full, dropping event")
	}
}

// Recent returns the retained events, oldest first.
func (ep *EventPublisher) Recent() []domain.Event {
	ep.mu.Lock()
	defer ep.mu.Unlock()

	out := make([]domain.Event, len(ep.history))
	copy(out, ep.history)
	return out
}

// Dropped reports how many events never reached the queue.
func (ep *EventPublisher) Dropped() int {
	ep.mu.Lock()
	defer ep.mu.Unlock()
	return ep.dropped
}

// Start delivers queued events until ctx is cancelled, then drains what is
// left and returns ctx.Err().
func (ep *EventPublisher) Start(ctx context.Context) error {
	ep.logger.Info().
		Int("queue_size", cap(ep.queue)).
		Int("publishers", len(ep.publishers)).
		Msg("event publisher started")

	for {
		select {
		case <-ctx.Done():
			ep.Drain(context.WithoutCancel(ctx))
			ep.logger.Info().Msg("event publisher shutting down")
			return ctx.Err()
		case event := <-ep.queue:
			ep.publishEvent(ctx, event)
		}
	}
}

// Drain delivers every queued event and returns.
func (ep *EventPublisher) Drain(ctx context.Context) {
	for {
		select {
		case event := <-ep.queue:
			ep.publishEvent(ctx, event)
		default:
			return
		}
	}
}

// publishEvent hands event to every publisher. A failing publisher does not
// stop the others.
func (ep *EventPublisher) publishEvent(ctx context.Context, event domain.Event) {
	for _, p := range ep.publishers {
		if err := p.Publish(ctx, event); err != nil {
			ep.logger.Error().
				Err(err).
				Str("event_type", event.Type).
				Str("record_id", event.RecordID).
				Msg("failed to publish event")
		}
	}
}

// LogPublisher writes each event as a structured log line.
type LogPublisher struct {
	logger zerolog.Logger
}

// NewLogPublisher creates a new LogPublisher.
func NewLogPublisher(logger zerolog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

// Publish logs the event.
func (p *LogPublisher) Publish(ctx context.Context, event domain.Event) error {
	e := p.logger.Info().
		Str("event_type", event.Type).
		Int("record_count", event.RecordCount).
		Str("balance", event.Balance.String()).
		Time("occurred_at", event.OccurredAt)

	if event.RecordID != "" {
		e = e.Str("record_id", event.RecordID).
			Str("kind", string(event.Kind)).
			Str("amount", event.Amount.String()).
			Str("category", event.Category)
	}

	e.Msg("ledger event")
	return nil
}

// MetricsPublisher turns events into counters and ledger gauges.
type MetricsPublisher struct {
	metrics *metrics.Metrics
}

// NewMetricsPublisher creates a new MetricsPublisher.
func NewMetricsPublisher(m *metrics.Metrics) *MetricsPublisher {
	return &MetricsPublisher{metrics: m}
}

// Publish updates the metrics for event.
func (p *MetricsPublisher) Publish(ctx context.Context, event domain.Event) error {
	kind := string(event.Kind)

	switch event.Type {
	case domain.EventTypeRecordAdded:
		p.metrics.RecordsAdded.WithLabelValues(kind).Inc()
		p.metrics.RecordAmount.WithLabelValues(kind).Observe(event.Amount.InexactFloat64())
	case domain.EventTypeRecordUpdated:
		p.metrics.RecordsUpdated.WithLabelValues(kind).Inc()
	case domain.EventTypeRecordDeleted:
		p.metrics.RecordsDeleted.WithLabelValues(kind).Inc()
	case domain.EventTypeLedgerSaved:
		p.metrics.LedgerSaves.Inc()
	case domain.EventTypeLedgerLoaded:
		p.metrics.LedgerLoads.Inc()
	}

	p.metrics.LedgerBalance.Set(event.Balance.InexactFloat64())
	p.metrics.LedgerRecords.Set(float64(event.RecordCount))
	return nil
}
