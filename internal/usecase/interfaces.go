package usecase

import (
	"context"

	"github.com/iho/budgetbook/internal/domain"
)

// LedgerRepository loads and saves the whole ledger.
type LedgerRepository interface {
	// Load returns a freshly decoded ledger; it never returns a partial one.
	Load(ctx context.Context) (*domain.Ledger, error)
	// Save overwrites the stored ledger with l.
	Save(ctx context.Context, l *domain.Ledger) error
}

// EventSink receives ledger events.
type EventSink interface {
	Emit(ctx context.Context, event domain.Event)
}
