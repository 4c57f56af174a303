// Package document persists the ledger as one JSON document in a DocumentStore.
package document

import (
	"context"

	"github.com/iho/budgetbook/internal/adapter/jsondoc"
	"github.com/iho/budgetbook/internal/domain"
)

// Store supplies and accepts raw document bytes.
type Store interface {
	ReadDocument(ctx context.Context) ([]byte, error)
	WriteDocument(ctx context.Context, data []byte) error
	Location() string
}

// LedgerRepository implements usecase.LedgerRepository.
type LedgerRepository struct {
	store Store
}

// NewLedgerRepository creates a new LedgerRepository.
func NewLedgerRepository(store Store) *LedgerRepository {
	return &LedgerRepository{store: store}
}

// Load reads and decodes the whole document.
func (r *LedgerRepository) Load(ctx context.Context) (*domain.Ledger, error) {
	data, err := r.store.ReadDocument(ctx)
	if err != nil {
		return nil, err
	}

	return jsondoc.Unmarshal(data)
}

// Save encodes l and overwrites the stored document.
func (r *LedgerRepository) Save(ctx context.Context, l *domain.Ledger) error {
	data, err := jsondoc.Marshal(l)
	if err != nil {
		return err
	}

	return r.store.WriteDocument(ctx, data)
}

// Location describes where the ledger is stored.
func (r *LedgerRepository) Location() string {
	return r.store.Location()
}
