package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Event types
const (
	EventTypeRecordAdded   = "record.added"
	EventTypeRecordUpdated = "record.updated"
	EventTypeRecordDeleted = "record.deleted"
	EventTypeLedgerSaved   = "ledger.saved"
	EventTypeLedgerLoaded  = "ledger.loaded"
)

// Event describes a change to the live ledger.
type Event struct {
	Type        string
	RecordID    string
	Kind        Kind
	Amount      decimal.Decimal
	Category    string
	RecordCount int
	Balance     decimal.Decimal
	OccurredAt  time.Time
}

// RecordEvent builds an event about r.
func RecordEvent(eventType string, r Record, l *Ledger, at time.Time) Event {
	category, _ := r.CategoryName()
	return Event{
		Type:        eventType,
		RecordID:    r.ID(),
		Kind:        r.Kind(),
		Amount:      r.Amount(),
		Category:    category,
		RecordCount: l.RecordCount(),
		Balance:     l.Balance(),
		OccurredAt:  at,
	}
}

// LedgerEvent builds an event about the whole ledger.
func LedgerEvent(eventType string, l *Ledger, at time.Time) Event {
	return Event{
		Type:        eventType,
		RecordCount: l.RecordCount(),
		Balance:     l.Balance(),
		OccurredAt:  at,
	}
}
