package handler

import (
	"context"
	"net/http"

	"github.com/iho/budgetbook/internal/adapter/http/dto"
	"github.com/iho/budgetbook/internal/domain"
)

// LedgerService defines the behavior needed by LedgerHandler.
type LedgerService interface {
	Save(ctx context.Context) error
	Load(ctx context.Context) error
	Totals(ctx context.Context) domain.Totals
}

// EventLog exposes the retained ledger events.
type EventLog interface {
	Recent() []domain.Event
}

// LedgerHandler handles ledger-wide operations.
type LedgerHandler struct {
	ledgerUC LedgerService
	events   EventLog
	location string
}

// NewLedgerHandler creates a new LedgerHandler. events may be nil.
func NewLedgerHandler(ledgerUC LedgerService, events EventLog, location string) *LedgerHandler {
	return &LedgerHandler{
		ledgerUC: ledgerUC,
		events:   events,
		location: location,
	}
}

// Save writes the live ledger to storage.
func (h *LedgerHandler) Save(w http.ResponseWriter, r *http.Request) {
	if err := h.ledgerUC.Save(r.Context()); err != nil {
		writeError(w, mapDomainError(err), "failed to save ledger", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, h.status(r.Context()))
}

// Load replaces the live ledger with the stored one.
func (h *LedgerHandler) Load(w http.ResponseWriter, r *http.Request) {
	if err := h.ledgerUC.Load(r.Context()); err != nil {
		writeError(w, mapDomainError(err), "failed to load ledger", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, h.status(r.Context()))
}

// Events lists the most recent ledger events, oldest first.
func (h *LedgerHandler) Events(w http.ResponseWriter, r *http.Request) {
	var events []domain.Event
	if h.events != nil {
		events = h.events.Recent()
	}

	writeJSON(w, http.StatusOK, dto.EventsFromDomain(events))
}

func (h *LedgerHandler) status(ctx context.Context) dto.LedgerResponse {
	totals := h.ledgerUC.Totals(ctx)
	return dto.LedgerResponse{
		Location:    h.location,
		RecordCount: totals.RecordCount,
		Balance:     totals.Balance,
	}
}
