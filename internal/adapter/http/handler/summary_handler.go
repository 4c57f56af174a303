package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/budgetbook/internal/adapter/http/dto"
	"github.com/iho/budgetbook/internal/domain"
)

// SummaryService defines the behavior needed by SummaryHandler.
type SummaryService interface {
	Totals(ctx context.Context) domain.Totals
	MonthlySummary(ctx context.Context, period string) (domain.MonthlySummary, error)
	CurrentPeriod() string
	Categories(kind domain.Kind) ([]string, error)
}

// SummaryHandler serves aggregates and category listings.
type SummaryHandler struct {
	summaryUC SummaryService
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(summaryUC SummaryService) *SummaryHandler {
	return &SummaryHandler{summaryUC: summaryUC}
}

// Totals returns the all-time aggregates.
func (h *SummaryHandler) Totals(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.TotalsFromDomain(h.summaryUC.Totals(r.Context())))
}

// Monthly returns the summary of {period}, or of the current month.
func (h *SummaryHandler) Monthly(w http.ResponseWriter, r *http.Request) {
	period := chi.URLParam(r, "period")
	if period == "" {
		period = h.summaryUC.CurrentPeriod()
	}

	s, err := h.summaryUC.MonthlySummary(r.Context(), period)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to summarize month", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.SummaryFromDomain(s))
}

// Categories lists the labels of {kind}.
func (h *SummaryHandler) Categories(w http.ResponseWriter, r *http.Request) {
	kind, err := domain.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid kind", err.Error())
		return
	}

	names, err := h.summaryUC.Categories(kind)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list categories", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.CategoriesResponse{Kind: string(kind), Categories: names})
}
