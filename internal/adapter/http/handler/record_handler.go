package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/iho/budgetbook/internal/adapter/http/dto"
	"github.com/iho/budgetbook/internal/domain"
	"github.com/iho/budgetbook/internal/usecase"
)

// RecordService defines the behavior needed by RecordHandler.
type RecordService interface {
	AddRecord(ctx context.Context, input usecase.AddRecordInput) (usecase.RecordView, error)
	GetRecord(ctx context.Context, id string) (usecase.RecordView, error)
	UpdateRecord(ctx context.Context, input usecase.UpdateRecordInput) (usecase.RecordView, error)
	DeleteRecord(ctx context.Context, id string) error
	ListByMonth(ctx context.Context, kind domain.Kind, period string, sorted bool) ([]usecase.RecordView, error)
	Render(ctx context.Context, kind domain.Kind, period string, sorted bool) ([]usecase.RecordView, error)
	SelectDisplayed(ctx context.Context, kind domain.Kind, period string, sorted bool, n int) (usecase.RecordView, error)
	CurrentPeriod() string
}

// RecordHandler handles record-related HTTP requests.
type RecordHandler struct {
	recordUC RecordService
}

// NewRecordHandler creates a new RecordHandler.
func NewRecordHandler(recordUC RecordService) *RecordHandler {
	return &RecordHandler{recordUC: recordUC}
}

// Create adds a record.
func (h *RecordHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.AddRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input, err := req.ToUseCaseInput()
	if err != nil {
		writeError(w, mapDomainError(err), "invalid record", err.Error())
		return
	}

	view, err := h.recordUC.AddRecord(r.Context(), input)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to add record", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.RecordFromView(view))
}

// Get retrieves a record by ID.
func (h *RecordHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing record ID", "")
		return
	}

	view, err := h.recordUC.GetRecord(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get record", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.RecordFromView(view))
}

// Update edits a record.
func (h *RecordHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing record ID", "")
		return
	}

	var req dto.UpdateRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if req.Empty() {
		writeError(w, http.StatusBadRequest, "nothing to update", "set amount, category or date")
		return
	}

	view, err := h.recordUC.UpdateRecord(r.Context(), req.ToUseCaseInput(id))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update record", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.RecordFromView(view))
}

// Delete removes a record.
func (h *RecordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing record ID", "")
		return
	}

	if err := h.recordUC.DeleteRecord(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete record", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// List lists one kind's records for a month. The period defaults to the
// current month; numbered=true assigns display numbers.
func (h *RecordHandler) List(w http.ResponseWriter, r *http.Request) {
	kind, period, ok := h.monthQuery(w, r)
	if !ok {
		return
	}

	sorted := parseBoolQuery(r, "sorted", false)

	var (
		views []usecase.RecordView
		err   error
	)
	if parseBoolQuery(r, "numbered", false) {
		views, err = h.recordUC.Render(r.Context(), kind, period, sorted)
	} else {
		views, err = h.recordUC.ListByMonth(r.Context(), kind, period, sorted)
	}
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list records", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.NewRecordListResponse(kind, period, views))
}

// Displayed returns the record shown as number n in a numbered listing.
func (h *RecordHandler) Displayed(w http.ResponseWriter, r *http.Request) {
	n, err := strconv.Atoi(chi.URLParam(r, "n"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid display number", err.Error())
		return
	}

	kind, period, ok := h.monthQuery(w, r)
	if !ok {
		return
	}

	view, err := h.recordUC.SelectDisplayed(r.Context(), kind, period, parseBoolQuery(r, "sorted", false), n)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to select record", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.RecordFromView(view))
}

func (h *RecordHandler) monthQuery(w http.ResponseWriter, r *http.Request) (domain.Kind, string, bool) {
	kind, err := domain.ParseKind(r.URL.Query().Get("kind"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid kind", err.Error())
		return "", "", false
	}

	period := r.URL.Query().Get("period")
	if period == "" {
		period = h.recordUC.CurrentPeriod()
	}

	return kind, period, true
}
