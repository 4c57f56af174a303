package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/iho/budgetbook/internal/adapter/http/dto"
	"github.com/iho/budgetbook/internal/domain"
	"github.com/iho/budgetbook/internal/usecase"
)

var handlerNow = time.Date(2023, time.February, 14, 9, 0, 0, 0, time.Local)

func newRecordRouter(t *testing.T) (http.Handler, *usecase.LedgerUseCase) {
	t.Helper()

	uc := usecase.NewLedgerUseCase(usecase.LedgerConfig{Now: func() time.Time { return handlerNow }})
	h := NewRecordHandler(uc)

	r := chi.NewRouter()
	r.Post("/records", h.Create)
	r.Get("/records", h.List)
	r.Get("/records/displayed/{n}", h.Displayed)
	r.Get("/records/{id}", h.Get)
	r.Patch("/records/{id}", h.Update)
	r.Delete("/records/{id}", h.Delete)
	return r, uc
}

func doJSON(t *testing.T, h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, target, &buf)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func createRecord(t *testing.T, h http.Handler, kind string, amount int64, category, date string) dto.RecordResponse {
	t.Helper()

	rec := doJSON(t, h, http.MethodPost, "/records", dto.AddRecordRequest{
		Kind: kind, Amount: decimal.NewFromInt(amount), Category: category, Date: date,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.RecordResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return resp
}

func TestRecordHandler_Create_Success(t *testing.T) {
	router, uc := newRecordRouter(t)

	resp := createRecord(t, router, "expense", 5, "FOOD", "2023-02-01")

	if resp.ID == "" || resp.Kind != "expense" || resp.Category != "FOOD" || resp.Date != "2023-02-01" {
		t.Fatalf("unexpected response %+v", resp)
	}
	if resp.TimeID != 20230201090000000 {
		t.Fatalf("expected timeID 20230201090000000, got %d", resp.TimeID)
	}
	if uc.Totals(context.Background()).RecordCount != 1 {
		t.Fatalf("expected record stored")
	}
}

func TestRecordHandler_Create_Invalid(t *testing.T) {
	router, _ := newRecordRouter(t)

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"kind":`},
		{"bad kind", `{"kind":"gift","amount":"1","category":"FOOD"}`},
		{"zero amount", `{"kind":"expense","amount":"0","category":"FOOD"}`},
		{"category of other kind", `{"kind":"income","amount":"1","category":"FOOD"}`},
		{"bad date", `{"kind":"expense","amount":"1","category":"FOOD","date":"2023/02/01"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/records", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestRecordHandler_GetUpdateDelete(t *testing.T) {
	router, _ := newRecordRouter(t)
	created := createRecord(t, router, "income", 100, "SALARY", "2023-02-22")

	rec := doJSON(t, router, http.MethodGet, "/records/"+created.ID, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	category := "GIFT"
	rec = doJSON(t, router, http.MethodPatch, "/records/"+created.ID, dto.UpdateRecordRequest{Category: &category})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var updated dto.RecordResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &updated)
	if updated.Category != "GIFT" || !updated.Amount.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("unexpected update result %+v", updated)
	}

	rec = doJSON(t, router, http.MethodPatch, "/records/"+created.ID, map[string]any{})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty edit, got %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodDelete, "/records/"+created.ID, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodGet, "/records/"+created.ID, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodDelete, "/records/"+created.ID, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d", rec.Code)
	}
}

func TestRecordHandler_List(t *testing.T) {
	router, _ := newRecordRouter(t)
	createRecord(t, router, "expense", 10, "FOOD", "2023-02-10")
	createRecord(t, router, "expense", 5, "FOOD", "2023-02-01")
	createRecord(t, router, "expense", 7, "HOUSE", "2023-01-05")

	rec := doJSON(t, router, http.MethodGet, "/records?kind=expense&sorted=true&numbered=true", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.RecordListResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}

	if resp.Period != "2023-02" {
		t.Fatalf("expected default period 2023-02, got %s", resp.Period)
	}
	if len(resp.Records) != 2 || !resp.Total.Equal(decimal.NewFromInt(15)) {
		t.Fatalf("expected two February records totalling 15, got %+v", resp)
	}
	if resp.Records[0].Date != "2023-02-01" || resp.Records[0].DisplayID != 1 || resp.Records[1].DisplayID != 2 {
		t.Fatalf("expected sorted numbered rows, got %+v %+v", resp.Records[0], resp.Records[1])
	}

	rec = doJSON(t, router, http.MethodGet, "/records/displayed/2?kind=expense&sorted=true", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var picked dto.RecordResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &picked)
	if picked.Date != "2023-02-10" {
		t.Fatalf("expected row 2 to be 2023-02-10, got %s", picked.Date)
	}

	for target, want := range map[string]int{
		"/records?kind=expense&period=2023-1": http.StatusBadRequest,
		"/records?kind=refund":                http.StatusBadRequest,
		"/records/displayed/x?kind=expense":   http.StatusBadRequest,
		"/records/displayed/9?kind=expense":   http.StatusNotFound,
		"/records?kind=income&period=2023-03": http.StatusOK,
	} {
		if rec := doJSON(t, router, http.MethodGet, target, nil); rec.Code != want {
			t.Fatalf("%s: expected %d, got %d", target, want, rec.Code)
		}
	}
}

type failingRecordService struct {
	RecordService
	err error
}

func (s failingRecordService) AddRecord(ctx context.Context, input usecase.AddRecordInput) (usecase.RecordView, error) {
	return usecase.RecordView{}, s.err
}

func TestRecordHandler_Create_StorageFailure(t *testing.T) {
	h := NewRecordHandler(failingRecordService{err: fmt.Errorf("record applied but not saved: %w", domain.ErrStorage)})

	body, _ := json.Marshal(dto.AddRecordRequest{Kind: "expense", Amount: decimal.NewFromInt(1), Category: "FOOD"})
	req := httptest.NewRequest(http.MethodPost, "/records", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}
