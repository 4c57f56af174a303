package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/budgetbook/internal/domain"
	"github.com/iho/budgetbook/internal/usecase"
)

// RecordResponse represents a record in API responses.
type RecordResponse struct {
	ID        string          `json:"id"`
	Kind      string          `json:"kind"`
	Amount    decimal.Decimal `json:"amount"`
	Category  string          `json:"category"`
	Date      string          `json:"date"`
	DateTime  time.Time       `json:"date_time"`
	TimeID    int64           `json:"time_id"`
	DisplayID int             `json:"display_id,omitempty"`
}

// RecordFromView converts a record view to a response.
func RecordFromView(v usecase.RecordView) *RecordResponse {
	return &RecordResponse{
		ID:        v.ID,
		Kind:      string(v.Kind),
		Amount:    v.Amount,
		Category:  v.Category,
		Date:      v.Date,
		DateTime:  v.DateTime,
		TimeID:    v.TimeID,
		DisplayID: v.DisplayID,
	}
}

// RecordsFromViews converts record views to responses.
func RecordsFromViews(views []usecase.RecordView) []*RecordResponse {
	result := make([]*RecordResponse, len(views))
	for i, v := range views {
		result[i] = RecordFromView(v)
	}
	return result
}

// RecordListResponse is one kind's records for one month.
type RecordListResponse struct {
	Kind    string            `json:"kind"`
	Period  string            `json:"period"`
	Total   decimal.Decimal   `json:"total"`
	Records []*RecordResponse `json:"records"`
}

// NewRecordListResponse builds a list response and its total.
func NewRecordListResponse(kind domain.Kind, period string, views []usecase.RecordView) *RecordListResponse {
	total := decimal.Zero
	for _, v := range views {
		total = total.Add(v.Amount)
	}

	return &RecordListResponse{
		Kind:    string(kind),
		Period:  period,
		Total:   total,
		Records: RecordsFromViews(views),
	}
}

// TotalsResponse represents the all-time aggregates.
type TotalsResponse struct {
	TotalExpense decimal.Decimal `json:"total_expense"`
	TotalIncome  decimal.Decimal `json:"total_income"`
	Balance      decimal.Decimal `json:"balance"`
	RecordCount  int             `json:"record_count"`
}

// TotalsFromDomain converts domain totals to a response.
func TotalsFromDomain(t domain.Totals) *TotalsResponse {
	return &TotalsResponse{
		TotalExpense: t.TotalExpense,
		TotalIncome:  t.TotalIncome,
		Balance:      t.Balance,
		RecordCount:  t.RecordCount,
	}
}

// SummaryResponse represents one month's aggregates.
type SummaryResponse struct {
	Period              string          `json:"period"`
	TotalExpense        decimal.Decimal `json:"total_expense"`
	TotalIncome         decimal.Decimal `json:"total_income"`
	Balance             decimal.Decimal `json:"balance"`
	ExpenseCount        int             `json:"expense_count"`
	IncomeCount         int             `json:"income_count"`
	DaysCounted         int             `json:"days_counted"`
	DailyAverageExpense decimal.Decimal `json:"daily_average_expense"`
	DailyAverageIncome  decimal.Decimal `json:"daily_average_income"`
	Verdict             string          `json:"verdict"`
}

// SummaryFromDomain converts a monthly summary to a response.
func SummaryFromDomain(s domain.MonthlySummary) *SummaryResponse {
	return &SummaryResponse{
		Period:              s.Period.String(),
		TotalExpense:        s.TotalExpense,
		TotalIncome:         s.TotalIncome,
		Balance:             s.Balance,
		ExpenseCount:        s.ExpenseCount,
		IncomeCount:         s.IncomeCount,
		DaysCounted:         s.DaysCounted,
		DailyAverageExpense: s.DailyAverageExpense,
		DailyAverageIncome:  s.DailyAverageIncome,
		Verdict:             string(s.Verdict),
	}
}

// CategoriesResponse lists the category labels of a kind.
type CategoriesResponse struct {
	Kind       string   `json:"kind"`
	Categories []string `json:"categories"`
}

// LedgerResponse reports the result of a save or load.
type LedgerResponse struct {
	Location    string          `json:"location"`
	RecordCount int             `json:"record_count"`
	Balance     decimal.Decimal `json:"balance"`
}

// EventResponse represents a ledger event.
type EventResponse struct {
	Type        string           `json:"type"`
	RecordID    string           `json:"record_id,omitempty"`
	Kind        string           `json:"kind,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Category    string           `json:"category,omitempty"`
	RecordCount int              `json:"record_count"`
	Balance     decimal.Decimal  `json:"balance"`
	OccurredAt  time.Time        `json:"occurred_at"`
}

// EventsFromDomain converts ledger events to responses.
func EventsFromDomain(events []domain.Event) []*EventResponse {
	result := make([]*EventResponse, len(events))
	for i, e := range events {
		r := &EventResponse{
			Type:        e.Type,
			RecordID:    e.RecordID,
			Kind:        string(e.Kind),
			Category:    e.Category,
			RecordCount: e.RecordCount,
			Balance:     e.Balance,
			OccurredAt:  e.OccurredAt,
		}
		if e.RecordID != "" {
			amount := e.Amount
			r.Amount = &amount
		}
		result[i] = r
	}
	return result
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
