package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

var baseTime = time.Date(2023, time.February, 1, 10, 15, 30, 123456789, time.Local)

func TestNewExpenseAt(t *testing.T) {
	e, err := NewExpenseAt(decimal.NewFromInt(5), baseTime)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if e.Kind() != KindExpense {
		t.Errorf("expected expense kind, got %s", e.Kind())
	}
	if !e.Amount().Equal(decimal.NewFromInt(5)) {
		t.Errorf("expected amount 5, got %s", e.Amount())
	}
	if e.TimeID() != 20230201101530123 {
		t.Errorf("expected timeID 20230201101530123, got %d", e.TimeID())
	}
	if e.Date() != "2023-02-01" {
		t.Errorf("expected date 2023-02-01, got %s", e.Date())
	}
	if e.Year() != 2023 || e.Month() != time.February || e.Day() != 1 {
		t.Errorf("unexpected y/m/d %d/%d/%d", e.Year(), e.Month(), e.Day())
	}
	if e.DisplayID() != 0 {
		t.Errorf("expected display ID 0, got %d", e.DisplayID())
	}
	if e.ID() == "" {
		t.Error("expected a generated ID")
	}
	if _, err := e.CategoryName(); !errors.Is(err, ErrCategoryUnset) {
		t.Errorf("expected ErrCategoryUnset, got %v", err)
	}
}

func TestNewRecord_InvalidAmount(t *testing.T) {
	tests := []struct {
		name   string
		kind   Kind
		amount decimal.Decimal
	}{
		{name: "zero expense", kind: KindExpense, amount: decimal.Zero},
		{name: "negative expense", kind: KindExpense, amount: decimal.NewFromInt(-1)},
		{name: "zero income", kind: KindIncome, amount: decimal.Zero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRecord(tt.kind, tt.amount, baseTime)
			if !errors.Is(err, ErrInvalidAmount) {
				t.Fatalf("expected ErrInvalidAmount, got %v", err)
			}
			if r != nil {
				t.Fatalf("expected nil record, got %v", r)
			}
		})
	}
}

func TestNewRecord_InvalidKind(t *testing.T) {
	if _, err := NewRecord(Kind("transfer"), decimal.NewFromInt(1), baseTime); !errors.Is(err, ErrInvalidKind) {
		t.Fatalf("expected ErrInvalidKind, got %v", err)
	}
}

func TestRecord_IDsAreDistinct(t *testing.T) {
	a, _ := NewExpenseAt(decimal.NewFromInt(1), baseTime)
	b, _ := NewExpenseAt(decimal.NewFromInt(1), baseTime)

	if a.TimeID() != b.TimeID() {
		t.Fatalf("expected same timeID for same instant")
	}
	if a.ID() == b.ID() {
		t.Fatalf("expected distinct IDs, both %s", a.ID())
	}
}

func TestRecord_Classify(t *testing.T) {
	e, _ := NewExpenseAt(decimal.NewFromInt(5), baseTime)
	e.Classify(ExpenseFood)

	name, err := e.CategoryName()
	if err != nil || name != "FOOD" {
		t.Fatalf("expected FOOD, got %q (%v)", name, err)
	}

	e.Classify(ExpenseTravel)
	if c, ok := e.Category(); !ok || c != ExpenseTravel {
		t.Fatalf("expected reclassification to TRAVEL, got %q", c)
	}

	i, _ := NewIncomeAt(decimal.NewFromInt(100), baseTime)
	i.Classify(IncomeSalary)
	if name, _ := i.CategoryName(); name != "SALARY" {
		t.Fatalf("expected SALARY, got %q", name)
	}
}

func TestRecord_ClassifyName(t *testing.T) {
	tests := []struct {
		name     string
		kind     Kind
		category string
		wantErr  error
	}{
		{name: "expense label", kind: KindExpense, category: "GROCERY"},
		{name: "income label", kind: KindIncome, category: "LEASE"},
		{name: "shared label", kind: KindIncome, category: "GENERAL"},
		{name: "income label on expense", kind: KindExpense, category: "SALARY", wantErr: ErrUnknownCategory},
		{name: "expense label on income", kind: KindIncome, category: "FOOD", wantErr: ErrUnknownCategory},
		{name: "lower case", kind: KindExpense, category: "food", wantErr: ErrUnknownCategory},
		{name: "unknown", kind: KindExpense, category: "ALIEN", wantErr: ErrUnknownCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRecord(tt.kind, decimal.NewFromInt(1), baseTime)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			err = r.ClassifyName(tt.category)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				if _, err := r.CategoryName(); !errors.Is(err, ErrCategoryUnset) {
					t.Fatalf("expected category to stay unset, got %v", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got, _ := r.CategoryName(); got != tt.category {
				t.Fatalf("expected %s, got %s", tt.category, got)
			}
		})
	}
}

func TestRecord_ResetAmount(t *testing.T) {
	e, _ := NewExpenseAt(decimal.NewFromInt(5), baseTime)

	if err := e.ResetAmount(decimal.RequireFromString("12.50")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !e.Amount().Equal(decimal.RequireFromString("12.5")) {
		t.Fatalf("expected 12.5, got %s", e.Amount())
	}

	if err := e.ResetAmount(decimal.NewFromInt(-3)); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
	if !e.Amount().Equal(decimal.RequireFromString("12.5")) {
		t.Fatalf("expected amount unchanged, got %s", e.Amount())
	}
}

func TestRecord_ResetDate(t *testing.T) {
	e, _ := NewExpenseAt(decimal.NewFromInt(5), baseTime)

	if err := e.ResetDate("2024-03-15"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if e.Date() != "2024-03-15" {
		t.Errorf("expected date 2024-03-15, got %s", e.Date())
	}
	if e.TimeID() != 20240315101530123 {
		t.Errorf("expected timeID 20240315101530123, got %d", e.TimeID())
	}

	dt := e.DateTime()
	if dt.Hour() != 10 || dt.Minute() != 15 || dt.Second() != 30 || dt.Nanosecond() != 123456789 {
		t.Errorf("expected time of day preserved, got %s", dt)
	}
}

func TestRecord_ResetDate_Invalid(t *testing.T) {
	for _, input := range []string{"2023-3-15", "23-03-15", "2023/03/15", "2023-02-30", "2023-13-01", ""} {
		t.Run(input, func(t *testing.T) {
			e, _ := NewExpenseAt(decimal.NewFromInt(5), baseTime)
			before := e.TimeID()

			if err := e.ResetDate(input); !errors.Is(err, ErrInvalidDate) {
				t.Fatalf("expected ErrInvalidDate, got %v", err)
			}
			if e.TimeID() != before || !e.DateTime().Equal(baseTime) {
				t.Fatalf("expected record unchanged")
			}
		})
	}
}

func TestRecord_ResetDateTime(t *testing.T) {
	i, _ := NewIncomeAt(decimal.NewFromInt(100), baseTime)
	restored := time.Date(2022, time.December, 31, 23, 59, 59, 999000000, time.Local)

	i.ResetDateTime(restored)

	if !i.DateTime().Equal(restored) {
		t.Errorf("expected %s, got %s", restored, i.DateTime())
	}
	if i.TimeID() != 20221231235959999 {
		t.Errorf("expected timeID 20221231235959999, got %d", i.TimeID())
	}
}

func TestRecord_DisplayID(t *testing.T) {
	e, _ := NewExpenseAt(decimal.NewFromInt(5), baseTime)
	e.SetDisplayID(3)
	if e.DisplayID() != 3 {
		t.Fatalf("expected 3, got %d", e.DisplayID())
	}
}

func TestRecord_Snapshot(t *testing.T) {
	e, _ := NewExpenseAt(decimal.NewFromInt(5), baseTime)

	if _, err := e.Snapshot(); !errors.Is(err, ErrCategoryUnset) {
		t.Fatalf("expected ErrCategoryUnset, got %v", err)
	}

	e.Classify(ExpenseFood)
	s, err := e.Snapshot()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !s.Amount.Equal(decimal.NewFromInt(5)) || s.Category != "FOOD" || !s.DateTime.Equal(baseTime) {
		t.Fatalf("unexpected snapshot %+v", s)
	}
}
