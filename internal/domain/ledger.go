package domain

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// Ledger owns the expense and income records of one balance sheet.
// Aggregates are computed from the collections on every call.
// A Ledger is not safe for concurrent use.
type Ledger struct {
	expenses []Record
	incomes  []Record
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		expenses: []Record{},
		incomes:  []Record{},
	}
}

// AddRecord appends r to the collection of its kind.
// Unclassified records are rejected so that every stored record can be saved.
func (l *Ledger) AddRecord(r Record) error {
	if r == nil {
		return fmt.Errorf("%w: nil record", ErrInvalidKind)
	}

	if _, err := r.CategoryName(); err != nil {
		return err
	}

	switch r.Kind() {
	case KindExpense:
		l.expenses = append(l.expenses, r)
	case KindIncome:
		l.incomes = append(l.incomes, r)
	default:
		return fmt.Errorf("%w: %q", ErrInvalidKind, r.Kind())
	}

	return nil
}

// DeleteRecord removes r by identity. It returns false, changing nothing,
// when r is not in the ledger.
func (l *Ledger) DeleteRecord(r Record) bool {
	if r == nil {
		return false
	}

	switch r.Kind() {
	case KindExpense:
		var ok bool
		l.expenses, ok = removeRecord(l.expenses, r)
		return ok
	case KindIncome:
		var ok bool
		l.incomes, ok = removeRecord(l.incomes, r)
		return ok
	default:
		return false
	}
}

func removeRecord(list []Record, r Record) ([]Record, bool) {
	for i, rec := range list {
		if rec == r {
			return append(list[:i:i], list[i+1:]...), true
		}
	}
	return list, false
}

// FetchByDisplayID returns the first record of kind whose display ordinal is id.
func (l *Ledger) FetchByDisplayID(kind Kind, id int) (Record, bool) {
	for _, r := range l.collection(kind) {
		if r.DisplayID() == id {
			return r, true
		}
	}
	return nil, false
}

// FetchByID looks a record up by its ULID in both collections.
func (l *Ledger) FetchByID(id string) (Record, bool) {
	for _, r := range l.expenses {
		if r.ID() == id {
			return r, true
		}
	}
	for _, r := range l.incomes {
		if r.ID() == id {
			return r, true
		}
	}
	return nil, false
}

// ClearDisplayIDs resets the display ordinal of every record of kind.
func (l *Ledger) ClearDisplayIDs(kind Kind) {
	for _, r := range l.collection(kind) {
		r.SetDisplayID(0)
	}
}

// ListByMonth returns the records of kind dated in period (YYYY-MM),
// in insertion order.
func (l *Ledger) ListByMonth(kind Kind, period string) ([]Record, error) {
	p, err := ParsePeriod(period)
	if err != nil {
		return nil, err
	}

	if kind != KindExpense && kind != KindIncome {
		return nil, fmt.Errorf("%w: %q", ErrInvalidKind, kind)
	}

	res := []Record{}
	for _, r := range l.collection(kind) {
		if r.Year() == p.Year && r.Month() == p.Month {
			res = append(res, r)
		}
	}

	return res, nil
}

// TotalByMonth sums the amounts of ListByMonth(kind, period).
func (l *Ledger) TotalByMonth(kind Kind, period string) (decimal.Decimal, error) {
	records, err := l.ListByMonth(kind, period)
	if err != nil {
		return decimal.Zero, err
	}
	return sumAmounts(records), nil
}

// TotalExpenseByMonth sums the expenses of period.
func (l *Ledger) TotalExpenseByMonth(period string) (decimal.Decimal, error) {
	return l.TotalByMonth(KindExpense, period)
}

// TotalIncomeByMonth sums the incomes of period.
func (l *Ledger) TotalIncomeByMonth(period string) (decimal.Decimal, error) {
	return l.TotalByMonth(KindIncome, period)
}

// TotalBalanceByMonth returns income minus expense for period.
func (l *Ledger) TotalBalanceByMonth(period string) (decimal.Decimal, error) {
	income, err := l.TotalIncomeByMonth(period)
	if err != nil {
		return decimal.Zero, err
	}

	expense, err := l.TotalExpenseByMonth(period)
	if err != nil {
		return decimal.Zero, err
	}

	return income.Sub(expense), nil
}

// TotalExpense sums every expense.
func (l *Ledger) TotalExpense() decimal.Decimal { return sumAmounts(l.expenses) }

// TotalIncome sums every income.
func (l *Ledger) TotalIncome() decimal.Decimal { return sumAmounts(l.incomes) }

// Balance returns TotalIncome minus TotalExpense.
func (l *Ledger) Balance() decimal.Decimal {
	return l.TotalIncome().Sub(l.TotalExpense())
}

// RecordCount returns the number of records of both kinds.
func (l *Ledger) RecordCount() int {
	return len(l.expenses) + len(l.incomes)
}

// Expenses returns a copy of the expense collection.
func (l *Ledger) Expenses() []Record { return copyRecords(l.expenses) }

// Incomes returns a copy of the income collection.
func (l *Ledger) Incomes() []Record { return copyRecords(l.incomes) }

func (l *Ledger) collection(kind Kind) []Record {
	switch kind {
	case KindExpense:
		return l.expenses
	case KindIncome:
		return l.incomes
	default:
		return nil
	}
}

func sumAmounts(records []Record) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(r.Amount())
	}
	return total
}

func copyRecords(records []Record) []Record {
	out := make([]Record, len(records))
	copy(out, records)
	return out
}

// SortByTimeID returns a copy of records ordered by timeID.
// Records sharing a timeID keep their relative order.
func SortByTimeID(records []Record) []Record {
	out := copyRecords(records)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TimeID() < out[j].TimeID()
	})
	return out
}
