package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Verdict compares average daily income with average daily expense.
type Verdict string

// Verdicts
const (
	VerdictBalanced  Verdict = "balanced"
	VerdictOverspent Verdict = "overspent"
	VerdictSaving    Verdict = "saving"
)

// Totals are the all-time aggregates of a ledger.
type Totals struct {
	TotalExpense decimal.Decimal
	TotalIncome  decimal.Decimal
	Balance      decimal.Decimal
	RecordCount  int
}

// MonthlySummary aggregates one period.
type MonthlySummary struct {
	Period              Period
	TotalExpense        decimal.Decimal
	TotalIncome         decimal.Decimal
	Balance             decimal.Decimal
	ExpenseCount        int
	IncomeCount         int
	DaysCounted         int
	DailyAverageExpense decimal.Decimal
	DailyAverageIncome  decimal.Decimal
	Verdict             Verdict
}

// Totals returns the all-time aggregates.
func (l *Ledger) Totals() Totals {
	return Totals{
		TotalExpense: l.TotalExpense(),
		TotalIncome:  l.TotalIncome(),
		Balance:      l.Balance(),
		RecordCount:  l.RecordCount(),
	}
}

// Summarize aggregates period. Daily averages divide by the days elapsed
// when asOf falls inside the period and by the days in the month otherwise.
func (l *Ledger) Summarize(period string, asOf time.Time) (MonthlySummary, error) {
	p, err := ParsePeriod(period)
	if err != nil {
		return MonthlySummary{}, err
	}

	expenses, err := l.ListByMonth(KindExpense, period)
	if err != nil {
		return MonthlySummary{}, err
	}

	incomes, err := l.ListByMonth(KindIncome, period)
	if err != nil {
		return MonthlySummary{}, err
	}

	days := p.Days()
	if p.Contains(asOf) {
		days = asOf.Day()
	}

	s := MonthlySummary{
		Period:       p,
		TotalExpense: sumAmounts(expenses),
		TotalIncome:  sumAmounts(incomes),
		ExpenseCount: len(expenses),
		IncomeCount:  len(incomes),
		DaysCounted:  days,
	}
	s.Balance = s.TotalIncome.Sub(s.TotalExpense)

	d := decimal.NewFromInt(int64(days))
	s.DailyAverageExpense = s.TotalExpense.DivRound(d, 2)
	s.DailyAverageIncome = s.TotalIncome.DivRound(d, 2)

	switch s.DailyAverageExpense.Cmp(s.DailyAverageIncome) {
	case 0:
		s.Verdict = VerdictBalanced
	case 1:
		s.Verdict = VerdictOverspent
	default:
		s.Verdict = VerdictSaving
	}

	return s, nil
}
