package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// RecordSnapshot is the minimal payload needed to rebuild a record.
// The ULID, timeID and display ordinal are derived or transient and are left out.
type RecordSnapshot struct {
	Amount   decimal.Decimal
	Category string
	DateTime time.Time
}

// LedgerSnapshot holds the payloads of every record, expenses first.
// A nil slice means the collection was absent from the source document.
type LedgerSnapshot struct {
	Expenses []RecordSnapshot
	Incomes  []RecordSnapshot
}

func snapshotOf(r Record) (RecordSnapshot, error) {
	category, err := r.CategoryName()
	if err != nil {
		return RecordSnapshot{}, fmt.Errorf("record %s: %w", r.ID(), err)
	}

	return RecordSnapshot{
		Amount:   r.Amount(),
		Category: category,
		DateTime: r.DateTime(),
	}, nil
}

// Snapshot returns the structured form of the ledger.
func (l *Ledger) Snapshot() (LedgerSnapshot, error) {
	snap := LedgerSnapshot{
		Expenses: make([]RecordSnapshot, 0, len(l.expenses)),
		Incomes:  make([]RecordSnapshot, 0, len(l.incomes)),
	}

	for _, r := range l.expenses {
		s, err := r.Snapshot()
		if err != nil {
			return LedgerSnapshot{}, err
		}
		snap.Expenses = append(snap.Expenses, s)
	}

	for _, r := range l.incomes {
		s, err := r.Snapshot()
		if err != nil {
			return LedgerSnapshot{}, err
		}
		snap.Incomes = append(snap.Incomes, s)
	}

	return snap, nil
}

// LedgerFromSnapshot rebuilds a ledger. Any invalid entry fails the whole
// rebuild with ErrDecode and no ledger is returned.
func LedgerFromSnapshot(snap LedgerSnapshot) (*Ledger, error) {
	if snap.Expenses == nil {
		return nil, fmt.Errorf("%w: missing expenses", ErrDecode)
	}
	if snap.Incomes == nil {
		return nil, fmt.Errorf("%w: missing incomes", ErrDecode)
	}

	l := NewLedger()

	if err := restoreInto(l, KindExpense, snap.Expenses); err != nil {
		return nil, err
	}
	if err := restoreInto(l, KindIncome, snap.Incomes); err != nil {
		return nil, err
	}

	return l, nil
}

func restoreInto(l *Ledger, kind Kind, entries []RecordSnapshot) error {
	for i, s := range entries {
		r, err := NewRecord(kind, s.Amount, s.DateTime)
		if err != nil {
			return fmt.Errorf("%w: %ss[%d]: %w", ErrDecode, kind, i, err)
		}

		if err := r.ClassifyName(s.Category); err != nil {
			return fmt.Errorf("%w: %ss[%d]: %w", ErrDecode, kind, i, err)
		}

		r.ResetDateTime(s.DateTime)

		if err := l.AddRecord(r); err != nil {
			return fmt.Errorf("%w: %ss[%d]: %w", ErrDecode, kind, i, err)
		}
	}

	return nil
}
