// Package jsondoc converts a ledger to and from its persisted JSON document.
package jsondoc

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/iho/budgetbook/internal/domain"
)

const indent = "    "

// Entry is one persisted record.
type Entry struct {
	DateTime string      `json:"dateTime"`
	Amount   json.Number `json:"amount"`
	Category string      `json:"category"`
}

// Document is the persisted ledger. Both arrays are mandatory.
type Document struct {
	Expenses []Entry `json:"expenses"`
	Incomes  []Entry `json:"incomes"`
}

// FromLedger builds the document for l.
func FromLedger(l *domain.Ledger) (*Document, error) {
	snap, err := l.Snapshot()
	if err != nil {
		return nil, err
	}

	return &Document{
		Expenses: toEntries(snap.Expenses),
		Incomes:  toEntries(snap.Incomes),
	}, nil
}

func toEntries(snaps []domain.RecordSnapshot) []Entry {
	entries := make([]Entry, len(snaps))
	for i, s := range snaps {
		entries[i] = Entry{
			DateTime: FormatDateTime(s.DateTime),
			Amount:   json.Number(s.Amount.String()),
			Category: s.Category,
		}
	}
	return entries
}

// ToLedger rebuilds a ledger from doc. On error no ledger is returned.
func (doc *Document) ToLedger() (*domain.Ledger, error) {
	expenses, err := fromEntries(domain.KindExpense, doc.Expenses)
	if err != nil {
		return nil, err
	}

	incomes, err := fromEntries(domain.KindIncome, doc.Incomes)
	if err != nil {
		return nil, err
	}

	return domain.LedgerFromSnapshot(domain.LedgerSnapshot{
		Expenses: expenses,
		Incomes:  incomes,
	})
}

func fromEntries(kind domain.Kind, entries []Entry) ([]domain.RecordSnapshot, error) {
	if entries == nil {
		return nil, nil
	}

	snaps := make([]domain.RecordSnapshot, len(entries))
	for i, e := range entries {
		at, err := ParseDateTime(e.DateTime)
		if err != nil {
			return nil, fmt.Errorf("%w: %ss[%d]: %v", domain.ErrDecode, kind, i, err)
		}

		amount, err := decimal.NewFromString(e.Amount.String())
		if err != nil {
			return nil, fmt.Errorf("%w: %ss[%d]: invalid amount %q", domain.ErrDecode, kind, i, e.Amount)
		}

		snaps[i] = domain.RecordSnapshot{
			Amount:   amount,
			Category: e.Category,
			DateTime: at,
		}
	}

	return snaps, nil
}

// Marshal encodes l as an indented JSON document.
func Marshal(l *domain.Ledger) ([]byte, error) {
	doc, err := FromLedger(l)
	if err != nil {
		return nil, err
	}

	return json.MarshalIndent(doc, "", indent)
}

// Unmarshal decodes a JSON document into a new ledger.
func Unmarshal(data []byte) (*domain.Ledger, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDecode, err)
	}

	return doc.ToLedger()
}
