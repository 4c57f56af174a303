package domain

import (
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

// Kind discriminates expense records from income records.
type Kind string

// Record kinds
const (
	KindExpense Kind = "expense"
	KindIncome  Kind = "income"
)

// timeID packs YYYYMMDD in front of HHmmssSSS; the low part spans 9 digits.
const timeOfDayDigits int64 = 1_000_000_000

// Record is one financial transaction of either kind.
type Record interface {
	ID() string
	Kind() Kind
	Amount() decimal.Decimal
	ResetAmount(amount decimal.Decimal) error
	CategoryName() (string, error)
	ClassifyName(name string) error
	ResetDate(date string) error
	ResetDateTime(t time.Time)
	DateTime() time.Time
	Date() string
	TimeID() int64
	Year() int
	Month() time.Month
	Day() int
	DisplayID() int
	SetDisplayID(id int)
	Snapshot() (RecordSnapshot, error)
}

// RecordCore holds the fields shared by both record kinds.
type RecordCore struct {
	id        string
	amount    decimal.Decimal
	timestamp time.Time
	timeID    int64
	displayID int
}

func newRecordCore(amount decimal.Decimal, now time.Time) (RecordCore, error) {
	if err := ValidateAmount(amount); err != nil {
		return RecordCore{}, err
	}

	return RecordCore{
		id:        ulid.Make().String(),
		amount:    amount,
		timestamp: now,
		timeID:    deriveTimeID(now),
	}, nil
}

// ID returns the record's process-local identity.
func (c *RecordCore) ID() string { return c.id }

// Amount returns the transaction amount in dollars.
func (c *RecordCore) Amount() decimal.Decimal { return c.amount }

// ResetAmount overwrites the amount.
func (c *RecordCore) ResetAmount(amount decimal.Decimal) error {
	if err := ValidateAmount(amount); err != nil {
		return err
	}
	c.amount = amount
	return nil
}

// ResetDate moves the record to another day, keeping its time of day.
// The new timeID keeps the previous timeID's time-of-day digits.
func (c *RecordCore) ResetDate(date string) error {
	d, err := ParseDate(date)
	if err != nil {
		return err
	}

	ts := c.timestamp
	c.timestamp = time.Date(d.Year(), d.Month(), d.Day(),
		ts.Hour(), ts.Minute(), ts.Second(), ts.Nanosecond(), ts.Location())

	ymd := int64(d.Year()*10000 + int(d.Month())*100 + d.Day())
	c.timeID = ymd*timeOfDayDigits + c.timeID%timeOfDayDigits

	return nil
}

// ResetDateTime replaces the timestamp and re-derives the timeID from it.
func (c *RecordCore) ResetDateTime(t time.Time) {
	c.timestamp = t
	c.timeID = deriveTimeID(t)
}

// DateTime returns the full timestamp.
func (c *RecordCore) DateTime() time.Time { return c.timestamp }

// Date returns the timestamp's date as YYYY-MM-DD.
func (c *RecordCore) Date() string { return c.timestamp.Format(DateLayout) }

// TimeID returns the YYYYMMDDHHmmssSSS key.
func (c *RecordCore) TimeID() int64 { return c.timeID }

func (c *RecordCore) Year() int { return c.timestamp.Year() }

func (c *RecordCore) Month() time.Month { return c.timestamp.Month() }

func (c *RecordCore) Day() int { return c.timestamp.Day() }

// DisplayID returns the ordinal assigned by the latest render, or 0.
func (c *RecordCore) DisplayID() int { return c.displayID }

// SetDisplayID overwrites the transient ordinal.
func (c *RecordCore) SetDisplayID(id int) { c.displayID = id }

func deriveTimeID(t time.Time) int64 {
	ymd := int64(t.Year()*10000 + int(t.Month())*100 + t.Day())
	hms := int64(t.Hour()*10000+t.Minute()*100+t.Second())*1000 + int64(t.Nanosecond()/int(time.Millisecond))
	return ymd*timeOfDayDigits + hms
}

// ExpenseRecord is money spent.
type ExpenseRecord struct {
	RecordCore
	category ExpenseCategory
}

// NewExpense creates an unclassified expense stamped with the current time.
func NewExpense(amount decimal.Decimal) (*ExpenseRecord, error) {
	return NewExpenseAt(amount, time.Now())
}

// NewExpenseAt creates an unclassified expense stamped with now.
func NewExpenseAt(amount decimal.Decimal, now time.Time) (*ExpenseRecord, error) {
	core, err := newRecordCore(amount, now)
	if err != nil {
		return nil, err
	}
	return &ExpenseRecord{RecordCore: core}, nil
}

func (e *ExpenseRecord) Kind() Kind { return KindExpense }

// Classify sets or overwrites the category.
func (e *ExpenseRecord) Classify(category ExpenseCategory) { e.category = category }

// Category returns the category and whether one was assigned.
func (e *ExpenseRecord) Category() (ExpenseCategory, bool) {
	return e.category, e.category != ""
}

// CategoryName returns the category label or ErrCategoryUnset.
func (e *ExpenseRecord) CategoryName() (string, error) {
	if e.category == "" {
		return "", ErrCategoryUnset
	}
	return string(e.category), nil
}

// ClassifyName classifies the expense by label.
func (e *ExpenseRecord) ClassifyName(name string) error {
	c, err := ParseExpenseCategory(name)
	if err != nil {
		return err
	}
	e.category = c
	return nil
}

// Snapshot returns the persisted payload of the expense.
func (e *ExpenseRecord) Snapshot() (RecordSnapshot, error) {
	return snapshotOf(e)
}

// IncomeRecord is money earned.
type IncomeRecord struct {
	RecordCore
	category IncomeCategory
}

// NewIncome creates an unclassified income stamped with the current time.
func NewIncome(amount decimal.Decimal) (*IncomeRecord, error) {
	return NewIncomeAt(amount, time.Now())
}

// NewIncomeAt creates an unclassified income stamped with now.
func NewIncomeAt(amount decimal.Decimal, now time.Time) (*IncomeRecord, error) {
	core, err := newRecordCore(amount, now)
	if err != nil {
		return nil, err
	}
	return &IncomeRecord{RecordCore: core}, nil
}

func (i *IncomeRecord) Kind() Kind { return KindIncome }

// Classify sets or overwrites the category.
func (i *IncomeRecord) Classify(category IncomeCategory) { i.category = category }

// Category returns the category and whether one was assigned.
func (i *IncomeRecord) Category() (IncomeCategory, bool) {
	return i.category, i.category != ""
}

// CategoryName returns the category label or ErrCategoryUnset.
func (i *IncomeRecord) CategoryName() (string, error) {
	if i.category == "" {
		return "", ErrCategoryUnset
	}
	return string(i.category), nil
}

// ClassifyName classifies the income by label.
func (i *IncomeRecord) ClassifyName(name string) error {
	c, err := ParseIncomeCategory(name)
	if err != nil {
		return err
	}
	i.category = c
	return nil
}

// Snapshot returns the persisted payload of the income.
func (i *IncomeRecord) Snapshot() (RecordSnapshot, error) {
	return snapshotOf(i)
}

// NewRecord creates an unclassified record of the given kind.
func NewRecord(kind Kind, amount decimal.Decimal, now time.Time) (Record, error) {
	switch kind {
	case KindExpense:
		e, err := NewExpenseAt(amount, now)
		if err != nil {
			return nil, err
		}
		return e, nil
	case KindIncome:
		i, err := NewIncomeAt(amount, now)
		if err != nil {
			return nil, err
		}
		return i, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidKind, kind)
	}
}
