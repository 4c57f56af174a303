package domain

import (
	"fmt"
	"regexp"
	"time"
)

const (
	// DateLayout is the accepted layout for record dates.
	DateLayout = "2006-01-02"
	// PeriodLayout is the accepted layout for monthly periods.
	PeriodLayout = "2006-01"
)

var (
	periodRegex = regexp.MustCompile(`^[0-9]{4}-(0[1-9]|1[0-2])$`)
	dateRegex   = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}-[0-9]{2}$`)
)

// Period is a calendar month.
type Period struct {
	Year  int
	Month time.Month
}

// ParsePeriod parses a YYYY-MM string.
func ParsePeriod(s string) (Period, error) {
	if !periodRegex.MatchString(s) {
		return Period{}, fmt.Errorf("%w: got %q", ErrInvalidPeriod, s)
	}

	t, err := time.Parse(PeriodLayout, s)
	if err != nil {
		return Period{}, fmt.Errorf("%w: %v", ErrInvalidPeriod, err)
	}

	return Period{Year: t.Year(), Month: t.Month()}, nil
}

// PeriodOf returns the period t falls in.
func PeriodOf(t time.Time) Period {
	return Period{Year: t.Year(), Month: t.Month()}
}

// String formats the period as YYYY-MM.
func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}

// Contains reports whether t falls inside the period.
func (p Period) Contains(t time.Time) bool {
	return t.Year() == p.Year && t.Month() == p.Month
}

// Days returns the number of days in the period.
func (p Period) Days() int {
	return time.Date(p.Year, p.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ParseDate parses a YYYY-MM-DD string into a date at midnight UTC.
func ParseDate(s string) (time.Time, error) {
	if !dateRegex.MatchString(s) {
		return time.Time{}, fmt.Errorf("%w: got %q", ErrInvalidDate, s)
	}

	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	return t, nil
}
