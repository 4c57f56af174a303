package domain

import (
	"errors"
	"testing"
	"time"
)

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		input     string
		wantYear  int
		wantMonth time.Month
		wantErr   bool
	}{
		{input: "2023-02", wantYear: 2023, wantMonth: time.February},
		{input: "1999-12", wantYear: 1999, wantMonth: time.December},
		{input: "2023-2", wantErr: true},
		{input: "23-02", wantErr: true},
		{input: "2023-00", wantErr: true},
		{input: "2023-13", wantErr: true},
		{input: " 2023-02", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p, err := ParsePeriod(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidPeriod) {
					t.Fatalf("expected ErrInvalidPeriod, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.Year != tt.wantYear || p.Month != tt.wantMonth {
				t.Fatalf("got %+v", p)
			}
			if p.String() != tt.input {
				t.Fatalf("expected round trip to %s, got %s", tt.input, p.String())
			}
		})
	}
}

func TestPeriod_Days(t *testing.T) {
	tests := map[string]int{
		"2023-02": 28,
		"2024-02": 29,
		"2023-04": 30,
		"2023-12": 31,
	}

	for input, want := range tests {
		p, err := ParsePeriod(input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := p.Days(); got != want {
			t.Errorf("%s: expected %d days, got %d", input, want, got)
		}
	}
}

func TestPeriodOf(t *testing.T) {
	p := PeriodOf(time.Date(2023, time.July, 4, 12, 0, 0, 0, time.Local))
	if p.String() != "2023-07" {
		t.Fatalf("expected 2023-07, got %s", p)
	}
	if !p.Contains(time.Date(2023, time.July, 31, 23, 0, 0, 0, time.Local)) {
		t.Fatalf("expected July 31 to be inside the period")
	}
	if p.Contains(time.Date(2024, time.July, 1, 0, 0, 0, 0, time.Local)) {
		t.Fatalf("expected July of another year to be outside the period")
	}
}
