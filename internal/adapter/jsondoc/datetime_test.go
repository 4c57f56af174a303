package jsondoc

import (
	"testing"
	"time"
)

func TestFormatDateTime(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{name: "minutes only", in: time.Date(2023, 2, 1, 10, 15, 0, 0, time.Local), want: "2023-02-01T10:15"},
		{name: "seconds", in: time.Date(2023, 2, 1, 10, 15, 30, 0, time.Local), want: "2023-02-01T10:15:30"},
		{name: "zero seconds with fraction", in: time.Date(2023, 2, 1, 10, 15, 0, 5000000, time.Local), want: "2023-02-01T10:15:00.005"},
		{name: "millis", in: time.Date(2023, 2, 1, 10, 15, 30, 120000000, time.Local), want: "2023-02-01T10:15:30.120"},
		{name: "micros", in: time.Date(2023, 2, 1, 10, 15, 30, 123456000, time.Local), want: "2023-02-01T10:15:30.123456"},
		{name: "nanos", in: time.Date(2023, 2, 1, 10, 15, 30, 123456789, time.Local), want: "2023-02-01T10:15:30.123456789"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatDateTime(tt.in)
			if got != tt.want {
				t.Fatalf("FormatDateTime() = %s, want %s", got, tt.want)
			}

			parsed, err := ParseDateTime(got)
			if err != nil {
				t.Fatalf("ParseDateTime(%s): %v", got, err)
			}
			if !parsed.Equal(tt.in) {
				t.Fatalf("round trip mismatch: %s != %s", parsed, tt.in)
			}
		})
	}
}

func TestParseDateTime_Invalid(t *testing.T) {
	for _, s := range []string{"", "2023-02-01", "2023-02-01 10:15", "2023-02-01T10:15:30+02:00", "2023-02-30T10:00"} {
		if _, err := ParseDateTime(s); err == nil {
			t.Errorf("expected error for %q", s)
		}
	}
}
