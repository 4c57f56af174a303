package jsondoc

import (
	"fmt"
	"time"
)

const (
	minuteLayout = "2006-01-02T15:04"
	secondLayout = "2006-01-02T15:04:05"
)

// FormatDateTime writes t as a local ISO-8601 date-time without offset,
// using the shortest of HH:mm, HH:mm:ss and 3, 6 or 9 fraction digits
// that keeps every non-zero component.
func FormatDateTime(t time.Time) string {
	out := t.Format(minuteLayout)

	sec, nsec := t.Second(), t.Nanosecond()
	if sec == 0 && nsec == 0 {
		return out
	}

	out += fmt.Sprintf(":%02d", sec)

	switch {
	case nsec == 0:
		return out
	case nsec%int(time.Millisecond) == 0:
		return out + fmt.Sprintf(".%03d", nsec/int(time.Millisecond))
	case nsec%int(time.Microsecond) == 0:
		return out + fmt.Sprintf(".%06d", nsec/int(time.Microsecond))
	default:
		return out + fmt.Sprintf(".%09d", nsec)
	}
}

// ParseDateTime reads any form FormatDateTime writes, in the local zone.
func ParseDateTime(s string) (time.Time, error) {
	// Parse accepts an optional fraction after the seconds field.
	if t, err := time.ParseInLocation(secondLayout, s, time.Local); err == nil {
		return t, nil
	}

	t, err := time.ParseInLocation(minuteLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid dateTime %q", s)
	}

	return t, nil
}
