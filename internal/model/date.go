package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("model: invalid date")

// Date is a whole-day calendar date in ISO form (YYYY-MM-DD).
type Date string

func ParseDate(raw string) (Date, error) {
	trimmed := strings.TrimSpace(raw)
	// Hosts sometimes hand over full ISO timestamps; keep the day part.
	if len(trimmed) > len(DateLayout) && trimmed[len(DateLayout)] == 'T' {
		trimmed = trimmed[:len(DateLayout)]
	}
	tm, err := time.Parse(DateLayout, trimmed)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, raw)
	}
	return Date(tm.Format(DateLayout)), nil
}

func DateOf(t time.Time) Date {
	return Date(t.Format(DateLayout))
}

func (d Date) IsValid() bool {
	_, err := time.Parse(DateLayout, string(d))
	return err == nil
}

// Time returns midnight UTC of the date, or the zero time when invalid.
func (d Date) Time() time.Time {
	tm, err := time.Parse(DateLayout, string(d))
	if err != nil {
		return time.Time{}
	}
	return tm
}

func (d Date) AddDays(n int) Date {
	tm := d.Time()
	if tm.IsZero() {
		return d
	}
	return DateOf(tm.AddDate(0, 0, n))
}

func (d Date) String() string { return string(d) }
