package model

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidCategory = errors.New("model: invalid event category")

type Category string

const (
	CategoryDanger  Category = "Danger"
	CategoryPrimary Category = "Primary"
	CategorySuccess Category = "Success"
	CategoryWarning Category = "Warning"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryDanger, CategoryPrimary, CategorySuccess, CategoryWarning:
		return true
	default:
		return false
	}
}

// CalendarEvent is a committed entry in the event store. Its title carries
// exactly one encoded TaskRow, although malformed titles are allowed.
type CalendarEvent struct {
	ID        string
	Title     string
	StartDate Date
	EndDate   Date
	Category  Category
}

func (e CalendarEvent) Validate() error {
	if strings.TrimSpace(e.ID) == "" {
		return errors.New("model: event id is required")
	}
	if !e.StartDate.IsValid() {
		return fmt.Errorf("%w: start %q", ErrInvalidDate, e.StartDate)
	}
	if e.EndDate != "" && !e.EndDate.IsValid() {
		return fmt.Errorf("%w: end %q", ErrInvalidDate, e.EndDate)
	}
	if e.EndDate != "" && e.EndDate < e.StartDate {
		return errors.New("model: event end date before start date")
	}
	if !e.Category.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, e.Category)
	}
	return nil
}

// Covers reports whether the event spans the given day.
func (e CalendarEvent) Covers(d Date) bool {
	end := e.EndDate
	if end == "" {
		end = e.StartDate
	}
	return d >= e.StartDate && d <= end
}
