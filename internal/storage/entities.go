package storage

import "time"

const (
	BillingPending  = "pending"
	StatusSubmitted = "submitted"
)

// Entry is one submitted work log line, keyed by the calendar event it came
// from.
type Entry struct {
	ID            string
	EventID       string
	Project       string
	TaskName      string
	Hours         float64
	Date          string
	BillingStatus string
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type EntryListFilter struct {
	Date    string
	Project string
	Limit   int
	Offset  int
}
