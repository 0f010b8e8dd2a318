package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("storage: not found")

type Repository interface {
	UpsertEntry(ctx context.Context, in Entry) error
	GetEntryByEvent(ctx context.Context, eventID string) (Entry, error)
	DeleteEntryByEvent(ctx context.Context, eventID string) error
	ListEntries(ctx context.Context, filter EntryListFilter) ([]Entry, error)
	TotalHours(ctx context.Context, date string) (float64, error)
}
