package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Read when no snapshot exists for the date.
var ErrNotFound = errors.New("snapshot not found")

// ErrBadDate is returned when a date does not match YYYY-MM-DD. Validation
// happens before any storage access.
var ErrBadDate = errors.New("date must be YYYY-MM-DD")

// Store is the authoritative snapshot store: one URL list per calendar date.
type Store interface {
	// EnsureSchema creates the backing table if absent. Safe to call
	// repeatedly.
	EnsureSchema(ctx context.Context) error
	// Read returns the URL list for date, or ErrNotFound.
	Read(ctx context.Context, date string) ([]string, error)
	// Upsert atomically inserts or fully replaces the list for date and
	// refreshes its save timestamp.
	Upsert(ctx context.Context, date string, urls []string) error
	// Dates returns the most recent dates that have a snapshot, newest
	// first.
	Dates(ctx context.Context, limit int) ([]string, error)
}
