// Package cache is the device-local fallback store: the last known good URL
// list per date, consulted when the authoritative store is unreachable or
// empty. Keys are the date string behind a fixed prefix, values the
// JSON-encoded list.
package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"
)

const keyPrefix = "tweets_"

const schema = `
CREATE TABLE IF NOT EXISTS entries (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

// Store is a persistent key-value cache backed by sqlite.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the cache database at path. ":memory:" gives a
// throwaway store.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open cache: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init cache schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Get returns the cached URL list for date, or (nil, nil) when no entry
// exists.
func (s *Store) Get(ctx context.Context, date string) ([]string, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		"SELECT value FROM entries WHERE key = ?", keyPrefix+date,
	).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var urls []string
	if err := json.Unmarshal([]byte(value), &urls); err != nil {
		return nil, fmt.Errorf("corrupt cache entry for %s: %w", date, err)
	}
	return urls, nil
}

// Put overwrites the entry for date with urls.
func (s *Store) Put(ctx context.Context, date string, urls []string) error {
	if urls == nil {
		urls = []string{}
	}
	value, err := json.Marshal(urls)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO entries (key, value) VALUES (?, ?)",
		keyPrefix+date, string(value),
	)
	return err
}

func (s *Store) Close() error {
	return s.db.Close()
}
