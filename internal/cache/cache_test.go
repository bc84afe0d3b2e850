package cache

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "cache.sqlite3"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPutGetRoundtrip(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	urls := []string{"https://x.com/a/status/1", "https://x.com/b/status/2"}
	if err := s.Put(ctx, "2024-03-01", urls); err != nil {
		t.Fatal(err)
	}

	got, err := s.Get(ctx, "2024-03-01")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, urls) {
		t.Fatalf("got %v, want %v", got, urls)
	}
}

func TestGetMissingEntry(t *testing.T) {
	s := openStore(t)

	got, err := s.Get(context.Background(), "1999-01-01")
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Fatalf("expected nil for a date never cached, got %v", got)
	}
}

func TestPutOverwrites(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	if err := s.Put(ctx, "2024-03-01", []string{"https://x.com/a/status/1"}); err != nil {
		t.Fatal(err)
	}
	if err := s.Put(ctx, "2024-03-01", []string{"https://x.com/b/status/2"}); err != nil {
		t.Fatal(err)
	}

	got, err := s.Get(ctx, "2024-03-01")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0] != "https://x.com/b/status/2" {
		t.Fatalf("second Put should fully replace the entry, got %v", got)
	}
}

func TestKeyFormat(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	if err := s.Put(ctx, "2024-03-01", []string{"https://x.com/a/status/1"}); err != nil {
		t.Fatal(err)
	}

	var value string
	err := s.db.QueryRow("SELECT value FROM entries WHERE key = ?", "tweets_2024-03-01").Scan(&value)
	if err != nil {
		t.Fatalf("entry not stored under prefixed key: %v", err)
	}
	if value != `["https://x.com/a/status/1"]` {
		t.Fatalf("value is not the JSON-encoded list: %q", value)
	}
}

func TestEntriesAreIndependent(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	s.Put(ctx, "2024-03-01", []string{"https://x.com/a/status/1"})
	s.Put(ctx, "2024-03-02", []string{"https://x.com/b/status/2"})

	got, _ := s.Get(ctx, "2024-03-01")
	if len(got) != 1 || got[0] != "https://x.com/a/status/1" {
		t.Fatalf("got %v", got)
	}
}
