package store

import (
	"context"
	"errors"
	"testing"
)

// Validation must reject before any storage access: the nil db here would
// panic if the queries ran.
func TestUpsertRejectsBadDateBeforeStorage(t *testing.T) {
	p := NewPostgres(nil)

	for _, date := range []string{"2024-3-1", "", "garbage", "2024/03/01"} {
		err := p.Upsert(context.Background(), date, []string{"https://x.com/a/status/1"})
		if !errors.Is(err, ErrBadDate) {
			t.Errorf("Upsert(%q): got %v, want ErrBadDate", date, err)
		}
	}
}

func TestReadRejectsBadDateBeforeStorage(t *testing.T) {
	p := NewPostgres(nil)

	if _, err := p.Read(context.Background(), "2024-3-1"); !errors.Is(err, ErrBadDate) {
		t.Fatalf("got %v, want ErrBadDate", err)
	}
}
