package datenav

import (
	"testing"
	"time"
)

func fixedNow() time.Time {
	return time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
}

func TestValid(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"2024-03-01", true},
		{"1999-12-31", true},
		{"2024-3-1", false},
		{"2024-03-1", false},
		{"20240301", false},
		{"", false},
		{"2024-03-01T00:00", false},
		{"not-a-date", false},
	}
	for _, c := range cases {
		if got := Valid(c.in); got != c.want {
			t.Errorf("Valid(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	now := fixedNow()

	if got := Normalize("2024-03-01", now); got != "2024-03-01" {
		t.Errorf("valid candidate: got %q", got)
	}
	if got := Normalize("garbage", now); got != "2024-06-15" {
		t.Errorf("invalid candidate should fall back to today: got %q", got)
	}
	if got := Normalize("", now); got != "2024-06-15" {
		t.Errorf("empty candidate should fall back to today: got %q", got)
	}
}

func TestOffsetRollover(t *testing.T) {
	cases := []struct {
		date string
		days int
		want string
	}{
		{"2024-03-01", -1, "2024-02-29"}, // leap year
		{"2024-02-29", 1, "2024-03-01"},
		{"2023-03-01", -1, "2023-02-28"},
		{"2023-12-31", 1, "2024-01-01"}, // year boundary
		{"2024-01-01", -1, "2023-12-31"},
		{"2024-06-15", 0, "2024-06-15"},
	}
	for _, c := range cases {
		got, err := Offset(c.date, c.days)
		if err != nil {
			t.Fatalf("Offset(%q, %d): %v", c.date, c.days, err)
		}
		if got != c.want {
			t.Errorf("Offset(%q, %d) = %q, want %q", c.date, c.days, got, c.want)
		}
	}
}

func TestOffsetRejectsGarbage(t *testing.T) {
	if _, err := Offset("2024-13-99", 1); err == nil {
		t.Fatal("expected error for impossible date")
	}
}

func TestNavigatorForwardStopsAtToday(t *testing.T) {
	n := New("2024-06-14", fixedNow)

	if !n.CanGoForward() {
		t.Fatal("yesterday should allow forward navigation")
	}
	if got := n.Next(); got != "2024-06-15" {
		t.Fatalf("Next: got %q", got)
	}
	if n.CanGoForward() {
		t.Fatal("today must not allow forward navigation")
	}
	if got := n.Next(); got != "2024-06-15" {
		t.Fatalf("Next at today should be a no-op, got %q", got)
	}
}

func TestNavigatorPrevAndSelect(t *testing.T) {
	n := New("2024-03-01", fixedNow)

	if got := n.Prev(); got != "2024-02-29" {
		t.Fatalf("Prev: got %q", got)
	}
	if got := n.Select("bogus"); got != "2024-06-15" {
		t.Fatalf("Select with bad candidate should land on today, got %q", got)
	}
	if got := n.Select("2024-01-05"); got != "2024-01-05" {
		t.Fatalf("Select: got %q", got)
	}
}

func TestNewFallsBackToToday(t *testing.T) {
	n := New("nope", fixedNow)
	if n.Current() != "2024-06-15" {
		t.Fatalf("got %q", n.Current())
	}
}
