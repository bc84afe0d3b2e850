package datenav

import (
	"fmt"
	"regexp"
	"time"
)

// Layout is the calendar-date format every store key and API parameter uses.
const Layout = "2006-01-02"

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Valid reports whether s has the YYYY-MM-DD shape. It checks the pattern
// only, not calendar validity, matching what the API accepts.
func Valid(s string) bool {
	return datePattern.MatchString(s)
}

// Today returns the UTC date component of now.
func Today(now time.Time) string {
	return now.UTC().Format(Layout)
}

// Normalize returns candidate if it is a well-formed date, otherwise today.
func Normalize(candidate string, now time.Time) string {
	if Valid(candidate) {
		return candidate
	}
	return Today(now)
}

// Offset shifts date by the given number of days, rolling over month and
// year boundaries.
func Offset(date string, days int) (string, error) {
	t, err := time.Parse(Layout, date)
	if err != nil {
		return "", fmt.Errorf("offset: %w", err)
	}
	return t.AddDate(0, 0, days).Format(Layout), nil
}

// Navigator owns the currently selected date. Forward navigation stops at
// today: the gallery has no future dates.
type Navigator struct {
	current string
	now     func() time.Time
}

// New builds a navigator positioned at candidate, or at today when the
// candidate is malformed. A nil now defaults to time.Now.
func New(candidate string, now func() time.Time) *Navigator {
	if now == nil {
		now = time.Now
	}
	return &Navigator{current: Normalize(candidate, now()), now: now}
}

// Current returns the selected date.
func (n *Navigator) Current() string {
	return n.current
}

// Select moves to candidate, falling back to today when it is malformed,
// and returns the new current date.
func (n *Navigator) Select(candidate string) string {
	n.current = Normalize(candidate, n.now())
	return n.current
}

// Prev moves one day back and returns the new current date.
func (n *Navigator) Prev() string {
	if d, err := Offset(n.current, -1); err == nil {
		n.current = d
	}
	return n.current
}

// Next moves one day forward, unless the current date is already at or
// beyond today.
func (n *Navigator) Next() string {
	if !n.CanGoForward() {
		return n.current
	}
	if d, err := Offset(n.current, 1); err == nil {
		n.current = d
	}
	return n.current
}

// CanGoForward reports whether Next would move. Dates compare
// lexicographically in this layout.
func (n *Navigator) CanGoForward() bool {
	return n.current < Today(n.now())
}
