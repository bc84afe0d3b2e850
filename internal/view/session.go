package view

import (
	"context"
	"sync"

	"github.com/tweetwall/backend/internal/datenav"
)

// Resolver resolves the URL list for a date. Satisfied by syncer.Client.
type Resolver interface {
	Resolve(ctx context.Context, date string) []string
}

// Session is the view-model for the gallery: the current date and the
// list on display. Resolves are not cancellable once issued, so a result
// is applied only if its date is still the current one — a slow response
// for a previously viewed date never overwrites a newer view.
type Session struct {
	resolver Resolver

	mu   sync.Mutex
	nav  *datenav.Navigator
	urls []string
}

func NewSession(resolver Resolver, nav *datenav.Navigator) *Session {
	return &Session{resolver: resolver, nav: nav}
}

// Current returns the date on display.
func (s *Session) Current() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nav.Current()
}

// URLs returns the list on display.
func (s *Session) URLs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.urls
}

// Select navigates to candidate (today when malformed) and resolves its
// list.
func (s *Session) Select(ctx context.Context, candidate string) []string {
	s.mu.Lock()
	date := s.nav.Select(candidate)
	s.mu.Unlock()
	return s.show(ctx, date)
}

// Prev navigates one day back and resolves.
func (s *Session) Prev(ctx context.Context) []string {
	s.mu.Lock()
	date := s.nav.Prev()
	s.mu.Unlock()
	return s.show(ctx, date)
}

// Next navigates one day forward (stopping at today) and resolves.
func (s *Session) Next(ctx context.Context) []string {
	s.mu.Lock()
	date := s.nav.Next()
	s.mu.Unlock()
	return s.show(ctx, date)
}

func (s *Session) show(ctx context.Context, date string) []string {
	urls := s.resolver.Resolve(ctx, date)
	s.apply(date, urls)
	return s.URLs()
}

// apply installs urls only if date is still current.
func (s *Session) apply(date string, urls []string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if date != s.nav.Current() {
		return false
	}
	s.urls = urls
	return true
}
