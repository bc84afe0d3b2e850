// Package syncer reconciles the authoritative snapshot store with the
// device-local cache. Reads walk the fallback tiers remote -> cache ->
// empty and never surface an error; writes report remote and local
// outcomes independently.
package syncer

import (
	"context"
	"log/slog"

	"github.com/tweetwall/backend/internal/cache"
)

// Remote is the authoritative store as seen from a client. Network errors,
// non-success statuses and malformed payloads all surface as a plain error:
// the syncer treats them uniformly as "remote unavailable".
type Remote interface {
	Read(ctx context.Context, date string) ([]string, error)
	Upsert(ctx context.Context, date string, urls []string) error
}

// Client resolves and publishes per-date URL lists.
type Client struct {
	remote Remote
	cache  *cache.Store
}

func New(remote Remote, cache *cache.Store) *Client {
	return &Client{remote: remote, cache: cache}
}

// Resolve returns the URL list for date. A non-empty remote answer is
// authoritative and overwrites the cache; a failed or empty remote read
// falls back to the cached entry; with neither, the list is empty. Resolve
// never returns an error.
func (c *Client) Resolve(ctx context.Context, date string) []string {
	urls, err := c.remote.Read(ctx, date)
	if err == nil && len(urls) > 0 {
		if cerr := c.cache.Put(ctx, date, urls); cerr != nil {
			slog.Warn("failed to update local cache", "date", date, "error", cerr)
		}
		return urls
	}
	if err != nil {
		slog.Warn("remote read failed, falling back to cache", "date", date, "error", err)
	}

	cached, cerr := c.cache.Get(ctx, date)
	if cerr != nil {
		slog.Warn("local cache read failed", "date", date, "error", cerr)
		return nil
	}
	if len(cached) > 0 {
		return cached
	}
	return nil
}

// Outcome reports the two independent results of a publish. The caller
// composes them — typically warning "saved locally only" when the remote
// write failed.
type Outcome struct {
	RemoteSaved bool
	LocalSaved  bool
}

// Publish upserts the list for date remotely, then overwrites the local
// entry regardless of the remote result: the publisher's own view must
// reflect what they just tried to publish.
func (c *Client) Publish(ctx context.Context, date string, urls []string) Outcome {
	var out Outcome

	if err := c.remote.Upsert(ctx, date, urls); err != nil {
		slog.Warn("remote publish failed", "date", date, "error", err)
	} else {
		out.RemoteSaved = true
	}

	if err := c.cache.Put(ctx, date, urls); err != nil {
		slog.Warn("local cache write failed", "date", date, "error", err)
	} else {
		out.LocalSaved = true
	}

	return out
}
