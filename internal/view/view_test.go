package view

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tweetwall/backend/internal/embed"
)

type stubRenderer struct {
	renderFn func(ctx context.Context, id string, opts embed.Options) (*embed.Handle, error)
}

func (s *stubRenderer) Ready() bool { return true }

func (s *stubRenderer) Render(ctx context.Context, id string, opts embed.Options) (*embed.Handle, error) {
	return s.renderFn(ctx, id, opts)
}

func shortConfig() embed.Config {
	return embed.Config{PollInterval: 2 * time.Millisecond, Timeout: 200 * time.Millisecond}
}

// One item failing or stalling must not drag down its siblings.
func TestLoadIsolatesItemFailures(t *testing.T) {
	r := &stubRenderer{
		renderFn: func(ctx context.Context, id string, opts embed.Options) (*embed.Handle, error) {
			switch id {
			case "2":
				return nil, nil // deleted post
			case "3":
				return nil, errors.New("widget exploded")
			}
			return &embed.Handle{ID: id}, nil
		},
	}

	urls := []string{
		"https://x.com/a/status/1",
		"https://x.com/b/status/2",
		"https://x.com/c/status/3",
		"https://x.com/d/status/4",
	}
	items := New(urls, r, shortConfig()).Load(context.Background())

	if len(items) != 4 {
		t.Fatalf("got %d items", len(items))
	}
	wantStates := []embed.State{
		embed.StateLoaded,
		embed.StateFailedToRender,
		embed.StateFailedToRender,
		embed.StateLoaded,
	}
	for i, item := range items {
		if item.URL != urls[i] {
			t.Errorf("item %d: order lost, got %q", i, item.URL)
		}
		if item.State != wantStates[i] {
			t.Errorf("item %d: state %v, want %v", i, item.State, wantStates[i])
		}
	}
}

func TestLoadOneSlowItemTimesOutAlone(t *testing.T) {
	r := &stubRenderer{
		renderFn: func(ctx context.Context, id string, opts embed.Options) (*embed.Handle, error) {
			if id == "2" {
				<-ctx.Done() // never resolves
				return nil, ctx.Err()
			}
			return &embed.Handle{ID: id}, nil
		},
	}

	urls := []string{"https://x.com/a/status/1", "https://x.com/b/status/2"}
	cfg := embed.Config{PollInterval: 2 * time.Millisecond, Timeout: 30 * time.Millisecond}
	items := New(urls, r, cfg).Load(context.Background())

	if items[0].State != embed.StateLoaded {
		t.Fatalf("fast item: %v", items[0].State)
	}
	if items[1].State != embed.StateTimedOut {
		t.Fatalf("slow item: %v", items[1].State)
	}
}

func TestLoadEmptyList(t *testing.T) {
	r := &stubRenderer{renderFn: func(ctx context.Context, id string, opts embed.Options) (*embed.Handle, error) {
		return &embed.Handle{ID: id}, nil
	}}
	if items := New(nil, r, shortConfig()).Load(context.Background()); len(items) != 0 {
		t.Fatalf("got %v", items)
	}
}
