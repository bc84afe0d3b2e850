// Package view fans a resolved URL list out to one embed loader per item
// and collects their terminal states. Items are fully independent: one
// item's failure or slowness never blocks another's.
package view

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/tweetwall/backend/internal/embed"
)

// Item is one entry's final visual state.
type Item struct {
	URL     string
	State   embed.State
	Message string
	Handle  *embed.Handle
}

// View owns the loaders for one displayed list.
type View struct {
	loaders []*embed.Loader
}

func New(urls []string, renderer embed.Renderer, cfg embed.Config) *View {
	v := &View{loaders: make([]*embed.Loader, 0, len(urls))}
	for _, u := range urls {
		v.loaders = append(v.loaders, embed.NewLoader(u, renderer, cfg))
	}
	return v
}

// Load starts every loader, waits for all of them to settle, and returns
// the per-item results in input order.
func (v *View) Load(ctx context.Context) []Item {
	for _, l := range v.loaders {
		l.Start(ctx)
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, l := range v.loaders {
		l := l
		g.Go(func() error {
			select {
			case <-l.Done():
			case <-gctx.Done():
			}
			return nil // item-level failures never fail the group
		})
	}
	_ = g.Wait()

	items := make([]Item, 0, len(v.loaders))
	for _, l := range v.loaders {
		items = append(items, Item{
			URL:     l.URL(),
			State:   l.State(),
			Message: l.Message(),
			Handle:  l.Handle(),
		})
	}
	return items
}
