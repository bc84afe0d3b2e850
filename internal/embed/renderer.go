package embed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"
)

// HTTPRenderer renders previews from the tweet-metadata proxy endpoint. It
// reports Ready only after a health probe has reached the server, so
// loaders started before the server is reachable sit in
// AwaitingCapability instead of burning their render attempt.
type HTTPRenderer struct {
	base   string
	client *http.Client
	ready  atomic.Bool
}

func NewHTTPRenderer(base string) *HTTPRenderer {
	r := &HTTPRenderer{
		base:   strings.TrimRight(base, "/"),
		client: &http.Client{Timeout: 15 * time.Second},
	}
	go r.probe()
	return r
}

func (r *HTTPRenderer) probe() {
	for i := 0; i < 20; i++ {
		resp, err := r.client.Get(r.base + "/healthz")
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				r.ready.Store(true)
				return
			}
		}
		time.Sleep(500 * time.Millisecond)
	}
}

func (r *HTTPRenderer) Ready() bool {
	return r.ready.Load()
}

// tweetInfo is the subset of the upstream metadata the preview needs.
type tweetInfo struct {
	UserName string `json:"user_name"`
	Text     string `json:"text"`
}

func (r *HTTPRenderer) Render(ctx context.Context, id string, opts Options) (*Handle, error) {
	u := fmt.Sprintf("%s/api/tweet_info?id=%s", r.base, url.QueryEscape(id))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	// A missing or restricted post is an empty result, not an error.
	if resp.StatusCode != http.StatusOK {
		return nil, nil
	}

	var info tweetInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, nil
	}

	return &Handle{ID: id, Author: info.UserName, Text: info.Text}, nil
}
