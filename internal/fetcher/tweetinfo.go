// Package fetcher talks to the external tweet-metadata service. The proxy
// endpoint forwards its answers verbatim, but only after the guards here
// confirm the upstream actually returned JSON.
package fetcher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Upstream failure modes the proxy distinguishes in its error envelopes.
var (
	ErrUpstreamNotJSON = errors.New("upstream returned non-JSON content type")
	ErrUpstreamBadJSON = errors.New("upstream returned invalid JSON")
)

// Client holds the shared HTTP client and the upstream base URL.
type Client struct {
	client *http.Client
	base   string
}

func New(base string) *Client {
	return &Client{
		client: &http.Client{Timeout: 30 * time.Second},
		base:   strings.TrimRight(base, "/"),
	}
}

// TweetInfo is the upstream's answer, forwarded verbatim: its status code
// and raw JSON body.
type TweetInfo struct {
	Status int
	Body   []byte
}

// TweetInfo fetches metadata for one status id. The body is only returned
// when the upstream both declares a JSON content type and sends a body
// that parses as JSON; anything else is a typed upstream error.
func (c *Client) TweetInfo(ctx context.Context, id string) (*TweetInfo, error) {
	url := fmt.Sprintf("%s/Twitter/status/%s", c.base, id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType != "" && !strings.Contains(contentType, "application/json") {
		slog.Warn("upstream returned non-JSON content type", "id", id, "content_type", contentType)
		return nil, ErrUpstreamNotJSON
	}
	if !json.Valid(body) {
		slog.Warn("upstream returned invalid JSON", "id", id, "status", resp.StatusCode)
		return nil, ErrUpstreamBadJSON
	}

	return &TweetInfo{Status: resp.StatusCode, Body: body}, nil
}
