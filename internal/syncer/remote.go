package syncer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tweetwall/backend/internal/model"
)

// HTTPRemote implements Remote against the snapshot server's API.
type HTTPRemote struct {
	base   string
	client *http.Client
}

func NewHTTPRemote(base string) *HTTPRemote {
	return &HTTPRemote{
		base:   strings.TrimRight(base, "/"),
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (r *HTTPRemote) Read(ctx context.Context, date string) ([]string, error) {
	u := fmt.Sprintf("%s/api/data?date=%s", r.base, url.QueryEscape(date))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("read %s: status %d", date, resp.StatusCode)
	}

	var data model.DataResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("read %s: malformed payload: %w", date, err)
	}
	return data.URLs, nil
}

func (r *HTTPRemote) Upsert(ctx context.Context, date string, urls []string) error {
	if urls == nil {
		urls = []string{}
	}
	body, err := json.Marshal(model.UpdateRequest{Date: date, URLs: urls})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.base+"/api/update", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("upsert %s: status %d", date, resp.StatusCode)
	}

	var ack model.UpdateResponse
	if err := json.NewDecoder(resp.Body).Decode(&ack); err != nil {
		return fmt.Errorf("upsert %s: malformed payload: %w", date, err)
	}
	if !ack.OK {
		return fmt.Errorf("upsert %s: server did not acknowledge", date)
	}
	return nil
}
