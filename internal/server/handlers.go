package server

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/tweetwall/backend/internal/datenav"
	"github.com/tweetwall/backend/internal/fetcher"
	"github.com/tweetwall/backend/internal/model"
	"github.com/tweetwall/backend/internal/store"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, model.ErrorResponse{Error: code})
}

func (s *Server) handleData(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	date := r.URL.Query().Get("date")
	if !datenav.Valid(date) {
		writeError(w, http.StatusBadRequest, model.ErrBadDate)
		return
	}

	urls, err := s.store.Read(r.Context(), date)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		slog.Error("failed to read snapshot", "date", date, "error", err)
		writeError(w, http.StatusInternalServerError, model.ErrDatabase)
		return
	}
	if urls == nil {
		urls = []string{}
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, model.DataResponse{Date: date, URLs: urls})
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, model.ErrInvalidJSON)
		return
	}

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrInvalidJSON)
		return
	}

	date, _ := payload["date"].(string)
	urls, ok := urlList(payload["urls"])
	if !datenav.Valid(date) || !ok {
		writeError(w, http.StatusBadRequest, model.ErrBadRequest)
		return
	}

	// Lazy schema init: a failure here is logged, the upsert below will
	// surface a storage error if the table truly cannot exist.
	if err := s.store.EnsureSchema(r.Context()); err != nil {
		slog.Error("failed to ensure schema", "error", err)
	}

	if err := s.store.Upsert(r.Context(), date, urls); err != nil {
		slog.Error("failed to save snapshot", "date", date, "error", err)
		writeError(w, http.StatusInternalServerError, model.ErrDatabase)
		return
	}

	slog.Info("snapshot saved", "date", date, "urls", len(urls))
	writeJSON(w, http.StatusOK, model.UpdateResponse{OK: true})
}

// urlList accepts the decoded urls field only if it is a sequence of
// strings, with absent/null defaulting to empty. Elements are not
// validated as post URLs; that is the publisher's job.
func urlList(v any) ([]string, bool) {
	if v == nil {
		return []string{}, true
	}
	raw, ok := v.([]any)
	if !ok {
		return nil, false
	}
	urls := make([]string, 0, len(raw))
	for _, e := range raw {
		s, ok := e.(string)
		if !ok {
			return nil, false
		}
		urls = append(urls, s)
	}
	return urls, true
}

func (s *Server) handleTweetInfo(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, model.ErrMissingID)
		return
	}

	info, err := s.tweets.TweetInfo(r.Context(), id)
	switch {
	case errors.Is(err, fetcher.ErrUpstreamNotJSON):
		writeError(w, http.StatusBadGateway, model.ErrUpstreamInvalidResponse)
		return
	case errors.Is(err, fetcher.ErrUpstreamBadJSON):
		writeError(w, http.StatusBadGateway, model.ErrUpstreamInvalidJSON)
		return
	case err != nil:
		slog.Error("tweet info proxy failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, model.ErrProxy)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(info.Status)
	w.Write(info.Body)
}

func (s *Server) handleDates(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	limit := 30
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	dates, err := s.store.Dates(r.Context(), limit)
	if err != nil {
		slog.Error("failed to list dates", "error", err)
		writeError(w, http.StatusInternalServerError, model.ErrDatabase)
		return
	}
	if dates == nil {
		dates = []string{}
	}

	writeJSON(w, http.StatusOK, model.DatesResponse{Dates: dates})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}
