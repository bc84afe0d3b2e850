package server

import (
	"net/http"

	"github.com/tweetwall/backend/internal/fetcher"
	"github.com/tweetwall/backend/internal/store"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	store  store.Store
	tweets *fetcher.Client
}

func New(store store.Store, tweets *fetcher.Client) *Server {
	return &Server{store: store, tweets: tweets}
}

// Router returns the HTTP handler with all routes registered.
func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/data", s.handleData)
	mux.HandleFunc("/api/update", s.handleUpdate)
	mux.HandleFunc("/api/tweet_info", s.handleTweetInfo)
	mux.HandleFunc("/api/dates", s.handleDates)
	mux.HandleFunc("/healthz", s.handleHealth)
	return s.corsMiddleware(mux)
}
