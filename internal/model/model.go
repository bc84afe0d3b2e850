package model

// DataResponse is the body of GET /api/data: the snapshot for one date.
type DataResponse struct {
	Date string   `json:"date"`
	URLs []string `json:"urls"`
}

// UpdateRequest is the body of POST /api/update.
type UpdateRequest struct {
	Date string   `json:"date"`
	URLs []string `json:"urls"`
}

// UpdateResponse acknowledges a successful publish.
type UpdateResponse struct {
	OK bool `json:"ok"`
}

// DatesResponse lists the most recent dates that have a snapshot.
type DatesResponse struct {
	Dates []string `json:"dates"`
}

// ErrorResponse is the uniform error envelope for all API endpoints.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// Error envelope codes.
const (
	ErrBadDate                 = "bad_date"
	ErrBadRequest              = "bad_request"
	ErrInvalidJSON             = "invalid_json"
	ErrDatabase                = "database_error"
	ErrMissingID               = "missing_id"
	ErrUpstreamInvalidResponse = "upstream_invalid_response"
	ErrUpstreamInvalidJSON     = "upstream_invalid_json"
	ErrProxy                   = "proxy_error"
)
