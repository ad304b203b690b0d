package common

import (
	"encoding/json"
	"net/http"
	"strconv"
)

// ErrorBody is the wire shape inside the "error" envelope every endpoint
// returns on failure.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// Pagination is attached to list responses (bills, and any future paged
// collection) next to the items.
type Pagination struct {
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	TotalItems int `json:"total_items"`
}

// JSON encodes v to the client with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// JSONError writes the canonical error envelope.
func JSONError(w http.ResponseWriter, status int, code, message string, details any) {
	JSON(w, status, map[string]any{
		"error": ErrorBody{Code: code, Message: message, Details: details},
	})
}

// ParsePagination reads page and limit query parameters, falling back to page
// one and the caller's default page size on anything missing or non-positive.
func ParsePagination(r *http.Request, defaultPerPage int) (page, perPage int) {
	page, perPage = 1, defaultPerPage
	query := r.URL.Query()
	if v, err := strconv.Atoi(query.Get("page")); err == nil && v > 0 {
		page = v
	}
	if v, err := strconv.Atoi(query.Get("limit")); err == nil && v > 0 {
		perPage = v
	}
	return page, perPage
}
