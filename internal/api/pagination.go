package api

import (
	"net/http"
	"strconv"
)

// Pagination defaults and bounds, shared by every list endpoint.
const (
	defaultPage  = 1
	defaultLimit = 20
	maxLimit     = 100
)

// pageMeta is the pagination block of a list response.
type pageMeta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// listResponse is the envelope returned by every list endpoint.
type listResponse struct {
	Data       any      `json:"data"`
	Pagination pageMeta `json:"pagination"`
}

func newListResponse(data any, page, limit, total int) listResponse {
	return listResponse{
		Data: data,
		Pagination: pageMeta{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: (total + limit - 1) / limit,
		},
	}
}

// parsePagination reads and clamps the page and limit query parameters.
// Unparsable values behave like zero and clamp upward, never erroring.
func parsePagination(r *http.Request) (page, limit int) {
	page = intQuery(r, "page", defaultPage)
	limit = intQuery(r, "limit", defaultLimit)

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}

// intQuery returns the named query parameter as an int, def when absent,
// and 0 when present but unparsable.
func intQuery(r *http.Request, key string, def int) int {
	s := r.URL.Query().Get(key)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
