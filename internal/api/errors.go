package api

import (
	"encoding/json"
	"net/http"
)

// Error represents a structured error response.
type Error struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// Common error codes.
const (
	ErrCodeBadRequest = "BAD_REQUEST"
	ErrCodeNotFound   = "NOT_FOUND"
	ErrCodeValidation = "VALIDATION_ERROR"
	ErrCodeInternal   = "INTERNAL_ERROR"
)

// writeJSON writes a JSON response with the given status code and payload.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		//nolint:errcheck // Best-effort write to response; connection may be closed
		json.NewEncoder(w).Encode(v)
	}
}

// writeNotFound writes a 404 response naming the missing entity,
// e.g. "Teapot not found".
func writeNotFound(w http.ResponseWriter, entity string) {
	writeJSON(w, http.StatusNotFound, Error{
		Code:    ErrCodeNotFound,
		Message: entity + " not found",
	})
}

// writeBadRequest writes a 400 error response.
func writeBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, Error{
		Code:    ErrCodeBadRequest,
		Message: message,
	})
}

// writeValidationError writes a 422 response carrying the per-field messages.
func writeValidationError(w http.ResponseWriter, errs validationErrors) {
	writeJSON(w, http.StatusUnprocessableEntity, Error{
		Code:    ErrCodeValidation,
		Message: "The given data was invalid.",
		Errors:  errs,
	})
}

// writeInternalError writes a 500 error response.
func writeInternalError(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusInternalServerError, Error{
		Code:    ErrCodeInternal,
		Message: message,
	})
}

// validationErrors accumulates request validation failures, keyed by the
// JSON field name.
type validationErrors map[string][]string

func (v validationErrors) add(field, message string) {
	v[field] = append(v[field], message)
}

func (v validationErrors) empty() bool {
	return len(v) == 0
}
