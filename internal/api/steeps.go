package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/teapotframework/teapot-core/internal/brewing"
)

// handleListSteeps returns the steeps of one brew, ordered by steep number.
//
// GET /brews/{id}/steeps
func (s *Server) handleListSteeps(w http.ResponseWriter, r *http.Request) {
	brewID := chi.URLParam(r, "id")

	if _, err := s.store.GetBrew(brewID); err != nil {
		writeNotFound(w, "Brew")
		return
	}

	page, limit := parsePagination(r)

	steeps := s.store.ListSteepsByBrew(brewID, page, limit)
	total := s.store.CountSteepsByBrew(brewID)

	writeJSON(w, http.StatusOK, newListResponse(steeps, page, limit, total))
}

// handleCreateSteep records an infusion of a brew. The steep number is
// assigned by the store so concurrent requests never collide.
//
// POST /brews/{id}/steeps
// Response: 201 Created with the created steep
func (s *Server) handleCreateSteep(w http.ResponseWriter, r *http.Request) {
	brewID := chi.URLParam(r, "id")

	var req storeSteepRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	if errs := req.validate(); !errs.empty() {
		writeValidationError(w, errs)
		return
	}

	steep, err := s.store.CreateSteep(brewing.NewSteep{
		ID:              uuid.NewString(),
		BrewID:          brewID,
		DurationSeconds: *req.DurationSeconds,
		Rating:          req.Rating.value,
		Notes:           req.Notes.value,
	})
	if err != nil {
		writeNotFound(w, "Brew")
		return
	}

	writeJSON(w, http.StatusCreated, steep)
}
