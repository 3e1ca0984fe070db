package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/teapotframework/teapot-core/internal/brewing"
)

// handleListBrews returns a page of brews, with optional query filters.
//
// GET /brews?status=steeping&teapotId=...&teaId=...&page=1&limit=20
func (s *Server) handleListBrews(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)

	filter := brewing.BrewFilter{}
	if v := r.URL.Query().Get("status"); v != "" {
		if st, ok := brewing.ParseBrewStatus(v); ok {
			filter.Status = &st
		}
	}
	if v := r.URL.Query().Get("teapotId"); v != "" {
		filter.TeapotID = &v
	}
	if v := r.URL.Query().Get("teaId"); v != "" {
		filter.TeaID = &v
	}

	brews := s.store.ListBrews(filter, page, limit)
	total := s.store.CountBrews(filter)

	writeJSON(w, http.StatusOK, newListResponse(brews, page, limit, total))
}

// handleCreateBrew starts a brew in a teapot with a tea.
//
// The store resolves both references and snapshots the tea's recommended
// steep temperature when waterTempCelsius is omitted, all under one lock.
// A missing reference maps to a 404 naming the entity that was not found.
func (s *Server) handleCreateBrew(w http.ResponseWriter, r *http.Request) {
	var req storeBrewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	if errs := req.validate(); !errs.empty() {
		writeValidationError(w, errs)
		return
	}

	brew, err := s.store.CreateBrew(brewing.NewBrew{
		ID:               uuid.NewString(),
		TeapotID:         *req.TeapotID,
		TeaID:            *req.TeaID,
		WaterTempCelsius: req.WaterTempCelsius,
		Notes:            req.Notes.value,
	})
	if err != nil {
		switch {
		case errors.Is(err, brewing.ErrTeapotNotFound):
			writeNotFound(w, "Teapot")
		case errors.Is(err, brewing.ErrTeaNotFound):
			writeNotFound(w, "Tea")
		default:
			writeInternalError(w, "failed to create brew")
		}
		return
	}

	writeJSON(w, http.StatusCreated, brew)
}

// handleGetBrew returns a single brew by ID.
func (s *Server) handleGetBrew(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	brew, err := s.store.GetBrew(id)
	if err != nil {
		writeNotFound(w, "Brew")
		return
	}

	writeJSON(w, http.StatusOK, brew)
}

// handlePatchBrew updates a brew's status, notes, or completion time.
// Identity fields and the water temperature snapshot are immutable.
func (s *Server) handlePatchBrew(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req patchBrewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	if errs := req.validate(); !errs.empty() {
		writeValidationError(w, errs)
		return
	}

	brew, err := s.store.PatchBrew(id, req.toPatch())
	if err != nil {
		writeNotFound(w, "Brew")
		return
	}

	writeJSON(w, http.StatusOK, brew)
}

// handleDeleteBrew removes a brew and all of its steeps.
func (s *Server) handleDeleteBrew(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := s.store.DeleteBrew(id); err != nil {
		if errors.Is(err, brewing.ErrBrewNotFound) {
			writeNotFound(w, "Brew")
			return
		}
		writeInternalError(w, "failed to delete brew")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleListBrewsByTeapot returns the brews made in one teapot.
//
// GET /teapots/{id}/brews
//
// The teapot must exist; the list itself reuses the standard brew filter
// with the path ID pinned.
func (s *Server) handleListBrewsByTeapot(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if _, err := s.store.GetTeapot(id); err != nil {
		writeNotFound(w, "Teapot")
		return
	}

	page, limit := parsePagination(r)
	filter := brewing.BrewFilter{TeapotID: &id}

	brews := s.store.ListBrews(filter, page, limit)
	total := s.store.CountBrews(filter)

	writeJSON(w, http.StatusOK, newListResponse(brews, page, limit, total))
}
