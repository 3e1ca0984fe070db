package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/teapotframework/teapot-core/internal/brewing"
)

// handleListTeapots returns a page of teapots, with optional query filters.
//
// GET /teapots?material=ceramic&style=kyusu&page=1&limit=20
//
// An unrecognised filter value matches nothing in the enum domain and is
// treated as "no constraint", mirroring filter-absent behaviour.
func (s *Server) handleListTeapots(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)

	filter := brewing.TeapotFilter{}
	if v := r.URL.Query().Get("material"); v != "" {
		if m, ok := brewing.ParseTeapotMaterial(v); ok {
			filter.Material = &m
		}
	}
	if v := r.URL.Query().Get("style"); v != "" {
		if st, ok := brewing.ParseTeapotStyle(v); ok {
			filter.Style = &st
		}
	}

	teapots := s.store.ListTeapots(filter, page, limit)
	total := s.store.CountTeapots(filter)

	writeJSON(w, http.StatusOK, newListResponse(teapots, page, limit, total))
}

// handleCreateTeapot creates a new teapot.
//
// POST /teapots
// Response: 201 Created with the created teapot
func (s *Server) handleCreateTeapot(w http.ResponseWriter, r *http.Request) {
	var req storeTeapotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	if errs := req.validate(); !errs.empty() {
		writeValidationError(w, errs)
		return
	}

	teapot := s.store.CreateTeapot(brewing.NewTeapot{
		ID:          uuid.NewString(),
		Name:        *req.Name,
		Material:    brewing.TeapotMaterial(*req.Material),
		CapacityMl:  *req.CapacityMl,
		Style:       req.styleOrDefault(),
		Description: req.Description.value,
	})

	writeJSON(w, http.StatusCreated, teapot)
}

// handleGetTeapot returns a single teapot by ID.
func (s *Server) handleGetTeapot(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	teapot, err := s.store.GetTeapot(id)
	if err != nil {
		writeNotFound(w, "Teapot")
		return
	}

	writeJSON(w, http.StatusOK, teapot)
}

// handleUpdateTeapot fully replaces a teapot (PUT). All required fields must
// be present; an absent description resets to null.
func (s *Server) handleUpdateTeapot(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req updateTeapotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	if errs := req.validate(); !errs.empty() {
		writeValidationError(w, errs)
		return
	}

	teapot, err := s.store.UpdateTeapot(id, req.toUpdate())
	if err != nil {
		writeNotFound(w, "Teapot")
		return
	}

	writeJSON(w, http.StatusOK, teapot)
}

// handlePatchTeapot partially updates a teapot. Absent fields keep their
// stored values; an explicit null description clears it.
func (s *Server) handlePatchTeapot(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req patchTeapotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	if errs := req.validate(); !errs.empty() {
		writeValidationError(w, errs)
		return
	}

	teapot, err := s.store.PatchTeapot(id, req.toPatch())
	if err != nil {
		writeNotFound(w, "Teapot")
		return
	}

	writeJSON(w, http.StatusOK, teapot)
}

// handleDeleteTeapot removes a teapot by ID. Brews referencing the teapot
// survive; only brew deletion cascades.
func (s *Server) handleDeleteTeapot(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := s.store.DeleteTeapot(id); err != nil {
		if errors.Is(err, brewing.ErrTeapotNotFound) {
			writeNotFound(w, "Teapot")
			return
		}
		writeInternalError(w, "failed to delete teapot")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
