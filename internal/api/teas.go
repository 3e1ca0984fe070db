package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/teapotframework/teapot-core/internal/brewing"
)

// handleListTeas returns a page of teas, with optional query filters.
//
// GET /teas?type=green&caffeineLevel=low&page=1&limit=20
func (s *Server) handleListTeas(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)

	filter := brewing.TeaFilter{}
	if v := r.URL.Query().Get("type"); v != "" {
		if t, ok := brewing.ParseTeaType(v); ok {
			filter.Type = &t
		}
	}
	if v := r.URL.Query().Get("caffeineLevel"); v != "" {
		if c, ok := brewing.ParseCaffeineLevel(v); ok {
			filter.CaffeineLevel = &c
		}
	}

	teas := s.store.ListTeas(filter, page, limit)
	total := s.store.CountTeas(filter)

	writeJSON(w, http.StatusOK, newListResponse(teas, page, limit, total))
}

// handleCreateTea creates a new tea. The caffeine level defaults to medium
// when omitted.
//
// POST /teas
// Response: 201 Created with the created tea
func (s *Server) handleCreateTea(w http.ResponseWriter, r *http.Request) {
	var req storeTeaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	if errs := req.validate(); !errs.empty() {
		writeValidationError(w, errs)
		return
	}

	tea := s.store.CreateTea(brewing.NewTea{
		ID:               uuid.NewString(),
		Name:             *req.Name,
		Type:             brewing.TeaType(*req.Type),
		Origin:           req.Origin.value,
		CaffeineLevel:    req.caffeineOrDefault(),
		SteepTempCelsius: *req.SteepTempCelsius,
		SteepTimeSeconds: *req.SteepTimeSeconds,
		Description:      req.Description.value,
	})

	writeJSON(w, http.StatusCreated, tea)
}

// handleGetTea returns a single tea by ID.
func (s *Server) handleGetTea(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	tea, err := s.store.GetTea(id)
	if err != nil {
		writeNotFound(w, "Tea")
		return
	}

	writeJSON(w, http.StatusOK, tea)
}

// handleUpdateTea fully replaces a tea (PUT).
func (s *Server) handleUpdateTea(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req updateTeaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	if errs := req.validate(); !errs.empty() {
		writeValidationError(w, errs)
		return
	}

	tea, err := s.store.UpdateTea(id, req.toUpdate())
	if err != nil {
		writeNotFound(w, "Tea")
		return
	}

	writeJSON(w, http.StatusOK, tea)
}

// handlePatchTea partially updates a tea.
//
// Changing steepTempCelsius here never touches existing brews: their water
// temperature was snapshotted at creation time.
func (s *Server) handlePatchTea(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req patchTeaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	if errs := req.validate(); !errs.empty() {
		writeValidationError(w, errs)
		return
	}

	tea, err := s.store.PatchTea(id, req.toPatch())
	if err != nil {
		writeNotFound(w, "Tea")
		return
	}

	writeJSON(w, http.StatusOK, tea)
}

// handleDeleteTea removes a tea by ID.
func (s *Server) handleDeleteTea(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := s.store.DeleteTea(id); err != nil {
		if errors.Is(err, brewing.ErrTeaNotFound) {
			writeNotFound(w, "Tea")
			return
		}
		writeInternalError(w, "failed to delete tea")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
