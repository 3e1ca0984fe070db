package api

import (
	"net/http"
	"time"
)

// handleHealth reports service health with store counts and uptime.
//
// GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	stats := s.store.GetStats()

	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"service":   "teapot-core",
		"version":   s.version,
		"uptime":    time.Since(s.startTime).Round(time.Second).String(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"counts": map[string]int{
			"teapots": stats.Teapots,
			"teas":    stats.Teas,
			"brews":   stats.Brews,
			"steeps":  stats.Steeps,
		},
	})
}

// handleLive is the liveness probe. It returns 200 whenever the process is
// serving requests.
func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// readinessCheck is one named probe in the readiness response.
type readinessCheck struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

// handleReady is the readiness probe. Any failing check degrades the whole
// response to 503.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	checks := []readinessCheck{
		{Name: "memory", Status: "ok"},
		{Name: "store", Status: s.storeCheck()},
	}

	status := "ok"
	code := http.StatusOK
	for _, c := range checks {
		if c.Status != "ok" {
			status = "degraded"
			code = http.StatusServiceUnavailable
			break
		}
	}

	writeJSON(w, code, map[string]any{
		"status":    status,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"checks":    checks,
	})
}

// storeCheck exercises the store with a stats read.
func (s *Server) storeCheck() string {
	if s.store == nil {
		return "unavailable"
	}
	s.store.GetStats()
	return "ok"
}

// handleBrewCoffee answers GET /brew with 418 per RFC 2324. Coffee is out
// of scope for this server.
func (s *Server) handleBrewCoffee(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusTeapot, map[string]string{
		"error":   "I'm a teapot",
		"message": "This server is TIF-compliant and cannot brew coffee",
		"spec":    "https://teapotframework.dev",
	})
}
