package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// buildRouter creates the HTTP router with all routes and middleware.
func (s *Server) buildRouter() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(s.requestIDMiddleware)
	r.Use(s.loggingMiddleware)
	r.Use(s.recoveryMiddleware)
	r.Use(s.corsMiddleware)
	r.Use(s.bodySizeLimitMiddleware)
	if s.metrics != nil {
		r.Use(s.metricsMiddleware)
		r.Method(http.MethodGet, s.metCfg.Path, s.metrics.Handler())
	}

	// Health checks
	r.Get("/health", s.handleHealth)
	r.Get("/health/live", s.handleLive)
	r.Get("/health/ready", s.handleReady)

	// RFC 2324 signature endpoint
	r.Get("/brew", s.handleBrewCoffee)

	// Teapot endpoints
	r.Route("/teapots", func(r chi.Router) {
		r.Get("/", s.handleListTeapots)
		r.Post("/", s.handleCreateTeapot)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.handleGetTeapot)
			r.Put("/", s.handleUpdateTeapot)
			r.Patch("/", s.handlePatchTeapot)
			r.Delete("/", s.handleDeleteTeapot)
			r.Get("/brews", s.handleListBrewsByTeapot)
		})
	})

	// Tea endpoints
	r.Route("/teas", func(r chi.Router) {
		r.Get("/", s.handleListTeas)
		r.Post("/", s.handleCreateTea)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.handleGetTea)
			r.Put("/", s.handleUpdateTea)
			r.Patch("/", s.handlePatchTea)
			r.Delete("/", s.handleDeleteTea)
		})
	})

	// Brew endpoints (no full PUT — identity and snapshot fields are immutable)
	r.Route("/brews", func(r chi.Router) {
		r.Get("/", s.handleListBrews)
		r.Post("/", s.handleCreateBrew)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.handleGetBrew)
			r.Patch("/", s.handlePatchBrew)
			r.Delete("/", s.handleDeleteBrew)
			r.Get("/steeps", s.handleListSteeps)
			r.Post("/steeps", s.handleCreateSteep)
		})
	})

	return r
}
