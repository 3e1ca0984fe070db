package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/teapotframework/teapot-core/internal/brewing"
	"github.com/teapotframework/teapot-core/internal/infrastructure/config"
	"github.com/teapotframework/teapot-core/internal/infrastructure/logging"
	"github.com/teapotframework/teapot-core/internal/infrastructure/metrics"
)

// gracefulShutdownTimeout is the maximum time to wait for in-flight requests
// to complete during shutdown.
const gracefulShutdownTimeout = 10 * time.Second

// Deps holds the dependencies required by the API server.
type Deps struct {
	Config  config.APIConfig
	Metrics config.MetricsConfig
	Logger  *logging.Logger
	Store   *brewing.Store
	Version string
}

// Server is the HTTP API server for the teapot service.
//
// It manages the HTTP listener, routes, and middleware. The server is
// created with New() and started with Start().
type Server struct {
	cfg       config.APIConfig
	metCfg    config.MetricsConfig
	logger    *logging.Logger
	store     *brewing.Store
	metrics   *metrics.Metrics
	version   string
	server    *http.Server
	startTime time.Time
}

// New creates a new API server with the given dependencies.
//
// The server is not started until Start() is called.
func New(deps Deps) (*Server, error) {
	if deps.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if deps.Store == nil {
		return nil, fmt.Errorf("store is required")
	}

	s := &Server{
		cfg:       deps.Config,
		metCfg:    deps.Metrics,
		logger:    deps.Logger,
		store:     deps.Store,
		version:   deps.Version,
		startTime: time.Now(),
	}

	if deps.Metrics.Enabled {
		s.metrics = metrics.New(s.entityCounts)
	}

	return s, nil
}

// entityCounts feeds the store's collection sizes to the metrics scrape.
func (s *Server) entityCounts() map[string]int {
	stats := s.store.GetStats()
	return map[string]int{
		"teapot": stats.Teapots,
		"tea":    stats.Teas,
		"brew":   stats.Brews,
		"steep":  stats.Steeps,
	}
}

// Start begins listening for HTTP connections.
//
// It sets up the router and launches the HTTP listener in a background
// goroutine. The server can be stopped with Close().
func (s *Server) Start(_ context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.buildRouter(),
		ReadTimeout:  time.Duration(s.cfg.Timeouts.Read) * time.Second,
		WriteTimeout: time.Duration(s.cfg.Timeouts.Write) * time.Second,
		IdleTimeout:  time.Duration(s.cfg.Timeouts.Idle) * time.Second,
	}

	s.logger.Info("API server starting", "addr", addr)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("API server failed", "error", err)
		}
	}()

	return nil
}

// Close gracefully shuts down the HTTP server, waiting up to
// gracefulShutdownTimeout for in-flight requests.
func (s *Server) Close() error {
	if s.server == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
	defer cancel()

	s.logger.Info("API server shutting down")
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down API server: %w", err)
	}
	return nil
}
