// Package server implements the HTTP API for mdim.
//
// The API exposes the geometry pipeline over REST:
//
//	GET  /healthz                 liveness probe
//	GET  /api/objects             object families and their capabilities
//	GET  /api/planes              rotation plane groups for a dimension
//	POST /api/geometry            run the pipeline, JSON response
//	GET  /api/geometry/{type}     run the pipeline, raw artifact response
//
// All errors are returned as JSON with a machine-readable code:
//
//	{"error": {"code": "INVALID_DIMENSION", "message": "..."}}
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/mdimension/mdim/pkg/pipeline"
)

// Config holds server configuration.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string

	// Runner executes pipeline requests. Required.
	Runner *pipeline.Runner

	// Logger receives request and lifecycle logs. Defaults to log.Default().
	Logger *log.Logger

	// ShutdownTimeout bounds graceful shutdown. Zero means 10 seconds.
	ShutdownTimeout time.Duration
}

// Server is the mdim HTTP API server.
type Server struct {
	cfg    Config
	router chi.Router
	http   *http.Server
}

// New creates a server with all routes registered.
func New(cfg Config) *Server {
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.ShutdownTimeout == 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}

	s := &Server{cfg: cfg}

	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware(cfg.Logger))

	r.Get("/healthz", s.handleHealthz)
	r.Route("/api", func(r chi.Router) {
		r.Get("/objects", s.handleObjects)
		r.Get("/planes", s.handlePlanes)
		r.Post("/geometry", s.handleGeometry)
		r.Get("/geometry/{type}", s.handleGeometryArtifact)
	})

	s.router = r
	s.http = &http.Server{
		Addr:         cfg.Addr,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
	}
	return s
}

// Router returns the HTTP handler, primarily for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Start serves until the context is canceled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.cfg.Logger.Info("server listening", "addr", s.cfg.Addr)
		if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	s.cfg.Logger.Info("server shutting down")
	return s.http.Shutdown(shutdownCtx)
}
