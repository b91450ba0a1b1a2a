// Package server implements the HTTP preview server.
//
// The server renders designs posted as JSON (the format read by package io)
// and serves a small page showing the configured design:
//
//	GET  /                    preview page for the configured design
//	GET  /api/design          the configured design as JSON
//	POST /api/css             {"css": "..."} for the posted design
//	GET  /api/preview.png     PNG preview of the configured design
//	POST /api/preview.png     PNG preview of the posted design
//	GET  /api/convert?color=  a color in hex, rgb and hsl notation
//	GET  /healthz             liveness probe
//
// Preview endpoints accept width, height, handles and draft query
// parameters and report cache use in the X-Cache header.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/gradientlab/pkg/buildinfo"
	"github.com/matzehuels/gradientlab/pkg/gradient"
	"github.com/matzehuels/gradientlab/pkg/pipeline"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

// Server serves previews through a pipeline.Runner.
type Server struct {
	runner  *pipeline.Runner
	design  gradient.Spec
	preview pipeline.Options
	logger  *log.Logger
	router  chi.Router
}

// Option configures a Server.
type Option func(*Server)

// WithDesign sets the design served at / and GET /api/preview.png.
func WithDesign(spec gradient.Spec) Option {
	return func(s *Server) { s.design = spec }
}

// WithPreviewOptions sets the default render options. Query parameters
// override them per request.
func WithPreviewOptions(opts pipeline.Options) Option {
	return func(s *Server) { s.preview = opts }
}

// WithLogger sets the request logger. Defaults to the runner's logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// New returns a server backed by runner.
func New(runner *pipeline.Runner, opts ...Option) *Server {
	s := &Server{
		runner: runner,
		design: gradient.Default(),
		logger: runner.Logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.preview.SetDefaults()
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(middleware.SetHeader("Server", buildinfo.UserAgent()))

	r.Get("/", s.handleIndex)
	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/design", s.handleDesign)
		r.Post("/css", s.handleCSS)
		r.Get("/preview.png", s.handlePreviewConfigured)
		r.Post("/preview.png", s.handlePreviewPosted)
		r.Get("/convert", s.handleConvert)
	})
	return r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("preview server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.logger.Info("shutting down preview server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}
