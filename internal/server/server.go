// Package server provides the HTTP API for Inkwell.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/quillworks/inkwell/internal/archive"
	"github.com/quillworks/inkwell/internal/config"
	"github.com/quillworks/inkwell/internal/extract"
	"github.com/quillworks/inkwell/internal/feedback"
	"github.com/quillworks/inkwell/internal/readability"
	"github.com/quillworks/inkwell/internal/samples"
	"github.com/quillworks/inkwell/internal/storage"
	"go.uber.org/zap"
)

// Server is the HTTP server for the Inkwell API.
type Server struct {
	analyzer  *readability.Analyzer
	feedback  *feedback.Service
	storage   storage.Storage
	archive   *archive.Index
	extractor *extract.Extractor
	samples   *samples.Store
	config    *config.Config
	logger    *zap.Logger
	server    *http.Server
}

// NewServer creates a server with the given dependencies.
func NewServer(
	analyzer *readability.Analyzer,
	fb *feedback.Service,
	store storage.Storage,
	idx *archive.Index,
	extractor *extract.Extractor,
	sampleStore *samples.Store,
	cfg *config.Config,
	logger *zap.Logger,
) *Server {
	return &Server{
		analyzer:  analyzer,
		feedback:  fb,
		storage:   store,
		archive:   idx,
		extractor: extractor,
		samples:   sampleStore,
		config:    cfg,
		logger:    logger,
	}
}

// Router builds the chi router with all routes mounted.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middleware.Compress(5))

	r.Post("/api/v1/analyze", s.handleAnalyze)
	r.Post("/api/v1/diff", s.handleDiff)

	r.Route("/api/v1/submissions", func(r chi.Router) {
		r.Post("/", s.handleCreateSubmission)
		r.Get("/", s.handleListSubmissions)
		r.Get("/{id}", s.handleGetSubmission)
		r.Delete("/{id}", s.handleDeleteSubmission)
		r.Post("/{id}/evaluate", s.handleEvaluate)
		r.Post("/{id}/rewrite", s.handleRewrite)
		r.Post("/{id}/restructure", s.handleRestructure)
		r.Post("/{id}/figures", s.handleFigures)
		r.Post("/{id}/coherence", s.handleCoherence)
		r.Get("/{id}/feedback", s.handleListFeedback)
	})

	r.Get("/api/v1/archive/search", s.handleArchiveSearch)
	r.Get("/api/v1/samples", s.handleListSamples)
	r.Get("/api/v1/samples/{id}", s.handleGetSample)
	r.Get("/api/v1/status", s.handleStatus)
	r.Get("/health", s.handleHealth)

	return r
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.Router(),
	}
	s.logger.Info("Starting server", zap.String("addr", addr))
	return s.server.ListenAndServe()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
