package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/outlinekit/pdfoutline/internal/config"
	"github.com/outlinekit/pdfoutline/internal/outline"
)

// Extractor produces the outline records for a PDF on disk. It returns
// outline.ErrNoOutline for documents without one.
type Extractor interface {
	Extract(path string) ([]outline.Record, error)
}

// ExtractorFunc adapts a function to the Extractor interface.
type ExtractorFunc func(path string) ([]outline.Record, error)

func (f ExtractorFunc) Extract(path string) ([]outline.Record, error) { return f(path) }

// Server is the HTTP API server for pdfoutline.
type Server struct {
	router    chi.Router
	extractor Extractor
	log       *slog.Logger
	cfg       config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(ex Extractor, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		extractor: ex,
		log:       log,
		cfg:       cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	// Authenticated when an API key is configured.
	r.Group(func(r chi.Router) {
		if s.cfg.APIKey != "" {
			r.Use(AuthMiddleware(s.cfg.APIKey, s.log))
		}

		r.Post("/api/outline", s.handleOutline)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
