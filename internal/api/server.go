// Package api provides the HTTP API server and handlers for the Bookshelf application.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/bookshelfapp/bookshelf-server/internal/http/response"
	"github.com/bookshelfapp/bookshelf-server/internal/service"
	"github.com/bookshelfapp/bookshelf-server/internal/sse"
	"github.com/bookshelfapp/bookshelf-server/internal/validation"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	shelfService  *service.ShelfService
	searchService *service.SearchService
	sseHandler    *sse.Handler
	validator     *validation.Validator
	router        *chi.Mux
	logger        *slog.Logger
	corsOrigins   []string
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(shelfService *service.ShelfService, searchService *service.SearchService, sseHandler *sse.Handler, corsOrigins []string, logger *slog.Logger) *Server {
	s := &Server{
		shelfService:  shelfService,
		searchService: searchService,
		sseHandler:    sseHandler,
		validator:     validation.New(),
		router:        chi.NewRouter(),
		logger:        logger,
		corsOrigins:   corsOrigins,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// setupMiddleware configures the middleware stack.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))

	origins := s.corsOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Mutations are cheap but the shelf is single-user; keep abusive clients out.
	limiter := NewRateLimiter(120, time.Minute, 30)
	s.router.Use(RateLimitMiddleware(limiter, s.logger))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	// Health check.
	s.router.Get("/health", s.handleHealthCheck)

	// API v1.
	s.router.Route("/api/v1", func(r chi.Router) {
		r.Route("/shelf", func(r chi.Router) {
			r.Get("/books", s.handleListBooks)
			r.Post("/books", s.handleAddBook)
			r.Get("/books/{id}", s.handleGetBook)
			r.Delete("/books/{id}", s.handleRemoveBook)

			r.Get("/search", s.handleShelfSearch)
			r.Get("/stream", s.sseHandler.ServeHTTP)
		})

		r.Route("/search", func(r chi.Router) {
			r.Get("/text", s.handleTextSearch)
		})
	})
}

// handleHealthCheck returns server health status.
func (s *Server) handleHealthCheck(w http.ResponseWriter, _ *http.Request) {
	response.Success(w, map[string]any{
		"status": "healthy",
		"books":  s.shelfService.BookCount(),
	}, s.logger)
}
