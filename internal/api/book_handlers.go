package api

import (
	"encoding/json/v2"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bookshelfapp/bookshelf-server/internal/http/response"
	"github.com/bookshelfapp/bookshelf-server/internal/service"
)

// addBookRequest is the payload for adding a book to the shelf.
type addBookRequest struct {
	Title  string `json:"title" validate:"required,max=512"`
	Author string `json:"author" validate:"required,max=256"`
	Year   int    `json:"year" validate:"required,gte=0,lte=2100"`
	Genre  string `json:"genre" validate:"omitempty,max=128"`
	ISBN   string `json:"isbn" validate:"omitempty,isbn"`
}

// handleListBooks returns all books on the shelf in insertion order.
func (s *Server) handleListBooks(w http.ResponseWriter, r *http.Request) {
	books, err := s.shelfService.ListBooks(r.Context())
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, map[string]any{
		"books": books,
		"count": len(books),
	}, s.logger)
}

// handleAddBook adds a new book to the shelf.
func (s *Server) handleAddBook(w http.ResponseWriter, r *http.Request) {
	var req addBookRequest
	if err := json.UnmarshalRead(r.Body, &req); err != nil {
		response.BadRequest(w, "invalid request body", s.logger)
		return
	}

	if err := s.validator.Validate(req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	book, err := s.shelfService.AddBook(r.Context(), service.AddBookParams{
		Title:  req.Title,
		Author: req.Author,
		Year:   req.Year,
		Genre:  req.Genre,
		ISBN:   req.ISBN,
	})
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Created(w, book, s.logger)
}

// handleGetBook returns a single book by ID.
func (s *Server) handleGetBook(w http.ResponseWriter, r *http.Request) {
	bookID := chi.URLParam(r, "id")

	book, err := s.shelfService.GetBook(r.Context(), bookID)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, book, s.logger)
}

// handleRemoveBook removes a book from the shelf.
func (s *Server) handleRemoveBook(w http.ResponseWriter, r *http.Request) {
	bookID := chi.URLParam(r, "id")

	if err := s.shelfService.RemoveBook(r.Context(), bookID); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.NoContent(w)
}
