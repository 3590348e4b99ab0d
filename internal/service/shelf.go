// Package service orchestrates shelf operations between the domain layer,
// the search index, and SSE event broadcasting.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bookshelfapp/bookshelf-server/internal/domain"
	domainerrors "github.com/bookshelfapp/bookshelf-server/internal/errors"
	"github.com/bookshelfapp/bookshelf-server/internal/genre"
	"github.com/bookshelfapp/bookshelf-server/internal/id"
	"github.com/bookshelfapp/bookshelf-server/internal/search"
	"github.com/bookshelfapp/bookshelf-server/internal/shelf"
	"github.com/bookshelfapp/bookshelf-server/internal/sse"
)

// AddBookParams carries the fields needed to put a new book on the shelf.
type AddBookParams struct {
	Title  string
	Author string
	Year   int
	Genre  string
	ISBN   string
}

// ShelfService orchestrates shelf mutations. Every mutation goes through a
// command so it can be undone, keeps the search index in sync, and emits a
// targeted SSE event on top of the shelf-wide update pushed by the observer.
type ShelfService struct {
	shelf      *shelf.Shelf
	index      *search.Index
	sseManager *sse.Manager
	logger     *slog.Logger
}

// NewShelfService creates a new shelf service.
func NewShelfService(sh *shelf.Shelf, index *search.Index, sseManager *sse.Manager, logger *slog.Logger) *ShelfService {
	return &ShelfService{
		shelf:      sh,
		index:      index,
		sseManager: sseManager,
		logger:     logger,
	}
}

// SyncIndex rebuilds the search index from the current shelf contents.
// Called at startup so the index always mirrors the persisted snapshot.
func (s *ShelfService) SyncIndex(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	books := s.shelf.Books()
	if err := s.index.ReplaceAll(books); err != nil {
		return fmt.Errorf("sync search index: %w", err)
	}

	s.logger.Info("search index synced", "books", len(books))
	return nil
}

// AddBook assembles a book from the given fields, assigns it an ID, and
// executes an add command against the shelf.
func (s *ShelfService) AddBook(ctx context.Context, params AddBookParams) (domain.Book, error) {
	if err := ctx.Err(); err != nil {
		return domain.Book{}, err
	}

	if params.Title == "" {
		return domain.Book{}, domainerrors.Validation("book title cannot be empty")
	}
	if params.Author == "" {
		return domain.Book{}, domainerrors.Validation("book author cannot be empty")
	}

	bookID, err := id.Generate("book")
	if err != nil {
		return domain.Book{}, fmt.Errorf("generate book ID: %w", err)
	}

	book := domain.NewBookBuilder(bookID, params.Title, params.Author, params.Year).
		SetGenre(genre.Canonicalize(params.Genre)).
		SetISBN(params.ISBN).
		Build()

	cmd := shelf.NewAddCommand(s.shelf, book)
	if err := cmd.Execute(); err != nil {
		return domain.Book{}, fmt.Errorf("add book: %w", err)
	}

	if err := s.index.IndexBook(book); err != nil {
		s.logger.Warn("failed to index book", "id", book.ID, "error", err)
	}

	s.logger.Info("book added",
		"id", book.ID,
		"title", book.Title,
		"author", book.Author,
	)

	s.sseManager.Emit(sse.NewBookAddedEvent(book))

	return book, nil
}

// RemoveBook removes the book with the given ID from the shelf.
// Returns a not found error if no book on the shelf carries the ID.
func (s *ShelfService) RemoveBook(ctx context.Context, bookID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	book, ok := s.shelf.Get(bookID)
	if !ok {
		return domainerrors.NotFoundf("book %s not found", bookID)
	}

	cmd := shelf.NewRemoveCommand(s.shelf, book)
	if err := cmd.Execute(); err != nil {
		return fmt.Errorf("remove book: %w", err)
	}

	if err := s.index.DeleteBook(bookID); err != nil {
		s.logger.Warn("failed to remove book from index", "id", bookID, "error", err)
	}

	s.logger.Info("book removed", "id", bookID)

	s.sseManager.Emit(sse.NewBookRemovedEvent(bookID, time.Now()))

	return nil
}

// ListBooks returns the current shelf contents in insertion order.
func (s *ShelfService) ListBooks(ctx context.Context) ([]domain.Book, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.shelf.Books(), nil
}

// GetBook returns a single book by ID.
func (s *ShelfService) GetBook(ctx context.Context, bookID string) (domain.Book, error) {
	if err := ctx.Err(); err != nil {
		return domain.Book{}, err
	}

	book, ok := s.shelf.Get(bookID)
	if !ok {
		return domain.Book{}, domainerrors.NotFoundf("book %s not found", bookID)
	}
	return book, nil
}

// BookCount returns the number of books on the shelf.
func (s *ShelfService) BookCount() int {
	return s.shelf.Len()
}
