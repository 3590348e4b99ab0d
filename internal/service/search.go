package service

import (
	"context"
	"log/slog"

	"github.com/bookshelfapp/bookshelf-server/internal/domain"
	domainerrors "github.com/bookshelfapp/bookshelf-server/internal/errors"
	"github.com/bookshelfapp/bookshelf-server/internal/search"
	"github.com/bookshelfapp/bookshelf-server/internal/shelf"
)

// SearchService provides the two search paths over the shelf: exact filter
// strategies against the in-memory collection, and full-text queries against
// the Bleve index.
type SearchService struct {
	shelf    *shelf.Shelf
	index    *search.Index
	strategy *search.Manager
	logger   *slog.Logger
}

// NewSearchService creates a new search service with the title strategy active.
func NewSearchService(sh *shelf.Shelf, index *search.Index, logger *slog.Logger) *SearchService {
	return &SearchService{
		shelf:    sh,
		index:    index,
		strategy: search.NewManager(),
		logger:   logger,
	}
}

// SearchShelf runs a strategy search over the current shelf contents.
// An empty strategy key reuses whatever strategy is currently active;
// an unknown key is a validation error and leaves the active strategy alone.
func (s *SearchService) SearchShelf(ctx context.Context, strategyKey, query string) ([]domain.Book, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if strategyKey != "" {
		if err := s.strategy.Use(strategyKey); err != nil {
			return nil, domainerrors.Validation(err.Error())
		}
	}

	matches := s.strategy.Search(s.shelf.Books(), query)

	s.logger.Debug("shelf search",
		"strategy", s.strategy.Active(),
		"query", query,
		"matches", len(matches),
	)

	return matches, nil
}

// ActiveStrategy returns the key of the currently active strategy.
func (s *SearchService) ActiveStrategy() string {
	return s.strategy.Active()
}

// SearchText runs a full-text query against the Bleve index.
func (s *SearchService) SearchText(ctx context.Context, params search.Params) (*search.Result, error) {
	return s.index.Search(ctx, params)
}

// DocumentCount returns the number of indexed books.
func (s *SearchService) DocumentCount() (uint64, error) {
	return s.index.DocumentCount()
}
