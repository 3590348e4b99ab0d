package api

import (
	"net/http"
	"strconv"

	"github.com/bookshelfapp/bookshelf-server/internal/http/response"
	"github.com/bookshelfapp/bookshelf-server/internal/search"
)

// handleShelfSearch runs a strategy search over the shelf.
// The strategy parameter selects the active strategy (title, author, year);
// when omitted the previously selected strategy is reused.
func (s *Server) handleShelfSearch(w http.ResponseWriter, r *http.Request) {
	strategyKey := r.URL.Query().Get("strategy")
	query := r.URL.Query().Get("q")

	books, err := s.searchService.SearchShelf(r.Context(), strategyKey, query)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, map[string]any{
		"strategy": s.searchService.ActiveStrategy(),
		"query":    query,
		"books":    books,
		"count":    len(books),
	}, s.logger)
}

// handleTextSearch runs a full-text query against the search index.
func (s *Server) handleTextSearch(w http.ResponseWriter, r *http.Request) {
	params := search.DefaultParams()
	q := r.URL.Query()

	params.Query = q.Get("q")

	if v := q.Get("min_year"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			response.BadRequest(w, "min_year must be an integer", s.logger)
			return
		}
		params.MinYear = n
	}
	if v := q.Get("max_year"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			response.BadRequest(w, "max_year must be an integer", s.logger)
			return
		}
		params.MaxYear = n
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 100 {
			response.BadRequest(w, "limit must be between 1 and 100", s.logger)
			return
		}
		params.Limit = n
	}
	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			response.BadRequest(w, "offset must be a non-negative integer", s.logger)
			return
		}
		params.Offset = n
	}
	if v := q.Get("highlight"); v != "" {
		params.Highlight = v == "true" || v == "1"
	}

	result, err := s.searchService.SearchText(r.Context(), params)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, result, s.logger)
}
