package sse

import (
	"log/slog"

	"github.com/bookshelfapp/bookshelf-server/internal/domain"
)

// ShelfObserver bridges shelf notifications to SSE broadcasts. It is
// attached to the shelf at startup; every mutation then pushes the full
// book list to all connected clients as a shelf.updated event.
type ShelfObserver struct {
	manager *Manager
	logger  *slog.Logger
}

// NewShelfObserver creates a ShelfObserver backed by the given manager.
func NewShelfObserver(manager *Manager, logger *slog.Logger) *ShelfObserver {
	return &ShelfObserver{
		manager: manager,
		logger:  logger,
	}
}

// Notify queues a shelf.updated event carrying the full collection.
func (o *ShelfObserver) Notify(books []domain.Book) {
	o.logger.Debug("pushing shelf update", slog.Int("books", len(books)))
	o.manager.Emit(NewShelfUpdatedEvent(books))
}
