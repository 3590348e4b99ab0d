// Package sse implements Server-Sent Events for pushing shelf changes to
// connected browsers and event broadcasting.
package sse

import (
	"time"

	"github.com/bookshelfapp/bookshelf-server/internal/domain"
)

// EventType represents the type of SSE Event.
type EventType string

const (
	// EventShelfUpdated carries the full book list after any mutation.
	// Clients re-render the whole shelf from this payload.
	EventShelfUpdated EventType = "shelf.updated"

	// EventBookAdded represents a single book being added to the shelf.
	EventBookAdded EventType = "book.added"
	// EventBookRemoved represents a book being removed from the shelf.
	EventBookRemoved EventType = "book.removed"

	// EventHeartbeat represents a connection keepalive event.
	EventHeartbeat EventType = "heartbeat"
)

// Event represents an SSE event to be sent to clients.
// The Data field contains the event payload as a JSON object for direct
// deserialization.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
	Type      EventType `json:"type"`
}

// ShelfEventData is the data payload for shelf.updated events. It always
// carries the complete collection so clients never have to reconcile deltas.
type ShelfEventData struct {
	Books []domain.Book `json:"books"`
	Count int           `json:"count"`
}

// BookEventData is the data payload for book.added events.
type BookEventData struct {
	Book domain.Book `json:"book"`
}

// BookRemovedEventData is the data payload for book.removed events.
type BookRemovedEventData struct {
	RemovedAt time.Time `json:"removed_at"`
	BookID    string    `json:"book_id"`
}

// HeartbeatEventData is the data payload for heartbeat events.
type HeartbeatEventData struct {
	ServerTime time.Time `json:"server_time"`
}

// NewShelfUpdatedEvent creates a shelf.updated event with the full book list.
func NewShelfUpdatedEvent(books []domain.Book) Event {
	if books == nil {
		books = []domain.Book{}
	}
	return Event{
		Type: EventShelfUpdated,
		Data: ShelfEventData{
			Books: books,
			Count: len(books),
		},
		Timestamp: time.Now(),
	}
}

// NewBookAddedEvent creates a book.added event.
func NewBookAddedEvent(book domain.Book) Event {
	return Event{
		Type:      EventBookAdded,
		Data:      BookEventData{Book: book},
		Timestamp: time.Now(),
	}
}

// NewBookRemovedEvent creates a book.removed event.
func NewBookRemovedEvent(bookID string, removedAt time.Time) Event {
	return Event{
		Type: EventBookRemoved,
		Data: BookRemovedEventData{
			BookID:    bookID,
			RemovedAt: removedAt,
		},
		Timestamp: time.Now(),
	}
}

// NewHeartbeatEvent creates a heartbeat event.
func NewHeartbeatEvent() Event {
	return Event{
		Type: EventHeartbeat,
		Data: HeartbeatEventData{
			ServerTime: time.Now(),
		},
		Timestamp: time.Now(),
	}
}
