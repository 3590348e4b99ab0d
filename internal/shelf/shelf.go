// Package shelf implements the in-memory book collection, its snapshot
// persistence, and the observer notifications that drive client re-renders.
package shelf

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/bookshelfapp/bookshelf-server/internal/domain"
)

// Observer receives the full current book list after every mutation.
// Implementations redraw from scratch; no diffing is performed.
type Observer interface {
	Notify(books []domain.Book)
}

// SnapshotStore persists the complete book list. store.Snapshot implements it.
type SnapshotStore interface {
	Load() ([]domain.Book, error)
	Save(books []domain.Book) error
}

// Shelf owns the ordered book collection and the observer list.
//
// Every Add/Remove persists the full list and then notifies all observers
// synchronously in attachment order. Duplicate IDs are not rejected on Add;
// Remove deletes every entry matching the ID, so duplicates disappear
// together. This permissive behavior is deliberate.
type Shelf struct {
	snapshot SnapshotStore
	logger   *slog.Logger

	mu        sync.Mutex
	books     []domain.Book
	observers []Observer
}

// Open loads the persisted snapshot and returns a ready shelf.
// A missing, corrupt, or wrong-shaped snapshot yields an empty collection;
// the snapshot store handles logging and corrupt-value cleanup.
func Open(snapshot SnapshotStore, logger *slog.Logger) (*Shelf, error) {
	books, err := snapshot.Load()
	if err != nil {
		return nil, fmt.Errorf("load shelf: %w", err)
	}

	if logger != nil {
		logger.Info("shelf loaded", "books", len(books))
	}

	return &Shelf{
		snapshot: snapshot,
		logger:   logger,
		books:    books,
	}, nil
}

// Attach registers an observer. There is no dedup check: attaching the same
// observer twice means it is notified twice per event.
func (s *Shelf) Attach(o Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, o)
}

// Detach removes one registration of the observer, matched by identity.
// Unknown observers are ignored.
func (s *Shelf) Detach(o Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.observers {
		if existing == o {
			s.observers = append(s.observers[:i], s.observers[i+1:]...)
			return
		}
	}
}

// Add appends the book to the end of the collection, persists the full list,
// and notifies all observers. On a persistence failure the in-memory state is
// rolled back and no notification is sent.
func (s *Shelf) Add(book domain.Book) error {
	s.mu.Lock()
	s.books = append(s.books, book)

	if err := s.snapshot.Save(s.books); err != nil {
		s.books = s.books[:len(s.books)-1]
		s.mu.Unlock()
		return fmt.Errorf("persist shelf: %w", err)
	}

	books, observers := s.viewLocked()
	s.mu.Unlock()

	notify(observers, books)
	return nil
}

// Remove deletes every entry whose ID matches the given book's ID, persists,
// and notifies. Removing an absent ID still persists and notifies, matching
// Add's behavior of treating every call as a mutation event.
func (s *Shelf) Remove(book domain.Book) error {
	s.mu.Lock()
	prev := s.books

	kept := make([]domain.Book, 0, len(s.books))
	for _, b := range s.books {
		if b.ID != book.ID {
			kept = append(kept, b)
		}
	}
	s.books = kept

	if err := s.snapshot.Save(s.books); err != nil {
		s.books = prev
		s.mu.Unlock()
		return fmt.Errorf("persist shelf: %w", err)
	}

	books, observers := s.viewLocked()
	s.mu.Unlock()

	notify(observers, books)
	return nil
}

// Books returns a copy of the collection in insertion order. Mutating the
// returned slice has no effect on the shelf.
func (s *Shelf) Books() []domain.Book {
	s.mu.Lock()
	defer s.mu.Unlock()
	books := make([]domain.Book, len(s.books))
	copy(books, s.books)
	return books
}

// Get returns the first book with the given ID.
func (s *Shelf) Get(id string) (domain.Book, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.books {
		if b.ID == id {
			return b, true
		}
	}
	return domain.Book{}, false
}

// Len returns the number of books on the shelf.
func (s *Shelf) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.books)
}

// viewLocked copies the current books and observers for notification outside
// the lock. Observers may call back into the shelf (a client deleting a book
// in response to a render), so holding the lock through Notify would deadlock.
func (s *Shelf) viewLocked() ([]domain.Book, []Observer) {
	books := make([]domain.Book, len(s.books))
	copy(books, s.books)
	observers := make([]Observer, len(s.observers))
	copy(observers, s.observers)
	return books, observers
}

func notify(observers []Observer, books []domain.Book) {
	for _, o := range observers {
		o.Notify(books)
	}
}
