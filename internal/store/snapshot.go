package store

import (
	"encoding/json/v2"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bookshelfapp/bookshelf-server/internal/domain"
)

// Snapshot reads and writes the complete shelf under a single fixed key.
// The whole book list is serialized as one JSON array and overwritten
// wholesale on every save; there is no per-book keying and no schema tag.
//
// The key is injected configuration, not a package constant, so tests and
// tools can point at their own snapshots.
type Snapshot struct {
	store  *Store
	key    []byte
	logger *slog.Logger
}

// Snapshot returns a snapshot handle bound to the given storage key.
func (s *Store) Snapshot(key string) *Snapshot {
	return &Snapshot{
		store:  s,
		key:    []byte(key),
		logger: s.logger,
	}
}

// Key returns the storage key this snapshot is bound to.
func (sn *Snapshot) Key() string {
	return string(sn.key)
}

// Load reads the persisted book list. Outcomes:
//
//   - key absent: empty list, no error;
//   - value is not valid JSON: the corrupt value is deleted and an empty
//     list is returned, so a damaged store heals on startup;
//   - value is valid JSON but not a book array: the value is left in place
//     for inspection and an empty list is returned.
//
// Load returns an error only for underlying database failures.
func (sn *Snapshot) Load() ([]domain.Book, error) {
	data, err := sn.store.get(sn.key)
	if errors.Is(err, ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read snapshot %q: %w", sn.key, err)
	}

	var books []domain.Book
	if err := json.Unmarshal(data, &books); err == nil {
		return books, nil
	}

	// The array decode failed. Distinguish a corrupt value from a value
	// that is well-formed JSON of the wrong shape.
	var probe any
	if jsonErr := json.Unmarshal(data, &probe); jsonErr != nil {
		sn.log("persisted snapshot is corrupt, clearing it", "key", string(sn.key), "error", jsonErr)
		if delErr := sn.store.delete(sn.key); delErr != nil {
			return nil, fmt.Errorf("clear corrupt snapshot %q: %w", sn.key, delErr)
		}
		return nil, nil
	}

	sn.log("persisted snapshot has unexpected shape, ignoring it", "key", string(sn.key))
	return nil, nil
}

// Save overwrites the snapshot with the given book list.
func (sn *Snapshot) Save(books []domain.Book) error {
	if books == nil {
		books = []domain.Book{}
	}
	data, err := json.Marshal(books)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := sn.store.set(sn.key, data); err != nil {
		return fmt.Errorf("write snapshot %q: %w", sn.key, err)
	}
	return nil
}

// Exists reports whether a value is currently stored under the key.
func (sn *Snapshot) Exists() (bool, error) {
	return sn.store.exists(sn.key)
}

// putRaw writes raw bytes under the key, bypassing serialization.
// Used by tests to seed malformed values.
func (sn *Snapshot) putRaw(data []byte) error {
	return sn.store.set(sn.key, data)
}

func (sn *Snapshot) log(msg string, args ...any) {
	if sn.logger != nil {
		sn.logger.Error(msg, args...)
	}
}
