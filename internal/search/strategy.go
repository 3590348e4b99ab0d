// Package search provides the shelf's search paths: pluggable pure filter
// strategies over the in-memory collection, and a Bleve full-text index for
// fuzzy queries.
package search

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/text/cases"

	"github.com/bookshelfapp/bookshelf-server/internal/domain"
)

// Strategy is a pure filter: it never mutates the collection and never
// touches persistence or notification. The result is a transient projection
// for direct display.
type Strategy func(books []domain.Book, query string) []domain.Book

// Strategy keys accepted by the manager and the HTTP surface.
const (
	StrategyTitle  = "title"
	StrategyAuthor = "author"
	StrategyYear   = "year"
)

// fold performs Unicode case folding so that "tolkien" matches "Tolkien"
// regardless of script quirks like the Turkish dotless i.
var fold = cases.Fold()

func containsFold(haystack, needle string) bool {
	return strings.Contains(fold.String(haystack), fold.String(needle))
}

// ByTitle matches on case-insensitive substring containment in the title.
func ByTitle(books []domain.Book, query string) []domain.Book {
	matches := []domain.Book{}
	for _, b := range books {
		if containsFold(b.Title, query) {
			matches = append(matches, b)
		}
	}
	return matches
}

// ByAuthor matches on case-insensitive substring containment in the author.
func ByAuthor(books []domain.Book, query string) []domain.Book {
	matches := []domain.Book{}
	for _, b := range books {
		if containsFold(b.Author, query) {
			matches = append(matches, b)
		}
	}
	return matches
}

// ByYear parses the query as an integer and matches on exact year equality.
// An unparsable query yields an empty result set, not an error.
func ByYear(books []domain.Book, query string) []domain.Book {
	matches := []domain.Book{}
	year, err := strconv.Atoi(strings.TrimSpace(query))
	if err != nil {
		return matches
	}
	for _, b := range books {
		if b.Year == year {
			matches = append(matches, b)
		}
	}
	return matches
}

// ForKey resolves a strategy key to its filter.
func ForKey(key string) (Strategy, bool) {
	switch key {
	case StrategyTitle:
		return ByTitle, true
	case StrategyAuthor:
		return ByAuthor, true
	case StrategyYear:
		return ByYear, true
	default:
		return nil, false
	}
}

// Manager holds exactly one active strategy, swappable at any time.
// Search delegates to whatever strategy is active at call time.
type Manager struct {
	mu       sync.RWMutex
	key      string
	strategy Strategy
}

// NewManager returns a manager with the title strategy active.
func NewManager() *Manager {
	return &Manager{
		key:      StrategyTitle,
		strategy: ByTitle,
	}
}

// Use swaps the active strategy. Unknown keys are rejected and leave the
// current strategy in place.
func (m *Manager) Use(key string) error {
	strategy, ok := ForKey(key)
	if !ok {
		return fmt.Errorf("unknown search strategy %q", key)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.key = key
	m.strategy = strategy
	return nil
}

// Active returns the key of the currently active strategy.
func (m *Manager) Active() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.key
}

// Search runs the active strategy against the given collection.
func (m *Manager) Search(books []domain.Book, query string) []domain.Book {
	m.mu.RLock()
	strategy := m.strategy
	m.mu.RUnlock()
	return strategy(books, query)
}
