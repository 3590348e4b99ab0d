package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookBuilder_RequiredFields(t *testing.T) {
	book := NewBookBuilder("book-001", "The Hobbit", "J.R.R. Tolkien", 1937).Build()

	assert.Equal(t, "book-001", book.ID)
	assert.Equal(t, "The Hobbit", book.Title)
	assert.Equal(t, "J.R.R. Tolkien", book.Author)
	assert.Equal(t, 1937, book.Year)
	assert.Empty(t, book.Genre)
	assert.Empty(t, book.ISBN)
}

func TestBookBuilder_OptionalFields(t *testing.T) {
	book := NewBookBuilder("book-002", "Dune", "Frank Herbert", 1965).
		SetGenre("Science Fiction").
		SetISBN("978-0441172719").
		Build()

	assert.Equal(t, "Science Fiction", book.Genre)
	assert.Equal(t, "978-0441172719", book.ISBN)
}

func TestBookBuilder_BuildSnapshotsState(t *testing.T) {
	builder := NewBookBuilder("book-003", "Emma", "Jane Austen", 1815)

	first := builder.Build()
	builder.SetGenre("Romance")
	second := builder.Build()

	// The first book must not pick up setters applied after its Build.
	assert.Empty(t, first.Genre)
	assert.Equal(t, "Romance", second.Genre)
}
