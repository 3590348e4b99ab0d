// Package domain contains the core business entities for the bookshelf.
package domain

// Book represents a single record on the shelf.
//
// Identity is the ID; removal matches on ID only. A Book is never mutated
// after construction - build a new one via BookBuilder instead.
type Book struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Year   int    `json:"year"`
	Genre  string `json:"genre,omitempty"`
	ISBN   string `json:"isbn,omitempty"`
}

// BookBuilder assembles a Book from required and optional fields.
// The zero value is not usable; construct via NewBookBuilder.
//
// The builder performs no validation. Callers are expected to validate
// input before construction.
type BookBuilder struct {
	id     string
	title  string
	author string
	year   int
	genre  string
	isbn   string
}

// NewBookBuilder creates a builder holding the required fields.
func NewBookBuilder(id, title, author string, year int) *BookBuilder {
	return &BookBuilder{
		id:     id,
		title:  title,
		author: author,
		year:   year,
	}
}

// SetGenre sets the optional genre and returns the builder for chaining.
func (b *BookBuilder) SetGenre(genre string) *BookBuilder {
	b.genre = genre
	return b
}

// SetISBN sets the optional ISBN and returns the builder for chaining.
func (b *BookBuilder) SetISBN(isbn string) *BookBuilder {
	b.isbn = isbn
	return b
}

// Build returns a new Book snapshotting the builder state at call time.
// Calling Build again after further setters yields an independent Book.
func (b *BookBuilder) Build() Book {
	return Book{
		ID:     b.id,
		Title:  b.title,
		Author: b.author,
		Year:   b.year,
		Genre:  b.genre,
		ISBN:   b.isbn,
	}
}
