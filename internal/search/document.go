package search

import "github.com/bookshelfapp/bookshelf-server/internal/domain"

// Document is the Bleve-indexed projection of a book.
type Document struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Genre  string `json:"genre,omitempty"`
	ISBN   string `json:"isbn,omitempty"`
	Year   int    `json:"year,omitempty"`
}

// ToMap converts the document to a map with lowercase field names.
// Bleve indexes Go struct field names (capitalized) by default, but the
// index mapping uses lowercase names, so convert explicitly.
func (d *Document) ToMap() map[string]interface{} {
	m := map[string]interface{}{
		"id":     d.ID,
		"title":  d.Title,
		"author": d.Author,
	}

	if d.Genre != "" {
		m["genre"] = d.Genre
	}
	if d.ISBN != "" {
		m["isbn"] = d.ISBN
	}
	if d.Year != 0 {
		m["year"] = d.Year
	}

	return m
}

// BookToDocument converts a domain Book to its indexable form.
func BookToDocument(b domain.Book) *Document {
	return &Document{
		ID:     b.ID,
		Title:  b.Title,
		Author: b.Author,
		Genre:  b.Genre,
		ISBN:   b.ISBN,
		Year:   b.Year,
	}
}
