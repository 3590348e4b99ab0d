package shelf

import "github.com/bookshelfapp/bookshelf-server/internal/domain"

// Command is a bound (action, undo-action) pair over one shelf and one book.
//
// There is no history stack and no redo: each command is fire-and-forget,
// and Undo is only reachable through a caller that kept the reference.
type Command interface {
	Execute() error
	Undo() error
}

// AddCommand adds a book on Execute and removes it again on Undo.
type AddCommand struct {
	shelf *Shelf
	book  domain.Book
}

// NewAddCommand binds an add mutation to a shelf and a book.
func NewAddCommand(s *Shelf, book domain.Book) *AddCommand {
	return &AddCommand{shelf: s, book: book}
}

// Execute appends the book to the shelf.
func (c *AddCommand) Execute() error {
	return c.shelf.Add(c.book)
}

// Undo removes the book by ID, restoring the pre-add state.
func (c *AddCommand) Undo() error {
	return c.shelf.Remove(c.book)
}

// Book returns the book this command is bound to.
func (c *AddCommand) Book() domain.Book {
	return c.book
}

// RemoveCommand removes a book on Execute and re-adds it on Undo.
// The undone book lands at the end of the collection.
type RemoveCommand struct {
	shelf *Shelf
	book  domain.Book
}

// NewRemoveCommand binds a remove mutation to a shelf and a book.
func NewRemoveCommand(s *Shelf, book domain.Book) *RemoveCommand {
	return &RemoveCommand{shelf: s, book: book}
}

// Execute removes every entry matching the book's ID.
func (c *RemoveCommand) Execute() error {
	return c.shelf.Remove(c.book)
}

// Undo adds the book back.
func (c *RemoveCommand) Undo() error {
	return c.shelf.Add(c.book)
}

// Book returns the book this command is bound to.
func (c *RemoveCommand) Book() domain.Book {
	return c.book
}
