// Package main provides a tool to seed the shelf with sample books.
//
// Useful for exercising the search strategies and SSE stream against
// a populated shelf during development.
//
// Usage:
//
//	DB_PATH=~/Bookshelf/data/db go run ./cmd/seed
//	DB_PATH=~/Bookshelf/data/db go run ./cmd/seed --count 50
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math/rand"
	"os"

	"github.com/bookshelfapp/bookshelf-server/internal/domain"
	"github.com/bookshelfapp/bookshelf-server/internal/id"
	"github.com/bookshelfapp/bookshelf-server/internal/shelf"
	"github.com/bookshelfapp/bookshelf-server/internal/store"
)

var count = flag.Int("count", 0, "Number of random extra books to generate")

var sampleBooks = []struct {
	title  string
	author string
	year   int
	genre  string
}{
	{"The Hobbit", "J.R.R. Tolkien", 1937, "Fantasy"},
	{"The Fellowship of the Ring", "J.R.R. Tolkien", 1954, "Fantasy"},
	{"Dune", "Frank Herbert", 1965, "Science Fiction"},
	{"Dune Messiah", "Frank Herbert", 1969, "Science Fiction"},
	{"Hyperion", "Dan Simmons", 1989, "Science Fiction"},
	{"The Left Hand of Darkness", "Ursula K. Le Guin", 1969, "Science Fiction"},
	{"A Wizard of Earthsea", "Ursula K. Le Guin", 1968, "Fantasy"},
	{"Neuromancer", "William Gibson", 1984, "Cyberpunk"},
	{"Snow Crash", "Neal Stephenson", 1992, "Cyberpunk"},
	{"The Name of the Wind", "Patrick Rothfuss", 2007, "Fantasy"},
}

var randomAdjectives = []string{"Silent", "Burning", "Forgotten", "Endless", "Broken", "Hidden"}
var randomNouns = []string{"Tower", "River", "Empire", "Garden", "Machine", "Harbor"}
var randomAuthors = []string{"A. Vance", "M. Okafor", "L. Petrov", "R. Tanaka", "S. Lindgren"}

func main() {
	flag.Parse()

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = os.ExpandEnv("$HOME/Bookshelf/data/db")
	}

	snapshotKey := os.Getenv("SHELF_SNAPSHOT_KEY")
	if snapshotKey == "" {
		snapshotKey = "shelf:books"
	}

	fmt.Printf("Opening database at: %s\n", dbPath)

	logger := slog.New(slog.DiscardHandler)
	s, err := store.New(dbPath, logger)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer s.Close()

	sh, err := shelf.Open(s.Snapshot(snapshotKey), logger)
	if err != nil {
		log.Fatalf("Failed to open shelf: %v", err)
	}

	before := sh.Len()

	for _, sample := range sampleBooks {
		addBook(sh, sample.title, sample.author, sample.year, sample.genre)
	}

	for range *count {
		title := fmt.Sprintf("The %s %s",
			randomAdjectives[rand.Intn(len(randomAdjectives))],
			randomNouns[rand.Intn(len(randomNouns))])
		author := randomAuthors[rand.Intn(len(randomAuthors))]
		year := 1950 + rand.Intn(75)
		addBook(sh, title, author, year, "")
	}

	fmt.Printf("Seeded %d books (%d -> %d)\n", sh.Len()-before, before, sh.Len())
}

func addBook(sh *shelf.Shelf, title, author string, year int, genre string) {
	bookID, err := id.Generate("book")
	if err != nil {
		log.Fatalf("Failed to generate book ID: %v", err)
	}

	book := domain.NewBookBuilder(bookID, title, author, year).
		SetGenre(genre).
		Build()

	if err := sh.Add(book); err != nil {
		log.Fatalf("Failed to add %q: %v", title, err)
	}
}
