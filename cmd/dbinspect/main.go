// Package main provides a read-only inspection tool for the shelf database.
//
// Usage:
//
//	DB_PATH=~/Bookshelf/data/db go run ./cmd/dbinspect
package main

import (
	"encoding/json/v2"
	"fmt"
	"log"
	"os"

	"github.com/dgraph-io/badger/v4"

	"github.com/bookshelfapp/bookshelf-server/internal/domain"
)

func main() {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = os.ExpandEnv("$HOME/Bookshelf/data/db")
	}

	snapshotKey := os.Getenv("SHELF_SNAPSHOT_KEY")
	if snapshotKey == "" {
		snapshotKey = "shelf:books"
	}

	opts := badger.DefaultOptions(dbPath).
		WithReadOnly(true).
		WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	fmt.Println("=== Shelf Inspection ===")
	fmt.Println()

	var books []domain.Book
	err = db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(snapshotKey))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &books)
		})
	})

	switch {
	case err == badger.ErrKeyNotFound:
		fmt.Printf("No snapshot found under key %q - shelf is empty\n", snapshotKey)
		return
	case err != nil:
		log.Fatalf("Error reading snapshot %q: %v", snapshotKey, err)
	}

	byAuthor := make(map[string]int)
	for _, book := range books {
		byAuthor[book.Author]++

		fmt.Printf("Book: %s\n", book.Title)
		fmt.Printf("  ID: %s\n", book.ID)
		fmt.Printf("  Author: %s\n", book.Author)
		fmt.Printf("  Year: %d\n", book.Year)
		if book.Genre != "" {
			fmt.Printf("  Genre: %s\n", book.Genre)
		}
		if book.ISBN != "" {
			fmt.Printf("  ISBN: %s\n", book.ISBN)
		}
		fmt.Println()
	}

	fmt.Println("=== Summary ===")
	fmt.Printf("Snapshot key: %s\n", snapshotKey)
	fmt.Printf("Total books: %d\n", len(books))
	fmt.Printf("Distinct authors: %d\n", len(byAuthor))
}
