package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookshelfapp/bookshelf-server/internal/domain"
)

func setupTestStore(t *testing.T) (*Store, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "snapshot-test-*")
	require.NoError(t, err)

	dbPath := filepath.Join(tmpDir, "test.db")
	s, err := New(dbPath, nil)
	require.NoError(t, err)

	cleanup := func() {
		_ = s.Close()
		_ = os.RemoveAll(tmpDir)
	}

	return s, cleanup
}

func testBooks() []domain.Book {
	return []domain.Book{
		domain.NewBookBuilder("book-001", "The Fellowship of the Ring", "J.R.R. Tolkien", 1954).
			SetGenre("Fantasy").
			Build(),
		domain.NewBookBuilder("book-002", "The Dispossessed", "Ursula K. Le Guin", 1974).Build(),
	}
}

func TestSnapshot_RoundTrip(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	snap := s.Snapshot("shelf:books")
	books := testBooks()

	require.NoError(t, snap.Save(books))

	loaded, err := snap.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	// Fields and order survive the round trip.
	assert.Equal(t, books, loaded)
}

func TestSnapshot_LoadMissingKey(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	loaded, err := s.Snapshot("shelf:books").Load()
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestSnapshot_LoadCorruptValueClearsKey(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	snap := s.Snapshot("shelf:books")
	require.NoError(t, snap.putRaw([]byte(`not json {`)))

	loaded, err := snap.Load()
	require.NoError(t, err)
	assert.Empty(t, loaded)

	// The corrupt value must be gone.
	exists, err := snap.Exists()
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestSnapshot_LoadWrongShapeLeavesValue(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	snap := s.Snapshot("shelf:books")
	require.NoError(t, snap.putRaw([]byte(`{"a":1}`)))

	loaded, err := snap.Load()
	require.NoError(t, err)
	assert.Empty(t, loaded)

	// Valid JSON of the wrong shape is left in place for inspection.
	exists, err := snap.Exists()
	require.NoError(t, err)
	assert.True(t, exists)

	raw, err := s.get([]byte("shelf:books"))
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(raw))
}

func TestSnapshot_SaveOverwritesWholesale(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	snap := s.Snapshot("shelf:books")
	books := testBooks()

	require.NoError(t, snap.Save(books))
	require.NoError(t, snap.Save(books[:1]))

	loaded, err := snap.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "book-001", loaded[0].ID)
}

func TestSnapshot_SaveNilWritesEmptyArray(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	snap := s.Snapshot("shelf:books")
	require.NoError(t, snap.Save(nil))

	raw, err := s.get([]byte("shelf:books"))
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(raw))
}

func TestSnapshot_IndependentKeys(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	require.NoError(t, s.Snapshot("shelf:a").Save(testBooks()))

	loaded, err := s.Snapshot("shelf:b").Load()
	require.NoError(t, err)
	assert.Empty(t, loaded)
}
