package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"

	"triviaBackend/internal/db"
)

// OpenInMemoryDB opens an in-memory SQLite database and applies migrations.
// The shared cache keeps multiple pooled connections on the same DB.
// Closing is registered via t.Cleanup.
func OpenInMemoryDB(t *testing.T, name string) *sql.DB {
	t.Helper()
	d, err := db.Open("file:"+name+"?mode=memory&cache=shared", 0)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })
	return d
}

// OpenTempFileDB opens a file-backed SQLite database in a per-test temp dir.
// Use this instead of OpenInMemoryDB for tests that hammer the database from
// multiple goroutines: the file journal handles concurrent writers, while
// shared-cache memory databases can fail with table-lock errors.
func OpenTempFileDB(t *testing.T) *sql.DB {
	t.Helper()
	d, err := db.Open(filepath.Join(t.TempDir(), "test.db"), 0)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })
	return d
}
