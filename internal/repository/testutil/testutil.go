// Package testutil provides sqlite-backed fixtures for repository, service
// and handler tests.
package testutil

import (
	"context"
	"database/sql"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"feedstream/backend/internal/db"
	"feedstream/backend/internal/model"
	"feedstream/backend/internal/repository"
)

// SequenceIDs is a deterministic IDGenerator starting at 1.
type SequenceIDs struct {
	next atomic.Int64
}

func (s *SequenceIDs) NextID() int64 {
	return s.next.Add(1)
}

// NewTestDB opens a migrated sqlite database in a temporary directory.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := db.Open(db.DriverSQLite, filepath.Join(t.TempDir(), "feed.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

// NewTestStore returns a Store over a fresh database with sequential ids.
func NewTestStore(t *testing.T) (repository.Store, *sql.DB) {
	t.Helper()
	conn := NewTestDB(t)
	return repository.NewStore(conn, db.GoquDialect(db.DriverSQLite), &SequenceIDs{}), conn
}

// SeedEntry inserts entry and returns its assigned id.
func SeedEntry(t *testing.T, store repository.Store, entry model.FeedEntry) int64 {
	t.Helper()
	var created model.FeedEntry
	err := store.WithinTx(context.Background(), func(entries repository.FeedEntryRepository) error {
		var err error
		created, err = entries.Create(context.Background(), entry)
		return err
	})
	require.NoError(t, err)
	return created.ID
}

// CountEntries returns the number of rows in feed_entries.
func CountEntries(t *testing.T, conn *sql.DB) int {
	t.Helper()
	var count int
	require.NoError(t, conn.QueryRow(`SELECT COUNT(*) FROM feed_entries`).Scan(&count))
	return count
}

func StringPtr(s string) *string {
	return &s
}
