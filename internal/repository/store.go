package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"
)

// IDGenerator assigns ids to new rows.
type IDGenerator interface {
	NextID() int64
}

// Store hands out units of work over the feed database. Reads go through
// Entries; writes are wrapped in WithinTx.
type Store interface {
	Entries() FeedEntryRepository
	WithinTx(ctx context.Context, fn func(entries FeedEntryRepository) error) error
	Ping(ctx context.Context) error
}

type store struct {
	sqlDB *sql.DB
	db    *goqu.Database
	ids   IDGenerator
}

// NewStore wraps an open connection pool. dialect is a goqu dialect name
// ("sqlite3" or "postgres").
func NewStore(sqlDB *sql.DB, dialect string, ids IDGenerator) Store {
	return &store{
		sqlDB: sqlDB,
		db:    goqu.New(dialect, sqlDB),
		ids:   ids,
	}
}

func (s *store) Entries() FeedEntryRepository {
	return newFeedEntryRepository(s.db, s.ids)
}

// WithinTx commits when fn returns nil and rolls back on error or panic.
func (s *store) WithinTx(ctx context.Context, fn func(entries FeedEntryRepository) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	return tx.Wrap(func() error {
		return fn(newFeedEntryRepository(tx, s.ids))
	})
}

func (s *store) Ping(ctx context.Context) error {
	return s.sqlDB.PingContext(ctx)
}

//go:generate mockgen -source=store.go -destination=mock/mock_store.go -package=mock
//go:generate mockgen -source=feed_entry_repository.go -destination=mock/mock_feed_entry_repository.go -package=mock
