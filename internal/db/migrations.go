package db

import (
	"database/sql"
	"fmt"
)

// The schema is portable between sqlite and postgres. Ids are snowflakes,
// so the key is BIGINT and never auto-generated.
const baseSchema = `
CREATE TABLE IF NOT EXISTS feed_entries (
  id BIGINT PRIMARY KEY,
  sender_name TEXT,
  sender_email TEXT,
  feed_text TEXT,
  parent TEXT,
  is_comment BOOLEAN NOT NULL DEFAULT FALSE,
  time_created TEXT
);
`

var indexes = []string{
	`CREATE INDEX IF NOT EXISTS idx_feed_entries_parent ON feed_entries(parent)`,
}

func Migrate(db *sql.DB) error {
	if _, err := db.Exec(baseSchema); err != nil {
		return fmt.Errorf("migrate base schema: %w", err)
	}

	for _, stmt := range indexes {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("create index: %w", err)
		}
	}

	return nil
}
