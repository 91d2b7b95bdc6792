package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/doug-martin/goqu/v9"

	"feedstream/backend/internal/model"
)

const feedEntriesTable = "feed_entries"

type FeedEntryRepository interface {
	// List runs the "all feed entries" query, ordered by id.
	List(ctx context.Context) ([]model.FeedEntry, error)
	GetByID(ctx context.Context, id int64) (model.FeedEntry, error)
	// Create assigns a new id and returns the stored entry.
	Create(ctx context.Context, entry model.FeedEntry) (model.FeedEntry, error)
	// Update overwrites every column of the row with entry.ID.
	Update(ctx context.Context, entry model.FeedEntry) error
}

// goquDB is satisfied by both *goqu.Database and *goqu.TxDatabase.
type goquDB interface {
	From(from ...interface{}) *goqu.SelectDataset
	Insert(table interface{}) *goqu.InsertDataset
	Update(table interface{}) *goqu.UpdateDataset
}

type feedEntryRow struct {
	ID          int64          `db:"id"`
	SenderName  sql.NullString `db:"sender_name"`
	SenderEmail sql.NullString `db:"sender_email"`
	FeedText    sql.NullString `db:"feed_text"`
	Parent      sql.NullString `db:"parent"`
	IsComment   bool           `db:"is_comment"`
	TimeCreated sql.NullString `db:"time_created"`
}

type feedEntryRepository struct {
	db  goquDB
	ids IDGenerator
}

func newFeedEntryRepository(db goquDB, ids IDGenerator) FeedEntryRepository {
	return &feedEntryRepository{db: db, ids: ids}
}

func (r *feedEntryRepository) List(ctx context.Context) ([]model.FeedEntry, error) {
	var rows []feedEntryRow
	err := r.db.From(feedEntriesTable).
		Order(goqu.C("id").Asc()).
		ScanStructsContext(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("list feed entries: %w", err)
	}

	entries := make([]model.FeedEntry, 0, len(rows))
	for _, row := range rows {
		entry, err := row.toModel()
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (r *feedEntryRepository) GetByID(ctx context.Context, id int64) (model.FeedEntry, error) {
	var row feedEntryRow
	found, err := r.db.From(feedEntriesTable).
		Where(goqu.C("id").Eq(id)).
		ScanStructContext(ctx, &row)
	if err != nil {
		return model.FeedEntry{}, fmt.Errorf("get feed entry: %w", err)
	}
	if !found {
		return model.FeedEntry{}, fmt.Errorf("get feed entry %d: %w", id, sql.ErrNoRows)
	}
	return row.toModel()
}

func (r *feedEntryRepository) Create(ctx context.Context, entry model.FeedEntry) (model.FeedEntry, error) {
	entry.ID = r.ids.NextID()

	record := columns(entry)
	record["id"] = entry.ID
	if _, err := r.db.Insert(feedEntriesTable).Rows(record).Executor().ExecContext(ctx); err != nil {
		return model.FeedEntry{}, fmt.Errorf("create feed entry: %w", err)
	}
	return entry, nil
}

func (r *feedEntryRepository) Update(ctx context.Context, entry model.FeedEntry) error {
	result, err := r.db.Update(feedEntriesTable).
		Set(columns(entry)).
		Where(goqu.C("id").Eq(entry.ID)).
		Executor().
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("update feed entry: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update feed entry rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update feed entry %d: %w", entry.ID, sql.ErrNoRows)
	}
	return nil
}

func columns(entry model.FeedEntry) goqu.Record {
	return goqu.Record{
		"sender_name":  nullableString(entry.SenderName),
		"sender_email": nullableString(entry.SenderEmail),
		"feed_text":    nullableString(entry.FeedText),
		"parent":       nullableString(entry.Parent),
		"is_comment":   entry.IsComment,
		"time_created": nullableTime(entry.TimeCreated),
	}
}

func (row feedEntryRow) toModel() (model.FeedEntry, error) {
	entry := model.FeedEntry{
		ID:        row.ID,
		IsComment: row.IsComment,
	}
	if row.SenderName.Valid {
		entry.SenderName = &row.SenderName.String
	}
	if row.SenderEmail.Valid {
		entry.SenderEmail = &row.SenderEmail.String
	}
	if row.FeedText.Valid {
		entry.FeedText = &row.FeedText.String
	}
	if row.Parent.Valid {
		entry.Parent = &row.Parent.String
	}
	if row.TimeCreated.Valid {
		created, err := parseTime(row.TimeCreated.String)
		if err != nil {
			return model.FeedEntry{}, fmt.Errorf("parse feed entry %d time_created: %w", row.ID, err)
		}
		entry.TimeCreated = &created
	}
	return entry, nil
}
