package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"feedstream/backend/internal/logger"
	"feedstream/backend/internal/model"
	"feedstream/backend/internal/repository"
)

type FeedEntryService interface {
	List(ctx context.Context) ([]model.FeedEntry, error)
	GetByID(ctx context.Context, id int64) (model.FeedEntry, error)
	Create(ctx context.Context, entry model.FeedEntry) (model.FeedEntry, error)
	Update(ctx context.Context, id int64, patch FeedEntryPatch) (model.FeedEntry, error)
	Ping(ctx context.Context) error
}

type feedEntryService struct {
	store repository.Store
}

func NewFeedEntryService(store repository.Store) FeedEntryService {
	return &feedEntryService{store: store}
}

func (s *feedEntryService) List(ctx context.Context) ([]model.FeedEntry, error) {
	entries, err := s.store.Entries().List(ctx)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []model.FeedEntry{}
	}
	logger.Info("feed entries listed", "module", "service", "action", "list", "resource", "feed_entry", "result", "ok", "count", len(entries))
	return entries, nil
}

func (s *feedEntryService) GetByID(ctx context.Context, id int64) (model.FeedEntry, error) {
	entry, err := s.store.Entries().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.FeedEntry{}, ErrNotFound
		}
		return model.FeedEntry{}, err
	}
	return entry, nil
}

// Create ignores any id on the input; the store assigns one.
func (s *feedEntryService) Create(ctx context.Context, entry model.FeedEntry) (model.FeedEntry, error) {
	entry.ID = 0

	var created model.FeedEntry
	err := s.store.WithinTx(ctx, func(entries repository.FeedEntryRepository) error {
		var err error
		created, err = entries.Create(ctx, entry)
		return err
	})
	if err != nil {
		return model.FeedEntry{}, err
	}

	logger.Info("feed entry created", "module", "service", "action", "create", "resource", "feed_entry", "result", "ok", "id", created.ID)
	return created, nil
}

// Update looks up the entry and writes the merged result in one transaction.
// A missing entry returns ErrNotFound and nothing is written. An empty patch
// only checks that the entry exists.
func (s *feedEntryService) Update(ctx context.Context, id int64, patch FeedEntryPatch) (model.FeedEntry, error) {
	var updated model.FeedEntry
	err := s.store.WithinTx(ctx, func(entries repository.FeedEntryRepository) error {
		current, err := entries.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNotFound
			}
			return err
		}

		if patch.IsEmpty() {
			logger.Debug("feed entry patch is empty", "module", "service", "action", "update", "resource", "feed_entry", "result", "ok", "id", id)
			updated = current
			return nil
		}
		patch.Apply(&current)
		if err := entries.Update(ctx, current); err != nil {
			return fmt.Errorf("save feed entry %d: %w", id, err)
		}
		updated = current
		return nil
	})
	if err != nil {
		return model.FeedEntry{}, err
	}

	logger.Info("feed entry updated", "module", "service", "action", "update", "resource", "feed_entry", "result", "ok", "id", id)
	return updated, nil
}

func (s *feedEntryService) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}
