// internal/repositories/entry_repo.go
package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	dbm "solace/internal/models/db_models"
)

type EntryRepository interface {
	Create(ctx context.Context, entry *dbm.JournalEntry) error
	GetByID(ctx context.Context, userID uuid.UUID, entryID string) (*dbm.JournalEntry, error)
	// ListByUser returns the user's full non-deleted history; the engine sorts
	// internally, ordering here is irrelevant.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]dbm.JournalEntry, error)
	ListByUserPaged(ctx context.Context, userID uuid.UUID, page int, pageSize int) ([]dbm.JournalEntry, error)
	SoftDelete(ctx context.Context, userID uuid.UUID, entryID string) error
}

type entryRepository struct {
	db *gorm.DB
}

func NewEntryRepository(db *gorm.DB) EntryRepository {
	return &entryRepository{db: db}
}

func (r *entryRepository) Create(ctx context.Context, entry *dbm.JournalEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *entryRepository) GetByID(ctx context.Context, userID uuid.UUID, entryID string) (*dbm.JournalEntry, error) {
	var entry dbm.JournalEntry
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", entryID, userID).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (r *entryRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]dbm.JournalEntry, error) {
	var entries []dbm.JournalEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *entryRepository) ListByUserPaged(ctx context.Context, userID uuid.UUID, page int, pageSize int) ([]dbm.JournalEntry, error) {
	var entries []dbm.JournalEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *entryRepository) SoftDelete(ctx context.Context, userID uuid.UUID, entryID string) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", entryID, userID).
		Delete(&dbm.JournalEntry{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
