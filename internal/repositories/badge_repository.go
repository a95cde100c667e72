package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	dbm "solace/internal/models/db_models"
)

type BadgeRepository interface {
	ListDefinitions(ctx context.Context) ([]dbm.BadgeDefinition, error)
	SeedDefinitions(ctx context.Context, defs []dbm.BadgeDefinition) error

	ListProgressByUser(ctx context.Context, userID uuid.UUID) ([]dbm.BadgeProgress, error)
	// UpsertProgress writes by (user_id, badge_id); rows are never deleted.
	UpsertProgress(ctx context.Context, progress *dbm.BadgeProgress) error
	CountEarnedByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

type badgeRepository struct {
	db *gorm.DB
}

func NewBadgeRepository(db *gorm.DB) BadgeRepository {
	return &badgeRepository{db: db}
}

func (r *badgeRepository) ListDefinitions(ctx context.Context) ([]dbm.BadgeDefinition, error) {
	var defs []dbm.BadgeDefinition
	err := r.db.WithContext(ctx).
		Order("sort_order ASC, id ASC").
		Find(&defs).Error
	if err != nil {
		return nil, err
	}
	return defs, nil
}

// SeedDefinitions is idempotent: reruns update names/targets in place and the
// stable string IDs never change.
func (r *badgeRepository) SeedDefinitions(ctx context.Context, defs []dbm.BadgeDefinition) error {
	if len(defs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"name", "description", "icon", "category", "metric", "progress_target", "sort_order",
			}),
		}).
		Create(&defs).Error
}

func (r *badgeRepository) ListProgressByUser(ctx context.Context, userID uuid.UUID) ([]dbm.BadgeProgress, error) {
	var rows []dbm.BadgeProgress
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *badgeRepository) UpsertProgress(ctx context.Context, progress *dbm.BadgeProgress) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "badge_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"progress_current", "progress_percentage", "earned", "earned_at", "updated_at",
			}),
		}).
		Create(progress).Error
}

func (r *badgeRepository) CountEarnedByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbm.BadgeProgress{}).
		Where("user_id = ? AND earned = TRUE", userID).
		Count(&count).Error
	return count, err
}
