package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	dbm "solace/internal/models/db_models"
)

type SubscriptionRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*dbm.Subscription, error)
	Upsert(ctx context.Context, sub *dbm.Subscription) error
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*dbm.Subscription, error) {
	var sub dbm.Subscription
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

func (r *subscriptionRepository) Upsert(ctx context.Context, sub *dbm.Subscription) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"status", "starts_at", "ends_at", "canceled_at", "provider", "provider_sub_id", "updated_at",
			}),
		}).
		Create(sub).Error
}
