package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	dbm "solace/internal/models/db_models"
)

type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*dbm.UserProgressProfile, error)
	Create(ctx context.Context, profile *dbm.UserProgressProfile) error
	Save(ctx context.Context, profile *dbm.UserProgressProfile) error
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*dbm.UserProgressProfile, error) {
	var profile dbm.UserProgressProfile
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) Create(ctx context.Context, profile *dbm.UserProgressProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *profileRepository) Save(ctx context.Context, profile *dbm.UserProgressProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}
