package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	dbm "solace/internal/models/db_models"
	"solace/internal/repositories"
	"solace/pkg/utils"
)

type SubscriptionServiceInterface interface {
	GetSubscription(ctx context.Context, userID uuid.UUID) (*dbm.Subscription, error)
	// UpdateStatus persists the provider-pushed status and fires the
	// subscription-changed recompute so the premium badge tracks it.
	UpdateStatus(ctx context.Context, userID uuid.UUID, status string, provider string, providerSubID string, endsAt int64) error
}

type subscriptionService struct {
	subRepo  repositories.SubscriptionRepository
	progress ProgressServiceInterface
}

func NewSubscriptionService(
	subRepo repositories.SubscriptionRepository,
	progress ProgressServiceInterface,
) SubscriptionServiceInterface {
	return &subscriptionService{
		subRepo:  subRepo,
		progress: progress,
	}
}

func (s *subscriptionService) GetSubscription(ctx context.Context, userID uuid.UUID) (*dbm.Subscription, error) {
	return s.subRepo.GetByUserID(ctx, userID)
}

func validStatus(status dbm.SubscriptionStatus) bool {
	switch status {
	case dbm.SubStatusTrialing, dbm.SubStatusActive, dbm.SubStatusPastDue,
		dbm.SubStatusCanceled, dbm.SubStatusExpired:
		return true
	}
	return false
}

func (s *subscriptionService) UpdateStatus(ctx context.Context, userID uuid.UUID, status string, provider string, providerSubID string, endsAt int64) error {
	st := dbm.SubscriptionStatus(status)
	if !validStatus(st) {
		return fmt.Errorf("%w: subscription status %q", utils.ErrUnknownCategory, status)
	}

	existing, err := s.subRepo.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}

	sub := &dbm.Subscription{
		UserID:        userID,
		Status:        st,
		Provider:      provider,
		ProviderSubID: providerSubID,
		EndsAt:        endsAt,
	}
	if existing != nil {
		sub.BaseModel = existing.BaseModel
		if sub.StartsAt = existing.StartsAt; sub.StartsAt == 0 {
			sub.StartsAt = utils.NowUnixSeconds()
		}
	} else {
		sub.StartsAt = utils.NowUnixSeconds()
	}
	if st == dbm.SubStatusCanceled {
		now := utils.NowUnixSeconds()
		sub.CanceledAt = &now
	}

	if err := s.subRepo.Upsert(ctx, sub); err != nil {
		return err
	}

	return s.progress.OnSubscriptionChanged(ctx, userID, st.Premium())
}
