package services

import (
	"context"

	"github.com/google/uuid"

	dbm "solace/internal/models/db_models"
	"solace/internal/models/response_models"
	"solace/internal/repositories"
)

type BadgeServiceInterface interface {
	ListCatalog(ctx context.Context) ([]response_models.BadgeDefinitionResponse, error)
	// ListUserProgress returns one row per catalog badge; badges the user has
	// never been evaluated against come back zeroed.
	ListUserProgress(ctx context.Context, userID uuid.UUID) ([]response_models.BadgeProgressResponse, error)
}

type badgeService struct {
	badgeRepo repositories.BadgeRepository
}

func NewBadgeService(badgeRepo repositories.BadgeRepository) BadgeServiceInterface {
	return &badgeService{badgeRepo: badgeRepo}
}

func toDefinitionResponse(def *dbm.BadgeDefinition) response_models.BadgeDefinitionResponse {
	return response_models.BadgeDefinitionResponse{
		ID:             def.ID,
		Name:           def.Name,
		Description:    def.Description,
		Icon:           def.Icon,
		Category:       string(def.Category),
		ProgressTarget: def.ProgressTarget,
	}
}

func (s *badgeService) ListCatalog(ctx context.Context) ([]response_models.BadgeDefinitionResponse, error) {
	defs, err := s.badgeRepo.ListDefinitions(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]response_models.BadgeDefinitionResponse, 0, len(defs))
	for i := range defs {
		out = append(out, toDefinitionResponse(&defs[i]))
	}
	return out, nil
}

func (s *badgeService) ListUserProgress(ctx context.Context, userID uuid.UUID) ([]response_models.BadgeProgressResponse, error) {
	defs, err := s.badgeRepo.ListDefinitions(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := s.badgeRepo.ListProgressByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	byBadge := make(map[string]*dbm.BadgeProgress, len(rows))
	for i := range rows {
		byBadge[rows[i].BadgeID] = &rows[i]
	}

	out := make([]response_models.BadgeProgressResponse, 0, len(defs))
	for i := range defs {
		item := response_models.BadgeProgressResponse{
			BadgeDefinitionResponse: toDefinitionResponse(&defs[i]),
		}
		if row, ok := byBadge[defs[i].ID]; ok {
			item.ProgressCurrent = row.ProgressCurrent
			item.ProgressPercentage = row.ProgressPercentage
			item.Earned = row.Earned
			item.EarnedAt = row.EarnedAt
		}
		out = append(out, item)
	}
	return out, nil
}
