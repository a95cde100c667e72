package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	dbm "solace/internal/models/db_models"
	"solace/internal/models/response_models"
	"solace/internal/repositories"
	"solace/pkg/memcache"
	"solace/pkg/utils"
)

// AffirmationServiceInterface is thin glue around the external text-generation
// collaborator. The only logic here is picking the mood context and caching
// one affirmation per user per day.
type AffirmationServiceInterface interface {
	DailyAffirmation(ctx context.Context, userID uuid.UUID) (*response_models.AffirmationResponse, error)
}

type affirmationService struct {
	entryRepo repositories.EntryRepository
	textGen   utils.TextGenClientInterface
	cache     memcache.AffirmationCache
}

func NewAffirmationService(
	entryRepo repositories.EntryRepository,
	textGen utils.TextGenClientInterface,
	cache memcache.AffirmationCache,
) AffirmationServiceInterface {
	return &affirmationService{
		entryRepo: entryRepo,
		textGen:   textGen,
		cache:     cache,
	}
}

func (s *affirmationService) DailyAffirmation(ctx context.Context, userID uuid.UUID) (*response_models.AffirmationResponse, error) {
	today := utils.FormatDate(time.Now())

	if text, ok := s.cache.Get(userID.String()); ok {
		return &response_models.AffirmationResponse{
			Affirmation: text,
			Date:        today,
			Cached:      true,
		}, nil
	}

	mood, recent, err := s.recentMoodContext(ctx, userID)
	if err != nil {
		return nil, err
	}

	text, err := s.textGen.GenerateAffirmation(ctx, mood, recent)
	if err != nil {
		return nil, err
	}

	s.cache.Set(userID.String(), text, untilEndOfDay(time.Now()))

	return &response_models.AffirmationResponse{
		Affirmation: text,
		Date:        today,
		Cached:      false,
	}, nil
}

// recentMoodContext picks the newest entry's mood plus up to 5 recent moods.
// A user with no entries gets a neutral default.
func (s *affirmationService) recentMoodContext(ctx context.Context, userID uuid.UUID) (string, []string, error) {
	entries, err := s.entryRepo.ListByUserPaged(ctx, userID, 1, 5)
	if err != nil {
		return "", nil, err
	}
	if len(entries) == 0 {
		return string(dbm.MoodNeutral), nil, nil
	}
	recent := make([]string, 0, len(entries))
	for _, e := range entries {
		recent = append(recent, string(e.Mood))
	}
	return string(entries[0].Mood), recent, nil
}

func untilEndOfDay(now time.Time) time.Duration {
	next := utils.TruncateToDate(now).AddDate(0, 0, 1)
	return next.Sub(now)
}
