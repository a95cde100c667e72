package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	dbm "solace/internal/models/db_models"
	"solace/internal/repositories"
	"solace/pkg/memcache"
	"solace/pkg/utils"
)

// ProgressServiceInterface is the single recompute path. Entry mutations,
// subscription changes and the manual refresh endpoint all funnel into the
// same full re-derivation from the raw entry log — there is deliberately no
// incremental patching anywhere.
type ProgressServiceInterface interface {
	OnEntryCreated(ctx context.Context, userID uuid.UUID) error
	OnEntryDeleted(ctx context.Context, userID uuid.UUID) error
	OnSubscriptionChanged(ctx context.Context, userID uuid.UUID, premium bool) error
	Refresh(ctx context.Context, userID uuid.UUID) error
	GetProfile(ctx context.Context, userID uuid.UUID) (*dbm.UserProgressProfile, error)
}

type progressService struct {
	entryRepo   repositories.EntryRepository
	profileRepo repositories.ProfileRepository
	badgeRepo   repositories.BadgeRepository
	locks       memcache.UserLockRegistry
}

func NewProgressService(
	entryRepo repositories.EntryRepository,
	profileRepo repositories.ProfileRepository,
	badgeRepo repositories.BadgeRepository,
	locks memcache.UserLockRegistry,
) ProgressServiceInterface {
	return &progressService{
		entryRepo:   entryRepo,
		profileRepo: profileRepo,
		badgeRepo:   badgeRepo,
		locks:       locks,
	}
}

func (s *progressService) OnEntryCreated(ctx context.Context, userID uuid.UUID) error {
	return s.recompute(ctx, userID)
}

func (s *progressService) OnEntryDeleted(ctx context.Context, userID uuid.UUID) error {
	return s.recompute(ctx, userID)
}

func (s *progressService) Refresh(ctx context.Context, userID uuid.UUID) error {
	return s.recompute(ctx, userID)
}

func (s *progressService) OnSubscriptionChanged(ctx context.Context, userID uuid.UUID, premium bool) error {
	s.locks.Lock(userID.String())
	defer s.locks.Unlock(userID.String())

	profile, err := s.loadOrCreateProfile(ctx, userID)
	if err != nil {
		return err
	}
	profile.SubscriptionPremium = premium
	if err := s.profileRepo.Save(ctx, profile); err != nil {
		return err
	}
	return s.recomputeLocked(ctx, userID)
}

func (s *progressService) GetProfile(ctx context.Context, userID uuid.UUID) (*dbm.UserProgressProfile, error) {
	s.locks.Lock(userID.String())
	defer s.locks.Unlock(userID.String())
	return s.loadOrCreateProfile(ctx, userID)
}

func (s *progressService) recompute(ctx context.Context, userID uuid.UUID) error {
	s.locks.Lock(userID.String())
	defer s.locks.Unlock(userID.String())
	return s.recomputeLocked(ctx, userID)
}

// loadOrCreateProfile never fails on a missing row: a user with no profile
// gets a zeroed one, mirroring the auto-create-on-first-trigger behavior.
func (s *progressService) loadOrCreateProfile(ctx context.Context, userID uuid.UUID) (*dbm.UserProgressProfile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile != nil {
		return profile, nil
	}
	profile = &dbm.UserProgressProfile{UserID: userID}
	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// recomputeLocked re-derives the whole progress state for one user. Caller
// must hold the user's lock. Idempotent: a second run with no intervening
// data change writes identical values.
func (s *progressService) recomputeLocked(ctx context.Context, userID uuid.UUID) error {
	profile, err := s.loadOrCreateProfile(ctx, userID)
	if err != nil {
		return err
	}

	entries, err := s.entryRepo.ListByUser(ctx, userID)
	if err != nil {
		return err
	}

	entryTimes := make([]time.Time, 0, len(entries))
	for _, e := range entries {
		entryTimes = append(entryTimes, utils.FromUnixSeconds(e.CreatedAt))
	}

	streaks := ComputeStreaks(entryTimes, time.Now())

	// Full replacement of the streak fields. BestStreak is a pure function of
	// the current history; it is never merged with the stored value, so it
	// shrinks correctly after deletions.
	profile.CurrentStreak = streaks.Current
	profile.BestStreak = streaks.Best
	profile.LastEntryDate = streaks.LastEntryDate

	metrics := buildMetrics(entries, streaks, profile.SubscriptionPremium)

	defs, err := s.badgeRepo.ListDefinitions(ctx)
	if err != nil {
		return err
	}
	existingRows, err := s.badgeRepo.ListProgressByUser(ctx, userID)
	if err != nil {
		return err
	}
	existing := make(map[string]*dbm.BadgeProgress, len(existingRows))
	for i := range existingRows {
		existing[existingRows[i].BadgeID] = &existingRows[i]
	}

	now := utils.NowUnixSeconds()
	for _, def := range defs {
		var candidate dbm.BadgeProgress
		if metrics.TotalEntries == 0 && def.Category != dbm.CategorySpecial {
			// An emptied history is a terminal, deterministic state: every
			// non-subscription badge resets, including earnedAt.
			candidate = ZeroedBadge(def, existing[def.ID])
		} else {
			candidate, err = EvaluateBadge(def, metrics, existing[def.ID], now)
			if err != nil {
				// One bad badge never aborts the pass; its stored progress is
				// left untouched for this run.
				log.Printf("badge %s evaluation failed for user %s: %v", def.ID, userID, err)
				continue
			}
		}
		candidate.UserID = userID
		if err := s.badgeRepo.UpsertProgress(ctx, &candidate); err != nil {
			log.Printf("badge %s upsert failed for user %s: %v", def.ID, userID, err)
			continue
		}
	}

	// The recount runs unconditionally, even after partial badge failures, so
	// the profile total always reflects the stored rows.
	earned, err := s.badgeRepo.CountEarnedByUser(ctx, userID)
	if err != nil {
		return err
	}
	profile.TotalBadgesEarned = int(earned)

	return s.profileRepo.Save(ctx, profile)
}

func buildMetrics(entries []dbm.JournalEntry, streaks StreakResult, premium bool) UserMetrics {
	m := UserMetrics{
		TotalEntries:  len(entries),
		CurrentStreak: streaks.Current,
		BestStreak:    streaks.Best,
		IsPremium:     premium,
	}

	moods := make(map[dbm.Mood]struct{})
	for _, e := range entries {
		moods[e.Mood] = struct{}{}
		if streaks.LastEntryDate != nil &&
			utils.SameYearMonth(utils.FromUnixSeconds(e.CreatedAt), *streaks.LastEntryDate) {
			m.EntriesThisMonth++
		}
	}
	m.DistinctMoods = len(moods)
	if m.DistinctMoods > len(dbm.MoodLevels) {
		m.DistinctMoods = len(dbm.MoodLevels)
	}
	return m
}
