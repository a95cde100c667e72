package services

import (
	"fmt"
	"math"

	dbm "solace/internal/models/db_models"
	"solace/pkg/utils"
)

// UserMetrics is everything the badge table needs, precomputed once per
// recompute pass.
type UserMetrics struct {
	TotalEntries     int
	CurrentStreak    int
	BestStreak       int
	EntriesThisMonth int
	DistinctMoods    int
	IsPremium        bool
}

// badgeProgressValue is the single table-driven dispatch from badge category
// (and achievement metric) to a progress number. Adding a badge means adding
// a catalog row, not another branch of id comparisons.
func badgeProgressValue(def dbm.BadgeDefinition, m UserMetrics) (int, error) {
	switch def.Category {
	case dbm.CategoryMilestone:
		return m.TotalEntries, nil
	case dbm.CategoryStreak:
		return m.CurrentStreak, nil
	case dbm.CategoryMonthly:
		return m.EntriesThisMonth, nil
	case dbm.CategorySpecial:
		if m.IsPremium {
			return 1, nil
		}
		return 0, nil
	case dbm.CategoryAchievement:
		switch def.Metric {
		case dbm.MetricFirstEntry:
			if m.TotalEntries > 0 {
				return 1, nil
			}
			return 0, nil
		case dbm.MetricBestStreak:
			if m.BestStreak > def.ProgressTarget {
				return def.ProgressTarget, nil
			}
			return m.BestStreak, nil
		case dbm.MetricMoodVariety:
			if m.DistinctMoods > len(dbm.MoodLevels) {
				return len(dbm.MoodLevels), nil
			}
			return m.DistinctMoods, nil
		default:
			return 0, fmt.Errorf("%w: achievement metric %q (badge %s)", utils.ErrUnknownCategory, def.Metric, def.ID)
		}
	default:
		return 0, fmt.Errorf("%w: %q (badge %s)", utils.ErrUnknownCategory, def.Category, def.ID)
	}
}

// Percentage derives the completion percentage: min(100, current/target*100)
// rounded to 2 decimals, and 0 when the target is not positive.
func Percentage(current, target int) float64 {
	if target <= 0 {
		return 0
	}
	pct := float64(current) / float64(target) * 100
	if pct > 100 {
		pct = 100
	}
	if pct < 0 {
		pct = 0
	}
	return math.Round(pct*100) / 100
}

// EvaluateBadge computes the upsert candidate for one (user, badge) pair.
// existing is the stored row from the previous recompute, nil on first
// evaluation; it drives the earnedAt lifecycle: set on the false->true
// transition, preserved while still earned, cleared when progress drops back
// below target (recompute after deletions).
func EvaluateBadge(def dbm.BadgeDefinition, m UserMetrics, existing *dbm.BadgeProgress, now int64) (dbm.BadgeProgress, error) {
	if def.ProgressTarget <= 0 {
		return dbm.BadgeProgress{}, fmt.Errorf("%w: badge %s has target %d", utils.ErrInvalidBadgeTarget, def.ID, def.ProgressTarget)
	}
	if m.TotalEntries < 0 || m.CurrentStreak < 0 || m.BestStreak < 0 || m.EntriesThisMonth < 0 || m.DistinctMoods < 0 {
		return dbm.BadgeProgress{}, fmt.Errorf("%w: negative metric for badge %s", utils.ErrInvalidBadgeTarget, def.ID)
	}

	current, err := badgeProgressValue(def, m)
	if err != nil {
		return dbm.BadgeProgress{}, err
	}

	out := dbm.BadgeProgress{
		BadgeID:            def.ID,
		ProgressCurrent:    current,
		ProgressPercentage: Percentage(current, def.ProgressTarget),
		Earned:             current >= def.ProgressTarget,
	}
	if existing != nil {
		out.BaseModel = existing.BaseModel
		out.UserID = existing.UserID
	}

	switch {
	case out.Earned && existing != nil && existing.Earned && existing.EarnedAt != nil:
		out.EarnedAt = existing.EarnedAt
	case out.Earned:
		earnedAt := now
		out.EarnedAt = &earnedAt
	default:
		out.EarnedAt = nil
	}

	return out, nil
}

// ZeroedBadge is the terminal state a badge is forced to when the user's
// entry history is emptied by deletions. Subscription-gated badges are exempt
// and keep being evaluated from subscription state.
func ZeroedBadge(def dbm.BadgeDefinition, existing *dbm.BadgeProgress) dbm.BadgeProgress {
	out := dbm.BadgeProgress{
		BadgeID:            def.ID,
		ProgressCurrent:    0,
		ProgressPercentage: 0,
		Earned:             false,
		EarnedAt:           nil,
	}
	if existing != nil {
		out.BaseModel = existing.BaseModel
		out.UserID = existing.UserID
	}
	return out
}
