package services

import (
	dbm "solace/internal/models/db_models"
)

// DefaultBadgeCatalog is the full set of badge definitions seeded at startup.
// IDs are stable keys; renaming one would orphan existing progress rows, so
// never do it — add a new row instead.
func DefaultBadgeCatalog() []dbm.BadgeDefinition {
	return []dbm.BadgeDefinition{
		{
			ID:             "first-entry",
			Name:           "First Entry",
			Description:    "Write your very first journal entry",
			Icon:           "✨",
			Category:       dbm.CategoryAchievement,
			Metric:         dbm.MetricFirstEntry,
			ProgressTarget: 1,
			SortOrder:      10,
		},
		{
			ID:             "getting-started",
			Name:           "Getting Started",
			Description:    "Write 5 journal entries",
			Icon:           "📝",
			Category:       dbm.CategoryMilestone,
			ProgressTarget: 5,
			SortOrder:      20,
		},
		{
			ID:             "dedicated-writer",
			Name:           "Dedicated Writer",
			Description:    "Write 25 journal entries",
			Icon:           "📖",
			Category:       dbm.CategoryMilestone,
			ProgressTarget: 25,
			SortOrder:      30,
		},
		{
			ID:             "journal-master",
			Name:           "Journal Master",
			Description:    "Write 100 journal entries",
			Icon:           "🏆",
			Category:       dbm.CategoryMilestone,
			ProgressTarget: 100,
			SortOrder:      40,
		},
		{
			ID:             "three-day-streak",
			Name:           "Three Day Streak",
			Description:    "Journal 3 days in a row",
			Icon:           "🔥",
			Category:       dbm.CategoryStreak,
			ProgressTarget: 3,
			SortOrder:      50,
		},
		{
			ID:             "week-streak",
			Name:           "Week Streak",
			Description:    "Journal 7 days in a row",
			Icon:           "⚡",
			Category:       dbm.CategoryStreak,
			ProgressTarget: 7,
			SortOrder:      60,
		},
		{
			ID:             "month-streak",
			Name:           "Month Streak",
			Description:    "Journal 30 days in a row",
			Icon:           "🌟",
			Category:       dbm.CategoryStreak,
			ProgressTarget: 30,
			SortOrder:      70,
		},
		{
			ID:             "monthly-regular",
			Name:           "Monthly Regular",
			Description:    "Write 15 entries in a single month",
			Icon:           "📅",
			Category:       dbm.CategoryMonthly,
			ProgressTarget: 15,
			SortOrder:      80,
		},
		{
			ID:             "best-streak-14",
			Name:           "Fortnight of Focus",
			Description:    "Reach a best streak of 14 days",
			Icon:           "💎",
			Category:       dbm.CategoryAchievement,
			Metric:         dbm.MetricBestStreak,
			ProgressTarget: 14,
			SortOrder:      90,
		},
		{
			ID:             "mood-explorer",
			Name:           "Mood Explorer",
			Description:    "Log entries with all 5 moods",
			Icon:           "🎭",
			Category:       dbm.CategoryAchievement,
			Metric:         dbm.MetricMoodVariety,
			ProgressTarget: 5,
			SortOrder:      100,
		},
		{
			ID:             "premium-supporter",
			Name:           "Premium Supporter",
			Description:    "Support Solace with a premium subscription",
			Icon:           "💜",
			Category:       dbm.CategorySpecial,
			ProgressTarget: 1,
			SortOrder:      110,
		},
	}
}
