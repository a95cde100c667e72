package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type BadgeCategory string

const (
	CategoryMilestone   BadgeCategory = "milestone"   // total entry count
	CategoryStreak      BadgeCategory = "streak"      // current streak
	CategoryMonthly     BadgeCategory = "monthly"     // entries in the calendar month of the last entry
	CategoryAchievement BadgeCategory = "achievement" // sub-kind selected by Metric
	CategorySpecial     BadgeCategory = "special"     // subscription-gated
)

// BadgeMetric selects the progress source for achievement badges.
type BadgeMetric string

const (
	MetricFirstEntry  BadgeMetric = "first_entry"
	MetricBestStreak  BadgeMetric = "best_streak"
	MetricMoodVariety BadgeMetric = "mood_variety"
)

// BadgeDefinition rows are seeded once from the catalog table and treated as
// immutable at runtime. The string ID is the stable key badge progress hangs
// off; it is never renamed.
type BadgeDefinition struct {
	ID             string        `gorm:"size:64;primaryKey"`
	Name           string        `gorm:"not null"`
	Description    string
	Icon           string
	Category       BadgeCategory `gorm:"size:16;index;not null"`
	Metric         BadgeMetric   `gorm:"size:24"` // only set for achievement badges
	ProgressTarget int           `gorm:"not null"`
	SortOrder      int           `gorm:"not null;default:0"`
	Metadata       datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
	CreatedAt      int64         `gorm:"autoCreateTime"`
}

// BadgeProgress is one row per user x badge definition. Rows are created
// zeroed the first time a user is evaluated and upserted on every recompute;
// they are never deleted while the user exists.
type BadgeProgress struct {
	BaseModel
	UserID             uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_badge"`
	BadgeID            string    `gorm:"size:64;not null;uniqueIndex:idx_user_badge"`
	ProgressCurrent    int       `gorm:"not null;default:0"`
	ProgressPercentage float64   `gorm:"not null;default:0"`
	Earned             bool      `gorm:"not null;default:false;index"`
	EarnedAt           *int64    // unix seconds; set on the false->true transition, cleared if progress later drops below target

	Badge BadgeDefinition `gorm:"foreignKey:BadgeID"`
}
