package db_models

import (
	"time"

	"github.com/google/uuid"
)

// UserProgressProfile is the per-user summary the recompute engine writes.
// Every field here is derived from the raw entry log plus subscription state;
// nothing is incrementally patched.
type UserProgressProfile struct {
	BaseModel
	UserID              uuid.UUID  `gorm:"type:uuid;uniqueIndex;not null"`
	CurrentStreak       int        `gorm:"not null;default:0"`
	BestStreak          int        `gorm:"not null;default:0"`
	LastEntryDate       *time.Time // date-truncated in the reference timezone, nil when no entries exist
	TotalBadgesEarned   int        `gorm:"not null;default:0"`
	SubscriptionPremium bool       `gorm:"not null;default:false"`
}
