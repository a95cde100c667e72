package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type SubscriptionStatus string

const (
	SubStatusTrialing SubscriptionStatus = "trialing"
	SubStatusActive   SubscriptionStatus = "active"
	SubStatusPastDue  SubscriptionStatus = "past_due"
	SubStatusCanceled SubscriptionStatus = "canceled"
	SubStatusExpired  SubscriptionStatus = "expired"
)

// Premium reports whether the status grants the premium-supporter badge.
func (s SubscriptionStatus) Premium() bool {
	return s == SubStatusTrialing || s == SubStatusActive
}

// Subscription records the billing state pushed by the external payment
// provider. Payment processing itself happens outside this service; we only
// receive status transitions and react to them.
type Subscription struct {
	BaseModel
	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`

	Status     SubscriptionStatus `gorm:"size:16;index;not null"`
	StartsAt   int64
	EndsAt     int64
	CanceledAt *int64

	Provider      string `gorm:"index"` // "stripe", "local"
	ProviderSubID string `gorm:"index"`

	Metadata datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
}
