package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Mood string

const (
	MoodStruggling Mood = "struggling"
	MoodLow        Mood = "low"
	MoodNeutral    Mood = "neutral"
	MoodGood       Mood = "good"
	MoodAmazing    Mood = "amazing"
)

// MoodLevels is the full mood enumeration, in ascending order. Its size caps
// the mood-variety badge progress.
var MoodLevels = []Mood{MoodStruggling, MoodLow, MoodNeutral, MoodGood, MoodAmazing}

func (m Mood) Valid() bool {
	for _, level := range MoodLevels {
		if m == level {
			return true
		}
	}
	return false
}

// JournalEntry is immutable for streak purposes: content and tags may be
// edited, but CreatedAt and UserID never change after creation. Deleting an
// entry fires a full recompute of the owner's progress.
type JournalEntry struct {
	BaseModel
	UserID  uuid.UUID `gorm:"type:uuid;index;not null"`
	Content string    `gorm:"type:text;not null"`
	Mood    Mood      `gorm:"size:16;not null"`
	Tags    pq.StringArray `gorm:"type:text[]"`
}
