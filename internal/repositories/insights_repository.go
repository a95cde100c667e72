package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "solace/internal/models/db_models"
)

type InsightsRepository interface {
	CountEntries(ctx context.Context, userID uuid.UUID) (int64, error)
	CountEntriesInRange(ctx context.Context, userID uuid.UUID, start, end time.Time) (int64, error)
	MoodMix(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]MoodCountRow, error)
	DailySeries(ctx context.Context, userID uuid.UUID, start, end time.Time, tz string) ([]DayBucketRow, error)
}

type insightsRepository struct {
	db *gorm.DB
}

func NewInsightsRepository(db *gorm.DB) InsightsRepository {
	return &insightsRepository{db: db}
}

// ---------- Row helpers ----------
type MoodCountRow struct {
	Mood  string `gorm:"column:mood"`
	Count int64  `gorm:"column:count"`
}

type DayBucketRow struct {
	Bucket time.Time `gorm:"column:bucket"`
	Count  int64     `gorm:"column:count"`
}

func (r *insightsRepository) CountEntries(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbm.JournalEntry{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *insightsRepository) CountEntriesInRange(ctx context.Context, userID uuid.UUID, start, end time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbm.JournalEntry{}).
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, start.Unix(), end.Unix()).
		Count(&count).Error
	return count, err
}

func (r *insightsRepository) MoodMix(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]MoodCountRow, error) {
	var rows []MoodCountRow
	err := r.db.WithContext(ctx).
		Model(&dbm.JournalEntry{}).
		Select("mood, COUNT(*) AS count").
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, start.Unix(), end.Unix()).
		Group("mood").
		Order("count DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *insightsRepository) DailySeries(ctx context.Context, userID uuid.UUID, start, end time.Time, tz string) ([]DayBucketRow, error) {
	var rows []DayBucketRow

	query := `
        SELECT date_trunc('day', to_timestamp(created_at) AT TIME ZONE $4) AS bucket,
               COUNT(*) AS count
        FROM journal_entries
        WHERE user_id = $1
          AND created_at >= $2 AND created_at < $3
          AND deleted_at IS NULL
        GROUP BY bucket
        ORDER BY bucket ASC
    `

	err := r.db.WithContext(ctx).
		Raw(query, userID.String(), start.Unix(), end.Unix(), tz).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
