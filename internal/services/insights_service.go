package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	resp "solace/internal/models/response_models"
	"solace/internal/repositories"
	"solace/pkg/utils"
)

type InsightsServiceInterface interface {
	BuildInsights(ctx context.Context, userID uuid.UUID, rng resp.TimeRange) (*resp.InsightsReport, error)
}

type insightsService struct {
	repo repositories.InsightsRepository
}

func NewInsightsService(repo repositories.InsightsRepository) InsightsServiceInterface {
	return &insightsService{repo: repo}
}

// normalizeRange ensures sane defaults and ordering
func normalizeRange(r resp.TimeRange) resp.TimeRange {
	out := r
	if out.End.IsZero() {
		out.End = time.Now().In(utils.RefLocation())
	}
	if out.Start.IsZero() {
		out.Start = out.End.AddDate(0, 0, -30) // last 30 days default
	}
	if out.Start.After(out.End) {
		out.Start, out.End = out.End, out.Start
	}
	return out
}

func (s *insightsService) BuildInsights(ctx context.Context, userID uuid.UUID, rng resp.TimeRange) (*resp.InsightsReport, error) {
	rng = normalizeRange(rng)

	total, err := s.repo.CountEntries(ctx, userID)
	if err != nil {
		return nil, err
	}

	inRange, err := s.repo.CountEntriesInRange(ctx, userID, rng.Start, rng.End)
	if err != nil {
		return nil, err
	}

	moodRows, err := s.repo.MoodMix(ctx, userID, rng.Start, rng.End)
	if err != nil {
		return nil, err
	}

	dayRows, err := s.repo.DailySeries(ctx, userID, rng.Start, rng.End, utils.RefLocation().String())
	if err != nil {
		return nil, err
	}

	report := &resp.InsightsReport{
		Range:          rng,
		TotalEntries:   total,
		EntriesInRange: inRange,
		MoodMix:        make([]resp.MoodMixRow, 0, len(moodRows)),
		DailySeries:    make([]resp.DailyCountRow, 0, len(dayRows)),
	}
	for _, row := range moodRows {
		report.MoodMix = append(report.MoodMix, resp.MoodMixRow{Mood: row.Mood, Count: row.Count})
	}
	for _, row := range dayRows {
		report.DailySeries = append(report.DailySeries, resp.DailyCountRow{
			Date:  row.Bucket.Format("2006-01-02"),
			Count: row.Count,
		})
	}
	return report, nil
}
