package response_models

import "time"

type TimeRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type MoodMixRow struct {
	Mood  string `json:"mood"`
	Count int64  `json:"count"`
}

type DailyCountRow struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int64  `json:"count"`
}

type InsightsReport struct {
	Range          TimeRange       `json:"range"`
	TotalEntries   int64           `json:"total_entries"`
	EntriesInRange int64           `json:"entries_in_range"`
	MoodMix        []MoodMixRow    `json:"mood_mix"`
	DailySeries    []DailyCountRow `json:"daily_series"`
}
