package services

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 10, 30, 0, 0, time.UTC)
}

func TestComputeStreaks_ConsecutiveDays(t *testing.T) {
	entries := []time.Time{
		day(2024, 1, 1),
		day(2024, 1, 2),
		day(2024, 1, 3),
	}

	res := ComputeStreaks(entries, day(2024, 1, 3))

	if res.Current != 3 {
		t.Errorf("expected current=3, got %d", res.Current)
	}
	if res.Best != 3 {
		t.Errorf("expected best=3, got %d", res.Best)
	}
	if res.LastEntryDate == nil || res.LastEntryDate.Format("2006-01-02") != "2024-01-03" {
		t.Errorf("expected lastEntryDate=2024-01-03, got %v", res.LastEntryDate)
	}
}

func TestComputeStreaks_GapResetsCurrent(t *testing.T) {
	entries := []time.Time{
		day(2024, 1, 1),
		day(2024, 1, 2),
		day(2024, 1, 3),
		day(2024, 1, 10),
	}

	res := ComputeStreaks(entries, day(2024, 1, 10))

	if res.Best != 3 {
		t.Errorf("expected best=3 (first run), got %d", res.Best)
	}
	if res.Current != 1 {
		t.Errorf("expected current=1 (today only), got %d", res.Current)
	}
}

func TestComputeStreaks_DuplicateSameDayCountsOnce(t *testing.T) {
	entries := []time.Time{
		day(2024, 1, 1),
		time.Date(2024, 1, 1, 22, 15, 0, 0, time.UTC),
	}

	res := ComputeStreaks(entries, day(2024, 1, 1))

	if res.Current != 1 || res.Best != 1 {
		t.Errorf("expected current=1 best=1 after de-duplication, got current=%d best=%d", res.Current, res.Best)
	}
}

func TestComputeStreaks_Empty(t *testing.T) {
	res := ComputeStreaks(nil, day(2024, 1, 1))

	if res.Current != 0 || res.Best != 0 {
		t.Errorf("expected zeros for empty history, got current=%d best=%d", res.Current, res.Best)
	}
	if res.LastEntryDate != nil {
		t.Errorf("expected nil lastEntryDate, got %v", res.LastEntryDate)
	}
}

func TestComputeStreaks_YesterdayKeepsStreakAlive(t *testing.T) {
	entries := []time.Time{
		day(2024, 1, 1),
		day(2024, 1, 2),
	}

	res := ComputeStreaks(entries, day(2024, 1, 3))

	if res.Current != 2 {
		t.Errorf("expected current=2 with last entry yesterday, got %d", res.Current)
	}
}

func TestComputeStreaks_StaleHistoryZeroesCurrent(t *testing.T) {
	entries := []time.Time{
		day(2024, 1, 1),
		day(2024, 1, 2),
	}

	res := ComputeStreaks(entries, day(2024, 1, 5))

	if res.Current != 0 {
		t.Errorf("expected current=0 when newest entry is older than yesterday, got %d", res.Current)
	}
	if res.Best != 2 {
		t.Errorf("expected best=2 kept from history, got %d", res.Best)
	}
	if res.LastEntryDate == nil || res.LastEntryDate.Format("2006-01-02") != "2024-01-02" {
		t.Errorf("expected lastEntryDate=2024-01-02, got %v", res.LastEntryDate)
	}
}

func TestComputeStreaks_SameDayEntryNeverChangesStreaks(t *testing.T) {
	entries := []time.Time{
		day(2024, 3, 1),
		day(2024, 3, 2),
		day(2024, 3, 5),
		day(2024, 3, 6),
	}
	today := day(2024, 3, 6)

	before := ComputeStreaks(entries, today)
	after := ComputeStreaks(append(entries, time.Date(2024, 3, 6, 23, 0, 0, 0, time.UTC)), today)

	if before.Current != after.Current || before.Best != after.Best {
		t.Errorf("same-day entry changed streaks: before=%+v after=%+v", before, after)
	}
}

func TestComputeStreaks_CurrentNeverExceedsBest(t *testing.T) {
	histories := [][]time.Time{
		{day(2024, 1, 1)},
		{day(2024, 1, 1), day(2024, 1, 2), day(2024, 1, 4)},
		{day(2024, 1, 1), day(2024, 1, 3), day(2024, 1, 4), day(2024, 1, 5)},
		{day(2023, 12, 30), day(2023, 12, 31), day(2024, 1, 1)},
		{day(2024, 1, 2), day(2024, 1, 2), day(2024, 1, 3)},
	}

	for i, h := range histories {
		res := ComputeStreaks(h, day(2024, 1, 5))
		if res.Current > res.Best {
			t.Errorf("history %d: current=%d exceeds best=%d", i, res.Current, res.Best)
		}
	}
}

func TestComputeStreaks_RunsAcrossMonthBoundary(t *testing.T) {
	entries := []time.Time{
		day(2024, 1, 30),
		day(2024, 1, 31),
		day(2024, 2, 1),
	}

	res := ComputeStreaks(entries, day(2024, 2, 1))

	if res.Current != 3 || res.Best != 3 {
		t.Errorf("expected 3-day streak across month boundary, got current=%d best=%d", res.Current, res.Best)
	}
}
