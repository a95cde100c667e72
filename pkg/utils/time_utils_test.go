package utils

import (
	"testing"
	"time"
)

func TestEpochDayDeltas(t *testing.T) {
	base := time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)

	if got := EpochDay(base.AddDate(0, 0, 1)) - EpochDay(base); got != 1 {
		t.Errorf("expected adjacent days to differ by 1, got %d", got)
	}
	if got := EpochDay(base.Add(2 * time.Hour)); got != EpochDay(base) {
		t.Errorf("same calendar day must map to the same epoch day, got %d vs %d", got, EpochDay(base))
	}

	// DST transitions change wall-clock durations but never day deltas.
	before := time.Date(2025, 3, 8, 12, 0, 0, 0, time.UTC)
	after := time.Date(2025, 3, 9, 12, 0, 0, 0, time.UTC)
	if got := EpochDay(after) - EpochDay(before); got != 1 {
		t.Errorf("expected day delta 1 across DST weekend, got %d", got)
	}
}

func TestEpochDayDateRoundtrip(t *testing.T) {
	at := time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC)
	day := EpochDay(at)
	back := EpochDayDate(day)

	if EpochDay(back) != day {
		t.Errorf("roundtrip changed the day: %d vs %d", EpochDay(back), day)
	}
	if back.Hour() != 0 || back.Minute() != 0 || back.Second() != 0 {
		t.Errorf("expected midnight, got %v", back)
	}
}

func TestTruncateToDate(t *testing.T) {
	at := time.Date(2025, 6, 15, 18, 45, 12, 0, time.UTC)
	got := TruncateToDate(at)
	y, m, d := got.Date()
	if y != 2025 || m != time.June || d != 15 {
		t.Errorf("unexpected date %v", got)
	}
	if got.Hour() != 0 || got.Minute() != 0 {
		t.Errorf("time component not dropped: %v", got)
	}
}

func TestSameYearMonth(t *testing.T) {
	a := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	b := time.Date(2025, 2, 28, 23, 59, 0, 0, time.UTC)
	c := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	d := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)

	if !SameYearMonth(a, b) {
		t.Error("first and last day of month should match")
	}
	if SameYearMonth(b, c) {
		t.Error("adjacent months must not match")
	}
	if SameYearMonth(a, d) {
		t.Error("same month in different years must not match")
	}
}

func TestFromUnixSeconds(t *testing.T) {
	if got := FromUnixSeconds(0); !got.IsZero() {
		t.Errorf("expected zero time for 0, got %v", got)
	}
	at := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	if got := FromUnixSeconds(at.Unix()); !got.Equal(at) {
		t.Errorf("expected %v, got %v", at, got)
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate(time.Time{}); got != "" {
		t.Errorf("expected empty string for zero time, got %q", got)
	}
	at := time.Date(2025, 7, 4, 10, 0, 0, 0, time.UTC)
	if got := FormatDate(at); got != "2025-07-04" {
		t.Errorf("expected 2025-07-04, got %q", got)
	}
}
