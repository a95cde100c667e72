package utils

import (
	"os"
	"time"
)

// Reference timezone for all calendar-date semantics (streaks, monthly counts).
// Every entry timestamp is bucketed into a calendar day in this zone; streak math
// then runs on whole-day integers only.
var refLoc = func() *time.Location {
	if tz := os.Getenv("REFERENCE_TZ"); tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}
	return time.UTC
}()

func RefLocation() *time.Location { return refLoc }

func NowUnixSeconds() int64 { return time.Now().Unix() }

// EpochDay returns the number of whole days between the Unix epoch and t's
// calendar date in the reference timezone. Date differences across the engine
// are computed as deltas of these integers, never as time.Duration values.
func EpochDay(t time.Time) int64 {
	y, m, d := t.In(refLoc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400
}

// EpochDayDate is the inverse of EpochDay: midnight of the given day in the
// reference timezone.
func EpochDayDate(day int64) time.Time {
	utc := time.Unix(day*86400, 0).UTC()
	return time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, refLoc)
}

// TruncateToDate drops the time-of-day component in the reference timezone.
func TruncateToDate(t time.Time) time.Time {
	y, m, d := t.In(refLoc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, refLoc)
}

// SameYearMonth reports whether both times fall in the same calendar month of
// the same year in the reference timezone.
func SameYearMonth(a, b time.Time) bool {
	ay, am, _ := a.In(refLoc).Date()
	by, bm, _ := b.In(refLoc).Date()
	return ay == by && am == bm
}

func FromUnixSeconds(t int64) time.Time {
	if t <= 0 {
		return time.Time{}
	}
	return time.Unix(t, 0).In(refLoc)
}

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(refLoc).Format("2006-01-02")
}
