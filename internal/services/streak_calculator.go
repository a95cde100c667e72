package services

import (
	"sort"
	"time"

	"solace/pkg/utils"
)

// StreakResult is the output of one streak computation over a user's full
// entry history.
type StreakResult struct {
	Current       int
	Best          int
	LastEntryDate *time.Time // midnight in the reference timezone, nil when there are no entries
}

// ComputeStreaks derives the current and best runs of consecutive calendar
// days from raw entry timestamps. Pure function: callers pass "today"
// explicitly. Multiple entries on the same day count once; a streak stays
// alive if the newest entry is today or yesterday; gaps of two or more days
// always break it.
//
// All date arithmetic happens on whole-day integers (utils.EpochDay) in the
// reference timezone, never on time.Duration values.
func ComputeStreaks(entryTimes []time.Time, today time.Time) StreakResult {
	seen := make(map[int64]struct{}, len(entryTimes))
	days := make([]int64, 0, len(entryTimes))
	for _, t := range entryTimes {
		d := utils.EpochDay(t)
		if _, ok := seen[d]; !ok {
			seen[d] = struct{}{}
			days = append(days, d)
		}
	}

	if len(days) == 0 {
		return StreakResult{}
	}

	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })

	// Best: single ascending walk. After de-duplication the delta between
	// neighbours is always >= 1.
	best := 1
	run := 1
	for i := 1; i < len(days); i++ {
		if days[i]-days[i-1] == 1 {
			run++
		} else {
			run = 1
		}
		if run > best {
			best = run
		}
	}

	// Current: walk backwards from the newest day. Zero when the newest entry
	// is older than yesterday.
	last := days[len(days)-1]
	todayDay := utils.EpochDay(today)

	current := 0
	if last >= todayDay-1 {
		current = 1
		for i := len(days) - 2; i >= 0; i-- {
			if days[i+1]-days[i] != 1 {
				break
			}
			current++
		}
	}

	lastDate := utils.EpochDayDate(last)
	return StreakResult{
		Current:       current,
		Best:          best,
		LastEntryDate: &lastDate,
	}
}
