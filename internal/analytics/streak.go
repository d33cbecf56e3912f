// Package analytics derives streaks, consistency, behavioral patterns,
// predictions, and recommendations from per-day habit completion records.
// Every function is a pure computation over its inputs: missing history
// degrades to neutral results, never to an error.
package analytics

import (
	"time"

	"github.com/awender/ranklit/internal/constants"
	"github.com/awender/ranklit/internal/models"
	"github.com/awender/ranklit/internal/utils"
)

// IsSuccessful reports whether the record holds a successful outcome for the
// given day. Binary habits succeed on a stored true; quantitative habits
// succeed when a value exists and meets the target. A quantitative habit
// without a configured target can never succeed.
func IsSuccessful(record models.CompletionRecord, day time.Time) bool {
	value, ok := record.Value(utils.FormatDay(day))
	if !ok {
		return false
	}

	switch record.Kind {
	case constants.HabitKindBinary:
		return value.Done
	case constants.HabitKindQuantitative:
		if record.TargetValue == nil {
			return false
		}
		return value.Amount >= *record.TargetValue
	default:
		return false
	}
}

// CurrentStreak returns the number of consecutive successful days ending at
// from (inclusive), scanning backward day by day. The scan stops at the first
// unsuccessful or missing day, or after maxLookback days.
func CurrentStreak(record models.CompletionRecord, from time.Time, maxLookback int) int {
	streak := 0
	for i := 0; i < maxLookback; i++ {
		if !IsSuccessful(record, from.AddDate(0, 0, -i)) {
			break
		}
		streak++
	}
	return streak
}

// StreakBefore returns the streak ending the day before the given date, used
// to report the length of a streak that was just broken.
func StreakBefore(record models.CompletionRecord, date time.Time, maxLookback int) int {
	return CurrentStreak(record, date.AddDate(0, 0, -1), maxLookback)
}

// FindLastCompletedDate returns the most recent successful day strictly before
// the given date, or false if none exists within the lookback window.
func FindLastCompletedDate(record models.CompletionRecord, before time.Time, maxLookback int) (time.Time, bool) {
	for i := 1; i <= maxLookback; i++ {
		day := before.AddDate(0, 0, -i)
		if IsSuccessful(record, day) {
			return utils.Midnight(day), true
		}
	}
	return time.Time{}, false
}

// CheckMilestone returns the streak length if it is exactly a milestone
// (3, 7, 30, 100, or 365 days). Milestones fire only on the day they are
// first reached, never retroactively.
func CheckMilestone(streak int) (int, bool) {
	for _, m := range constants.Milestones {
		if streak == m {
			return m, true
		}
	}
	return 0, false
}
