package analytics

import (
	"fmt"
	"strings"
	"time"

	"github.com/awender/ranklit/internal/constants"
	"github.com/awender/ranklit/internal/models"
	"github.com/awender/ranklit/internal/utils"
)

// Category identifies the kind of advice a recommendation carries.
type Category string

// Priority ranks how urgently a recommendation should be surfaced.
type Priority string

const (
	CategoryRegularity  Category = "regularity"
	CategoryWeekday     Category = "weekday"
	CategoryMotivation  Category = "motivation"
	CategoryRestart     Category = "restart"
	CategoryMaintenance Category = "maintenance"
	CategoryTarget      Category = "target"

	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Recommendation is a structured advisory produced from the other engines'
// outputs. Presentation formatting is left to the caller.
type Recommendation struct {
	Category Category `json:"category"`
	Priority Priority `json:"priority"`
	Title    string   `json:"title"`
	Body     string   `json:"body"`
	Actions  []string `json:"actions"`
}

// lowConsistencyThreshold is the success rate below which regularity advice fires.
const lowConsistencyThreshold = 0.5

// targetDriftFactor is how far the recent average must exceed the target
// before suggesting a raise.
const targetDriftFactor = 1.2

// Recommend evaluates the rule table against a record. Rules are independent
// and evaluated in a stable order (consistency, worst weekday, trend, streak
// state, target drift); several may fire for the same record. Inputs are
// never mutated.
func Recommend(record models.CompletionRecord, now time.Time) []Recommendation {
	rate := SuccessRate(record, now, constants.DefaultAnalysisWindow)
	pattern := Analyze(record, now, constants.DefaultPatternDays)
	streak := CurrentStreak(record, now, constants.MaxLookbackDays)

	var recs []Recommendation

	if rate < lowConsistencyThreshold {
		recs = append(recs, Recommendation{
			Category: CategoryRegularity,
			Priority: PriorityHigh,
			Title:    "Improve regularity",
			Body:     fmt.Sprintf("You completed this habit on %.0f%% of the last %d days.", rate*100, constants.DefaultAnalysisWindow),
			Actions: []string{
				"Pick a fixed time of day and attach the habit to it",
				"Shrink the habit until a day is never skipped for lack of time",
			},
		})
	}

	if len(pattern.WorstWeekdays) > 0 && len(pattern.WorstWeekdays) < 7 {
		names := weekdayNames(pattern.WorstWeekdays)
		recs = append(recs, Recommendation{
			Category: CategoryWeekday,
			Priority: PriorityMedium,
			Title:    fmt.Sprintf("Plan for %s", names),
			Body:     fmt.Sprintf("%s is where this habit slips most often.", names),
			Actions: []string{
				fmt.Sprintf("Prepare the habit the evening before %s", names),
				"Set a reminder for your weakest days",
			},
		})
	}

	if pattern.Trend == TrendDeclining {
		recs = append(recs, Recommendation{
			Category: CategoryMotivation,
			Priority: PriorityHigh,
			Title:    "Momentum is fading",
			Body:     "Your completion rate has dropped over the recent weeks.",
			Actions: []string{
				"Revisit why you started this habit",
				"Lower the bar temporarily to rebuild the rhythm",
			},
		})
	}

	switch {
	case streak == 0:
		recs = append(recs, Recommendation{
			Category: CategoryRestart,
			Priority: PriorityHigh,
			Title:    "Restart today",
			Body:     "The streak is broken; the fastest fix is a single completed day.",
			Actions: []string{
				"Complete the habit today, even minimally",
				"Treat the restart as day one, not as a failure",
			},
		})
	case streak >= int(streakSaturationDays):
		recs = append(recs, Recommendation{
			Category: CategoryMaintenance,
			Priority: PriorityLow,
			Title:    fmt.Sprintf("%d days and counting", streak),
			Body:     "This habit looks established. Protect it rather than push it.",
			Actions: []string{
				"Keep the routine unchanged on difficult days",
				"Consider pairing a new habit with this one",
			},
		})
	}

	if rec, ok := targetDrift(record, now); ok {
		recs = append(recs, rec)
	}

	return recs
}

// targetDrift fires for quantitative habits whose recent average comfortably
// exceeds the configured target.
func targetDrift(record models.CompletionRecord, now time.Time) (Recommendation, bool) {
	if record.Kind != constants.HabitKindQuantitative || record.TargetValue == nil {
		return Recommendation{}, false
	}

	sum := 0.0
	count := 0
	for i := 0; i < 7; i++ {
		if v, ok := record.Value(utils.FormatDay(now.AddDate(0, 0, -i))); ok {
			sum += v.Amount
			count++
		}
	}
	if count == 0 {
		return Recommendation{}, false
	}

	average := sum / float64(count)
	target := *record.TargetValue
	if average <= target*targetDriftFactor {
		return Recommendation{}, false
	}

	return Recommendation{
		Category: CategoryTarget,
		Priority: PriorityLow,
		Title:    "Raise the target",
		Body:     fmt.Sprintf("Your 7-day average of %.1f is well above the target of %.1f.", average, target),
		Actions: []string{
			fmt.Sprintf("Raise the target toward %.1f", average),
			"Increase gradually so the habit stays sustainable",
		},
	}, true
}

func weekdayNames(isoWeekdays []int) string {
	names := make([]string, 0, len(isoWeekdays))
	for _, wd := range isoWeekdays {
		names = append(names, utils.WeekdayName(wd))
	}
	return strings.Join(names, ", ")
}
