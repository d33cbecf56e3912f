package analytics

import (
	"time"

	"github.com/awender/ranklit/internal/models"
	"github.com/awender/ranklit/internal/utils"
)

// Trend describes the week-over-week direction of a habit.
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendDeclining Trend = "declining"
	TrendStable    Trend = "stable"
)

// trendBand is the minimum week-over-week rate difference considered a real
// movement rather than noise.
const trendBand = 0.1

// PatternResult holds the day-of-week and week-over-week analysis of a record.
type PatternResult struct {
	CompletionsByWeekday map[int]int `json:"completions_by_weekday"` // ISO weekday (1=Mon..7=Sun) -> successes
	WeeklyRates          []float64   `json:"weekly_rates"`           // successes/7 per week bucket, most recent first
	BestWeekdays         []int       `json:"best_weekdays"`          // weekday(s) with the most completions
	WorstWeekdays        []int       `json:"worst_weekdays"`         // weekday(s) with the fewest completions
	Trend                Trend       `json:"trend"`
	Predictability       float64     `json:"predictability"` // [0,1], higher means a steadier weekday rhythm
}

// Analyze buckets the last `days` days of the record by ISO weekday and by
// week index. Week buckets near the window boundary may cover fewer than
// seven days; their rates are left uncorrected to keep the bucketing O(days).
func Analyze(record models.CompletionRecord, from time.Time, days int) PatternResult {
	result := PatternResult{
		CompletionsByWeekday: make(map[int]int),
		Trend:                TrendStable,
	}
	if days <= 0 {
		return result
	}

	weekCount := (days + 6) / 7
	weekSuccesses := make([]int, weekCount)
	total := 0

	for i := 0; i < days; i++ {
		day := from.AddDate(0, 0, -i)
		if !IsSuccessful(record, day) {
			continue
		}
		result.CompletionsByWeekday[utils.ISOWeekday(day)]++
		weekSuccesses[i/7]++
		total++
	}

	result.WeeklyRates = make([]float64, weekCount)
	for w, successes := range weekSuccesses {
		result.WeeklyRates[w] = float64(successes) / 7.0
	}

	if total > 0 {
		result.BestWeekdays, result.WorstWeekdays = rankWeekdays(result.CompletionsByWeekday)
	}
	result.Trend = weeklyTrend(result.WeeklyRates)
	result.Predictability = predictability(result.CompletionsByWeekday)

	return result
}

// rankWeekdays returns the weekdays with the maximum and minimum completion
// counts. All seven weekdays participate, so a never-completed weekday counts
// as zero.
func rankWeekdays(completions map[int]int) (best, worst []int) {
	maxCount := 0
	minCount := -1
	for wd := 1; wd <= 7; wd++ {
		c := completions[wd]
		if c > maxCount {
			maxCount = c
		}
		if minCount < 0 || c < minCount {
			minCount = c
		}
	}
	for wd := 1; wd <= 7; wd++ {
		c := completions[wd]
		if c == maxCount {
			best = append(best, wd)
		}
		if c == minCount {
			worst = append(worst, wd)
		}
	}
	return best, worst
}

// weeklyTrend compares the mean rate of the more recent half of week buckets
// against the older half. Fewer than two buckets is always stable.
func weeklyTrend(rates []float64) Trend {
	if len(rates) < 2 {
		return TrendStable
	}

	half := len(rates) / 2
	recent := mean(rates[:half])
	older := mean(rates[half:])

	diff := recent - older
	switch {
	case diff > trendBand:
		return TrendImproving
	case diff < -trendBand:
		return TrendDeclining
	default:
		return TrendStable
	}
}

// predictability scores how evenly completions spread across weekdays, derived
// from the inverse of the mean-normalized variance of weekday counts. A habit
// done the same way every week scores near 1; scattered completions score low.
// Fewer than two weekdays with data yields 0.
func predictability(completions map[int]int) float64 {
	active := 0
	for wd := 1; wd <= 7; wd++ {
		if completions[wd] > 0 {
			active++
		}
	}
	if active < 2 {
		return 0
	}

	counts := make([]float64, 7)
	for wd := 1; wd <= 7; wd++ {
		counts[wd-1] = float64(completions[wd])
	}

	m := mean(counts)
	if m == 0 {
		return 0
	}
	variance := 0.0
	for _, c := range counts {
		variance += (c - m) * (c - m)
	}
	variance /= float64(len(counts))

	// Normalize by the squared mean so the score is independent of how many
	// weeks the window covers.
	normalized := variance / (m * m)
	return 1.0 / (1.0 + normalized)
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
