package analytics

import (
	"math"
	"time"

	"github.com/awender/ranklit/internal/constants"
	"github.com/awender/ranklit/internal/models"
	"github.com/awender/ranklit/internal/utils"
)

// Weights of the composite probability model.
const (
	consistencyWeight = 0.4
	streakWeight      = 0.3
	patternWeight     = 0.2
	ageWeight         = 0.1

	// streakSaturationDays is the streak length at which the streak factor
	// reaches its maximum.
	streakSaturationDays = 21.0

	// Contextual adjustments.
	brokenStreakPenalty  = 0.8
	quantitativePenalty  = 0.95
	futureDayFalloff     = 0.95

	// Bounds of the per-weekday reweighting factor.
	weekdayFactorMin = 0.7
	weekdayFactorMax = 1.3
)

// DayPrediction is the forecast for a single future day.
type DayPrediction struct {
	Date        time.Time `json:"date"`
	Probability float64   `json:"probability"`
	Confidence  float64   `json:"confidence"`
}

// PredictionResult combines the overall success probability with per-day
// forecasts and an aggregate confidence score.
type PredictionResult struct {
	Probability float64         `json:"probability"`
	Confidence  float64         `json:"confidence"`
	Days        []DayPrediction `json:"days"`
}

// Predict derives forward-looking daily success probabilities from the
// record's recent history. createdAt is the habit's creation time; young
// habits are deliberately underweighted since there is not yet enough
// history to trust their pattern.
func Predict(record models.CompletionRecord, createdAt, now time.Time, predictionDays, analysisWindow int) PredictionResult {
	consistency := SuccessRate(record, now, analysisWindow)
	streak := CurrentStreak(record, now, constants.MaxLookbackDays)
	pattern := Analyze(record, now, constants.DefaultPatternDays)

	streakFactor := math.Min(float64(streak)/streakSaturationDays, 1.0)
	patternFactor := math.Min(pattern.Predictability, 1.0)
	age := ageFactor(createdAt, now)

	base := consistencyWeight*consistency +
		streakWeight*streakFactor +
		patternWeight*patternFactor +
		ageWeight*age

	if streak == 0 {
		base *= brokenStreakPenalty
	}
	if record.Kind == constants.HabitKindQuantitative {
		base *= quantitativePenalty
	}
	base = clamp01(base)

	successfulDays := countSuccesses(record, now, analysisWindow)
	confidence := dayConfidence(successfulDays, consistency, patternFactor)

	result := PredictionResult{
		Probability: base,
		Days:        make([]DayPrediction, 0, predictionDays),
	}

	confidenceSum := 0.0
	for offset := 1; offset <= predictionDays; offset++ {
		date := utils.Midnight(now).AddDate(0, 0, offset)
		probability := clamp01(base *
			weekdayFactor(pattern.CompletionsByWeekday, date) *
			math.Pow(futureDayFalloff, float64(offset-1)))

		result.Days = append(result.Days, DayPrediction{
			Date:        date,
			Probability: probability,
			Confidence:  confidence,
		})
		confidenceSum += confidence
	}
	if predictionDays > 0 {
		result.Confidence = confidenceSum / float64(predictionDays)
	}

	return result
}

// ageFactor underweights habits that are too young to have a trustworthy
// history. The 7/30 day thresholds here govern prediction trust and are
// intentionally unrelated to the rating decay thresholds.
func ageFactor(createdAt, now time.Time) float64 {
	ageDays := utils.DaysBetween(createdAt, now)
	switch {
	case ageDays < 7:
		return 0.7
	case ageDays < 30:
		return 0.85
	default:
		return 1.0
	}
}

// weekdayFactor mildly reweights a day by how often its weekday historically
// succeeded relative to the seven-day average, bounded to [0.7, 1.3].
func weekdayFactor(completions map[int]int, date time.Time) float64 {
	total := 0
	for _, c := range completions {
		total += c
	}
	if total == 0 {
		return 1.0
	}

	average := float64(total) / 7.0
	factor := float64(completions[utils.ISOWeekday(date)]) / average
	if factor < weekdayFactorMin {
		return weekdayFactorMin
	}
	if factor > weekdayFactorMax {
		return weekdayFactorMax
	}
	return factor
}

func dayConfidence(successfulDays int, consistency, patternFactor float64) float64 {
	consistencyTrust := 0.5
	if consistency > 0.1 {
		consistencyTrust = 1.0
	}
	return math.Min(1.0, float64(successfulDays)/30.0*consistencyTrust*patternFactor)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
