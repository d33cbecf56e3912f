package analytics

import (
	"math"
	"testing"

	"github.com/awender/ranklit/internal/constants"
)

func TestPredictEmptyRecord(t *testing.T) {
	rec := binaryRecord(t)
	createdAt := testToday.AddDate(0, 0, -90)

	result := Predict(rec, createdAt, testToday, constants.DefaultPredictionDays, constants.DefaultAnalysisWindow)

	// No history: only the age weight survives, scaled by the broken-streak
	// penalty: 0.1 * 1.0 * 0.8
	want := 0.1 * 0.8
	if math.Abs(result.Probability-want) > 1e-12 {
		t.Errorf("Probability = %v, want %v", result.Probability, want)
	}
	if result.Confidence != 0 {
		t.Errorf("Confidence = %v, want 0 with no history", result.Confidence)
	}
	if len(result.Days) != constants.DefaultPredictionDays {
		t.Errorf("got %d day predictions, want %d", len(result.Days), constants.DefaultPredictionDays)
	}
}

func TestPredictProbabilityBounds(t *testing.T) {
	days := make([]int, 0, 60)
	for i := 0; i < 60; i++ {
		days = append(days, i)
	}
	rec := binaryRecord(t, days...)
	createdAt := testToday.AddDate(0, 0, -120)

	result := Predict(rec, createdAt, testToday, 14, constants.DefaultAnalysisWindow)

	if result.Probability < 0 || result.Probability > 1 {
		t.Errorf("Probability = %v, want in [0,1]", result.Probability)
	}
	if result.Confidence < 0 || result.Confidence > 1 {
		t.Errorf("Confidence = %v, want in [0,1]", result.Confidence)
	}
	for _, d := range result.Days {
		if d.Probability < 0 || d.Probability > 1 {
			t.Errorf("day %v probability = %v, want in [0,1]", d.Date, d.Probability)
		}
	}
}

func TestPredictPerfectHistoryIsConfident(t *testing.T) {
	days := make([]int, 0, 60)
	for i := 0; i < 60; i++ {
		days = append(days, i)
	}
	rec := binaryRecord(t, days...)
	createdAt := testToday.AddDate(0, 0, -120)

	result := Predict(rec, createdAt, testToday, 7, 30)

	// consistency=1, streak saturated, predictability near 1 (the 60-day
	// pattern window is not an exact number of weeks), mature habit
	if result.Probability < 0.99 {
		t.Errorf("Probability = %v, want near 1.0 for a perfect mature habit", result.Probability)
	}
	if result.Confidence < 0.99 {
		t.Errorf("Confidence = %v, want near 1.0", result.Confidence)
	}
}

func TestPredictBrokenStreakPenalty(t *testing.T) {
	// History exists but today is missing, so the streak is 0
	rec := binaryRecord(t, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
	createdAt := testToday.AddDate(0, 0, -120)

	withBreak := Predict(rec, createdAt, testToday, 7, 30)

	// Same history plus today completed
	recIntact := binaryRecord(t, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
	intact := Predict(recIntact, createdAt, testToday, 7, 30)

	if withBreak.Probability >= intact.Probability {
		t.Errorf("broken streak should lower the probability: %v >= %v", withBreak.Probability, intact.Probability)
	}
}

func TestPredictYoungHabitUnderweighted(t *testing.T) {
	days := []int{0, 1, 2, 3, 4}
	rec := binaryRecord(t, days...)

	young := Predict(rec, testToday.AddDate(0, 0, -3), testToday, 7, 30)
	mid := Predict(rec, testToday.AddDate(0, 0, -20), testToday, 7, 30)
	mature := Predict(rec, testToday.AddDate(0, 0, -90), testToday, 7, 30)

	if !(young.Probability < mid.Probability && mid.Probability < mature.Probability) {
		t.Errorf("age factor ordering violated: young=%v mid=%v mature=%v",
			young.Probability, mid.Probability, mature.Probability)
	}
}

func TestPredictQuantitativePenalty(t *testing.T) {
	amounts := make(map[int]float64)
	for i := 0; i < 30; i++ {
		amounts[i] = 15
	}
	quant := quantitativeRecord(t, floatPtr(10), amounts)
	binary := binaryRecord(t, intRange(0, 30)...)
	createdAt := testToday.AddDate(0, 0, -120)

	qResult := Predict(quant, createdAt, testToday, 7, 30)
	bResult := Predict(binary, createdAt, testToday, 7, 30)

	if qResult.Probability >= bResult.Probability {
		t.Errorf("quantitative penalty missing: %v >= %v", qResult.Probability, bResult.Probability)
	}
}

func TestPredictFutureDaysDecay(t *testing.T) {
	// Complete exactly eight full weeks so every weekday count matches and
	// the weekday factor is uniform; later days must then carry strictly
	// lower probabilities than earlier ones.
	rec := binaryRecord(t, intRange(0, 56)...)
	createdAt := testToday.AddDate(0, 0, -120)

	result := Predict(rec, createdAt, testToday, 7, 30)
	for i := 1; i < len(result.Days); i++ {
		if result.Days[i].Probability >= result.Days[i-1].Probability {
			t.Errorf("day %d probability %v should be below day %d probability %v",
				i, result.Days[i].Probability, i-1, result.Days[i-1].Probability)
		}
	}

	// Day dates advance one calendar day at a time from the reference date
	for i, d := range result.Days {
		want := testToday.AddDate(0, 0, i+1)
		if d.Date.Year() != want.Year() || d.Date.YearDay() != want.YearDay() {
			t.Errorf("day %d date = %v, want %v", i, d.Date, want)
		}
	}
}

func TestPredictIdempotent(t *testing.T) {
	rec := binaryRecord(t, 0, 1, 3, 5, 8, 13)
	createdAt := testToday.AddDate(0, 0, -45)

	first := Predict(rec, createdAt, testToday, 7, 30)
	second := Predict(rec, createdAt, testToday, 7, 30)

	if first.Probability != second.Probability || first.Confidence != second.Confidence {
		t.Error("Predict is not idempotent for identical inputs")
	}
	for i := range first.Days {
		if first.Days[i] != second.Days[i] {
			t.Errorf("day %d differs between identical calls", i)
		}
	}
}

func TestPredictZeroPredictionDays(t *testing.T) {
	rec := binaryRecord(t, 0, 1, 2)
	result := Predict(rec, testToday.AddDate(0, 0, -60), testToday, 0, 30)

	if len(result.Days) != 0 {
		t.Errorf("expected no day predictions, got %d", len(result.Days))
	}
	if result.Confidence != 0 {
		t.Errorf("Confidence = %v, want 0 with no prediction days", result.Confidence)
	}
}

func intRange(from, to int) []int {
	out := make([]int, 0, to-from)
	for i := from; i < to; i++ {
		out = append(out, i)
	}
	return out
}
