package analytics

import (
	"testing"

	"github.com/awender/ranklit/internal/constants"
	"github.com/awender/ranklit/internal/utils"
)

func TestAnalyzeEmptyRecord(t *testing.T) {
	rec := binaryRecord(t)
	result := Analyze(rec, testToday, constants.DefaultPatternDays)

	if result.Predictability != 0 {
		t.Errorf("Predictability = %v, want 0", result.Predictability)
	}
	if result.Trend != TrendStable {
		t.Errorf("Trend = %q, want stable", result.Trend)
	}
	if len(result.BestWeekdays) != 0 || len(result.WorstWeekdays) != 0 {
		t.Error("best/worst weekdays should be empty with no successes")
	}
}

func TestAnalyzeZeroDays(t *testing.T) {
	rec := binaryRecord(t, 0, 1, 2)
	result := Analyze(rec, testToday, 0)
	if result.Trend != TrendStable || len(result.WeeklyRates) != 0 {
		t.Errorf("Analyze(days=0) should be neutral, got %+v", result)
	}
}

func TestAnalyzeWeekdayBuckets(t *testing.T) {
	// testToday (2025-06-15) is a Sunday. Complete today and the two
	// preceding Sundays.
	rec := binaryRecord(t, 0, 7, 14)
	result := Analyze(rec, testToday, 28)

	if got := result.CompletionsByWeekday[7]; got != 3 {
		t.Errorf("Sunday completions = %d, want 3", got)
	}
	for wd := 1; wd <= 6; wd++ {
		if result.CompletionsByWeekday[wd] != 0 {
			t.Errorf("weekday %d completions = %d, want 0", wd, result.CompletionsByWeekday[wd])
		}
	}

	if len(result.BestWeekdays) != 1 || result.BestWeekdays[0] != 7 {
		t.Errorf("BestWeekdays = %v, want [7]", result.BestWeekdays)
	}
	// Every other weekday ties for worst with zero completions
	if len(result.WorstWeekdays) != 6 {
		t.Errorf("WorstWeekdays = %v, want the six non-Sunday weekdays", result.WorstWeekdays)
	}
}

func TestAnalyzeWeeklyRates(t *testing.T) {
	// All 7 days of the most recent week complete, older week empty
	rec := binaryRecord(t, 0, 1, 2, 3, 4, 5, 6)
	result := Analyze(rec, testToday, 14)

	if len(result.WeeklyRates) != 2 {
		t.Fatalf("expected 2 week buckets, got %d", len(result.WeeklyRates))
	}
	if result.WeeklyRates[0] != 1.0 {
		t.Errorf("recent week rate = %v, want 1.0", result.WeeklyRates[0])
	}
	if result.WeeklyRates[1] != 0.0 {
		t.Errorf("older week rate = %v, want 0.0", result.WeeklyRates[1])
	}
}

func TestAnalyzeTrendImproving(t *testing.T) {
	// Recent half full, older half empty
	days := make([]int, 0, 14)
	for i := 0; i < 14; i++ {
		days = append(days, i)
	}
	rec := binaryRecord(t, days...)
	result := Analyze(rec, testToday, 28)

	if result.Trend != TrendImproving {
		t.Errorf("Trend = %q, want improving", result.Trend)
	}
}

func TestAnalyzeTrendDeclining(t *testing.T) {
	// Older half full, recent half empty
	days := make([]int, 0, 14)
	for i := 14; i < 28; i++ {
		days = append(days, i)
	}
	rec := binaryRecord(t, days...)
	result := Analyze(rec, testToday, 28)

	if result.Trend != TrendDeclining {
		t.Errorf("Trend = %q, want declining", result.Trend)
	}
}

func TestAnalyzeTrendStableWithinBand(t *testing.T) {
	// Same rate in both halves
	rec := binaryRecord(t, 0, 7, 14, 21)
	result := Analyze(rec, testToday, 28)

	if result.Trend != TrendStable {
		t.Errorf("Trend = %q, want stable", result.Trend)
	}
}

func TestAnalyzeTrendSingleWeekStable(t *testing.T) {
	rec := binaryRecord(t, 0, 1, 2)
	result := Analyze(rec, testToday, 7)

	if result.Trend != TrendStable {
		t.Errorf("fewer than 2 week buckets must be stable, got %q", result.Trend)
	}
}

func TestAnalyzePredictabilitySteadyRhythm(t *testing.T) {
	// Every day for four weeks: perfectly even weekday spread
	days := make([]int, 0, 28)
	for i := 0; i < 28; i++ {
		days = append(days, i)
	}
	rec := binaryRecord(t, days...)
	result := Analyze(rec, testToday, 28)

	if result.Predictability != 1.0 {
		t.Errorf("Predictability = %v, want 1.0 for an even spread", result.Predictability)
	}
}

func TestAnalyzePredictabilitySingleWeekdayIsZero(t *testing.T) {
	// Only one weekday has data: below the two-weekday minimum
	rec := binaryRecord(t, 0, 7, 14)
	result := Analyze(rec, testToday, 28)

	if result.Predictability != 0 {
		t.Errorf("Predictability = %v, want 0 with a single active weekday", result.Predictability)
	}
}

func TestAnalyzePredictabilityRange(t *testing.T) {
	rec := binaryRecord(t, 0, 1, 7, 9, 15, 20)
	result := Analyze(rec, testToday, 28)

	if result.Predictability < 0 || result.Predictability > 1 {
		t.Errorf("Predictability = %v, want in [0,1]", result.Predictability)
	}
}

func TestAnalyzeIdempotent(t *testing.T) {
	rec := binaryRecord(t, 0, 1, 3, 8, 9, 12)
	first := Analyze(rec, testToday, constants.DefaultPatternDays)
	second := Analyze(rec, testToday, constants.DefaultPatternDays)

	if first.Trend != second.Trend || first.Predictability != second.Predictability {
		t.Error("Analyze is not idempotent for identical inputs")
	}
	if utils.FormatDay(testToday) != "2025-06-15" {
		t.Fatal("test reference date changed; weekday assumptions no longer hold")
	}
}
