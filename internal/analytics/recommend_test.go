package analytics

import (
	"testing"
)

func categories(recs []Recommendation) []Category {
	out := make([]Category, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.Category)
	}
	return out
}

func hasCategory(recs []Recommendation, c Category) bool {
	for _, r := range recs {
		if r.Category == c {
			return true
		}
	}
	return false
}

func TestRecommendEmptyRecord(t *testing.T) {
	rec := binaryRecord(t)
	recs := Recommend(rec, testToday)

	if !hasCategory(recs, CategoryRegularity) {
		t.Error("empty record should trigger regularity advice")
	}
	if !hasCategory(recs, CategoryRestart) {
		t.Error("zero streak should trigger restart advice")
	}
	if hasCategory(recs, CategoryWeekday) {
		t.Error("no successes means no worst-weekday advice")
	}
	if hasCategory(recs, CategoryTarget) {
		t.Error("binary habit must not get target advice")
	}
}

func TestRecommendEstablishedHabit(t *testing.T) {
	days := make([]int, 0, 40)
	for i := 0; i < 40; i++ {
		days = append(days, i)
	}
	rec := binaryRecord(t, days...)
	recs := Recommend(rec, testToday)

	if hasCategory(recs, CategoryRegularity) {
		t.Errorf("high consistency should not trigger regularity advice: %v", categories(recs))
	}
	if hasCategory(recs, CategoryRestart) {
		t.Error("long streak should not trigger restart advice")
	}
	if !hasCategory(recs, CategoryMaintenance) {
		t.Error("streak >= 21 should trigger maintenance advice")
	}
}

func TestRecommendWorstWeekday(t *testing.T) {
	// Complete every day except Saturdays across four weeks
	var days []int
	for i := 0; i < 28; i++ {
		day := testToday.AddDate(0, 0, -i)
		if day.Weekday().String() == "Saturday" {
			continue
		}
		days = append(days, i)
	}
	rec := binaryRecord(t, days...)
	recs := Recommend(rec, testToday)

	if !hasCategory(recs, CategoryWeekday) {
		t.Errorf("skipped Saturdays should trigger weekday advice: %v", categories(recs))
	}
	for _, r := range recs {
		if r.Category == CategoryWeekday {
			if r.Priority != PriorityMedium {
				t.Errorf("weekday advice priority = %q, want medium", r.Priority)
			}
			if len(r.Actions) == 0 {
				t.Error("weekday advice should carry action items")
			}
		}
	}
}

func TestRecommendDecliningTrend(t *testing.T) {
	// Older weeks full, recent weeks empty inside the 60-day pattern window,
	// so the trend reads as declining.
	var days []int
	for i := 30; i < 60; i++ {
		days = append(days, i)
	}
	rec := binaryRecord(t, days...)
	recs := Recommend(rec, testToday)

	if !hasCategory(recs, CategoryMotivation) {
		t.Errorf("declining trend should trigger motivation advice: %v", categories(recs))
	}
}

func TestRecommendTargetDrift(t *testing.T) {
	// 7-day average of 15 against a target of 10 exceeds the 1.2x drift bound
	amounts := make(map[int]float64)
	for i := 0; i < 30; i++ {
		amounts[i] = 15
	}
	rec := quantitativeRecord(t, floatPtr(10), amounts)
	recs := Recommend(rec, testToday)

	if !hasCategory(recs, CategoryTarget) {
		t.Errorf("drifted average should trigger target advice: %v", categories(recs))
	}
	for _, r := range recs {
		if r.Category == CategoryTarget && r.Priority != PriorityLow {
			t.Errorf("target advice priority = %q, want low", r.Priority)
		}
	}
}

func TestRecommendNoTargetDriftWithinBound(t *testing.T) {
	amounts := make(map[int]float64)
	for i := 0; i < 14; i++ {
		amounts[i] = 11 // above target but within the 1.2x bound
	}
	rec := quantitativeRecord(t, floatPtr(10), amounts)
	recs := Recommend(rec, testToday)

	if hasCategory(recs, CategoryTarget) {
		t.Error("average within the drift bound must not trigger target advice")
	}
}

func TestRecommendStableOrder(t *testing.T) {
	rec := binaryRecord(t)
	first := Recommend(rec, testToday)
	second := Recommend(rec, testToday)

	if len(first) != len(second) {
		t.Fatalf("recommendation count changed between calls: %d != %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Category != second[i].Category {
			t.Errorf("recommendation order not stable at index %d", i)
		}
	}

	// Consistency advice always precedes streak-state advice when both fire
	regularityIdx, restartIdx := -1, -1
	for i, r := range first {
		switch r.Category {
		case CategoryRegularity:
			regularityIdx = i
		case CategoryRestart:
			restartIdx = i
		}
	}
	if regularityIdx < 0 || restartIdx < 0 || regularityIdx > restartIdx {
		t.Errorf("rule evaluation order violated: regularity=%d restart=%d", regularityIdx, restartIdx)
	}
}

func TestRecommendDoesNotMutateRecord(t *testing.T) {
	rec := binaryRecord(t, 0, 1, 2)
	before := len(rec.Days)
	_ = Recommend(rec, testToday)
	if len(rec.Days) != before {
		t.Error("Recommend must not mutate its input record")
	}
}
