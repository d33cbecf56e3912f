package analytics

import (
	"math"
	"testing"

	"github.com/awender/ranklit/internal/constants"
)

func TestSuccessRateHalfWindow(t *testing.T) {
	// 10 successful days inside a 20-day window
	days := make([]int, 0, 10)
	for i := 0; i < 10; i++ {
		days = append(days, i*2)
	}
	rec := binaryRecord(t, days...)

	if got := SuccessRate(rec, testToday, 20); got != 0.5 {
		t.Errorf("SuccessRate() = %v, want exactly 0.5", got)
	}
}

func TestSuccessRateZeroWindow(t *testing.T) {
	rec := binaryRecord(t, 0, 1, 2)
	if got := SuccessRate(rec, testToday, 0); got != 0 {
		t.Errorf("SuccessRate(days=0) = %v, want 0", got)
	}
	if got := SuccessRate(rec, testToday, -5); got != 0 {
		t.Errorf("SuccessRate(days<0) = %v, want 0", got)
	}
}

func TestSuccessRateEmptyRecord(t *testing.T) {
	rec := binaryRecord(t)
	if got := SuccessRate(rec, testToday, 30); got != 0 {
		t.Errorf("SuccessRate(empty) = %v, want 0", got)
	}
}

func TestSuccessRateQuantitativeScenario(t *testing.T) {
	// target=10, last 7 days = [12,8,15,10,9,11,14]: 5 of 7 meet the target
	amounts := map[int]float64{0: 12, 1: 8, 2: 15, 3: 10, 4: 9, 5: 11, 6: 14}
	rec := quantitativeRecord(t, floatPtr(10), amounts)

	got := SuccessRate(rec, testToday, 7)
	want := 5.0 / 7.0
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("SuccessRate() = %v, want %v", got, want)
	}
}

func TestSuccessRateOutsideWindowIgnored(t *testing.T) {
	rec := binaryRecord(t, 0, 1, 10)
	if got := SuccessRate(rec, testToday, 7); got != 2.0/7.0 {
		t.Errorf("SuccessRate() = %v, want %v", got, 2.0/7.0)
	}
}

func TestComputeProgress(t *testing.T) {
	rec := binaryRecord(t, 0, 1, 2)
	p := ComputeProgress(rec, testToday, 10)

	if p.Completed != 3 {
		t.Errorf("Completed = %d, want 3", p.Completed)
	}
	if p.Total != 10 {
		t.Errorf("Total = %d, want 10", p.Total)
	}
	if p.Percentage != 30 {
		t.Errorf("Percentage = %v, want 30", p.Percentage)
	}
}

func TestComputeProgressZeroWindow(t *testing.T) {
	rec := binaryRecord(t, 0)
	p := ComputeProgress(rec, testToday, 0)
	if p != (Progress{}) {
		t.Errorf("ComputeProgress(days=0) = %+v, want zero value", p)
	}
}

func TestProgressIdempotent(t *testing.T) {
	rec := binaryRecord(t, 0, 2, 3, 5)
	first := SuccessRate(rec, testToday, constants.DefaultAnalysisWindow)
	second := SuccessRate(rec, testToday, constants.DefaultAnalysisWindow)
	if first != second {
		t.Errorf("SuccessRate not idempotent: %v != %v", first, second)
	}
}
