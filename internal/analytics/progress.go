package analytics

import (
	"time"

	"github.com/awender/ranklit/internal/models"
)

// Progress is a completion ratio over a date window, exposed as a value object
// for display and reporting.
type Progress struct {
	Completed  int     `json:"completed"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

// SuccessRate returns the fraction of successful days in the window
// [from-days+1, from]. A zero-length window yields 0.
func SuccessRate(record models.CompletionRecord, from time.Time, days int) float64 {
	if days <= 0 {
		return 0
	}
	return float64(countSuccesses(record, from, days)) / float64(days)
}

// ComputeProgress returns the completion ratio for the window [from-days+1, from].
func ComputeProgress(record models.CompletionRecord, from time.Time, days int) Progress {
	if days <= 0 {
		return Progress{}
	}
	completed := countSuccesses(record, from, days)
	return Progress{
		Completed:  completed,
		Total:      days,
		Percentage: float64(completed) / float64(days) * 100,
	}
}

func countSuccesses(record models.CompletionRecord, from time.Time, days int) int {
	count := 0
	for i := 0; i < days; i++ {
		if IsSuccessful(record, from.AddDate(0, 0, -i)) {
			count++
		}
	}
	return count
}
