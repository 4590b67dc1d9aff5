package batch

import "time"

// Summary aggregates a completed run. Counts are an order-independent
// reduction over the result set.
type Summary struct {
	Converted int
	Skipped   int
	Failed    int
	Elapsed   time.Duration
}

// Summarize folds results into counters.
func Summarize(results []Result, elapsed time.Duration) Summary {
	summary := Summary{Elapsed: elapsed}
	for _, res := range results {
		switch res.Status {
		case StatusConverted:
			summary.Converted++
		case StatusSkipped:
			summary.Skipped++
		case StatusFailed:
			summary.Failed++
		}
	}
	return summary
}

// Total returns the number of jobs accounted for.
func (s Summary) Total() int {
	return s.Converted + s.Skipped + s.Failed
}
