package stats

import "fmt"

// Overview is the response for an N-day "how am I doing" query.
type Overview struct {
	Period     string        `json:"period"`
	Summary    Summary       `json:"summary"`
	DailyStats []DailyBucket `json:"dailyStats"`
}

// BuildOverview assembles the buckets and the summary for r. Both reducers
// read the same raw samples independently.
func BuildOverview(cal Calendar, r Range, s Samples) *Overview {
	return &Overview{
		Period:     Period(r.Len()),
		Summary:    Summarize(cal, r, s),
		DailyStats: BuildDailyBuckets(cal, r, s),
	}
}

// Period formats a day count for display.
func Period(days int) string {
	if days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", days)
}
