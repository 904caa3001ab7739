package stats

import "fitstats/internal/domain"

// WeekTotals are the metrics compared week over week.
type WeekTotals struct {
	Workouts int `json:"workouts"`
	Water    int `json:"water"`
	Steps    int `json:"steps"`
}

// Sub returns the elementwise difference t - o.
func (t WeekTotals) Sub(o WeekTotals) WeekTotals {
	return WeekTotals{
		Workouts: t.Workouts - o.Workouts,
		Water:    t.Water - o.Water,
		Steps:    t.Steps - o.Steps,
	}
}

// WeeklyComparison is the response for the week-over-week query.
type WeeklyComparison struct {
	ThisWeek WeekTotals `json:"thisWeek"`
	LastWeek WeekTotals `json:"lastWeek"`
	Change   WeekTotals `json:"change"`
}

// TotalsIn counts completed workouts and sums water and steps inside w.
// Empty inputs yield zeros.
func TotalsIn(w Window, workouts []domain.WorkoutSession, water []domain.WaterIntake, steps []domain.StepCount) WeekTotals {
	var t WeekTotals
	for _, s := range workouts {
		if s.Completed && w.Contains(s.Date) {
			t.Workouts++
		}
	}
	for _, i := range water {
		if w.Contains(i.Date) {
			t.Water += i.Amount
		}
	}
	for _, s := range steps {
		if w.Contains(s.Date) {
			t.Steps += s.Steps
		}
	}
	return t
}

// CompareWeeks returns both weeks and their difference.
func CompareWeeks(this, last WeekTotals) *WeeklyComparison {
	return &WeeklyComparison{
		ThisWeek: this,
		LastWeek: last,
		Change:   this.Sub(last),
	}
}
