package stats

import (
	"time"

	"fitstats/internal/domain"
)

// Samples holds the raw, unordered samples fetched for one request.
type Samples struct {
	Weights   []domain.WeightSample
	Workouts  []domain.WorkoutSession
	Water     []domain.WaterIntake
	Nutrition []domain.NutritionEntry
	Steps     []domain.StepCount
}

// DailyBucket is one calendar day's reduced view across all metric kinds.
type DailyBucket struct {
	Date                   string   `json:"date"`
	Weight                 *float64 `json:"weight"`
	BMI                    *float64 `json:"bmi"`
	WorkoutDurationMinutes int      `json:"workoutDurationMinutes"`
	WorkoutCount           int      `json:"workoutCount"`
	WaterTotal             int      `json:"waterTotal"`
	CaloriesTotal          float64  `json:"caloriesTotal"`
	ProteinTotal           float64  `json:"proteinTotal"`
	CarbsTotal             float64  `json:"carbsTotal"`
	FatTotal               float64  `json:"fatTotal"`
	Steps                  int      `json:"steps"`
}

// dayIndex maps samples onto the days of a Range.
type dayIndex struct {
	cal   Calendar
	index map[string]int
}

func newDayIndex(cal Calendar, r Range) dayIndex {
	idx := make(map[string]int, r.Len())
	for i, d := range r.Days {
		idx[d] = i
	}
	return dayIndex{cal: cal, index: idx}
}

func (d dayIndex) lookup(t time.Time) (int, bool) {
	i, ok := d.index[d.cal.DayKey(t)]
	return i, ok
}

// BuildDailyBuckets returns exactly one bucket per day of r, in ascending
// order. Samples whose day falls outside r are ignored. The inputs are not
// modified and their order does not affect the result.
func BuildDailyBuckets(cal Calendar, r Range, s Samples) []DailyBucket {
	buckets := make([]DailyBucket, r.Len())
	for i, d := range r.Days {
		buckets[i].Date = d
	}
	days := newDayIndex(cal, r)

	latest := make([]*domain.WeightSample, r.Len())
	for i := range s.Weights {
		w := &s.Weights[i]
		if di, ok := days.lookup(w.Date); ok && (latest[di] == nil || newerWeight(w, latest[di])) {
			latest[di] = w
		}
	}
	for i, w := range latest {
		if w == nil {
			continue
		}
		weight := w.Weight
		buckets[i].Weight = &weight
		if w.BMI != nil {
			bmi := *w.BMI
			buckets[i].BMI = &bmi
		}
	}

	for _, w := range s.Workouts {
		if !w.Completed {
			continue
		}
		if di, ok := days.lookup(w.Date); ok {
			buckets[di].WorkoutDurationMinutes += w.Minutes()
			buckets[di].WorkoutCount++
		}
	}

	for _, w := range s.Water {
		if di, ok := days.lookup(w.Date); ok {
			buckets[di].WaterTotal += w.Amount
		}
	}

	for _, n := range s.Nutrition {
		if di, ok := days.lookup(n.Date); ok {
			b := &buckets[di]
			b.CaloriesTotal += n.Calories
			b.ProteinTotal += domain.ValueOrZero(n.Protein)
			b.CarbsTotal += domain.ValueOrZero(n.Carbs)
			b.FatTotal += domain.ValueOrZero(n.Fat)
		}
	}

	// Same-day step entries are added, not replaced.
	for _, st := range s.Steps {
		if di, ok := days.lookup(st.Date); ok {
			buckets[di].Steps += st.Steps
		}
	}

	return buckets
}

// newerWeight orders weight samples by timestamp, then ID, then value, so
// the winner of a day never depends on input order.
func newerWeight(a, b *domain.WeightSample) bool {
	if !a.Date.Equal(b.Date) {
		return a.Date.After(b.Date)
	}
	if a.ID != b.ID {
		return a.ID > b.ID
	}
	return a.Weight > b.Weight
}
