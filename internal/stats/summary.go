package stats

import "math"

// Summary holds period-level figures for an overview.
type Summary struct {
	AvgWeight           *float64 `json:"avgWeight"`
	TotalWorkouts       int      `json:"totalWorkouts"`
	TotalWorkoutMinutes int      `json:"totalWorkoutMinutes"`
	AvgWater            int      `json:"avgWater"`
	AvgCalories         int      `json:"avgCalories"`
	AvgSteps            int      `json:"avgSteps"`
}

// Summarize reduces the raw samples of r. Averages of summable metrics are
// divided by the number of days in r, not by the number of days that have
// entries, so unlogged days pull the average down.
func Summarize(cal Calendar, r Range, s Samples) Summary {
	var sum Summary
	n := r.Len()
	if n == 0 {
		return sum
	}
	days := newDayIndex(cal, r)

	var weightTotal float64
	var weightCount int
	for _, w := range s.Weights {
		if _, ok := days.lookup(w.Date); ok {
			weightTotal += w.Weight
			weightCount++
		}
	}
	if weightCount > 0 {
		avg := weightTotal / float64(weightCount)
		sum.AvgWeight = &avg
	}

	for _, w := range s.Workouts {
		if _, ok := days.lookup(w.Date); ok && w.Completed {
			sum.TotalWorkouts++
			sum.TotalWorkoutMinutes += w.Minutes()
		}
	}

	var water, steps int
	var calories float64
	for _, w := range s.Water {
		if _, ok := days.lookup(w.Date); ok {
			water += w.Amount
		}
	}
	for _, e := range s.Nutrition {
		if _, ok := days.lookup(e.Date); ok {
			calories += e.Calories
		}
	}
	for _, st := range s.Steps {
		if _, ok := days.lookup(st.Date); ok {
			steps += st.Steps
		}
	}
	sum.AvgWater = roundHalfUp(float64(water) / float64(n))
	sum.AvgCalories = roundHalfUp(calories / float64(n))
	sum.AvgSteps = roundHalfUp(float64(steps) / float64(n))
	return sum
}

func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
