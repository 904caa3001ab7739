package stats

import (
	"math"
	"sort"
	"time"

	"fitstats/internal/domain"
)

// MacroTotals sums the nutrition of a set of entries.
type MacroTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// WaterDay is the water log of a single day.
type WaterDay struct {
	Date    string               `json:"date"`
	Entries []domain.WaterIntake `json:"entries"`
	Total   int                  `json:"total"`
	Count   int                  `json:"count"`
}

// NutritionDay is the food log of a single day, also grouped by meal type.
type NutritionDay struct {
	Date       string                             `json:"date"`
	Entries    []domain.NutritionEntry            `json:"entries"`
	Totals     MacroTotals                        `json:"totals"`
	ByMealType map[string][]domain.NutritionEntry `json:"byMealType"`
	Count      int                                `json:"count"`
}

// StepsDay is the step total of a single day.
type StepsDay struct {
	Date  string `json:"date"`
	Steps int    `json:"steps"`
}

// WorkoutsDay is the workout log of a single day. DurationMinutes and
// CompletedCount cover completed sessions only; Entries lists all of them.
type WorkoutsDay struct {
	Date            string                  `json:"date"`
	Entries         []domain.WorkoutSession `json:"entries"`
	DurationMinutes int                     `json:"totalDuration"`
	CompletedCount  int                     `json:"completedCount"`
	Count           int                     `json:"count"`
}

// The day summaries below read the first day of r; callers pass a one-day
// range such as Calendar.LastDays(now, 1). Entries are newest first.

// SummarizeWaterDay reduces the water intakes falling on the first day of r.
func SummarizeWaterDay(cal Calendar, r Range, items []domain.WaterIntake) WaterDay {
	if r.Len() == 0 {
		return WaterDay{Entries: []domain.WaterIntake{}}
	}
	b := BuildDailyBuckets(cal, r, Samples{Water: items})[0]
	entries := onDay(cal, r.Days[0], items,
		func(w domain.WaterIntake) time.Time { return w.Date },
		func(w domain.WaterIntake) int64 { return w.ID })
	return WaterDay{Date: b.Date, Entries: entries, Total: b.WaterTotal, Count: len(entries)}
}

// SummarizeNutritionDay reduces the nutrition entries falling on the first
// day of r. Every meal type has a group, possibly empty.
func SummarizeNutritionDay(cal Calendar, r Range, items []domain.NutritionEntry) NutritionDay {
	day := NutritionDay{ByMealType: make(map[string][]domain.NutritionEntry, 4)}
	for _, m := range []string{domain.MealBreakfast, domain.MealLunch, domain.MealDinner, domain.MealSnack} {
		day.ByMealType[m] = []domain.NutritionEntry{}
	}
	if r.Len() == 0 {
		day.Entries = []domain.NutritionEntry{}
		return day
	}

	b := BuildDailyBuckets(cal, r, Samples{Nutrition: items})[0]
	day.Date = b.Date
	day.Totals = MacroTotals{
		Calories: round2(b.CaloriesTotal),
		Protein:  round2(b.ProteinTotal),
		Carbs:    round2(b.CarbsTotal),
		Fat:      round2(b.FatTotal),
	}
	day.Entries = onDay(cal, r.Days[0], items,
		func(n domain.NutritionEntry) time.Time { return n.Date },
		func(n domain.NutritionEntry) int64 { return n.ID })
	day.Count = len(day.Entries)
	for _, e := range day.Entries {
		day.ByMealType[e.MealType] = append(day.ByMealType[e.MealType], e)
	}
	return day
}

// SummarizeStepsDay returns the step total of the first day of r.
func SummarizeStepsDay(cal Calendar, r Range, items []domain.StepCount) StepsDay {
	if r.Len() == 0 {
		return StepsDay{}
	}
	b := BuildDailyBuckets(cal, r, Samples{Steps: items})[0]
	return StepsDay{Date: b.Date, Steps: b.Steps}
}

// SummarizeWorkoutsDay reduces the workout sessions falling on the first day
// of r.
func SummarizeWorkoutsDay(cal Calendar, r Range, items []domain.WorkoutSession) WorkoutsDay {
	if r.Len() == 0 {
		return WorkoutsDay{Entries: []domain.WorkoutSession{}}
	}
	b := BuildDailyBuckets(cal, r, Samples{Workouts: items})[0]
	entries := onDay(cal, r.Days[0], items,
		func(w domain.WorkoutSession) time.Time { return w.Date },
		func(w domain.WorkoutSession) int64 { return w.ID })
	return WorkoutsDay{
		Date:            b.Date,
		Entries:         entries,
		DurationMinutes: b.WorkoutDurationMinutes,
		CompletedCount:  b.WorkoutCount,
		Count:           len(entries),
	}
}

// onDay copies the items whose day key is day, newest first with ties broken
// by descending ID. The result is never nil.
func onDay[T any](cal Calendar, day string, items []T, date func(T) time.Time, id func(T) int64) []T {
	out := []T{}
	for _, it := range items {
		if cal.DayKey(date(it)) == day {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		di, dj := date(out[i]), date(out[j])
		if !di.Equal(dj) {
			return di.After(dj)
		}
		return id(out[i]) > id(out[j])
	})
	return out
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
