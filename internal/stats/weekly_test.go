package stats_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"fitstats/internal/domain"
	"fitstats/internal/stats"
)

func TestTotalsInAndCompareWeeks(t *testing.T) {
	cal := stats.NewCalendar(time.UTC, time.Sunday)
	now := time.Date(2026, 10, 21, 15, 0, 0, 0, time.UTC) // Wednesday
	this, last := cal.Weeks(now)
	sow := this.Start

	workouts := []domain.WorkoutSession{
		{Completed: true, Date: sow.Add(time.Hour)},
		{Completed: true, Date: sow.Add(30 * time.Hour)},
		{Completed: false, Date: sow.Add(31 * time.Hour)},
		{Completed: true, Date: sow.Add(-time.Hour)},
		{Completed: true, Date: now.Add(time.Hour)}, // after now
	}
	water := []domain.WaterIntake{
		{Amount: 500, Date: sow},
		{Amount: 750, Date: sow.Add(-time.Nanosecond)},
		{Amount: 250, Date: last.Start},
		{Amount: 999, Date: last.Start.Add(-time.Nanosecond)},
	}
	steps := []domain.StepCount{
		{Steps: 3000, Date: sow.Add(2 * time.Hour)},
	}

	thisTotals := stats.TotalsIn(this, workouts, water, steps)
	lastTotals := stats.TotalsIn(last, workouts, water, steps)
	assert.Equal(t, stats.WeekTotals{Workouts: 2, Water: 500, Steps: 3000}, thisTotals)
	assert.Equal(t, stats.WeekTotals{Workouts: 1, Water: 1000, Steps: 0}, lastTotals)

	cmp := stats.CompareWeeks(thisTotals, lastTotals)
	assert.Equal(t, thisTotals, cmp.ThisWeek)
	assert.Equal(t, lastTotals, cmp.LastWeek)
	assert.Equal(t, cmp.ThisWeek.Workouts-cmp.LastWeek.Workouts, cmp.Change.Workouts)
	assert.Equal(t, cmp.ThisWeek.Water-cmp.LastWeek.Water, cmp.Change.Water)
	assert.Equal(t, cmp.ThisWeek.Steps-cmp.LastWeek.Steps, cmp.Change.Steps)
	assert.Equal(t, stats.WeekTotals{Workouts: 1, Water: -500, Steps: 3000}, cmp.Change)
}

func TestCompareWeeksWithoutData(t *testing.T) {
	cmp := stats.CompareWeeks(stats.WeekTotals{}, stats.WeekTotals{})
	assert.Equal(t, stats.WeekTotals{}, cmp.Change)
}
