package stats_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitstats/internal/domain"
	"fitstats/internal/stats"
)

func TestSummarizeEmpty(t *testing.T) {
	cal := stats.NewCalendar(time.UTC, time.Sunday)
	r := mustRange(t, cal, at(10, 12), 7)

	sum := stats.Summarize(cal, r, stats.Samples{})
	assert.Nil(t, sum.AvgWeight)
	assert.Zero(t, sum.TotalWorkouts)
	assert.Zero(t, sum.TotalWorkoutMinutes)
	assert.Zero(t, sum.AvgWater)
	assert.Zero(t, sum.AvgCalories)
	assert.Zero(t, sum.AvgSteps)
}

func TestSummarizeDividesByPeriodLength(t *testing.T) {
	cal := stats.NewCalendar(time.UTC, time.Sunday)
	r := mustRange(t, cal, at(10, 12), 7)

	s := stats.Samples{
		Weights: []domain.WeightSample{
			{Weight: 80, Date: at(4, 7)},
			{Weight: 81, Date: at(4, 20)},
			{Weight: 79, Date: at(9, 7)},
		},
		Workouts: []domain.WorkoutSession{
			{Duration: ptr(40), Completed: true, Date: at(5, 7)},
			{Duration: ptr(90), Completed: false, Date: at(6, 7)},
			{Completed: true, Date: at(7, 7)},
		},
		Water:     []domain.WaterIntake{{Amount: 1000, Date: at(10, 9)}},
		Nutrition: []domain.NutritionEntry{{Calories: 2000, Date: at(10, 9)}, {Calories: 1501, Date: at(9, 9)}},
		Steps:     []domain.StepCount{{Steps: 7000, Date: at(8, 9)}},
	}

	sum := stats.Summarize(cal, r, s)
	require.NotNil(t, sum.AvgWeight)
	assert.InDelta(t, 80.0, *sum.AvgWeight, 1e-9)
	assert.Equal(t, 2, sum.TotalWorkouts)
	assert.Equal(t, 40, sum.TotalWorkoutMinutes, "incomplete sessions do not add minutes")
	assert.Equal(t, 143, sum.AvgWater)    // 1000/7 = 142.86
	assert.Equal(t, 500, sum.AvgCalories) // 3501/7 = 500.14
	assert.Equal(t, 1000, sum.AvgSteps)
}

func TestSummarizeRoundsHalfUp(t *testing.T) {
	cal := stats.NewCalendar(time.UTC, time.Sunday)
	r := mustRange(t, cal, at(10, 12), 2)

	sum := stats.Summarize(cal, r, stats.Samples{
		Water: []domain.WaterIntake{{Amount: 3, Date: at(10, 1)}},
	})
	assert.Equal(t, 2, sum.AvgWater)
}

func TestSummarizeIgnoresSamplesOutsideRange(t *testing.T) {
	cal := stats.NewCalendar(time.UTC, time.Sunday)
	r := mustRange(t, cal, at(10, 12), 2)

	sum := stats.Summarize(cal, r, stats.Samples{
		Weights: []domain.WeightSample{{Weight: 100, Date: at(1, 1)}},
		Water:   []domain.WaterIntake{{Amount: 600, Date: at(9, 1)}, {Amount: 9999, Date: at(3, 1)}},
	})
	assert.Nil(t, sum.AvgWeight)
	assert.Equal(t, 300, sum.AvgWater)
}

func TestBuildOverviewIsIdempotent(t *testing.T) {
	cal := stats.NewCalendar(istanbul, time.Sunday)
	now := time.Date(2026, 5, 10, 18, 0, 0, 0, istanbul)
	r := mustRange(t, cal, now, 7)
	s := stats.Samples{
		Weights:   []domain.WeightSample{{ID: 1, Weight: 80, BMI: ptr(24.0), Date: now.Add(-30 * time.Hour)}},
		Workouts:  []domain.WorkoutSession{{ID: 1, Duration: ptr(30), Completed: true, Date: now.Add(-2 * time.Hour)}},
		Water:     []domain.WaterIntake{{ID: 1, Amount: 250, Date: now.Add(-time.Hour)}},
		Nutrition: []domain.NutritionEntry{{ID: 1, Calories: 600, Fat: ptr(12.5), Date: now.Add(-5 * time.Hour)}},
		Steps:     []domain.StepCount{{ID: 1, Steps: 8000, Date: now.Add(-50 * time.Hour)}},
	}

	first, err := json.Marshal(stats.BuildOverview(cal, r, s))
	require.NoError(t, err)
	second, err := json.Marshal(stats.BuildOverview(cal, r, s))
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
	assert.Contains(t, string(first), `"workoutDurationMinutes":30`)
	assert.Contains(t, string(first), `"avgWeight":80`)
}

func TestPeriod(t *testing.T) {
	assert.Equal(t, "1 day", stats.Period(1))
	assert.Equal(t, "30 days", stats.Period(30))
}
