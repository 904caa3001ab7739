package stats_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitstats/internal/domain"
	"fitstats/internal/stats"
)

func ptr[T any](v T) *T { return &v }

func at(day, hour int) time.Time {
	return time.Date(2026, 5, day, hour, 0, 0, 0, time.UTC)
}

func mustRange(t *testing.T, cal stats.Calendar, now time.Time, n int) stats.Range {
	t.Helper()
	r, err := cal.LastDays(now, n)
	require.NoError(t, err)
	return r
}

func TestBuildDailyBucketsEmptyDays(t *testing.T) {
	cal := stats.NewCalendar(time.UTC, time.Sunday)
	r := mustRange(t, cal, at(10, 12), 7)

	buckets := stats.BuildDailyBuckets(cal, r, stats.Samples{})
	require.Len(t, buckets, 7)
	for i, b := range buckets {
		assert.Equal(t, r.Days[i], b.Date)
		assert.Nil(t, b.Weight)
		assert.Nil(t, b.BMI)
		assert.Zero(t, b.WaterTotal)
		assert.Zero(t, b.Steps)
	}
}

func TestBuildDailyBucketsAccumulation(t *testing.T) {
	cal := stats.NewCalendar(time.UTC, time.Sunday)
	r := mustRange(t, cal, at(10, 23), 3) // 8, 9, 10

	s := stats.Samples{
		Workouts: []domain.WorkoutSession{
			{Duration: ptr(45), Completed: true, Date: at(9, 7)},
			{Duration: ptr(30), Completed: false, Date: at(9, 18)},
			{Duration: nil, Completed: true, Date: at(9, 19)},
			{Duration: ptr(20), Completed: true, Date: at(10, 6)},
		},
		Nutrition: []domain.NutritionEntry{
			{Calories: 500, Protein: ptr(30.0), Carbs: ptr(50.0), Fat: ptr(10.0), Date: at(8, 8)},
			{Calories: 250.5, Protein: nil, Carbs: ptr(20.0), Fat: nil, Date: at(8, 13)},
		},
		Steps: []domain.StepCount{
			{Steps: 4000, Date: at(10, 9)},
			{Steps: 2500, Date: at(10, 21)},
		},
	}

	buckets := stats.BuildDailyBuckets(cal, r, s)
	require.Len(t, buckets, 3)

	assert.Equal(t, 750.5, buckets[0].CaloriesTotal)
	assert.Equal(t, 30.0, buckets[0].ProteinTotal)
	assert.Equal(t, 70.0, buckets[0].CarbsTotal)
	assert.Equal(t, 10.0, buckets[0].FatTotal)

	assert.Equal(t, 45, buckets[1].WorkoutDurationMinutes)
	assert.Equal(t, 2, buckets[1].WorkoutCount, "incomplete sessions are skipped, missing duration counts")

	assert.Equal(t, 20, buckets[2].WorkoutDurationMinutes)
	assert.Equal(t, 1, buckets[2].WorkoutCount)
	assert.Equal(t, 6500, buckets[2].Steps, "same-day step entries are summed")
}

func TestBuildDailyBucketsDiscardsOutOfRange(t *testing.T) {
	cal := stats.NewCalendar(time.UTC, time.Sunday)
	r := mustRange(t, cal, at(10, 12), 2)

	s := stats.Samples{
		Water: []domain.WaterIntake{
			{Amount: 100, Date: at(8, 23)},
			{Amount: 200, Date: at(9, 0)},
			{Amount: 400, Date: at(11, 0)},
		},
		Weights: []domain.WeightSample{{Weight: 70, Date: at(1, 9)}},
	}
	buckets := stats.BuildDailyBuckets(cal, r, s)
	assert.Equal(t, 200, buckets[0].WaterTotal)
	assert.Zero(t, buckets[1].WaterTotal)
	assert.Nil(t, buckets[0].Weight)
}

func TestBuildDailyBucketsWaterScenario(t *testing.T) {
	cal := stats.NewCalendar(time.UTC, time.Sunday)
	now := at(10, 20)
	r := mustRange(t, cal, now, 2)

	s := stats.Samples{
		Water: []domain.WaterIntake{
			{Amount: 500, Date: at(10, 8)},
			{Amount: 300, Date: at(10, 14)},
			{Amount: 1000, Date: at(9, 11)},
		},
	}

	ov := stats.BuildOverview(cal, r, s)
	require.Len(t, ov.DailyStats, 2)
	assert.Equal(t, 1000, ov.DailyStats[0].WaterTotal)
	assert.Equal(t, 800, ov.DailyStats[1].WaterTotal)
	assert.Equal(t, 900, ov.Summary.AvgWater)
	assert.Equal(t, "2 days", ov.Period)
}

func TestBuildDailyBucketsLatestWeightWins(t *testing.T) {
	cal := stats.NewCalendar(time.UTC, time.Sunday)
	r := mustRange(t, cal, at(10, 23), 2)

	weights := []domain.WeightSample{
		{ID: 1, Weight: 81.2, BMI: ptr(25.1), Date: at(10, 7)},
		{ID: 2, Weight: 80.4, BMI: ptr(24.8), Date: at(10, 21)},
		{ID: 3, Weight: 80.9, BMI: nil, Date: at(10, 12)},
		{ID: 4, Weight: 82.0, BMI: ptr(25.3), Date: at(9, 8)},
	}

	want := stats.BuildDailyBuckets(cal, r, stats.Samples{Weights: weights})
	require.NotNil(t, want[1].Weight)
	assert.Equal(t, 80.4, *want[1].Weight)
	assert.Equal(t, 24.8, *want[1].BMI)
	assert.Equal(t, 82.0, *want[0].Weight)

	rng := rand.New(rand.NewSource(7))
	for range 20 {
		shuffled := append([]domain.WeightSample(nil), weights...)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
		assert.Equal(t, want, stats.BuildDailyBuckets(cal, r, stats.Samples{Weights: shuffled}))
	}
}

func TestBuildDailyBucketsEqualTimestampsAreDeterministic(t *testing.T) {
	cal := stats.NewCalendar(time.UTC, time.Sunday)
	r := mustRange(t, cal, at(10, 23), 1)

	a := domain.WeightSample{ID: 5, Weight: 70, Date: at(10, 8)}
	b := domain.WeightSample{ID: 9, Weight: 71, Date: at(10, 8)}

	first := stats.BuildDailyBuckets(cal, r, stats.Samples{Weights: []domain.WeightSample{a, b}})
	second := stats.BuildDailyBuckets(cal, r, stats.Samples{Weights: []domain.WeightSample{b, a}})
	assert.Equal(t, first, second)
	assert.Equal(t, 71.0, *first[0].Weight)
}

func TestBuildDailyBucketsConservesSums(t *testing.T) {
	cal := stats.NewCalendar(istanbul, time.Sunday)
	now := time.Date(2026, 5, 20, 18, 0, 0, 0, istanbul)
	r := mustRange(t, cal, now, 10)

	rng := rand.New(rand.NewSource(42))
	var s stats.Samples
	var water, steps int
	var calories, protein float64
	for i := range 200 {
		ts := r.Start.Add(time.Duration(rng.Int63n(int64(r.End.Sub(r.Start)))))
		s.Water = append(s.Water, domain.WaterIntake{ID: int64(i), Amount: 50 + rng.Intn(500), Date: ts})
		water += s.Water[i].Amount
		s.Steps = append(s.Steps, domain.StepCount{ID: int64(i), Steps: rng.Intn(3000), Date: ts})
		steps += s.Steps[i].Steps
		s.Nutrition = append(s.Nutrition, domain.NutritionEntry{ID: int64(i), Calories: float64(rng.Intn(800)), Protein: ptr(float64(rng.Intn(40))), Date: ts})
		calories += s.Nutrition[i].Calories
		protein += *s.Nutrition[i].Protein
	}

	buckets := stats.BuildDailyBuckets(cal, r, s)
	require.Len(t, buckets, 10)

	var gotWater, gotSteps int
	var gotCalories, gotProtein float64
	for _, b := range buckets {
		gotWater += b.WaterTotal
		gotSteps += b.Steps
		gotCalories += b.CaloriesTotal
		gotProtein += b.ProteinTotal
	}
	assert.Equal(t, water, gotWater)
	assert.Equal(t, steps, gotSteps)
	assert.InDelta(t, calories, gotCalories, 1e-6)
	assert.InDelta(t, protein, gotProtein, 1e-6)
}

func TestBuildDailyBucketsDoesNotMutateInput(t *testing.T) {
	cal := stats.NewCalendar(time.UTC, time.Sunday)
	r := mustRange(t, cal, at(10, 23), 2)

	weights := []domain.WeightSample{
		{ID: 2, Weight: 80, Date: at(10, 9)},
		{ID: 1, Weight: 81, Date: at(10, 7)},
	}
	before := append([]domain.WeightSample(nil), weights...)
	buckets := stats.BuildDailyBuckets(cal, r, stats.Samples{Weights: weights})
	*buckets[1].Weight = 0

	assert.Equal(t, before, weights)
}
