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

func TestClassifyWeightTrendEmpty(t *testing.T) {
	cal := stats.NewCalendar(time.UTC, time.Sunday)
	got := stats.ClassifyWeightTrend(cal, nil)

	assert.Nil(t, got.CurrentWeight)
	assert.Nil(t, got.StartWeight)
	assert.Zero(t, got.WeightChange)
	assert.Equal(t, stats.TrendStable, got.Trend)
	assert.Empty(t, got.History)

	b, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, `{"currentWeight":null,"startWeight":null,"weightChange":0,"trend":"STABLE","history":[]}`, string(b))
}

func TestClassifyWeightTrend(t *testing.T) {
	day0 := time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)
	day6 := day0.AddDate(0, 0, 6)

	tests := []struct {
		name       string
		start, end float64
		wantChange float64
		wantTrend  stats.Trend
	}{
		{"boundary gain is stable", 80.0, 80.5, 0.5, stats.TrendStable},
		{"above boundary gains", 80.0, 80.6, 0.6, stats.TrendGaining},
		{"boundary loss is stable", 80.0, 79.5, -0.5, stats.TrendStable},
		{"below boundary loses", 80.0, 79.4, -0.6, stats.TrendLosing},
		{"no change", 75.25, 75.25, 0, stats.TrendStable},
		{"gain rounding down to boundary is stable", 80.0, 80.504, 0.5, stats.TrendStable},
		{"loss rounding down to boundary is stable", 80.0, 79.496, -0.5, stats.TrendStable},
		{"gain rounding up past boundary gains", 80.0, 80.506, 0.51, stats.TrendGaining},
	}
	cal := stats.NewCalendar(time.UTC, time.Sunday)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := stats.ClassifyWeightTrend(cal, []domain.WeightSample{
				{ID: 1, Weight: tc.start, Date: day0},
				{ID: 2, Weight: tc.end, Date: day6},
			})
			assert.Equal(t, tc.wantTrend, got.Trend)
			assert.InDelta(t, tc.wantChange, got.WeightChange, 1e-9)
			assert.Equal(t, tc.end, *got.CurrentWeight)
			assert.Equal(t, tc.start, *got.StartWeight)
		})
	}
}

func TestClassifyWeightTrendSortsInput(t *testing.T) {
	cal := stats.NewCalendar(istanbul, time.Sunday)
	base := time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)
	samples := []domain.WeightSample{
		{ID: 3, Weight: 78.9, Date: base.AddDate(0, 0, 10)},
		{ID: 1, Weight: 80.0, BMI: ptr(24.7), Date: base},
		{ID: 2, Weight: 79.333, Date: base.AddDate(0, 0, 4)},
	}
	before := append([]domain.WeightSample(nil), samples...)

	got := stats.ClassifyWeightTrend(cal, samples)
	assert.Equal(t, before, samples, "input must not be reordered")

	assert.Equal(t, 78.9, *got.CurrentWeight)
	assert.Equal(t, 80.0, *got.StartWeight)
	assert.Equal(t, -1.1, got.WeightChange)
	assert.Equal(t, stats.TrendLosing, got.Trend)

	require.Len(t, got.History, 3)
	assert.Equal(t, 80.0, got.History[0].Weight)
	assert.Equal(t, 24.7, *got.History[0].BMI)
	assert.Equal(t, 79.333, got.History[1].Weight)
	assert.Equal(t, istanbul, got.History[0].Date.Location())
	assert.True(t, got.History[0].Date.Equal(base))
}
