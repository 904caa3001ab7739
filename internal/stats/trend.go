package stats

import (
	"math"
	"slices"
	"time"

	"fitstats/internal/domain"
)

// Trend is the direction of weight change over a lookback window.
type Trend string

// Trend values.
const (
	TrendGaining Trend = "GAINING"
	TrendLosing  Trend = "LOSING"
	TrendStable  Trend = "STABLE"
)

// trendThreshold is the net change in kg that must be exceeded, strictly,
// before a trend is reported.
const trendThreshold = 0.5

// WeightPoint is one entry of a weight history.
type WeightPoint struct {
	Date   time.Time `json:"date"`
	Weight float64   `json:"weight"`
	BMI    *float64  `json:"bmi"`
}

// WeightTrend is the response for the weight statistics query.
type WeightTrend struct {
	CurrentWeight *float64      `json:"currentWeight"`
	StartWeight   *float64      `json:"startWeight"`
	WeightChange  float64       `json:"weightChange"`
	Trend         Trend         `json:"trend"`
	History       []WeightPoint `json:"history"`
}

// ClassifyWeightTrend orders samples chronologically and compares the
// latest weight with the earliest. History timestamps are expressed in the
// calendar's timezone. The input slice is not modified.
func ClassifyWeightTrend(cal Calendar, samples []domain.WeightSample) *WeightTrend {
	if len(samples) == 0 {
		return &WeightTrend{Trend: TrendStable, History: []WeightPoint{}}
	}

	ordered := slices.Clone(samples)
	slices.SortFunc(ordered, func(a, b domain.WeightSample) int {
		switch {
		case newerWeight(&a, &b):
			return 1
		case newerWeight(&b, &a):
			return -1
		default:
			return 0
		}
	})

	current := ordered[len(ordered)-1].Weight
	start := ordered[0].Weight
	// Classification sees the reported two-decimal change, so a raw 0.504
	// rounds to 0.50 and stays stable.
	change := math.Round((current-start)*100) / 100

	history := make([]WeightPoint, len(ordered))
	for i, s := range ordered {
		history[i] = WeightPoint{Date: s.Date.In(cal.Location()), Weight: s.Weight, BMI: s.BMI}
	}

	return &WeightTrend{
		CurrentWeight: &current,
		StartWeight:   &start,
		WeightChange:  change,
		Trend:         classify(change),
		History:       history,
	}
}

func classify(change float64) Trend {
	switch {
	case change > trendThreshold:
		return TrendGaining
	case change < -trendThreshold:
		return TrendLosing
	default:
		return TrendStable
	}
}
