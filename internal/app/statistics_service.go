package app

import (
	"context"
	"errors"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"fitstats/internal/domain"
	"fitstats/internal/metrics"
	"fitstats/internal/stats"
)

// Sources are the read-only sample fetchers the statistics queries use.
type Sources struct {
	Weights   domain.WeightSource
	Workouts  domain.WorkoutSource
	Water     domain.WaterSource
	Nutrition domain.NutritionSource
	Steps     domain.StepSource
}

// StatisticsService answers overview, weekly comparison and weight trend
// queries. It holds no per-request state.
type StatisticsService struct {
	src     Sources
	cal     stats.Calendar
	now     func() time.Time
	metrics *metrics.Manager
}

// NewStatisticsService creates a StatisticsService reading from src and
// aligning days on cal.
func NewStatisticsService(src Sources, cal stats.Calendar) *StatisticsService {
	return &StatisticsService{src: src, cal: cal, now: time.Now}
}

// WithClock replaces the time source used as "now".
func (s *StatisticsService) WithClock(now func() time.Time) *StatisticsService {
	s.now = now
	return s
}

// WithMetrics records query durations and fetch failures on m.
func (s *StatisticsService) WithMetrics(m *metrics.Manager) *StatisticsService {
	s.metrics = m
	return s
}

// Calendar returns the calendar used to align days.
func (s *StatisticsService) Calendar() stats.Calendar { return s.cal }

// Overview aggregates the last days calendar days, today included.
func (s *StatisticsService) Overview(ctx context.Context, userID int64, days int) (*stats.Overview, error) {
	defer s.observe("overview", time.Now())

	r, err := s.cal.LastDays(s.now(), days)
	if err != nil {
		return nil, err
	}

	var samples stats.Samples
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		samples.Weights, err = s.src.Weights.WeightSamplesBetween(gctx, userID, r.Start, r.End)
		return s.fetchErr("weight", userID, err)
	})
	g.Go(func() (err error) {
		samples.Workouts, err = s.src.Workouts.WorkoutSessionsBetween(gctx, userID, r.Start, r.End)
		return s.fetchErr("workout", userID, err)
	})
	g.Go(func() (err error) {
		samples.Water, err = s.src.Water.WaterIntakesBetween(gctx, userID, r.Start, r.End)
		return s.fetchErr("water", userID, err)
	})
	g.Go(func() (err error) {
		samples.Nutrition, err = s.src.Nutrition.NutritionEntriesBetween(gctx, userID, r.Start, r.End)
		return s.fetchErr("nutrition", userID, err)
	})
	g.Go(func() (err error) {
		samples.Steps, err = s.src.Steps.StepCountsBetween(gctx, userID, r.Start, r.End)
		return s.fetchErr("steps", userID, err)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return stats.BuildOverview(s.cal, r, samples), nil
}

// WeeklyComparison compares workouts, water and steps of the current week so
// far with the whole previous week.
func (s *StatisticsService) WeeklyComparison(ctx context.Context, userID int64) (*stats.WeeklyComparison, error) {
	defer s.observe("weekly_comparison", time.Now())

	this, last := s.cal.Weeks(s.now())
	windows := []stats.Window{this, last}
	totals := make([]stats.WeekTotals, len(windows))

	g, gctx := errgroup.WithContext(ctx)
	for i, w := range windows {
		var (
			workouts []domain.WorkoutSession
			water    []domain.WaterIntake
			steps    []domain.StepCount
		)
		wg, wctx := errgroup.WithContext(gctx)
		wg.Go(func() (err error) {
			workouts, err = s.src.Workouts.WorkoutSessionsBetween(wctx, userID, w.Start, w.End)
			return s.fetchErr("workout", userID, err)
		})
		wg.Go(func() (err error) {
			water, err = s.src.Water.WaterIntakesBetween(wctx, userID, w.Start, w.End)
			return s.fetchErr("water", userID, err)
		})
		wg.Go(func() (err error) {
			steps, err = s.src.Steps.StepCountsBetween(wctx, userID, w.Start, w.End)
			return s.fetchErr("steps", userID, err)
		})
		g.Go(func() error {
			if err := wg.Wait(); err != nil {
				return err
			}
			totals[i] = stats.TotalsIn(w, workouts, water, steps)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return stats.CompareWeeks(totals[0], totals[1]), nil
}

// WeightStats classifies the weight trend over the last days calendar days.
func (s *StatisticsService) WeightStats(ctx context.Context, userID int64, days int) (*stats.WeightTrend, error) {
	defer s.observe("weight_stats", time.Now())

	r, err := s.cal.LastDays(s.now(), days)
	if err != nil {
		return nil, err
	}
	samples, err := s.src.Weights.WeightSamplesBetween(ctx, userID, r.Start, r.End)
	if err := s.fetchErr("weight", userID, err); err != nil {
		return nil, err
	}
	return stats.ClassifyWeightTrend(s.cal, samples), nil
}

func (s *StatisticsService) fetchErr(source string, userID int64, err error) error {
	if err == nil {
		return nil
	}
	// A sibling failure cancels the shared context; only the root cause is
	// worth reporting.
	if !errors.Is(err, context.Canceled) {
		log.WithFields(log.Fields{"source": source, "user_id": userID}).WithError(err).Error("fetch samples")
		if s.metrics != nil {
			s.metrics.CounterFetchFailures.WithLabelValues(source).Inc()
		}
	}
	return &domain.DataAccessError{Source: source, Err: err}
}

func (s *StatisticsService) observe(query string, begin time.Time) {
	if s.metrics != nil {
		s.metrics.HistAggregationDuration.WithLabelValues(query).Observe(time.Since(begin).Seconds())
	}
}
