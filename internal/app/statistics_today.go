package app

import (
	"context"
	"time"

	"fitstats/internal/stats"
)

// TodayWater summarizes the water intakes of the current calendar day.
func (s *StatisticsService) TodayWater(ctx context.Context, userID int64) (*stats.WaterDay, error) {
	return today(ctx, s, userID, "water", s.src.Water.WaterIntakesBetween, stats.SummarizeWaterDay)
}

// TodayNutrition summarizes the food log of the current calendar day.
func (s *StatisticsService) TodayNutrition(ctx context.Context, userID int64) (*stats.NutritionDay, error) {
	return today(ctx, s, userID, "nutrition", s.src.Nutrition.NutritionEntriesBetween, stats.SummarizeNutritionDay)
}

// TodaySteps returns the step total of the current calendar day.
func (s *StatisticsService) TodaySteps(ctx context.Context, userID int64) (*stats.StepsDay, error) {
	return today(ctx, s, userID, "steps", s.src.Steps.StepCountsBetween, stats.SummarizeStepsDay)
}

// TodayWorkouts summarizes the workout sessions of the current calendar day.
func (s *StatisticsService) TodayWorkouts(ctx context.Context, userID int64) (*stats.WorkoutsDay, error) {
	return today(ctx, s, userID, "workout", s.src.Workouts.WorkoutSessionsBetween, stats.SummarizeWorkoutsDay)
}

// today fetches one source over the single-day range containing now and
// reduces it with summarize.
func today[T, R any](
	ctx context.Context,
	s *StatisticsService,
	userID int64,
	source string,
	fetch func(context.Context, int64, time.Time, time.Time) ([]T, error),
	summarize func(stats.Calendar, stats.Range, []T) R,
) (*R, error) {
	defer s.observe("today_"+source, time.Now())

	r, err := s.cal.LastDays(s.now(), 1)
	if err != nil {
		return nil, err
	}
	items, err := fetch(ctx, userID, r.Start, r.End)
	if err := s.fetchErr(source, userID, err); err != nil {
		return nil, err
	}
	out := summarize(s.cal, r, items)
	return &out, nil
}
