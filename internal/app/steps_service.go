package app

import (
	"context"
	"time"

	"fitstats/internal/domain"
	"fitstats/internal/stats"
)

// StepsService encapsulates step tracking use cases.
type StepsService struct {
	repo domain.StepRepository
	cal  stats.Calendar
	now  func() time.Time
}

// NewStepsService creates a StepsService. Days are delimited by cal.
func NewStepsService(repo domain.StepRepository, cal stats.Calendar) *StepsService {
	return &StepsService{repo: repo, cal: cal, now: time.Now}
}

// RecordSteps sets the step total of the day containing at (now when nil).
// A day keeps a single row: recording again replaces the earlier total.
func (s *StepsService) RecordSteps(ctx context.Context, userID int64, steps int, at *time.Time) (*domain.StepCount, error) {
	if steps < 0 || steps > 100000 {
		return nil, domain.Validationf("steps must be within [0, 100000]")
	}
	sc := domain.StepCount{UserID: userID, Steps: steps, Date: sampleTime(at, s.now)}
	dayStart := s.cal.Midnight(sc.Date)
	id, err := s.repo.UpsertStepCount(ctx, sc, dayStart, s.cal.AddDays(dayStart, 1))
	if err != nil {
		return nil, err
	}
	sc.ID = id
	return &sc, nil
}

// ListRecent returns the most recent step counts up to limit.
func (s *StepsService) ListRecent(ctx context.Context, userID int64, limit int) ([]domain.StepCount, error) {
	return s.repo.ListRecentStepCounts(ctx, userID, limit)
}
