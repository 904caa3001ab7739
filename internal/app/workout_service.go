package app

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"fitstats/internal/domain"
)

// WorkoutInput is a training session to log. Completed defaults to true.
type WorkoutInput struct {
	Name      string
	Duration  *int
	Completed *bool
	Notes     string
	Date      *time.Time
}

// WorkoutService encapsulates workout logging use cases.
type WorkoutService struct {
	repo domain.WorkoutRepository
	now  func() time.Time
}

// NewWorkoutService creates a WorkoutService backed by the given repository.
func NewWorkoutService(repo domain.WorkoutRepository) *WorkoutService {
	return &WorkoutService{repo: repo, now: time.Now}
}

// LogSession validates and stores a workout session.
func (s *WorkoutService) LogSession(ctx context.Context, userID int64, in WorkoutInput) (*domain.WorkoutSession, error) {
	name := strings.TrimSpace(in.Name)
	if n := utf8.RuneCountInString(name); n < 1 || n > 200 {
		return nil, domain.Validationf("name must be 1 to 200 characters")
	}
	if in.Duration != nil && (*in.Duration < 1 || *in.Duration > 600) {
		return nil, domain.Validationf("duration must be within [1, 600] minutes")
	}
	if utf8.RuneCountInString(in.Notes) > 500 {
		return nil, domain.Validationf("notes must be at most 500 characters")
	}

	completed := true
	if in.Completed != nil {
		completed = *in.Completed
	}
	w := domain.WorkoutSession{
		UserID:    userID,
		Name:      name,
		Duration:  in.Duration,
		Completed: completed,
		Notes:     in.Notes,
		Date:      sampleTime(in.Date, s.now),
	}
	id, err := s.repo.AddWorkoutSession(ctx, w)
	if err != nil {
		return nil, err
	}
	w.ID = id
	return &w, nil
}

// ListRecent returns the most recent workout sessions up to limit.
func (s *WorkoutService) ListRecent(ctx context.Context, userID int64, limit int) ([]domain.WorkoutSession, error) {
	return s.repo.ListRecentWorkoutSessions(ctx, userID, limit)
}
