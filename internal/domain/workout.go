package domain

import (
	"context"
	"time"
)

// WorkoutSession is a logged training session. Duration is in minutes and
// may be unknown.
type WorkoutSession struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Name      string    `json:"name"`
	Duration  *int      `json:"duration"`
	Completed bool      `json:"completed"`
	Notes     string    `json:"notes,omitempty"`
	Date      time.Time `json:"date"`
}

// Minutes returns the session duration, treating an unknown duration as 0.
func (w WorkoutSession) Minutes() int {
	if w.Duration == nil {
		return 0
	}
	return *w.Duration
}

// WorkoutSource returns a user's workout sessions in [start, end), in any order.
type WorkoutSource interface {
	WorkoutSessionsBetween(ctx context.Context, userID int64, start, end time.Time) ([]WorkoutSession, error)
}

// WorkoutRepository is the port for workout log persistence.
type WorkoutRepository interface {
	WorkoutSource
	AddWorkoutSession(ctx context.Context, w WorkoutSession) (int64, error)
	ListRecentWorkoutSessions(ctx context.Context, userID int64, limit int) ([]WorkoutSession, error)
}
