package domain

import (
	"context"
	"time"
)

// StepCount is a step total reported for the day containing Date.
type StepCount struct {
	ID     int64     `json:"id"`
	UserID int64     `json:"userId"`
	Steps  int       `json:"steps"`
	Date   time.Time `json:"date"`
}

// StepSource returns a user's step counts in [start, end), in any order.
type StepSource interface {
	StepCountsBetween(ctx context.Context, userID int64, start, end time.Time) ([]StepCount, error)
}

// StepRepository is the port for step persistence. UpsertStepCount replaces
// the first existing row in [dayStart, dayEnd) or inserts a new one.
type StepRepository interface {
	StepSource
	UpsertStepCount(ctx context.Context, s StepCount, dayStart, dayEnd time.Time) (int64, error)
	ListRecentStepCounts(ctx context.Context, userID int64, limit int) ([]StepCount, error)
}
