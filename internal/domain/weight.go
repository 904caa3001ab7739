package domain

import (
	"context"
	"time"
)

// WeightSample is a single point-in-time body weight measurement in kg.
type WeightSample struct {
	ID     int64     `json:"id"`
	UserID int64     `json:"userId"`
	Weight float64   `json:"weight"`
	BMI    *float64  `json:"bmi"`
	Note   string    `json:"note,omitempty"`
	Date   time.Time `json:"date"`
}

// WeightSource returns a user's weight samples in [start, end), in any order.
type WeightSource interface {
	WeightSamplesBetween(ctx context.Context, userID int64, start, end time.Time) ([]WeightSample, error)
}

// WeightRepository is the port for weight persistence.
type WeightRepository interface {
	WeightSource
	AddWeightSample(ctx context.Context, s WeightSample) (int64, error)
	DeleteLatestWeightSample(ctx context.Context, userID int64) (bool, error)
	ListRecentWeightSamples(ctx context.Context, userID int64, limit int) ([]WeightSample, error)

	// GetWeightSample returns nil when the user has no sample with that ID.
	GetWeightSample(ctx context.Context, userID, id int64) (*WeightSample, error)
	// UpdateWeightSample overwrites the sample matching s.ID and s.UserID and
	// reports whether one did.
	UpdateWeightSample(ctx context.Context, s WeightSample) (bool, error)
	DeleteWeightSample(ctx context.Context, userID, id int64) (bool, error)
}
