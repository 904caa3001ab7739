package domain

import (
	"context"
	"time"
)

// WaterIntake records a drink of Amount millilitres.
type WaterIntake struct {
	ID     int64     `json:"id"`
	UserID int64     `json:"userId"`
	Amount int       `json:"amount"`
	Date   time.Time `json:"date"`
}

// WaterSource returns a user's water intakes in [start, end), in any order.
type WaterSource interface {
	WaterIntakesBetween(ctx context.Context, userID int64, start, end time.Time) ([]WaterIntake, error)
}

// WaterRepository is the port for water persistence.
type WaterRepository interface {
	WaterSource
	AddWaterIntake(ctx context.Context, w WaterIntake) (int64, error)
	DeleteWaterIntake(ctx context.Context, userID int64, id int64) (bool, error)
	ListRecentWaterIntakes(ctx context.Context, userID int64, limit int) ([]WaterIntake, error)
}
