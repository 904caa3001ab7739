package postgres

import (
	"context"
	"time"

	"fitstats/internal/domain"
)

var _ domain.WaterRepository = (*DB)(nil)

// AddWaterIntake inserts a water intake.
func (d *DB) AddWaterIntake(ctx context.Context, w domain.WaterIntake) (int64, error) {
	var id int64
	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO water_intakes(user_id, amount, recorded_at) VALUES($1, $2, $3) RETURNING id;",
		w.UserID, w.Amount, w.Date.UTC(),
	).Scan(&id)
	return id, err
}

// DeleteWaterIntake removes a water intake by ID, scoped to a user.
func (d *DB) DeleteWaterIntake(ctx context.Context, userID int64, id int64) (bool, error) {
	return d.deleteOwned(ctx, "DELETE FROM water_intakes WHERE id=$1 AND user_id=$2;", id, userID)
}

// ListRecentWaterIntakes returns the most recent water intakes up to limit for a user.
func (d *DB) ListRecentWaterIntakes(ctx context.Context, userID int64, limit int) ([]domain.WaterIntake, error) {
	return d.queryWater(ctx,
		"SELECT id, user_id, amount, recorded_at FROM water_intakes WHERE user_id=$1 ORDER BY recorded_at DESC LIMIT $2;",
		userID, limit)
}

// WaterIntakesBetween returns the user's water intakes in [start, end).
func (d *DB) WaterIntakesBetween(ctx context.Context, userID int64, start, end time.Time) ([]domain.WaterIntake, error) {
	return d.queryWater(ctx,
		"SELECT id, user_id, amount, recorded_at FROM water_intakes WHERE user_id=$1 AND recorded_at >= $2 AND recorded_at < $3;",
		userID, start.UTC(), end.UTC())
}

func (d *DB) queryWater(ctx context.Context, query string, args ...any) ([]domain.WaterIntake, error) {
	rows, err := d.sql.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var out []domain.WaterIntake
	for rows.Next() {
		var w domain.WaterIntake
		if err := rows.Scan(&w.ID, &w.UserID, &w.Amount, &w.Date); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}
