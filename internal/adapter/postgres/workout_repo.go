package postgres

import (
	"context"
	"database/sql"
	"time"

	"fitstats/internal/domain"
)

var _ domain.WorkoutRepository = (*DB)(nil)

// AddWorkoutSession inserts a workout session.
func (d *DB) AddWorkoutSession(ctx context.Context, w domain.WorkoutSession) (int64, error) {
	var duration sql.NullInt64
	if w.Duration != nil {
		duration = sql.NullInt64{Int64: int64(*w.Duration), Valid: true}
	}
	var id int64
	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO workout_sessions(user_id, name, duration, completed, notes, recorded_at) VALUES($1, $2, $3, $4, $5, $6) RETURNING id;",
		w.UserID, w.Name, duration, w.Completed, w.Notes, w.Date.UTC(),
	).Scan(&id)
	return id, err
}

// ListRecentWorkoutSessions returns the most recent workout sessions up to limit.
func (d *DB) ListRecentWorkoutSessions(ctx context.Context, userID int64, limit int) ([]domain.WorkoutSession, error) {
	return d.queryWorkouts(ctx,
		"SELECT id, user_id, name, duration, completed, notes, recorded_at FROM workout_sessions WHERE user_id=$1 ORDER BY recorded_at DESC LIMIT $2;",
		userID, limit)
}

// WorkoutSessionsBetween returns the user's workout sessions in [start, end).
func (d *DB) WorkoutSessionsBetween(ctx context.Context, userID int64, start, end time.Time) ([]domain.WorkoutSession, error) {
	return d.queryWorkouts(ctx,
		"SELECT id, user_id, name, duration, completed, notes, recorded_at FROM workout_sessions WHERE user_id=$1 AND recorded_at >= $2 AND recorded_at < $3;",
		userID, start.UTC(), end.UTC())
}

func (d *DB) queryWorkouts(ctx context.Context, query string, args ...any) ([]domain.WorkoutSession, error) {
	rows, err := d.sql.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var out []domain.WorkoutSession
	for rows.Next() {
		var (
			w        domain.WorkoutSession
			duration sql.NullInt64
		)
		if err := rows.Scan(&w.ID, &w.UserID, &w.Name, &duration, &w.Completed, &w.Notes, &w.Date); err != nil {
			return nil, err
		}
		if duration.Valid {
			m := int(duration.Int64)
			w.Duration = &m
		}
		out = append(out, w)
	}
	return out, rows.Err()
}
