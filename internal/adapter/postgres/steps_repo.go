package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"fitstats/internal/domain"
)

var _ domain.StepRepository = (*DB)(nil)

// stepLockSpace is the first key of the advisory locks taken by
// UpsertStepCount; the second is the user ID.
const stepLockSpace int32 = 0x5374

// UpsertStepCount replaces the user's step count for [dayStart, dayEnd) or
// inserts a new row. Upserts of one user are serialized on a transaction
// scoped advisory lock, so concurrent first writes of a day cannot both
// insert.
func (d *DB) UpsertStepCount(ctx context.Context, s domain.StepCount, dayStart, dayEnd time.Time) (int64, error) {
	tx, err := d.sql.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1, $2);", stepLockSpace, int32(s.UserID)); err != nil {
		return 0, err
	}

	var id int64
	err = tx.QueryRowContext(ctx,
		"SELECT id FROM step_counts WHERE user_id=$1 AND recorded_at >= $2 AND recorded_at < $3 ORDER BY id LIMIT 1 FOR UPDATE;",
		s.UserID, dayStart.UTC(), dayEnd.UTC(),
	).Scan(&id)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		err = tx.QueryRowContext(ctx,
			"INSERT INTO step_counts(user_id, steps, recorded_at) VALUES($1, $2, $3) RETURNING id;",
			s.UserID, s.Steps, s.Date.UTC(),
		).Scan(&id)
	case err == nil:
		_, err = tx.ExecContext(ctx,
			"UPDATE step_counts SET steps=$1, recorded_at=$2 WHERE id=$3;",
			s.Steps, s.Date.UTC(), id)
	}
	if err != nil {
		return 0, err
	}
	return id, tx.Commit()
}

// ListRecentStepCounts returns the most recent step counts up to limit.
func (d *DB) ListRecentStepCounts(ctx context.Context, userID int64, limit int) ([]domain.StepCount, error) {
	return d.querySteps(ctx,
		"SELECT id, user_id, steps, recorded_at FROM step_counts WHERE user_id=$1 ORDER BY recorded_at DESC LIMIT $2;",
		userID, limit)
}

// StepCountsBetween returns the user's step counts in [start, end).
func (d *DB) StepCountsBetween(ctx context.Context, userID int64, start, end time.Time) ([]domain.StepCount, error) {
	return d.querySteps(ctx,
		"SELECT id, user_id, steps, recorded_at FROM step_counts WHERE user_id=$1 AND recorded_at >= $2 AND recorded_at < $3;",
		userID, start.UTC(), end.UTC())
}

func (d *DB) querySteps(ctx context.Context, query string, args ...any) ([]domain.StepCount, error) {
	rows, err := d.sql.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var out []domain.StepCount
	for rows.Next() {
		var s domain.StepCount
		if err := rows.Scan(&s.ID, &s.UserID, &s.Steps, &s.Date); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
