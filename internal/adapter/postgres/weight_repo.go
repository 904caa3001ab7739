package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"fitstats/internal/domain"
)

var _ domain.WeightRepository = (*DB)(nil)

// AddWeightSample inserts a weight sample.
func (d *DB) AddWeightSample(ctx context.Context, s domain.WeightSample) (int64, error) {
	var id int64
	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO weight_samples(user_id, weight, bmi, note, recorded_at) VALUES($1, $2, $3, $4, $5) RETURNING id;",
		s.UserID, s.Weight, floatArg(s.BMI), s.Note, s.Date.UTC(),
	).Scan(&id)
	return id, err
}

// DeleteLatestWeightSample removes the user's most recent weight sample.
func (d *DB) DeleteLatestWeightSample(ctx context.Context, userID int64) (bool, error) {
	var id int64
	err := d.sql.QueryRowContext(ctx,
		"SELECT id FROM weight_samples WHERE user_id=$1 ORDER BY recorded_at DESC, id DESC LIMIT 1;", userID,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	_, err = d.sql.ExecContext(ctx, "DELETE FROM weight_samples WHERE id=$1 AND user_id=$2;", id, userID)
	return err == nil, err
}

// GetWeightSample returns one of the user's weight samples, or nil.
func (d *DB) GetWeightSample(ctx context.Context, userID, id int64) (*domain.WeightSample, error) {
	out, err := d.queryWeights(ctx,
		"SELECT id, user_id, weight, bmi, note, recorded_at FROM weight_samples WHERE id=$1 AND user_id=$2;",
		id, userID)
	if err != nil || len(out) == 0 {
		return nil, err
	}
	return &out[0], nil
}

// UpdateWeightSample overwrites a weight sample, scoped to its owner.
func (d *DB) UpdateWeightSample(ctx context.Context, s domain.WeightSample) (bool, error) {
	res, err := d.sql.ExecContext(ctx,
		"UPDATE weight_samples SET weight=$1, bmi=$2, note=$3, recorded_at=$4 WHERE id=$5 AND user_id=$6;",
		s.Weight, floatArg(s.BMI), s.Note, s.Date.UTC(), s.ID, s.UserID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// DeleteWeightSample removes a weight sample by ID, scoped to a user.
func (d *DB) DeleteWeightSample(ctx context.Context, userID, id int64) (bool, error) {
	return d.deleteOwned(ctx, "DELETE FROM weight_samples WHERE id=$1 AND user_id=$2;", id, userID)
}

// ListRecentWeightSamples returns the most recent weight samples up to limit.
func (d *DB) ListRecentWeightSamples(ctx context.Context, userID int64, limit int) ([]domain.WeightSample, error) {
	return d.queryWeights(ctx,
		"SELECT id, user_id, weight, bmi, note, recorded_at FROM weight_samples WHERE user_id=$1 ORDER BY recorded_at DESC LIMIT $2;",
		userID, limit)
}

// WeightSamplesBetween returns the user's weight samples in [start, end).
func (d *DB) WeightSamplesBetween(ctx context.Context, userID int64, start, end time.Time) ([]domain.WeightSample, error) {
	return d.queryWeights(ctx,
		"SELECT id, user_id, weight, bmi, note, recorded_at FROM weight_samples WHERE user_id=$1 AND recorded_at >= $2 AND recorded_at < $3;",
		userID, start.UTC(), end.UTC())
}

func (d *DB) queryWeights(ctx context.Context, query string, args ...any) ([]domain.WeightSample, error) {
	rows, err := d.sql.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var out []domain.WeightSample
	for rows.Next() {
		var (
			s   domain.WeightSample
			bmi sql.NullFloat64
		)
		if err := rows.Scan(&s.ID, &s.UserID, &s.Weight, &bmi, &s.Note, &s.Date); err != nil {
			return nil, err
		}
		s.BMI = nullFloat(bmi)
		out = append(out, s)
	}
	return out, rows.Err()
}
