package postgres

import (
	"context"
	"database/sql"
	"errors"

	"fitstats/internal/domain"
)

var _ domain.ProfileRepository = (*DB)(nil)

// GetProfile returns the user's profile, or nil when none was saved.
func (d *DB) GetProfile(ctx context.Context, userID int64) (*domain.Profile, error) {
	var (
		p    domain.Profile
		goal sql.NullFloat64
	)
	err := d.sql.QueryRowContext(ctx,
		"SELECT user_id, age, gender, height_cm, weight_kg, goal_weight, goal_type, activity_level, updated_at FROM profiles WHERE user_id=$1;",
		userID,
	).Scan(&p.UserID, &p.Age, &p.Gender, &p.HeightCm, &p.WeightKg, &goal, &p.GoalType, &p.ActivityLevel, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	p.GoalWeight = nullFloat(goal)
	return &p, nil
}

// SaveProfile creates or replaces the user's profile.
func (d *DB) SaveProfile(ctx context.Context, p domain.Profile) error {
	_, err := d.sql.ExecContext(ctx,
		`INSERT INTO profiles(user_id, age, gender, height_cm, weight_kg, goal_weight, goal_type, activity_level, updated_at)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (user_id) DO UPDATE SET age=EXCLUDED.age, gender=EXCLUDED.gender, height_cm=EXCLUDED.height_cm,
			weight_kg=EXCLUDED.weight_kg, goal_weight=EXCLUDED.goal_weight, goal_type=EXCLUDED.goal_type,
			activity_level=EXCLUDED.activity_level, updated_at=EXCLUDED.updated_at;`,
		p.UserID, p.Age, p.Gender, p.HeightCm, p.WeightKg, floatArg(p.GoalWeight), p.GoalType, p.ActivityLevel, p.UpdatedAt.UTC(),
	)
	return err
}
