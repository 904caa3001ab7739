package postgres

import (
	"context"
	"database/sql"
	"time"

	"fitstats/internal/domain"
)

var _ domain.NutritionRepository = (*DB)(nil)

// AddNutritionEntry inserts a nutrition entry.
func (d *DB) AddNutritionEntry(ctx context.Context, n domain.NutritionEntry) (int64, error) {
	var id int64
	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO nutrition_entries(user_id, meal_type, food_name, calories, protein, carbs, fat, recorded_at) VALUES($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id;",
		n.UserID, n.MealType, n.FoodName, n.Calories, floatArg(n.Protein), floatArg(n.Carbs), floatArg(n.Fat), n.Date.UTC(),
	).Scan(&id)
	return id, err
}

// ListRecentNutritionEntries returns the most recent nutrition entries up to limit.
func (d *DB) ListRecentNutritionEntries(ctx context.Context, userID int64, limit int) ([]domain.NutritionEntry, error) {
	return d.queryNutrition(ctx,
		"SELECT id, user_id, meal_type, food_name, calories, protein, carbs, fat, recorded_at FROM nutrition_entries WHERE user_id=$1 ORDER BY recorded_at DESC LIMIT $2;",
		userID, limit)
}

// DeleteNutritionEntry removes a nutrition entry by ID, scoped to a user.
func (d *DB) DeleteNutritionEntry(ctx context.Context, userID, id int64) (bool, error) {
	return d.deleteOwned(ctx, "DELETE FROM nutrition_entries WHERE id=$1 AND user_id=$2;", id, userID)
}

// NutritionEntriesBetween returns the user's nutrition entries in [start, end).
func (d *DB) NutritionEntriesBetween(ctx context.Context, userID int64, start, end time.Time) ([]domain.NutritionEntry, error) {
	return d.queryNutrition(ctx,
		"SELECT id, user_id, meal_type, food_name, calories, protein, carbs, fat, recorded_at FROM nutrition_entries WHERE user_id=$1 AND recorded_at >= $2 AND recorded_at < $3;",
		userID, start.UTC(), end.UTC())
}

func (d *DB) queryNutrition(ctx context.Context, query string, args ...any) ([]domain.NutritionEntry, error) {
	rows, err := d.sql.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var out []domain.NutritionEntry
	for rows.Next() {
		var (
			n                   domain.NutritionEntry
			protein, carbs, fat sql.NullFloat64
		)
		if err := rows.Scan(&n.ID, &n.UserID, &n.MealType, &n.FoodName, &n.Calories, &protein, &carbs, &fat, &n.Date); err != nil {
			return nil, err
		}
		n.Protein, n.Carbs, n.Fat = nullFloat(protein), nullFloat(carbs), nullFloat(fat)
		out = append(out, n)
	}
	return out, rows.Err()
}
