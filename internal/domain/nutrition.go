package domain

import (
	"context"
	"time"
)

// Meal types accepted for nutrition entries.
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
)

// NutritionEntry is a single food log. Macros are grams and optional.
type NutritionEntry struct {
	ID       int64     `json:"id"`
	UserID   int64     `json:"userId"`
	MealType string    `json:"mealType"`
	FoodName string    `json:"foodName"`
	Calories float64   `json:"calories"`
	Protein  *float64  `json:"protein"`
	Carbs    *float64  `json:"carbs"`
	Fat      *float64  `json:"fat"`
	Date     time.Time `json:"date"`
}

// NutritionSource returns a user's nutrition entries in [start, end), in any order.
type NutritionSource interface {
	NutritionEntriesBetween(ctx context.Context, userID int64, start, end time.Time) ([]NutritionEntry, error)
}

// NutritionRepository is the port for nutrition persistence.
type NutritionRepository interface {
	NutritionSource
	AddNutritionEntry(ctx context.Context, n NutritionEntry) (int64, error)
	ListRecentNutritionEntries(ctx context.Context, userID int64, limit int) ([]NutritionEntry, error)
	DeleteNutritionEntry(ctx context.Context, userID, id int64) (bool, error)
}

// ValueOrZero dereferences an optional quantity.
func ValueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
