package app

import (
	"context"
	"strings"
	"time"

	"fitstats/internal/domain"
)

// NutritionInput is a food log to record.
type NutritionInput struct {
	MealType string
	FoodName string
	Calories float64
	Protein  *float64
	Carbs    *float64
	Fat      *float64
	Date     *time.Time
}

// NutritionService encapsulates food logging use cases.
type NutritionService struct {
	repo domain.NutritionRepository
	now  func() time.Time
}

// NewNutritionService creates a NutritionService backed by the given repository.
func NewNutritionService(repo domain.NutritionRepository) *NutritionService {
	return &NutritionService{repo: repo, now: time.Now}
}

// RecordEntry validates and stores a nutrition entry.
func (s *NutritionService) RecordEntry(ctx context.Context, userID int64, in NutritionInput) (*domain.NutritionEntry, error) {
	switch in.MealType {
	case domain.MealBreakfast, domain.MealLunch, domain.MealDinner, domain.MealSnack:
	default:
		return nil, domain.Validationf("mealType must be one of breakfast, lunch, dinner, snack")
	}
	food := strings.TrimSpace(in.FoodName)
	if food == "" {
		return nil, domain.Validationf("foodName is required")
	}
	if in.Calories < 0 {
		return nil, domain.Validationf("calories must be >= 0")
	}
	macros := []struct {
		name string
		v    *float64
	}{{"protein", in.Protein}, {"carbs", in.Carbs}, {"fat", in.Fat}}
	for _, m := range macros {
		if m.v != nil && *m.v < 0 {
			return nil, domain.Validationf("%s must be >= 0", m.name)
		}
	}

	e := domain.NutritionEntry{
		UserID:   userID,
		MealType: in.MealType,
		FoodName: food,
		Calories: in.Calories,
		Protein:  in.Protein,
		Carbs:    in.Carbs,
		Fat:      in.Fat,
		Date:     sampleTime(in.Date, s.now),
	}
	id, err := s.repo.AddNutritionEntry(ctx, e)
	if err != nil {
		return nil, err
	}
	e.ID = id
	return &e, nil
}

// ListRecent returns the most recent nutrition entries up to limit.
func (s *NutritionService) ListRecent(ctx context.Context, userID int64, limit int) ([]domain.NutritionEntry, error) {
	return s.repo.ListRecentNutritionEntries(ctx, userID, limit)
}

// Delete removes one of the user's nutrition entries.
func (s *NutritionService) Delete(ctx context.Context, userID, id int64) error {
	ok, err := s.repo.DeleteNutritionEntry(ctx, userID, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}
