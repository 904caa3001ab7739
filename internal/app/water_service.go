package app

import (
	"context"
	"time"

	"fitstats/internal/domain"
)

// WaterService encapsulates water-tracking use cases.
type WaterService struct {
	repo domain.WaterRepository
	now  func() time.Time
}

// NewWaterService creates a WaterService backed by the given repository.
func NewWaterService(repo domain.WaterRepository) *WaterService {
	return &WaterService{repo: repo, now: time.Now}
}

// RecordIntake validates and stores a water intake of amount millilitres.
func (s *WaterService) RecordIntake(ctx context.Context, userID int64, amount int, at *time.Time) (*domain.WaterIntake, error) {
	if amount < 1 || amount > 5000 {
		return nil, domain.Validationf("amount must be within [1, 5000] ml")
	}
	w := domain.WaterIntake{UserID: userID, Amount: amount, Date: sampleTime(at, s.now)}
	id, err := s.repo.AddWaterIntake(ctx, w)
	if err != nil {
		return nil, err
	}
	w.ID = id
	return &w, nil
}

// ListRecent returns the most recent water intakes up to limit.
func (s *WaterService) ListRecent(ctx context.Context, userID int64, limit int) ([]domain.WaterIntake, error) {
	return s.repo.ListRecentWaterIntakes(ctx, userID, limit)
}

// UndoLast deletes the most recent water intake.
func (s *WaterService) UndoLast(ctx context.Context, userID int64) (bool, int64, error) {
	items, err := s.repo.ListRecentWaterIntakes(ctx, userID, 1)
	if err != nil {
		return false, 0, err
	}
	if len(items) == 0 {
		return false, 0, nil
	}
	ok, err := s.repo.DeleteWaterIntake(ctx, userID, items[0].ID)
	if err != nil {
		return false, 0, err
	}
	return ok, items[0].ID, nil
}

// Delete removes one of the user's water intakes.
func (s *WaterService) Delete(ctx context.Context, userID, id int64) error {
	ok, err := s.repo.DeleteWaterIntake(ctx, userID, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}
