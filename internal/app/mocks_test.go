package app_test

import (
	"context"
	"time"

	"fitstats/internal/domain"
)

// Function-field mocks for the sample repositories.

type mockWeightRepo struct {
	addFn    func(ctx context.Context, s domain.WeightSample) (int64, error)
	deleteFn func(ctx context.Context, userID int64) (bool, error)
	getFn    func(ctx context.Context, userID, id int64) (*domain.WeightSample, error)
	updateFn func(ctx context.Context, s domain.WeightSample) (bool, error)
	delByID  func(ctx context.Context, userID, id int64) (bool, error)
	listFn   func(ctx context.Context, userID int64, limit int) ([]domain.WeightSample, error)
	rangeFn  func(ctx context.Context, userID int64, start, end time.Time) ([]domain.WeightSample, error)
}

func (m *mockWeightRepo) AddWeightSample(ctx context.Context, s domain.WeightSample) (int64, error) {
	if m.addFn != nil {
		return m.addFn(ctx, s)
	}
	return 1, nil
}

func (m *mockWeightRepo) DeleteLatestWeightSample(ctx context.Context, userID int64) (bool, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID)
	}
	return false, nil
}

func (m *mockWeightRepo) GetWeightSample(ctx context.Context, userID, id int64) (*domain.WeightSample, error) {
	if m.getFn != nil {
		return m.getFn(ctx, userID, id)
	}
	return nil, nil
}

func (m *mockWeightRepo) UpdateWeightSample(ctx context.Context, s domain.WeightSample) (bool, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, s)
	}
	return true, nil
}

func (m *mockWeightRepo) DeleteWeightSample(ctx context.Context, userID, id int64) (bool, error) {
	if m.delByID != nil {
		return m.delByID(ctx, userID, id)
	}
	return false, nil
}

func (m *mockWeightRepo) ListRecentWeightSamples(ctx context.Context, userID int64, limit int) ([]domain.WeightSample, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID, limit)
	}
	return nil, nil
}

func (m *mockWeightRepo) WeightSamplesBetween(ctx context.Context, userID int64, start, end time.Time) ([]domain.WeightSample, error) {
	if m.rangeFn != nil {
		return m.rangeFn(ctx, userID, start, end)
	}
	return nil, nil
}

type mockWaterRepo struct {
	addFn   func(ctx context.Context, w domain.WaterIntake) (int64, error)
	delFn   func(ctx context.Context, userID int64, id int64) (bool, error)
	listFn  func(ctx context.Context, userID int64, limit int) ([]domain.WaterIntake, error)
	rangeFn func(ctx context.Context, userID int64, start, end time.Time) ([]domain.WaterIntake, error)
}

func (m *mockWaterRepo) AddWaterIntake(ctx context.Context, w domain.WaterIntake) (int64, error) {
	if m.addFn != nil {
		return m.addFn(ctx, w)
	}
	return 1, nil
}

func (m *mockWaterRepo) DeleteWaterIntake(ctx context.Context, userID int64, id int64) (bool, error) {
	if m.delFn != nil {
		return m.delFn(ctx, userID, id)
	}
	return false, nil
}

func (m *mockWaterRepo) ListRecentWaterIntakes(ctx context.Context, userID int64, limit int) ([]domain.WaterIntake, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID, limit)
	}
	return nil, nil
}

func (m *mockWaterRepo) WaterIntakesBetween(ctx context.Context, userID int64, start, end time.Time) ([]domain.WaterIntake, error) {
	if m.rangeFn != nil {
		return m.rangeFn(ctx, userID, start, end)
	}
	return nil, nil
}

type mockWorkoutRepo struct {
	addFn   func(ctx context.Context, w domain.WorkoutSession) (int64, error)
	listFn  func(ctx context.Context, userID int64, limit int) ([]domain.WorkoutSession, error)
	rangeFn func(ctx context.Context, userID int64, start, end time.Time) ([]domain.WorkoutSession, error)
}

func (m *mockWorkoutRepo) AddWorkoutSession(ctx context.Context, w domain.WorkoutSession) (int64, error) {
	if m.addFn != nil {
		return m.addFn(ctx, w)
	}
	return 1, nil
}

func (m *mockWorkoutRepo) ListRecentWorkoutSessions(ctx context.Context, userID int64, limit int) ([]domain.WorkoutSession, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID, limit)
	}
	return nil, nil
}

func (m *mockWorkoutRepo) WorkoutSessionsBetween(ctx context.Context, userID int64, start, end time.Time) ([]domain.WorkoutSession, error) {
	if m.rangeFn != nil {
		return m.rangeFn(ctx, userID, start, end)
	}
	return nil, nil
}

type mockNutritionRepo struct {
	addFn   func(ctx context.Context, n domain.NutritionEntry) (int64, error)
	delFn   func(ctx context.Context, userID, id int64) (bool, error)
	listFn  func(ctx context.Context, userID int64, limit int) ([]domain.NutritionEntry, error)
	rangeFn func(ctx context.Context, userID int64, start, end time.Time) ([]domain.NutritionEntry, error)
}

func (m *mockNutritionRepo) AddNutritionEntry(ctx context.Context, n domain.NutritionEntry) (int64, error) {
	if m.addFn != nil {
		return m.addFn(ctx, n)
	}
	return 1, nil
}

func (m *mockNutritionRepo) ListRecentNutritionEntries(ctx context.Context, userID int64, limit int) ([]domain.NutritionEntry, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID, limit)
	}
	return nil, nil
}

func (m *mockNutritionRepo) DeleteNutritionEntry(ctx context.Context, userID, id int64) (bool, error) {
	if m.delFn != nil {
		return m.delFn(ctx, userID, id)
	}
	return false, nil
}

func (m *mockNutritionRepo) NutritionEntriesBetween(ctx context.Context, userID int64, start, end time.Time) ([]domain.NutritionEntry, error) {
	if m.rangeFn != nil {
		return m.rangeFn(ctx, userID, start, end)
	}
	return nil, nil
}

type mockStepRepo struct {
	upsertFn func(ctx context.Context, s domain.StepCount, dayStart, dayEnd time.Time) (int64, error)
	listFn   func(ctx context.Context, userID int64, limit int) ([]domain.StepCount, error)
	rangeFn  func(ctx context.Context, userID int64, start, end time.Time) ([]domain.StepCount, error)
}

func (m *mockStepRepo) UpsertStepCount(ctx context.Context, s domain.StepCount, dayStart, dayEnd time.Time) (int64, error) {
	if m.upsertFn != nil {
		return m.upsertFn(ctx, s, dayStart, dayEnd)
	}
	return 1, nil
}

func (m *mockStepRepo) ListRecentStepCounts(ctx context.Context, userID int64, limit int) ([]domain.StepCount, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID, limit)
	}
	return nil, nil
}

func (m *mockStepRepo) StepCountsBetween(ctx context.Context, userID int64, start, end time.Time) ([]domain.StepCount, error) {
	if m.rangeFn != nil {
		return m.rangeFn(ctx, userID, start, end)
	}
	return nil, nil
}

type mockProfileRepo struct {
	profile *domain.Profile
	getErr  error
	saved   []domain.Profile
}

func (m *mockProfileRepo) GetProfile(_ context.Context, userID int64) (*domain.Profile, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if m.profile == nil || m.profile.UserID != userID {
		return nil, nil
	}
	p := *m.profile
	return &p, nil
}

func (m *mockProfileRepo) SaveProfile(_ context.Context, p domain.Profile) error {
	m.saved = append(m.saved, p)
	m.profile = &p
	return nil
}
