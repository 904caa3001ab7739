package app

import (
	"context"
	"time"
	"unicode/utf8"

	"fitstats/internal/domain"
)

// WeightInput is a weight measurement to record. When BMI is unset it is
// derived from HeightCm, or from the stored profile height when HeightCm is
// not positive.
type WeightInput struct {
	Weight   float64
	BMI      *float64
	HeightCm float64
	Note     string
	Date     *time.Time
}

func (in WeightInput) validate() error {
	if in.Weight < 20 || in.Weight > 300 {
		return domain.Validationf("weight must be within [20, 300] kg")
	}
	if in.BMI != nil && (*in.BMI < 10 || *in.BMI > 60) {
		return domain.Validationf("bmi must be within [10, 60]")
	}
	if utf8.RuneCountInString(in.Note) > 500 {
		return domain.Validationf("note must be at most 500 characters")
	}
	return nil
}

// WeightService encapsulates weight-tracking use cases.
type WeightService struct {
	repo     domain.WeightRepository
	profiles domain.ProfileSource
	now      func() time.Time
}

// NewWeightService creates a WeightService backed by the given repository.
func NewWeightService(repo domain.WeightRepository) *WeightService {
	return &WeightService{repo: repo, now: time.Now}
}

// WithProfiles makes BMI fall back to the height stored in the user's profile.
func (s *WeightService) WithProfiles(p domain.ProfileSource) *WeightService {
	s.profiles = p
	return s
}

// RecordWeight validates and stores a new weight sample.
func (s *WeightService) RecordWeight(ctx context.Context, userID int64, in WeightInput) (*domain.WeightSample, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	bmi, err := s.bmiFor(ctx, userID, in)
	if err != nil {
		return nil, err
	}

	sample := domain.WeightSample{
		UserID: userID,
		Weight: in.Weight,
		BMI:    bmi,
		Note:   in.Note,
		Date:   sampleTime(in.Date, s.now),
	}
	id, err := s.repo.AddWeightSample(ctx, sample)
	if err != nil {
		return nil, err
	}
	sample.ID = id
	return &sample, nil
}

// ListRecent returns the most recent weight samples up to limit.
func (s *WeightService) ListRecent(ctx context.Context, userID int64, limit int) ([]domain.WeightSample, error) {
	return s.repo.ListRecentWeightSamples(ctx, userID, limit)
}

// Get returns one of the user's weight samples, or ErrNotFound.
func (s *WeightService) Get(ctx context.Context, userID, id int64) (*domain.WeightSample, error) {
	w, err := s.repo.GetWeightSample(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, domain.ErrNotFound
	}
	return w, nil
}

// Update replaces the weight of a stored sample. An empty note or a missing
// date keeps the stored one; BMI is re-derived unless given.
func (s *WeightService) Update(ctx context.Context, userID, id int64, in WeightInput) (*domain.WeightSample, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	cur, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	bmi, err := s.bmiFor(ctx, userID, in)
	if err != nil {
		return nil, err
	}

	cur.Weight = in.Weight
	if bmi != nil {
		cur.BMI = bmi
	}
	if in.Note != "" {
		cur.Note = in.Note
	}
	if in.Date != nil && !in.Date.IsZero() {
		cur.Date = *in.Date
	}

	ok, err := s.repo.UpdateWeightSample(ctx, *cur)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cur, nil
}

// Delete removes one of the user's weight samples.
func (s *WeightService) Delete(ctx context.Context, userID, id int64) error {
	ok, err := s.repo.DeleteWeightSample(ctx, userID, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// UndoLast deletes the most recent weight sample.
func (s *WeightService) UndoLast(ctx context.Context, userID int64) (bool, error) {
	return s.repo.DeleteLatestWeightSample(ctx, userID)
}

// bmiFor returns the explicit BMI of in, or one derived from a known height.
// It returns nil when no height is known.
func (s *WeightService) bmiFor(ctx context.Context, userID int64, in WeightInput) (*float64, error) {
	if in.BMI != nil {
		return in.BMI, nil
	}
	height := in.HeightCm
	if height <= 0 && s.profiles != nil {
		p, err := s.profiles.GetProfile(ctx, userID)
		if err != nil {
			return nil, err
		}
		if p != nil {
			height = p.HeightCm
		}
	}
	if height <= 0 {
		return nil, nil
	}
	bmi := domain.CalculateBMI(in.Weight, height)
	return &bmi, nil
}

func sampleTime(t *time.Time, now func() time.Time) time.Time {
	if t == nil || t.IsZero() {
		return now()
	}
	return *t
}
