package app

import (
	"context"
	"strings"
	"time"

	"fitstats/internal/domain"
)

// ProfileInput is a profile to save. A zero ActivityLevel means sedentary.
type ProfileInput struct {
	Age           int
	Gender        string
	HeightCm      float64
	WeightKg      float64
	GoalWeight    *float64
	GoalType      string
	ActivityLevel float64
}

// ProfileCalculations are the figures derived from a profile.
type ProfileCalculations struct {
	BMI           float64 `json:"bmi"`
	BMICategory   string  `json:"bmiCategory"`
	DailyCalories float64 `json:"dailyCalories"`
}

// ProfileView is a stored profile with its derived figures.
type ProfileView struct {
	Profile      domain.Profile      `json:"profile"`
	Calculations ProfileCalculations `json:"calculations"`
}

// ProfileService manages body profiles and derives BMI and calorie targets
// from them.
type ProfileService struct {
	repo domain.ProfileRepository
	now  func() time.Time
}

// NewProfileService creates a ProfileService backed by the given repository.
func NewProfileService(repo domain.ProfileRepository) *ProfileService {
	return &ProfileService{repo: repo, now: time.Now}
}

// Get returns the user's profile, or ErrNotFound when none was saved.
func (s *ProfileService) Get(ctx context.Context, userID int64) (*ProfileView, error) {
	p, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return viewOf(*p), nil
}

// Save validates in and creates or replaces the user's profile.
func (s *ProfileService) Save(ctx context.Context, userID int64, in ProfileInput) (*ProfileView, error) {
	gender := strings.ToLower(strings.TrimSpace(in.Gender))
	activity := in.ActivityLevel
	if activity == 0 {
		activity = domain.DefaultActivityLevel
	}

	switch {
	case in.Age < 1 || in.Age > 120:
		return nil, domain.Validationf("age must be within [1, 120]")
	case gender != domain.GenderMale && gender != domain.GenderFemale:
		return nil, domain.Validationf("gender must be male or female")
	case in.HeightCm < 50 || in.HeightCm > 300:
		return nil, domain.Validationf("height must be within [50, 300] cm")
	case in.WeightKg < 20 || in.WeightKg > 500:
		return nil, domain.Validationf("weight must be within [20, 500] kg")
	case in.GoalWeight != nil && (*in.GoalWeight < 20 || *in.GoalWeight > 500):
		return nil, domain.Validationf("goalWeight must be within [20, 500] kg")
	case activity < 1.2 || activity > 2.5:
		return nil, domain.Validationf("activityLevel must be within [1.2, 2.5]")
	}
	switch in.GoalType {
	case "", domain.GoalLoseWeight, domain.GoalGainWeight, domain.GoalBuildMuscle, domain.GoalMaintain, domain.GoalGetFit:
	default:
		return nil, domain.Validationf("goalType %q is not supported", in.GoalType)
	}

	p := domain.Profile{
		UserID:        userID,
		Age:           in.Age,
		Gender:        gender,
		HeightCm:      in.HeightCm,
		WeightKg:      in.WeightKg,
		GoalWeight:    in.GoalWeight,
		GoalType:      in.GoalType,
		ActivityLevel: activity,
		UpdatedAt:     s.now().UTC(),
	}
	if err := s.repo.SaveProfile(ctx, p); err != nil {
		return nil, err
	}
	return viewOf(p), nil
}

func viewOf(p domain.Profile) *ProfileView {
	bmi := domain.CalculateBMI(p.WeightKg, p.HeightCm)
	return &ProfileView{
		Profile: p,
		Calculations: ProfileCalculations{
			BMI:           bmi,
			BMICategory:   domain.BMICategory(bmi),
			DailyCalories: domain.CalculateDailyCalories(p.Gender, p.Age, p.WeightKg, p.HeightCm, p.ActivityLevel),
		},
	}
}
