package domain

import (
	"context"
	"time"
)

// Genders accepted on a profile.
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// Goal types a profile may declare.
const (
	GoalLoseWeight  = "LOSE_WEIGHT"
	GoalGainWeight  = "GAIN_WEIGHT"
	GoalBuildMuscle = "BUILD_MUSCLE"
	GoalMaintain    = "MAINTAIN"
	GoalGetFit      = "GET_FIT"
)

// DefaultActivityLevel is the sedentary activity multiplier.
const DefaultActivityLevel = 1.2

// Profile holds the body measurements and goals of a user. There is at most
// one profile per user.
type Profile struct {
	UserID        int64     `json:"userId"`
	Age           int       `json:"age"`
	Gender        string    `json:"gender"`
	HeightCm      float64   `json:"height"`
	WeightKg      float64   `json:"weight"`
	GoalWeight    *float64  `json:"goalWeight"`
	GoalType      string    `json:"goalType,omitempty"`
	ActivityLevel float64   `json:"activityLevel"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ProfileSource returns a user's profile, or nil when none was saved.
type ProfileSource interface {
	GetProfile(ctx context.Context, userID int64) (*Profile, error)
}

// ProfileRepository is the port for profile persistence.
type ProfileRepository interface {
	ProfileSource
	SaveProfile(ctx context.Context, p Profile) error
}
