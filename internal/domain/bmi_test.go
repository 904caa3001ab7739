package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fitstats/internal/domain"
)

func TestCalculateBMI(t *testing.T) {
	tests := []struct {
		name     string
		weight   float64
		heightCm float64
		want     float64
	}{
		{"typical", 80, 180, 24.7},
		{"short", 50, 150, 22.2},
		{"zero height", 80, 0, 0},
		{"negative height", 80, -170, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, domain.CalculateBMI(tc.weight, tc.heightCm), 0.001)
		})
	}
}

func TestBMICategory(t *testing.T) {
	assert.Equal(t, "", domain.BMICategory(0))
	assert.Equal(t, "underweight", domain.BMICategory(17.9))
	assert.Equal(t, "normal", domain.BMICategory(18.5))
	assert.Equal(t, "overweight", domain.BMICategory(25))
	assert.Equal(t, "obese", domain.BMICategory(30))
}

func TestCalculateDailyCalories(t *testing.T) {
	// 10*80 + 6.25*180 - 5*30 + 5 = 1780, sedentary
	assert.Equal(t, 2136.0, domain.CalculateDailyCalories(domain.GenderMale, 30, 80, 180, 1.2))
	// 10*60 + 6.25*165 - 5*25 - 161 = 1345.25, times 1.55 rounds to 2085
	assert.Equal(t, 2085.0, domain.CalculateDailyCalories(domain.GenderFemale, 25, 60, 165, 1.55))
}

func TestDataAccessErrorUnwrap(t *testing.T) {
	cause := assert.AnError
	err := &domain.DataAccessError{Source: "water", Err: cause}
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "water")
}
