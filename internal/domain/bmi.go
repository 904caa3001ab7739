package domain

import "math"

// CalculateBMI returns weightKg / heightM², rounded to one decimal.
// Returns 0 for a non-positive height.
func CalculateBMI(weightKg, heightCm float64) float64 {
	heightM := heightCm / 100
	if heightM <= 0 {
		return 0
	}
	return math.Round(weightKg/(heightM*heightM)*10) / 10
}

// BMICategory maps a BMI value to its WHO adult category.
func BMICategory(bmi float64) string {
	switch {
	case bmi == 0:
		return ""
	case bmi < 18.5:
		return "underweight"
	case bmi < 25:
		return "normal"
	case bmi < 30:
		return "overweight"
	default:
		return "obese"
	}
}

// CalculateDailyCalories estimates the daily energy need in kcal with the
// Mifflin-St Jeor equation scaled by activity, rounded to a whole number.
func CalculateDailyCalories(gender string, age int, weightKg, heightCm, activity float64) float64 {
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if gender == GenderMale {
		bmr += 5
	} else {
		bmr -= 161
	}
	return math.Round(bmr * activity)
}
