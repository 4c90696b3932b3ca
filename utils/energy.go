package utils

import (
	"math"
	"strings"
	"time"
)

// DefaultCalorieTarget is substituted whenever the profile is too
// incomplete to compute a TDEE.
const DefaultCalorieTarget = 2000

// EnergyProfile carries the anthropometric inputs of the estimator.
// Zero values mean "not provided".
type EnergyProfile struct {
	Gender        string
	WeightKg      float64
	HeightCm      float64
	Birthday      time.Time
	ActivityLevel string
}

// AgeFromBirthDate returns whole calendar years between birthday and now,
// decrementing by one when the anniversary has not yet occurred this year.
// ok is false for a zero birthday.
func AgeFromBirthDate(birthday, now time.Time) (int, bool) {
	if birthday.IsZero() {
		return 0, false
	}
	age := now.Year() - birthday.Year()
	if now.Before(birthday.AddDate(age, 0, 0)) {
		age--
	}
	if age < 0 {
		return 0, false
	}
	return age, true
}

// ActivityMultiplier maps an activity-level label to its TDEE multiplier.
// Matching is case-insensitive substring in priority order, so that
// "very-active" hits "very" before a generic "active" match would.
// Unknown or empty labels fall back to sedentary.
func ActivityMultiplier(label string) float64 {
	l := strings.ToLower(label)
	switch {
	case strings.Contains(l, "super"):
		return 1.9
	case strings.Contains(l, "very"):
		return 1.725
	case strings.Contains(l, "moderate"):
		return 1.55
	case strings.Contains(l, "light"):
		return 1.375
	default:
		return 1.2
	}
}

// BMR computes the Mifflin-St Jeor basal metabolic rate. ok is false when
// any of weight, height or age is missing (zero or negative). Gender
// strings starting with "f" use the female offset; everything else,
// including unspecified, defaults to male.
func BMR(gender string, weightKg, heightCm float64, ageYears int) (int, bool) {
	if weightKg <= 0 || heightCm <= 0 || ageYears <= 0 {
		return 0, false
	}
	offset := 5.0
	if strings.HasPrefix(strings.ToLower(gender), "f") {
		offset = -161
	}
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(ageYears) + offset
	return int(math.Round(bmr)), true
}

// TDEE scales the BMR by the profile's activity multiplier. ok is false
// whenever BMR cannot be computed; callers substitute DefaultCalorieTarget.
func TDEE(p EnergyProfile, now time.Time) (int, bool) {
	age, ok := AgeFromBirthDate(p.Birthday, now)
	if !ok {
		return 0, false
	}
	bmr, ok := BMR(p.Gender, p.WeightKg, p.HeightCm, age)
	if !ok {
		return 0, false
	}
	return int(math.Round(float64(bmr) * ActivityMultiplier(p.ActivityLevel))), true
}
