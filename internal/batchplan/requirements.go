package batchplan

import (
	"math"
	"strings"
)

// Body-weight feeding percentages by activity level. Unknown levels fall
// back to moderate.
const (
	lowActivityPercent      = 0.02
	moderateActivityPercent = 0.025
	highActivityPercent     = 0.03
)

// DailyGrams converts a dog's body weight and activity level into a daily
// gram requirement using the body-weight-percentage formula. This is an
// advisory figure: the authoritative biweekly amount a plan item carries is
// its stored size_g, which already encodes plan type and topper level.
func DailyGrams(weightKg float64, activityLevel string) float64 {
	percent := moderateActivityPercent
	switch strings.ToLower(strings.TrimSpace(activityLevel)) {
	case "low":
		percent = lowActivityPercent
	case "high":
		percent = highActivityPercent
	}
	return weightKg * gramsPerKilogram * percent
}

// BiweeklyGrams returns the advisory 14-day requirement, rounded to the
// nearest gram.
func BiweeklyGrams(weightKg float64, activityLevel string) float64 {
	return math.Round(DailyGrams(weightKg, activityLevel) * DefaultCycleDays)
}
