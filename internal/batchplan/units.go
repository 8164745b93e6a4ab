// Package batchplan turns live subscription demand into a production plan
// for a single cook date: per-recipe batch requirements, a consolidated
// ingredient shopping list, and a per-dog view of what customers ordered.
package batchplan

const (
	gramsPerPound    = 453.592
	gramsPerKilogram = 1000.0
)

// GramsToPounds converts a gram quantity to pounds.
func GramsToPounds(grams float64) float64 {
	return grams / gramsPerPound
}

// GramsToKilograms converts a gram quantity to kilograms.
func GramsToKilograms(grams float64) float64 {
	return grams / gramsPerKilogram
}

// PoundsToGrams converts a pound quantity to grams.
func PoundsToGrams(pounds float64) float64 {
	return pounds * gramsPerPound
}

// KilogramsToGrams converts a kilogram quantity to grams.
func KilogramsToGrams(kilograms float64) float64 {
	return kilograms * gramsPerKilogram
}

// KilogramsToPounds converts a kilogram quantity to pounds.
func KilogramsToPounds(kilograms float64) float64 {
	return GramsToPounds(KilogramsToGrams(kilograms))
}
