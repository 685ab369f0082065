package booking

import (
	"time"

	"airbooking/internal/domain/models"
)

// Age band bounds in years at the travel date. Lower bounds are inclusive:
// a passenger turning exactly 2 or 12 on the travel date belongs to the
// higher band.
const (
	childMinYears = 2.0
	adultMinYears = 12.0
)

const daysPerYear = 365.25

// AgeAt computes elapsed years between date of birth and the travel date
// using the mean year length.
func AgeAt(dateOfBirth, travelDate time.Time) float64 {
	return travelDate.Sub(dateOfBirth).Hours() / 24 / daysPerYear
}

// CategoryForAge maps an age in years to its fare category.
func CategoryForAge(years float64) models.PassengerCategory {
	switch {
	case years >= adultMinYears:
		return models.CategoryAdult
	case years >= childMinYears:
		return models.CategoryChild
	default:
		return models.CategoryInfant
	}
}

// MatchesCategory reports whether the declared category agrees with the age
// computed at the travel date.
func MatchesCategory(dateOfBirth time.Time, category models.PassengerCategory, travelDate time.Time) bool {
	return CategoryForAge(AgeAt(dateOfBirth, travelDate)) == category
}
