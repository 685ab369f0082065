package models

import "time"

// TripContext is derived once from search criteria and stays immutable for
// the whole passenger-entry phase. Every validation rule that depends on the
// trip (passport requirement, age at travel) reads from here.
type TripContext struct {
	TravelDate    time.Time `json:"travel_date"`
	International bool      `json:"international"`
}

// Zero reports whether the context was never initialized. Validators treat a
// zero context as a programmer error, not a validation failure.
func (c TripContext) Zero() bool {
	return c.TravelDate.IsZero()
}
