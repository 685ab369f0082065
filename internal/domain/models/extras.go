package models

// BaggageSelection is extra checked baggage for one passenger.
type BaggageSelection struct {
	WeightKg int   `json:"weight_kg"`
	Price    int64 `json:"price"`
}

// MealSelection is a pre-ordered meal for one passenger.
type MealSelection struct {
	Type  string `json:"type"`
	Price int64  `json:"price"`
}

// InsuranceOption is booking-level travel insurance.
type InsuranceOption struct {
	Type     string `json:"type"`
	Coverage int64  `json:"coverage"`
	Price    int64  `json:"price"`
}

// LoungeAccess is booking-level lounge access at the departure airport.
type LoungeAccess struct {
	Airport string `json:"airport"`
	Price   int64  `json:"price"`
}

// SelectedExtras accumulates optional add-ons for a booking in progress.
// Per-passenger maps are keyed by passenger id; booking-level options are
// pointers whose absence contributes zero.
type SelectedExtras struct {
	BaggageByPassenger map[string]BaggageSelection `json:"baggage_by_passenger,omitempty"`
	MealsByPassenger   map[string]MealSelection    `json:"meals_by_passenger,omitempty"`
	Insurance          *InsuranceOption            `json:"insurance,omitempty"`
	Lounge             *LoungeAccess               `json:"lounge,omitempty"`
}

// SetBaggage stores or clears the baggage selection for a passenger. Passing
// nil removes the entry instead of keeping a zero-price placeholder.
func (e *SelectedExtras) SetBaggage(passengerID string, sel *BaggageSelection) {
	if sel == nil {
		delete(e.BaggageByPassenger, passengerID)
		return
	}
	if e.BaggageByPassenger == nil {
		e.BaggageByPassenger = map[string]BaggageSelection{}
	}
	e.BaggageByPassenger[passengerID] = *sel
}

// SetMeal stores or clears the meal selection for a passenger.
func (e *SelectedExtras) SetMeal(passengerID string, sel *MealSelection) {
	if sel == nil {
		delete(e.MealsByPassenger, passengerID)
		return
	}
	if e.MealsByPassenger == nil {
		e.MealsByPassenger = map[string]MealSelection{}
	}
	e.MealsByPassenger[passengerID] = *sel
}

// RemovePassenger drops every per-passenger extra for the given id, so a
// deleted passenger leaves no orphaned entries behind.
func (e *SelectedExtras) RemovePassenger(passengerID string) {
	delete(e.BaggageByPassenger, passengerID)
	delete(e.MealsByPassenger, passengerID)
}
