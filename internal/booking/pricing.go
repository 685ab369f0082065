package booking

import "airbooking/internal/domain/models"

// ExtrasTotal sums every selected extra. Absent categories contribute zero
// and the sum is commutative, so insertion order never changes the result.
func ExtrasTotal(e models.SelectedExtras) int64 {
	var total int64
	for _, b := range e.BaggageByPassenger {
		total += b.Price
	}
	for _, m := range e.MealsByPassenger {
		total += m.Price
	}
	if e.Insurance != nil {
		total += e.Insurance.Price
	}
	if e.Lounge != nil {
		total += e.Lounge.Price
	}
	return total
}

// ComputePriceBreakdown derives the itemized price from current inputs. The
// per-passenger fare components scale with the headcount; seat fees come from
// the assignment snapshot. All amounts stay in integer minor units, so
// repeated recomputation cannot drift; rounding to two decimals happens only
// at presentation (utils.FormatMoney).
func ComputePriceBreakdown(flight models.Flight, passengerCount int, assignment map[string]models.Seat, extras models.SelectedExtras) models.PriceBreakdown {
	n := int64(passengerCount)

	var seatFees int64
	for _, seat := range assignment {
		seatFees += seat.Price
	}

	var baggage, meals int64
	for _, b := range extras.BaggageByPassenger {
		baggage += b.Price
	}
	for _, m := range extras.MealsByPassenger {
		meals += m.Price
	}
	var insurance, lounge int64
	if extras.Insurance != nil {
		insurance = extras.Insurance.Price
	}
	if extras.Lounge != nil {
		lounge = extras.Lounge.Price
	}

	bd := models.PriceBreakdown{
		BaseFare:     flight.BaseFare * n,
		Taxes:        flight.Taxes * n,
		Fees:         flight.Fees * n,
		SeatFees:     seatFees,
		ExtraBaggage: baggage,
		Meals:        meals,
		Insurance:    insurance,
		LoungeAccess: lounge,
	}
	bd.Total = bd.BaseFare + bd.Taxes + bd.Fees + bd.SeatFees +
		bd.ExtraBaggage + bd.Meals + bd.Insurance + bd.LoungeAccess
	return bd
}
