package models

import "time"

// Flight carries the per-passenger fare components supplied by the search
// collaborator. Amounts are minor units (cents).
type Flight struct {
	ID            string    `json:"id"`
	Airline       string    `json:"airline"`
	FlightNumber  string    `json:"flight_number"`
	Origin        string    `json:"origin"`
	Destination   string    `json:"destination"`
	DepartureTime time.Time `json:"departure_time"`
	BaseFare      int64     `json:"base_fare"`
	Taxes         int64     `json:"taxes"`
	Fees          int64     `json:"fees"`
	Currency      string    `json:"currency"`
}

// FareRules is the policy data attached to a fare. CancellationFee is a
// pointer: nil means "no explicit fee agreed", which falls back to the
// percentage default at cancellation time.
type FareRules struct {
	CancellationFee *int64 `json:"cancellation_fee,omitempty"`
	ChangeFee       *int64 `json:"change_fee,omitempty"`
	Refundable      bool   `json:"refundable"`
}

// PriceBreakdown is always derived from current inputs, never stored and
// mutated. Total equals the sum of the listed components.
type PriceBreakdown struct {
	BaseFare     int64 `json:"base_fare"`
	Taxes        int64 `json:"taxes"`
	Fees         int64 `json:"fees"`
	SeatFees     int64 `json:"seat_fees"`
	ExtraBaggage int64 `json:"extra_baggage"`
	Meals        int64 `json:"meals"`
	Insurance    int64 `json:"insurance"`
	LoungeAccess int64 `json:"lounge_access"`
	Total        int64 `json:"total"`
}

// Booking lifecycle statuses. The only legal edge is confirmed -> cancelled.
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking is the persisted record created at payment success. From this
// engine's perspective it is read-only except for the one-way cancellation
// transition.
type Booking struct {
	Reference     string            `json:"reference"`
	Status        BookingStatus     `json:"status"`
	PaymentStatus string            `json:"payment_status"`
	TotalAmount   int64             `json:"total_amount"`
	Currency      string            `json:"currency"`
	FareRules     FareRules         `json:"fare_rules"`
	FlightSummary string            `json:"flight_summary"`
	ContactEmail  string            `json:"contact_email"`
	Passengers    []PassengerRecord `json:"passengers,omitempty"`
	Seats         map[string]Seat   `json:"seats,omitempty"`
	Extras        SelectedExtras    `json:"extras"`
	CreatedAt     time.Time         `json:"created_at"`
	CancelledAt   *time.Time        `json:"cancelled_at,omitempty"`
}

// PrimaryPassenger returns the primary traveler when present.
func (b Booking) PrimaryPassenger() (PassengerRecord, bool) {
	for _, p := range b.Passengers {
		if p.IsPrimary() {
			return p, true
		}
	}
	return PassengerRecord{}, false
}
