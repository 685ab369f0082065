package booking

import (
	"airbooking/internal/domain"
	"airbooking/internal/domain/models"
)

// Default cancellation fee when the fare rules carry no explicit one: 20% of
// the total paid.
const (
	defaultCancelFeeNum = 20
	defaultCancelFeeDen = 100
)

// CancellationQuote is the fee/refund split owed on cancellation. The caller
// issues the actual money movement.
type CancellationQuote struct {
	Fee      int64  `json:"fee"`
	Refund   int64  `json:"refund"`
	Currency string `json:"currency"`
}

// ComputeCancellation derives the fee and refund from the stored booking
// only: fare rules and total as persisted at payment time, never values
// re-derived from a later flight search. An explicit fare-rule fee overrides
// the percentage default. A fare marked non-refundable does not block
// cancellation; it only shaped the fee that was stored.
func ComputeCancellation(b models.Booking) (CancellationQuote, error) {
	if b.Status != models.StatusConfirmed {
		return CancellationQuote{}, domain.StateTransitionError{
			Resource: "booking " + b.Reference,
			From:     string(b.Status),
			To:       string(models.StatusCancelled),
		}
	}

	fee := b.TotalAmount * defaultCancelFeeNum / defaultCancelFeeDen
	if b.FareRules.CancellationFee != nil {
		fee = *b.FareRules.CancellationFee
	}
	if fee > b.TotalAmount {
		fee = b.TotalAmount
	}

	return CancellationQuote{
		Fee:      fee,
		Refund:   b.TotalAmount - fee,
		Currency: b.Currency,
	}, nil
}
