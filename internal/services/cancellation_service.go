package services

import (
	"fmt"

	"airbooking/internal/booking"
	"airbooking/internal/domain/models"
	"airbooking/internal/utils"
)

// BookingStore is the persistent booking collaborator. MarkCancelled must be
// atomic on the current status (conditional update) so concurrent
// cancellations cannot both succeed.
type BookingStore interface {
	FindByReference(ref string) (models.Booking, error)
	FindByReferenceAndLastName(ref, lastName string) (models.Booking, error)
	MarkCancelled(ref, paymentStatus string) (models.Booking, error)
}

// CancellationResult is what the caller gets back: the post-transition
// booking plus the fee/refund split that was computed from its stored state.
type CancellationResult struct {
	Booking models.Booking            `json:"booking"`
	Quote   booking.CancellationQuote `json:"quote"`
}

// CancellationService runs the full cancellation transition: compute the
// fee/refund from the stored record, flip the status, then notify
// best-effort.
type CancellationService struct {
	Store     BookingStore
	Notifier  Notifier
	RequestID string
}

// Quote computes the fee/refund split without touching stored state.
func (s CancellationService) Quote(ref string) (booking.CancellationQuote, error) {
	b, err := s.Store.FindByReference(ref)
	if err != nil {
		return booking.CancellationQuote{}, err
	}
	return booking.ComputeCancellation(b)
}

// Cancel performs the one-way confirmed -> cancelled transition. The quote
// is computed from the booking as stored, the status flip is conditioned on
// the current status by the store, and the notification failure never rolls
// anything back.
func (s CancellationService) Cancel(ref string) (CancellationResult, error) {
	b, err := s.Store.FindByReference(ref)
	if err != nil {
		return CancellationResult{}, err
	}

	quote, err := booking.ComputeCancellation(b)
	if err != nil {
		return CancellationResult{}, err
	}

	cancelled, err := s.Store.MarkCancelled(b.Reference, "refund_pending")
	if err != nil {
		return CancellationResult{}, err
	}

	utils.LogEvent(s.RequestID, "cancel", "transition",
		fmt.Sprintf("reference=%s fee=%d refund=%d", cancelled.Reference, quote.Fee, quote.Refund))

	s.notify(cancelled, quote)

	return CancellationResult{Booking: cancelled, Quote: quote}, nil
}

// notify is fire-and-forget: failures are logged and swallowed so a broken
// mail relay cannot fail an already-committed cancellation.
func (s CancellationService) notify(b models.Booking, quote booking.CancellationQuote) {
	if s.Notifier == nil || b.ContactEmail == "" {
		return
	}

	name := ""
	if primary, ok := b.PrimaryPassenger(); ok {
		name = utils.NormalizeSpace(primary.FirstName + " " + primary.LastName)
	}

	err := s.Notifier.SendCancellationNotice(b.ContactEmail, CancellationNotice{
		Reference:     b.Reference,
		PassengerName: name,
		FlightSummary: b.FlightSummary,
		Fee:           quote.Fee,
		Refund:        quote.Refund,
		Currency:      quote.Currency,
	})
	if err != nil {
		utils.LogEvent(s.RequestID, "cancel", "notice_failed",
			fmt.Sprintf("reference=%s err=%v", b.Reference, err))
	}
}
