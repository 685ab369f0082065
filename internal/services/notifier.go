package services

import (
	"fmt"

	"airbooking/internal/utils"
)

// CancellationNotice is the payload handed to the notification collaborator
// after a successful cancellation.
type CancellationNotice struct {
	Reference     string `json:"reference"`
	PassengerName string `json:"passenger_name"`
	FlightSummary string `json:"flight_summary"`
	Fee           int64  `json:"fee"`
	Refund        int64  `json:"refund"`
	Currency      string `json:"currency"`
}

// Notifier delivers booking communication. Best-effort: callers never fail a
// transition on a notifier error.
type Notifier interface {
	SendCancellationNotice(email string, notice CancellationNotice) error
}

// LogNotifier writes notices to the application log. Stand-in delivery for
// environments without an outbound mail relay.
type LogNotifier struct {
	RequestID string
}

func (n LogNotifier) SendCancellationNotice(email string, notice CancellationNotice) error {
	utils.LogEvent(n.RequestID, "notify", "cancellation_notice",
		fmt.Sprintf("to=%s reference=%s fee=%s refund=%s",
			email,
			notice.Reference,
			utils.FormatAmount(notice.Fee, notice.Currency),
			utils.FormatAmount(notice.Refund, notice.Currency),
		))
	return nil
}
