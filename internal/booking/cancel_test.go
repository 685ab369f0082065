package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"airbooking/internal/domain"
	"airbooking/internal/domain/models"
)

func confirmedBooking(total int64) models.Booking {
	return models.Booking{
		Reference:   "AB12CD",
		Status:      models.StatusConfirmed,
		TotalAmount: total,
		Currency:    "USD",
	}
}

func TestDefaultCancellationFee(t *testing.T) {
	// 1000.00 paid, no explicit fee: 20% default.
	quote, err := ComputeCancellation(confirmedBooking(100000))
	require.NoError(t, err)
	assert.Equal(t, int64(20000), quote.Fee)
	assert.Equal(t, int64(80000), quote.Refund)
	assert.Equal(t, "USD", quote.Currency)
}

func TestExplicitFareRuleFeeOverridesDefault(t *testing.T) {
	b := confirmedBooking(100000)
	fee := int64(15000) // 150.00
	b.FareRules.CancellationFee = &fee

	quote, err := ComputeCancellation(b)
	require.NoError(t, err)
	assert.Equal(t, int64(15000), quote.Fee)
	assert.Equal(t, int64(85000), quote.Refund)
}

func TestFeeCappedAtTotal(t *testing.T) {
	b := confirmedBooking(10000)
	fee := int64(99999)
	b.FareRules.CancellationFee = &fee

	quote, err := ComputeCancellation(b)
	require.NoError(t, err)
	assert.Equal(t, int64(10000), quote.Fee)
	assert.Equal(t, int64(0), quote.Refund)
}

func TestNonRefundableFareStillCancellable(t *testing.T) {
	b := confirmedBooking(100000)
	b.FareRules.Refundable = false

	quote, err := ComputeCancellation(b)
	require.NoError(t, err)
	assert.Equal(t, int64(20000), quote.Fee)
}

func TestAlreadyCancelledRejected(t *testing.T) {
	b := confirmedBooking(100000)
	b.Status = models.StatusCancelled

	_, err := ComputeCancellation(b)
	require.Error(t, err)
	assert.True(t, domain.IsStateTransition(err))
}
