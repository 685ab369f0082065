package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"airbooking/internal/domain"
	"airbooking/internal/domain/models"
)

func sampleSeats() []models.Seat {
	return []models.Seat{
		{ID: "12A", Row: 12, Column: "A", Status: models.SeatAvailable, Price: 1500},
		{ID: "12B", Row: 12, Column: "B", Status: models.SeatAvailable, Price: 1500},
		{ID: "12C", Row: 12, Column: "C", Status: models.SeatOccupied, Price: 1500},
		{ID: "1A", Row: 1, Column: "A", Status: models.SeatBlocked, Price: 5000},
	}
}

func TestAssignRejectsUnavailableSeat(t *testing.T) {
	m := NewSeatMap(sampleSeats())

	for _, seatID := range []string{"12C", "1A", "99Z"} {
		err := m.Assign("p1", seatID)
		require.Error(t, err)
		assert.True(t, domain.IsSeatConflict(err))
		conflict := err.(domain.SeatConflictError)
		assert.Equal(t, domain.SeatUnavailable, conflict.Code)
	}
}

func TestAssignRejectsSeatHeldByOther(t *testing.T) {
	m := NewSeatMap(sampleSeats())

	require.NoError(t, m.Assign("p1", "12A"))

	err := m.Assign("p2", "12A")
	require.Error(t, err)
	conflict := err.(domain.SeatConflictError)
	assert.Equal(t, domain.SeatTaken, conflict.Code)
	assert.Equal(t, "12A", conflict.SeatID)

	// The failed attempt left p1's seat untouched.
	seat, ok := m.SeatFor("p1")
	require.True(t, ok)
	assert.Equal(t, "12A", seat.ID)
	_, ok = m.SeatFor("p2")
	assert.False(t, ok)
}

func TestAssignSameSeatTogglesOff(t *testing.T) {
	m := NewSeatMap(sampleSeats())

	require.NoError(t, m.Assign("p1", "12A"))
	require.NoError(t, m.Assign("p1", "12A"))

	_, ok := m.SeatFor("p1")
	assert.False(t, ok)

	// Seat is free for someone else afterwards.
	require.NoError(t, m.Assign("p2", "12A"))
}

func TestAssignReplacesPreviousSeat(t *testing.T) {
	m := NewSeatMap(sampleSeats())

	require.NoError(t, m.Assign("p1", "12A"))
	require.NoError(t, m.Assign("p1", "12B"))

	seat, ok := m.SeatFor("p1")
	require.True(t, ok)
	assert.Equal(t, "12B", seat.ID)

	// The old seat was released, not orphaned.
	require.NoError(t, m.Assign("p2", "12A"))
}

func TestUnassignIsIdempotent(t *testing.T) {
	m := NewSeatMap(sampleSeats())

	m.Unassign("nobody")

	require.NoError(t, m.Assign("p1", "12A"))
	m.Unassign("p1")
	m.Unassign("p1")
	_, ok := m.SeatFor("p1")
	assert.False(t, ok)
}

func TestIsCompleteAndFees(t *testing.T) {
	m := NewSeatMap(sampleSeats())
	ids := []string{"p1", "p2"}

	assert.False(t, m.IsComplete(ids))

	require.NoError(t, m.Assign("p1", "12A"))
	assert.False(t, m.IsComplete(ids))

	require.NoError(t, m.Assign("p2", "12B"))
	assert.True(t, m.IsComplete(ids))
	assert.True(t, m.IsComplete(nil))

	assert.Equal(t, int64(3000), m.SeatFees())

	snap := m.Assignment()
	assert.Len(t, snap, 2)
	assert.Equal(t, "12A", snap["p1"].ID)
	assert.Equal(t, "12B", snap["p2"].ID)
}
