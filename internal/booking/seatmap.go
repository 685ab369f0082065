package booking

import (
	"airbooking/internal/domain"
	"airbooking/internal/domain/models"
)

// SeatMap owns the passenger-to-seat assignment for one booking in progress.
// All mutation goes through Assign/Unassign so "one seat per passenger, one
// passenger per seat" holds at a single choke point. It never writes back to
// the provider's seat statuses.
//
// Single-caller state: one user edits one booking at a time, so no locking.
type SeatMap struct {
	seats       map[string]models.Seat
	byPassenger map[string]string // passenger id -> seat id
	bySeat      map[string]string // seat id -> passenger id
}

// NewSeatMap builds a manager over the provider-supplied seat inventory.
func NewSeatMap(seats []models.Seat) *SeatMap {
	m := &SeatMap{
		seats:       make(map[string]models.Seat, len(seats)),
		byPassenger: map[string]string{},
		bySeat:      map[string]string{},
	}
	for _, s := range seats {
		m.seats[s.ID] = s
	}
	return m
}

// Assign maps a passenger to a seat. Conflicts are checked before any
// mutation so a transient double assignment is never observable. Assigning
// the seat a passenger already holds toggles it off; assigning a different
// seat replaces the previous one.
func (m *SeatMap) Assign(passengerID, seatID string) error {
	seat, ok := m.seats[seatID]
	if !ok {
		return domain.SeatConflictError{Code: domain.SeatUnavailable, SeatID: seatID, PassengerID: passengerID}
	}
	if seat.Status != models.SeatAvailable {
		return domain.SeatConflictError{Code: domain.SeatUnavailable, SeatID: seatID, PassengerID: passengerID}
	}
	if holder, held := m.bySeat[seatID]; held {
		if holder == passengerID {
			// Same seat, same passenger: deselect.
			m.Unassign(passengerID)
			return nil
		}
		return domain.SeatConflictError{Code: domain.SeatTaken, SeatID: seatID, PassengerID: passengerID}
	}

	if prev, ok := m.byPassenger[passengerID]; ok {
		delete(m.bySeat, prev)
	}
	m.byPassenger[passengerID] = seatID
	m.bySeat[seatID] = passengerID
	return nil
}

// Unassign removes the passenger's mapping. No-op when absent.
func (m *SeatMap) Unassign(passengerID string) {
	seatID, ok := m.byPassenger[passengerID]
	if !ok {
		return
	}
	delete(m.byPassenger, passengerID)
	delete(m.bySeat, seatID)
}

// SeatFor returns the seat currently held by a passenger.
func (m *SeatMap) SeatFor(passengerID string) (models.Seat, bool) {
	seatID, ok := m.byPassenger[passengerID]
	if !ok {
		return models.Seat{}, false
	}
	return m.seats[seatID], true
}

// IsComplete reports whether every given passenger holds a seat.
func (m *SeatMap) IsComplete(passengerIDs []string) bool {
	for _, id := range passengerIDs {
		if _, ok := m.byPassenger[id]; !ok {
			return false
		}
	}
	return true
}

// Assignment returns a snapshot copy of the current mapping.
func (m *SeatMap) Assignment() map[string]models.Seat {
	out := make(map[string]models.Seat, len(m.byPassenger))
	for pid, sid := range m.byPassenger {
		out[pid] = m.seats[sid]
	}
	return out
}

// SeatFees sums the prices of all assigned seats.
func (m *SeatMap) SeatFees() int64 {
	var total int64
	for _, sid := range m.byPassenger {
		total += m.seats[sid].Price
	}
	return total
}
