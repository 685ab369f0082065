package models

// SeatStatus comes from the external seat-map provider. The engine never
// writes it back; it only refuses to assign anything that is not available.
type SeatStatus string

const (
	SeatAvailable SeatStatus = "available"
	SeatOccupied  SeatStatus = "occupied"
	SeatBlocked   SeatStatus = "blocked"
)

// Seat is one position on the seat map. Price is in minor currency units
// (cents), like every amount in this codebase.
type Seat struct {
	ID     string     `json:"id"`
	Row    int        `json:"row"`
	Column string     `json:"column"`
	Status SeatStatus `json:"status"`
	Price  int64      `json:"price"`
}
