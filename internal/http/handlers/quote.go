package handlers

import (
	"net/http"
	"sort"
	"strconv"

	"airbooking/internal/booking"
	"airbooking/internal/domain/models"
	"airbooking/internal/http/middleware"
	"airbooking/internal/utils"

	"github.com/gin-gonic/gin"
)

type flightPayload struct {
	ID           string `json:"id"`
	Airline      string `json:"airline"`
	FlightNumber string `json:"flight_number"`
	Origin       string `json:"origin"`
	Destination  string `json:"destination"`
	BaseFare     int64  `json:"base_fare"`
	Taxes        int64  `json:"taxes"`
	Fees         int64  `json:"fees"`
	Currency     string `json:"currency"`
}

type quoteRequest struct {
	Flight       flightPayload         `json:"flight"`
	PassengerIDs []string              `json:"passenger_ids"`
	Seats        []models.Seat         `json:"seats"`
	Assignments  map[string]string     `json:"assignments"` // passenger id -> seat id
	Extras       models.SelectedExtras `json:"extras"`
}

// POST /api/bookings/quote
//
// Rebuilds the seat assignment from the payload through the same manager the
// booking flow uses, so a stale or conflicting selection is rejected here
// with the same seat errors instead of being priced silently.
func PriceQuote(c *gin.Context) {
	var req quoteRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if len(req.PassengerIDs) == 0 {
		RespondError(c, http.StatusBadRequest, "passenger_ids must not be empty", nil)
		return
	}

	seatMap := booking.NewSeatMap(req.Seats)

	// Deterministic replay order.
	pids := make([]string, 0, len(req.Assignments))
	for pid := range req.Assignments {
		pids = append(pids, pid)
	}
	sort.Strings(pids)
	for _, pid := range pids {
		if err := seatMap.Assign(pid, req.Assignments[pid]); err != nil {
			RespondDomainError(c, err)
			return
		}
	}

	flight := models.Flight{
		ID:           req.Flight.ID,
		Airline:      req.Flight.Airline,
		FlightNumber: req.Flight.FlightNumber,
		Origin:       req.Flight.Origin,
		Destination:  req.Flight.Destination,
		BaseFare:     req.Flight.BaseFare,
		Taxes:        req.Flight.Taxes,
		Fees:         req.Flight.Fees,
		Currency:     req.Flight.Currency,
	}

	breakdown := booking.ComputePriceBreakdown(flight, len(req.PassengerIDs), seatMap.Assignment(), req.Extras)

	utils.LogEvent(middleware.GetRequestID(c), "quote", "compute",
		"passengers="+itoa(len(req.PassengerIDs))+" total="+utils.FormatMoney(breakdown.Total))

	c.JSON(http.StatusOK, gin.H{
		"breakdown":               breakdown,
		"extras_total":            booking.ExtrasTotal(req.Extras),
		"seat_selection_complete": seatMap.IsComplete(req.PassengerIDs),
		"currency":                flight.Currency,
		"total_display":           utils.FormatAmount(breakdown.Total, flight.Currency),
	})
}

func itoa(n int) string { return strconv.Itoa(n) }
