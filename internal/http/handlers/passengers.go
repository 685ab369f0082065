package handlers

import (
	"net/http"

	"airbooking/internal/booking"
	"airbooking/internal/domain/models"
	"airbooking/internal/http/middleware"
	"airbooking/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type passportPayload struct {
	Number         string `json:"number"`
	ExpiryDate     string `json:"expiry_date"`
	Nationality    string `json:"nationality"`
	IssuingCountry string `json:"issuing_country"`
}

type passengerPayload struct {
	ID          string              `json:"id"`
	Role        string              `json:"role"`
	Category    string              `json:"category"`
	FirstName   string              `json:"first_name"`
	LastName    string              `json:"last_name"`
	DateOfBirth string              `json:"date_of_birth"`
	Gender      string              `json:"gender"`
	Passport    *passportPayload    `json:"passport,omitempty"`
	Contact     *models.ContactInfo `json:"contact,omitempty"`
}

type validatePassengersRequest struct {
	TravelDate    string             `json:"travel_date"`
	International bool               `json:"international"`
	Passengers    []passengerPayload `json:"passengers"`
}

// toRecord converts the wire payload into a domain record. Unparseable dates
// stay zero so the validator reports them as field errors rather than the
// handler rejecting the whole request.
func (p passengerPayload) toRecord() models.PassengerRecord {
	rec := models.PassengerRecord{
		ID:        p.ID,
		Role:      models.PassengerRole(p.Role),
		Category:  models.PassengerCategory(p.Category),
		FirstName: utils.TrimOrEmpty(p.FirstName),
		LastName:  utils.TrimOrEmpty(p.LastName),
		Gender:    utils.TrimOrEmpty(p.Gender),
		Contact:   p.Contact,
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if dob, err := utils.ParseDate(p.DateOfBirth); err == nil {
		rec.DateOfBirth = dob
	}
	if p.Passport != nil {
		doc := models.PassportDocument{
			Number:         utils.TrimOrEmpty(p.Passport.Number),
			Nationality:    utils.TrimOrEmpty(p.Passport.Nationality),
			IssuingCountry: utils.TrimOrEmpty(p.Passport.IssuingCountry),
		}
		if exp, err := utils.ParseDate(p.Passport.ExpiryDate); err == nil {
			doc.ExpiryDate = exp
		}
		rec.Passport = &doc
	}
	return rec
}

// POST /api/bookings/validate-passengers
func ValidatePassengers(c *gin.Context) {
	var req validatePassengersRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	travelDate, err := utils.ParseDate(req.TravelDate)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "travel_date must be YYYY-MM-DD", err)
		return
	}
	ctx := models.TripContext{TravelDate: travelDate, International: req.International}

	records := make([]models.PassengerRecord, 0, len(req.Passengers))
	for _, p := range req.Passengers {
		records = append(records, p.toRecord())
	}

	fieldErrs, err := booking.ValidatePassengerList(records, ctx)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "validation setup failed", err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "passenger", "validate",
		"count="+itoa(len(records))+" errors="+itoa(len(fieldErrs)))

	if len(fieldErrs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"valid":  false,
			"errors": fieldErrs,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"valid":      true,
		"passengers": records,
	})
}
