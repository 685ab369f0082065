package handlers

import (
	"net/http"

	"airbooking/internal/http/middleware"
	"airbooking/internal/repositories"
	"airbooking/internal/services"
	"airbooking/internal/utils"

	"github.com/gin-gonic/gin"
)

func cancellationService(c *gin.Context) services.CancellationService {
	reqID := middleware.GetRequestID(c)
	return services.CancellationService{
		Store:     repositories.BookingRepository{},
		Notifier:  services.LogNotifier{RequestID: reqID},
		RequestID: reqID,
	}
}

// GET /api/bookings/:reference
func GetBooking(c *gin.Context) {
	repo := repositories.BookingRepository{}
	b, err := repo.FindByReference(c.Param("reference"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}

// GET /api/bookings/lookup?reference=AB12CD&last_name=Rahma
//
// Self-service retrieval: no auth, but both the reference and a traveler's
// last name must match.
func LookupBooking(c *gin.Context) {
	ref := c.Query("reference")
	lastName := c.Query("last_name")
	if ref == "" || lastName == "" {
		RespondError(c, http.StatusBadRequest, "reference and last_name are required", nil)
		return
	}

	repo := repositories.BookingRepository{}
	b, err := repo.FindByReferenceAndLastName(ref, lastName)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}

// GET /api/bookings/:reference/cancellation-quote
func CancellationQuote(c *gin.Context) {
	quote, err := cancellationService(c).Quote(c.Param("reference"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"quote":          quote,
		"fee_display":    utils.FormatAmount(quote.Fee, quote.Currency),
		"refund_display": utils.FormatAmount(quote.Refund, quote.Currency),
	})
}

// POST /api/bookings/:reference/cancel
func CancelBooking(c *gin.Context) {
	res, err := cancellationService(c).Cancel(c.Param("reference"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	user := middleware.RequestUser(c)
	utils.LogEvent(middleware.GetRequestID(c), "booking", "cancelled_by",
		"user_id="+itoa(int(user.UserID))+" role="+user.Role)
	c.JSON(http.StatusOK, gin.H{
		"booking":        res.Booking,
		"quote":          res.Quote,
		"fee_display":    utils.FormatAmount(res.Quote.Fee, res.Quote.Currency),
		"refund_display": utils.FormatAmount(res.Quote.Refund, res.Quote.Currency),
	})
}

// GET /api/bookings/:reference/e-ticket
func GetETicketPDF(c *gin.Context) {
	svc := services.DocsService{
		Store:     repositories.BookingRepository{},
		RequestID: middleware.GetRequestID(c),
	}
	pdf, filename, err := svc.GenerateETicket(c.Param("reference"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// GET /api/bookings/:reference/cancellation-notice
func GetCancellationNoticePDF(c *gin.Context) {
	svc := services.DocsService{
		Store:     repositories.BookingRepository{},
		RequestID: middleware.GetRequestID(c),
	}
	pdf, filename, err := svc.GenerateCancellationNotice(c.Param("reference"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
