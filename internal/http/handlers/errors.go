package handlers

import (
	"errors"
	"net/http"

	"airbooking/internal/domain"
	"airbooking/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// ErrorResponse standardizes error payloads.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

func respondError(c *gin.Context, status int, code, message string, details any) {
	if code == "" {
		code = http.StatusText(status)
	}
	c.JSON(status, gin.H{
		"error":      message,
		"code":       code,
		"details":    details,
		"request_id": middleware.GetRequestID(c),
	})
}

// RespondDomainError maps domain errors to HTTP responses. Validation and
// seat conflicts stay recoverable for the frontend; store failures surface
// as retryable.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		respondError(c, http.StatusUnprocessableEntity, "validation_error", err.Error(), domain.ValidationFields(err))
	case domain.IsSeatConflict(err):
		var conflict domain.SeatConflictError
		errors.As(err, &conflict)
		respondError(c, http.StatusConflict, conflict.Code, err.Error(), gin.H{
			"seat_id":      conflict.SeatID,
			"passenger_id": conflict.PassengerID,
		})
	case domain.IsStateTransition(err):
		respondError(c, http.StatusConflict, "already_cancelled", err.Error(), nil)
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "not_found", err.Error(), nil)
	case domain.IsInternal(err):
		respondError(c, http.StatusServiceUnavailable, "store_unavailable", "temporary failure, retry later", nil)
	default:
		respondError(c, http.StatusInternalServerError, "internal_error", "unexpected failure", nil)
	}
}
