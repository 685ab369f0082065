package booking

import (
	"regexp"
	"time"

	"airbooking/internal/domain"
	"airbooking/internal/domain/models"
)

// Most destinations require the passport to stay valid this long past the
// travel date.
const minPassportValidityMonths = 6

var passportNumberRe = regexp.MustCompile(`^[A-Z0-9]{6,20}$`)

// CheckPassport validates a travel document against the travel date. Shape
// failures and the expiry check are independent; all applicable field errors
// are returned together. Field names are relative to the passport object
// ("passport.number" etc.) so they can be prefixed per passenger by callers.
func CheckPassport(doc models.PassportDocument, travelDate time.Time) []domain.FieldError {
	var errs []domain.FieldError

	if doc.Number == "" {
		errs = append(errs, domain.FieldError{Field: "passport.number", Reason: domain.ReasonRequired})
	} else if !passportNumberRe.MatchString(doc.Number) {
		errs = append(errs, domain.FieldError{Field: "passport.number", Reason: domain.ReasonInvalidFormat})
	}

	if doc.ExpiryDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "passport.expiry_date", Reason: domain.ReasonRequired})
	} else {
		// Expiring exactly at travelDate + 6 calendar months still passes.
		minExpiry := travelDate.AddDate(0, minPassportValidityMonths, 0)
		if doc.ExpiryDate.Before(minExpiry) {
			errs = append(errs, domain.FieldError{Field: "passport.expiry_date", Reason: domain.ReasonExpiringDocument})
		}
	}

	if doc.Nationality == "" {
		errs = append(errs, domain.FieldError{Field: "passport.nationality", Reason: domain.ReasonRequired})
	}
	if doc.IssuingCountry == "" {
		errs = append(errs, domain.FieldError{Field: "passport.issuing_country", Reason: domain.ReasonRequired})
	}

	return errs
}
