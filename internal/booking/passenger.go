package booking

import (
	"fmt"
	"regexp"

	"airbooking/internal/domain"
	"airbooking/internal/domain/models"
)

var (
	nameRe        = regexp.MustCompile(`^[A-Za-z][A-Za-z '\-]{0,48}[A-Za-z]$`)
	emailRe       = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`)
	phoneRe       = regexp.MustCompile(`^[0-9]{7,15}$`)
	countryCodeRe = regexp.MustCompile(`^\+[0-9]{1,4}$`)
)

// validatorVariant is the closed set of required-field schemas. The variant
// is fixed when the validator is built, from flags the caller already knows,
// never inferred from the record itself.
type validatorVariant struct {
	requirePassport bool
	requireContact  bool
}

func variantFor(international, primary bool) validatorVariant {
	return validatorVariant{
		requirePassport: international,
		requireContact:  primary,
	}
}

// PassengerValidator checks one passenger record against a trip context.
// Build one per (trip, role) pair; validation itself is pure and returns
// field errors as data.
type PassengerValidator struct {
	ctx     models.TripContext
	variant validatorVariant
}

// NewPassengerValidator wires a validator for the given trip and role. A zero
// trip context is a programmer error, so it is reported as a real error
// rather than a field failure.
func NewPassengerValidator(ctx models.TripContext, primary bool) (*PassengerValidator, error) {
	if ctx.Zero() {
		return nil, fmt.Errorf("passenger validator requires a trip context with a travel date")
	}
	return &PassengerValidator{
		ctx:     ctx,
		variant: variantFor(ctx.International, primary),
	}, nil
}

// Validate runs the full rule set over one record. An empty result means the
// record passed. Errors never abort early: the caller gets every failure so
// the form can show them all at once.
func (v *PassengerValidator) Validate(rec models.PassengerRecord) []domain.FieldError {
	var errs []domain.FieldError

	errs = append(errs, checkName("first_name", rec.FirstName)...)
	errs = append(errs, checkName("last_name", rec.LastName)...)

	if rec.DateOfBirth.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date_of_birth", Reason: domain.ReasonRequired})
	} else if rec.DateOfBirth.After(v.ctx.TravelDate) {
		errs = append(errs, domain.FieldError{Field: "date_of_birth", Reason: domain.ReasonInvalidFormat})
	}

	switch rec.Category {
	case models.CategoryAdult, models.CategoryChild, models.CategoryInfant:
		if !rec.DateOfBirth.IsZero() && !rec.DateOfBirth.After(v.ctx.TravelDate) &&
			!MatchesCategory(rec.DateOfBirth, rec.Category, v.ctx.TravelDate) {
			errs = append(errs, domain.FieldError{Field: "category", Reason: domain.ReasonCategoryMismatch})
		}
	case "":
		errs = append(errs, domain.FieldError{Field: "category", Reason: domain.ReasonRequired})
	default:
		errs = append(errs, domain.FieldError{Field: "category", Reason: domain.ReasonInvalidFormat})
	}

	if v.variant.requirePassport {
		if rec.Passport == nil {
			errs = append(errs, domain.FieldError{Field: "passport", Reason: domain.ReasonRequired})
		} else {
			errs = append(errs, CheckPassport(*rec.Passport, v.ctx.TravelDate)...)
		}
	}

	if v.variant.requireContact {
		if rec.Contact == nil {
			errs = append(errs, domain.FieldError{Field: "contact", Reason: domain.ReasonRequired})
		} else {
			errs = append(errs, checkContact(*rec.Contact)...)
		}
	} else if rec.Contact != nil {
		// Companions may carry contact info; validate shape when present.
		errs = append(errs, checkContact(*rec.Contact)...)
	}

	return errs
}

func checkName(field, value string) []domain.FieldError {
	if value == "" {
		return []domain.FieldError{{Field: field, Reason: domain.ReasonRequired}}
	}
	if len(value) < 2 || len(value) > 50 || !nameRe.MatchString(value) {
		return []domain.FieldError{{Field: field, Reason: domain.ReasonInvalidFormat}}
	}
	return nil
}

func checkContact(c models.ContactInfo) []domain.FieldError {
	var errs []domain.FieldError
	if c.Email == "" {
		errs = append(errs, domain.FieldError{Field: "contact.email", Reason: domain.ReasonRequired})
	} else if !emailRe.MatchString(c.Email) {
		errs = append(errs, domain.FieldError{Field: "contact.email", Reason: domain.ReasonInvalidFormat})
	}
	if c.Phone == "" {
		errs = append(errs, domain.FieldError{Field: "contact.phone", Reason: domain.ReasonRequired})
	} else if !phoneRe.MatchString(c.Phone) {
		errs = append(errs, domain.FieldError{Field: "contact.phone", Reason: domain.ReasonInvalidFormat})
	}
	if c.CountryCode != "" && !countryCodeRe.MatchString(c.CountryCode) {
		errs = append(errs, domain.FieldError{Field: "contact.country_code", Reason: domain.ReasonInvalidFormat})
	}
	return errs
}

// ValidatePassengerList validates every record and enforces the list-level
// rule that exactly one passenger is the primary traveler. Per-record field
// names are prefixed with "passengers[i]." so errors stay attached to the
// row that caused them.
func ValidatePassengerList(recs []models.PassengerRecord, ctx models.TripContext) ([]domain.FieldError, error) {
	if ctx.Zero() {
		return nil, fmt.Errorf("passenger list validation requires a trip context with a travel date")
	}

	var errs []domain.FieldError
	primaries := 0
	for i, rec := range recs {
		v, err := NewPassengerValidator(ctx, rec.IsPrimary())
		if err != nil {
			return nil, err
		}
		if rec.IsPrimary() {
			primaries++
			if primaries > 1 {
				errs = append(errs, domain.FieldError{
					Field:  fmt.Sprintf("passengers[%d].role", i),
					Reason: domain.ReasonDuplicatePrimary,
				})
			}
		}
		for _, fe := range v.Validate(rec) {
			errs = append(errs, domain.FieldError{
				Field:  fmt.Sprintf("passengers[%d].%s", i, fe.Field),
				Reason: fe.Reason,
			})
		}
	}
	if primaries == 0 {
		errs = append(errs, domain.FieldError{Field: "passengers", Reason: domain.ReasonMissingPrimary})
	}
	return errs, nil
}
