package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	intconfig "airbooking/internal/config"
	"airbooking/internal/domain"
	"airbooking/internal/domain/models"
)

// BookingRepository reads confirmed bookings and performs the one legal
// write: the conditional confirmed -> cancelled transition.
type BookingRepository struct {
	DB *sql.DB
}

func (r BookingRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const bookingColumns = `
	reference,
	status,
	COALESCE(payment_status, ''),
	total_amount,
	COALESCE(currency, ''),
	cancellation_fee,
	COALESCE(refundable, 0),
	COALESCE(flight_summary, ''),
	COALESCE(contact_email, ''),
	created_at,
	cancelled_at`

// FindByReference loads one booking with its passengers and seats.
func (r BookingRepository) FindByReference(ref string) (models.Booking, error) {
	db := r.db()
	if db == nil {
		return models.Booking{}, domain.InternalError{Msg: "database not available"}
	}
	ref = strings.ToUpper(strings.TrimSpace(ref))
	if ref == "" {
		return models.Booking{}, domain.ValidationError{Fields: []domain.FieldError{{Field: "reference", Reason: domain.ReasonRequired}}}
	}

	row := db.QueryRow(`SELECT`+bookingColumns+` FROM bookings WHERE reference = ? LIMIT 1`, ref)
	b, err := scanBooking(row)
	if err != nil {
		return models.Booking{}, err
	}

	if err := r.loadPassengers(db, &b); err != nil {
		return models.Booking{}, err
	}
	return b, nil
}

// FindByReferenceAndLastName is the self-service lookup: the reference plus
// any traveler's last name, compared case-insensitively.
func (r BookingRepository) FindByReferenceAndLastName(ref, lastName string) (models.Booking, error) {
	b, err := r.FindByReference(ref)
	if err != nil {
		return models.Booking{}, err
	}
	want := strings.ToLower(strings.TrimSpace(lastName))
	for _, p := range b.Passengers {
		if strings.ToLower(p.LastName) == want {
			return b, nil
		}
	}
	return models.Booking{}, domain.NotFoundError{Resource: "booking"}
}

// MarkCancelled flips the booking to cancelled. The UPDATE is guarded by the
// current status so two concurrent cancellations cannot both win; the loser
// sees zero rows and gets the authoritative state back as an error.
func (r BookingRepository) MarkCancelled(ref, paymentStatus string) (models.Booking, error) {
	db := r.db()
	if db == nil {
		return models.Booking{}, domain.InternalError{Msg: "database not available"}
	}
	ref = strings.ToUpper(strings.TrimSpace(ref))

	res, err := db.Exec(`
		UPDATE bookings
		SET status = ?, payment_status = ?, cancelled_at = NOW()
		WHERE reference = ? AND status = ?`,
		string(models.StatusCancelled), paymentStatus, ref, string(models.StatusConfirmed),
	)
	if err != nil {
		return models.Booking{}, domain.InternalError{Msg: "cancel update failed", Err: err}
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return models.Booking{}, domain.InternalError{Msg: "cancel update failed", Err: err}
	}
	if rows == 0 {
		// Lost the race or never existed. Re-read to tell which.
		current, err := r.FindByReference(ref)
		if err != nil {
			return models.Booking{}, err
		}
		if current.Status == models.StatusCancelled {
			return models.Booking{}, domain.StateTransitionError{
				Resource: "booking " + ref,
				From:     string(current.Status),
				To:       string(models.StatusCancelled),
			}
		}
		return models.Booking{}, domain.InternalError{Msg: fmt.Sprintf("booking %s in unexpected status %s", ref, current.Status)}
	}

	return r.FindByReference(ref)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (models.Booking, error) {
	var (
		b           models.Booking
		status      string
		cancelFee   sql.NullInt64
		refundable  int
		createdAt   sql.NullTime
		cancelledAt sql.NullTime
	)
	err := row.Scan(
		&b.Reference,
		&status,
		&b.PaymentStatus,
		&b.TotalAmount,
		&b.Currency,
		&cancelFee,
		&refundable,
		&b.FlightSummary,
		&b.ContactEmail,
		&createdAt,
		&cancelledAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Booking{}, domain.NotFoundError{Resource: "booking"}
		}
		return models.Booking{}, domain.InternalError{Msg: "booking query failed", Err: err}
	}

	b.Status = models.BookingStatus(status)
	if cancelFee.Valid {
		fee := cancelFee.Int64
		b.FareRules.CancellationFee = &fee
	}
	b.FareRules.Refundable = refundable != 0
	if createdAt.Valid {
		b.CreatedAt = createdAt.Time
	}
	if cancelledAt.Valid {
		t := cancelledAt.Time
		b.CancelledAt = &t
	}
	return b, nil
}

func (r BookingRepository) loadPassengers(db *sql.DB, b *models.Booking) error {
	rows, err := db.Query(`
		SELECT
			passenger_id,
			COALESCE(role, ''),
			COALESCE(category, ''),
			COALESCE(first_name, ''),
			COALESCE(last_name, ''),
			date_of_birth,
			COALESCE(gender, ''),
			COALESCE(passport_number, ''),
			passport_expiry,
			COALESCE(nationality, ''),
			COALESCE(issuing_country, ''),
			COALESCE(email, ''),
			COALESCE(phone, ''),
			COALESCE(country_code, ''),
			COALESCE(seat_id, ''),
			COALESCE(seat_price, 0)
		FROM booking_passengers
		WHERE booking_reference = ?
		ORDER BY id ASC`, b.Reference)
	if err != nil {
		return domain.InternalError{Msg: "passenger query failed", Err: err}
	}
	defer rows.Close()

	for rows.Next() {
		var (
			p              models.PassengerRecord
			role, category string
			dob            sql.NullTime
			passportNumber string
			passportExpiry sql.NullTime
			nationality    string
			issuingCountry string
			email          string
			phone          string
			countryCode    string
			seatID         string
			seatPrice      int64
		)
		if err := rows.Scan(
			&p.ID, &role, &category, &p.FirstName, &p.LastName, &dob, &p.Gender,
			&passportNumber, &passportExpiry, &nationality, &issuingCountry,
			&email, &phone, &countryCode, &seatID, &seatPrice,
		); err != nil {
			return domain.InternalError{Msg: "passenger scan failed", Err: err}
		}

		p.Role = models.PassengerRole(role)
		p.Category = models.PassengerCategory(category)
		if dob.Valid {
			p.DateOfBirth = dob.Time
		}
		if passportNumber != "" || passportExpiry.Valid {
			doc := models.PassportDocument{
				Number:         passportNumber,
				Nationality:    nationality,
				IssuingCountry: issuingCountry,
			}
			if passportExpiry.Valid {
				doc.ExpiryDate = passportExpiry.Time
			}
			p.Passport = &doc
		}
		if email != "" || phone != "" {
			p.Contact = &models.ContactInfo{Email: email, Phone: phone, CountryCode: countryCode}
		}

		if seatID != "" {
			if b.Seats == nil {
				b.Seats = map[string]models.Seat{}
			}
			b.Seats[p.ID] = models.Seat{ID: seatID, Status: models.SeatOccupied, Price: seatPrice}
		}
		b.Passengers = append(b.Passengers, p)
	}
	if err := rows.Err(); err != nil {
		return domain.InternalError{Msg: "passenger rows failed", Err: err}
	}
	return nil
}
