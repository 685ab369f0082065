package models

import "time"

// PassengerRole distinguishes the traveler whose contact info is used for
// booking communication (exactly one per booking) from companions.
type PassengerRole string

const (
	RolePrimary   PassengerRole = "primary"
	RoleCompanion PassengerRole = "companion"
)

// PassengerCategory is the declared fare category. It must match the age
// computed at the travel date.
type PassengerCategory string

const (
	CategoryAdult  PassengerCategory = "adult"
	CategoryChild  PassengerCategory = "child"
	CategoryInfant PassengerCategory = "infant"
)

// PassportDocument holds travel-document data, required on international
// trips only.
type PassportDocument struct {
	Number         string    `json:"number"`
	ExpiryDate     time.Time `json:"expiry_date"`
	Nationality    string    `json:"nationality"`
	IssuingCountry string    `json:"issuing_country"`
}

// ContactInfo is how the airline reaches the primary passenger.
type ContactInfo struct {
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	CountryCode string `json:"country_code"`
}

// PassengerRecord is one traveler on a booking in progress. Passport and
// Contact are pointers: absence is meaningful and checked against the trip
// context and role.
type PassengerRecord struct {
	ID          string            `json:"id"`
	Role        PassengerRole     `json:"role"`
	Category    PassengerCategory `json:"category"`
	FirstName   string            `json:"first_name"`
	LastName    string            `json:"last_name"`
	DateOfBirth time.Time         `json:"date_of_birth"`
	Gender      string            `json:"gender"`
	Passport    *PassportDocument `json:"passport,omitempty"`
	Contact     *ContactInfo      `json:"contact,omitempty"`
}

// IsPrimary reports whether this record is the booking's primary traveler.
func (p PassengerRecord) IsPrimary() bool {
	return p.Role == RolePrimary
}
