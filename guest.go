package skycave

import (
	"errors"
	"math/rand"
	"strconv"
	"strings"
	"time"
)

// Address is the postal address of a guest.
type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// ContactInfo holds the ways to reach a guest during and after the stay.
type ContactInfo struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Identification is the travel document presented at check-in.
type Identification struct {
	// Type of the document, e.g. passport, idCard.
	Type string `json:"type"`
	// Number printed on the document.
	Number string `json:"number"`
	// IssuingCountry of the document.
	IssuingCountry string `json:"issuingCountry"`
	// ExpirationDate of the document. Persisted in textual form and re-parsed
	// on load like every other date.
	ExpirationDate time.Time `json:"expirationDate"`
}

// Booking is a single reservation for a guest party.
type Booking struct {
	BookingID      string    `json:"bookingId"`
	CheckInDate    time.Time `json:"checkInDate"`
	NumberOfNights int       `json:"numberOfNights"`
	Adults         int       `json:"adults"`
	Children       int       `json:"children"`
	Status         string    `json:"status"`
	PaymentStatus  string    `json:"paymentStatus"`
	Currency       string    `json:"currency"`
	Amount         int64     `json:"amount"`
	DateMade       time.Time `json:"dateMade"`
}

// Booking status values.
const (
	BookingConfirmed  = "confirmed"
	BookingCheckedIn  = "checkedIn"
	BookingCheckedOut = "checkedOut"
	BookingCancelled  = "cancelled"
)

// Payment status values.
const (
	PaymentPending  = "pending"
	PaymentPartial  = "partial"
	PaymentComplete = "complete"
	PaymentRefunded = "refunded"
)

// Guest is the main guest of a party, with their bookings. Accompanying
// adults and children are counted on the booking, not stored as guests of
// their own.
type Guest struct {
	GuestID           string         `json:"guestId"`
	FirstName         string         `json:"firstName"`
	LastName          string         `json:"lastName"`
	DateOfBirth       time.Time      `json:"dateOfBirth,omitzero"`
	Nationality       string         `json:"nationality"`
	Address           Address        `json:"address"`
	Contact           ContactInfo    `json:"contact"`
	Identification    Identification `json:"identification"`
	Bookings          []Booking      `json:"bookings"`
	AccountCreated    time.Time      `json:"accountCreationDate"`
	PreferredLanguage string         `json:"preferredLanguage"`
	VisitCount        int            `json:"visitCount"`
}

// FullName returns the display name for the guest, trimmed of the extra
// space when either part is missing.
func (g Guest) FullName() string {
	return strings.TrimSpace(g.FirstName + " " + g.LastName)
}

// Validate Guest for inconsistencies that would break reporting later on.
func (g Guest) Validate() error {
	if g.FirstName == "" || g.LastName == "" {
		return errors.New("first and last name must be set")
	}
	for _, b := range g.Bookings {
		if b.BookingID == "" {
			return errors.New("booking must have an id")
		}
		if b.NumberOfNights < 1 {
			return errors.New("booking must cover at least one night")
		}
		if b.Adults < 1 {
			return errors.New("booking must have at least one adult")
		}
	}
	return nil
}

// CurrentBooking returns the first booking of the guest, or nil if the guest
// has none. The property hosts one party at a time, so the first booking is
// the active one.
func (g Guest) CurrentBooking() *Booking {
	if len(g.Bookings) == 0 {
		return nil
	}
	return &g.Bookings[0]
}

// NewBookingID generates a booking identifier in the BK-nnnnnn format used
// on every screen and report.
func NewBookingID() string {
	return "BK-" + strconv.Itoa(100000+rand.Intn(900000))
}

// bookingIndex maps booking identifiers to their bookings over all given
// guests. Used when the printable report needs stay periods per row.
func bookingIndex(guests []Guest) map[string]Booking {
	index := make(map[string]Booking)
	for _, g := range guests {
		for _, b := range g.Bookings {
			index[b.BookingID] = b
		}
	}
	return index
}
