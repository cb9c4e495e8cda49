package reservations

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrReservationNotFound is returned when no reservation matches the id
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrInvalidStatus is returned for a status outside the known set
	ErrInvalidStatus = errors.New("invalid reservation status")

	// ErrMissingField is returned when a create request lacks a required field
	ErrMissingField = errors.New("missing required reservation field")
)

// Reservation statuses, as displayed in the back-office.
const (
	StatusPending   = "en_attente"
	StatusConfirmed = "confirme"
	StatusDone      = "termine"
	StatusCancelled = "annule"
)

// ValidStatus reports whether s is a known reservation status.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusDone, StatusCancelled:
		return true
	}
	return false
}

// Reservation is a stored booking, joined with the client's visit count
// when listed for the back-office.
type Reservation struct {
	ID          string    `json:"id"`
	ClientID    string    `json:"client_id"`
	ClientName  string    `json:"client_name"`
	ClientPhone string    `json:"client_phone"`
	ClientEmail string    `json:"client_email"`
	ServiceName string    `json:"service_name"`
	BookingDate time.Time `json:"booking_date"`
	BookingTime string    `json:"booking_time"`
	TotalPrice  int       `json:"total_price"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`

	ClientTotalReservations int `json:"client_total_reservations,omitempty"`
}

// CreateParams is the atomic create-reservation-with-client request.
type CreateParams struct {
	FullName    string `json:"full_name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	BookingDate string `json:"booking_date"` // yyyy-mm-dd
	BookingTime string `json:"booking_time"`
	ServiceName string `json:"service_name"`
	TotalPrice  int    `json:"total_price"`
}

// Validate checks the required fields of a create request.
func (p *CreateParams) Validate() error {
	if strings.TrimSpace(p.FullName) == "" {
		return fmt.Errorf("%w: full_name", ErrMissingField)
	}
	if strings.TrimSpace(p.Phone) == "" {
		return fmt.Errorf("%w: phone", ErrMissingField)
	}
	if _, err := time.Parse("2006-01-02", p.BookingDate); err != nil {
		return fmt.Errorf("%w: booking_date", ErrMissingField)
	}
	if strings.TrimSpace(p.BookingTime) == "" {
		return fmt.Errorf("%w: booking_time", ErrMissingField)
	}
	if strings.TrimSpace(p.ServiceName) == "" {
		return fmt.Errorf("%w: service_name", ErrMissingField)
	}
	return nil
}
