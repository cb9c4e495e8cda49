package clients

import (
	"errors"
	"time"
)

// ErrClientNotFound is returned when no client matches the id
var ErrClientNotFound = errors.New("client not found")

// Client is a spa client, deduplicated by phone across bookings.
type Client struct {
	ID                string    `json:"id"`
	FullName          string    `json:"full_name"`
	Phone             string    `json:"phone"`
	Email             string    `json:"email"`
	TotalReservations int       `json:"total_reservations"`
	CreatedAt         time.Time `json:"created_at"`
}
