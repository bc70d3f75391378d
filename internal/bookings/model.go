package bookings

import (
	"errors"
	"strings"
	"time"
)

var (
	// ErrBookingNotFound is returned when a booking id does not exist.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrInvalidBooking is returned when a create request is missing
	// required fields.
	ErrInvalidBooking = errors.New("user name, user email, service id, booking date and time slot are required")
)

// Booking is a persisted, confirmed booking row.
type Booking struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	UserName     string    `json:"user_name"`
	UserEmail    string    `json:"user_email"`
	ServiceID    string    `json:"service_id"`
	ServiceTitle string    `json:"service_title"`
	BookingDate  string    `json:"booking_date"` // YYYY-MM-DD
	TimeSlot     string    `json:"time_slot"`
	CreatedAt    time.Time `json:"created_at"`
}

// CreateBookingRequest carries the fields a new booking needs. The user row
// is upserted by email.
type CreateBookingRequest struct {
	UserName     string `json:"user_name"`
	UserEmail    string `json:"user_email"`
	ServiceID    string `json:"service_id"`
	ServiceTitle string `json:"service_title"`
	BookingDate  string `json:"booking_date"`
	TimeSlot     string `json:"time_slot"`
}

// Validate checks the request for required fields.
func (r *CreateBookingRequest) Validate() error {
	if strings.TrimSpace(r.UserName) == "" ||
		strings.TrimSpace(r.UserEmail) == "" ||
		r.ServiceID == "" ||
		r.BookingDate == "" ||
		r.TimeSlot == "" {
		return ErrInvalidBooking
	}
	return nil
}
