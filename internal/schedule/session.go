package schedule

import (
	"time"

	"github.com/google/uuid"
)

// Session is a confirmed booking: one offering at one date and time slot for
// one customer. Sessions are single-use; when the live view for a session
// ends the session is removed from the active collection and never rejoined.
type Session struct {
	ID            string    `json:"id"`
	OfferingID    string    `json:"offering_id"`
	OfferingTitle string    `json:"offering_title"`
	Date          time.Time `json:"date"`      // calendar day; time-of-day comes from TimeSlot
	TimeSlot      string    `json:"time_slot"` // "H:MM AM/PM"
	HostName      string    `json:"host_name"`
	HostImage     string    `json:"host_image"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	CustomerBio   string    `json:"customer_bio,omitempty"`
}

// NewSessionID builds a generation-time based identifier for a session.
func NewSessionID() string {
	return "sess-" + uuid.NewString()
}

// StartTime combines the session's calendar date with its parsed time slot,
// zeroing seconds and below. The boolean is false when the slot is malformed.
func (s Session) StartTime() (time.Time, bool) {
	hour, minute, err := ParseTimeSlot(s.TimeSlot)
	if err != nil {
		return time.Time{}, false
	}
	d := s.Date
	return time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, d.Location()), true
}
