package bookings

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Repository defines the interface for booking storage.
type Repository interface {
	Create(ctx context.Context, req *CreateBookingRequest) (*Booking, error)
	List(ctx context.Context, userEmail string) ([]*Booking, error)
	Delete(ctx context.Context, id string) error
}

// InMemoryRepository is a stub implementation of Repository for development
// and tests when no database is configured.
type InMemoryRepository struct {
	mu       sync.RWMutex
	bookings map[string]*Booking
	users    map[string]string // email -> user id
}

// NewInMemoryRepository creates a new in-memory repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		bookings: make(map[string]*Booking),
		users:    make(map[string]string),
	}
}

// Create stores a new booking, creating the user entry on first sight.
func (r *InMemoryRepository) Create(ctx context.Context, req *CreateBookingRequest) (*Booking, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	email := strings.ToLower(req.UserEmail)
	userID, ok := r.users[email]
	if !ok {
		userID = uuid.New().String()
		r.users[email] = userID
	}

	b := &Booking{
		ID:           uuid.New().String(),
		UserID:       userID,
		UserName:     req.UserName,
		UserEmail:    req.UserEmail,
		ServiceID:    req.ServiceID,
		ServiceTitle: req.ServiceTitle,
		BookingDate:  req.BookingDate,
		TimeSlot:     req.TimeSlot,
		CreatedAt:    time.Now().UTC(),
	}
	r.bookings[b.ID] = b
	return b, nil
}

// List returns bookings ordered by booking date, optionally filtered by the
// user's email.
func (r *InMemoryRepository) List(ctx context.Context, userEmail string) ([]*Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		if userEmail != "" && !strings.EqualFold(b.UserEmail, userEmail) {
			continue
		}
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].BookingDate != out[j].BookingDate {
			return out[i].BookingDate < out[j].BookingDate
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

// Delete removes a booking by id.
func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.bookings[id]; !ok {
		return ErrBookingNotFound
	}
	delete(r.bookings, id)
	return nil
}
