package bookings

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"

	"github.com/daymaker2day/daymaker2day/pkg/logging"
)

var bookingsTracer = otel.Tracer("daymaker.internal.bookings")

// Service wraps a Repository with logging and tracing. It is the unit the
// HTTP layer talks to; repository errors never reach the client verbatim.
type Service struct {
	repo   Repository
	logger *logging.Logger
}

// NewService creates a bookings service.
func NewService(repo Repository, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// Create persists a confirmed booking.
func (s *Service) Create(ctx context.Context, req *CreateBookingRequest) (*Booking, error) {
	ctx, span := bookingsTracer.Start(ctx, "bookings.create")
	defer span.End()

	b, err := s.repo.Create(ctx, req)
	if err != nil {
		span.RecordError(err)
		s.logger.Error("booking create failed", "error", err, "service_id", req.ServiceID)
		return nil, fmt.Errorf("bookings: create: %w", err)
	}
	s.logger.Info("booking created", "booking_id", b.ID, "service_id", b.ServiceID, "date", b.BookingDate, "slot", b.TimeSlot)
	return b, nil
}

// List returns a user's bookings, or all bookings when userEmail is empty.
func (s *Service) List(ctx context.Context, userEmail string) ([]*Booking, error) {
	ctx, span := bookingsTracer.Start(ctx, "bookings.list")
	defer span.End()

	out, err := s.repo.List(ctx, userEmail)
	if err != nil {
		span.RecordError(err)
		s.logger.Error("booking list failed", "error", err)
		return nil, fmt.Errorf("bookings: list: %w", err)
	}
	return out, nil
}

// Delete cancels a booking.
func (s *Service) Delete(ctx context.Context, id string) error {
	ctx, span := bookingsTracer.Start(ctx, "bookings.delete")
	defer span.End()

	if err := s.repo.Delete(ctx, id); err != nil {
		span.RecordError(err)
		if err != ErrBookingNotFound {
			s.logger.Error("booking delete failed", "error", err, "booking_id", id)
		}
		return err
	}
	s.logger.Info("booking cancelled", "booking_id", id)
	return nil
}
