package bookings

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PgxPool is the subset of pgxpool.Pool the repository uses; pgxmock
// satisfies it in tests.
type PgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresRepository stores bookings in the relational database.
type PostgresRepository struct {
	pool PgxPool
}

// NewPostgresRepository initializes a repo backed by pgxpool.
func NewPostgresRepository(pool PgxPool) *PostgresRepository {
	if pool == nil {
		panic("bookings: pgx pool required")
	}
	return &PostgresRepository{pool: pool}
}

// Create upserts the user row by email and inserts the booking.
func (r *PostgresRepository) Create(ctx context.Context, req *CreateBookingRequest) (*Booking, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var userID string
	userQuery := `
		INSERT INTO users (id, name, email)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`
	if err := r.pool.QueryRow(ctx, userQuery, uuid.New(), req.UserName, req.UserEmail).Scan(&userID); err != nil {
		return nil, fmt.Errorf("bookings: upsert user failed: %w", err)
	}

	id := uuid.New()
	bookingQuery := `
		INSERT INTO bookings (id, user_id, service_id, service_title, booking_date, time_slot)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`
	var createdAt time.Time
	if err := r.pool.QueryRow(ctx, bookingQuery,
		id,
		userID,
		req.ServiceID,
		req.ServiceTitle,
		req.BookingDate,
		req.TimeSlot,
	).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("bookings: insert failed: %w", err)
	}

	return &Booking{
		ID:           id.String(),
		UserID:       userID,
		UserName:     req.UserName,
		UserEmail:    req.UserEmail,
		ServiceID:    req.ServiceID,
		ServiceTitle: req.ServiceTitle,
		BookingDate:  req.BookingDate,
		TimeSlot:     req.TimeSlot,
		CreatedAt:    createdAt,
	}, nil
}

// List fetches bookings ordered by booking date. An empty userEmail returns
// every booking.
func (r *PostgresRepository) List(ctx context.Context, userEmail string) ([]*Booking, error) {
	query := `
		SELECT b.id, b.user_id, u.name, u.email, b.service_id, b.service_title, b.booking_date, b.time_slot, b.created_at
		FROM bookings b
		JOIN users u ON u.id = b.user_id
		WHERE $1 = '' OR lower(u.email) = lower($1)
		ORDER BY b.booking_date ASC, b.created_at ASC
	`
	rows, err := r.pool.Query(ctx, query, userEmail)
	if err != nil {
		return nil, fmt.Errorf("bookings: select failed: %w", err)
	}
	defer rows.Close()

	var out []*Booking
	for rows.Next() {
		var b Booking
		if err := rows.Scan(
			&b.ID,
			&b.UserID,
			&b.UserName,
			&b.UserEmail,
			&b.ServiceID,
			&b.ServiceTitle,
			&b.BookingDate,
			&b.TimeSlot,
			&b.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("bookings: scan failed: %w", err)
		}
		out = append(out, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("bookings: rows failed: %w", err)
	}
	return out, nil
}

// Delete cancels a booking by id.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("bookings: delete failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrBookingNotFound
	}
	return nil
}
