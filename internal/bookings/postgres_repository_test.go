package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (*PostgresRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return &PostgresRepository{pool: mock}, mock
}

func validCreateRequest() *CreateBookingRequest {
	return &CreateBookingRequest{
		UserName:     "Ada Lovelace",
		UserEmail:    "ada@example.com",
		ServiceID:    "fc1",
		ServiceTitle: "Code Together",
		BookingDate:  "2026-09-01",
		TimeSlot:     "02:30 PM",
	}
}

func TestPostgresCreateUpsertsUserThenInserts(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now().UTC()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(pgxmock.AnyArg(), "Ada Lovelace", "ada@example.com").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow("user-1"))
	mock.ExpectQuery("INSERT INTO bookings").
		WithArgs(pgxmock.AnyArg(), "user-1", "fc1", "Code Together", "2026-09-01", "02:30 PM").
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(now))

	b, err := repo.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)
	assert.Equal(t, "user-1", b.UserID)
	assert.Equal(t, "fc1", b.ServiceID)
	assert.Equal(t, now, b.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCreateValidates(t *testing.T) {
	repo, _ := newMockRepo(t)

	req := validCreateRequest()
	req.UserEmail = "  "
	_, err := repo.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidBooking)
}

func TestPostgresCreateInsertFailure(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(pgxmock.AnyArg(), "Ada Lovelace", "ada@example.com").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow("user-1"))
	mock.ExpectQuery("INSERT INTO bookings").
		WithArgs(pgxmock.AnyArg(), "user-1", "fc1", "Code Together", "2026-09-01", "02:30 PM").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.Create(context.Background(), validCreateRequest())
	assert.Error(t, err)
}

func TestPostgresListByEmail(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now().UTC()

	rows := pgxmock.NewRows([]string{"id", "user_id", "name", "email", "service_id", "service_title", "booking_date", "time_slot", "created_at"}).
		AddRow("b1", "user-1", "Ada Lovelace", "ada@example.com", "fc1", "Code Together", "2026-09-01", "02:30 PM", now).
		AddRow("b2", "user-1", "Ada Lovelace", "ada@example.com", "hc2", "Coffee Chat", "2026-09-03", "10:00 AM", now)
	mock.ExpectQuery("SELECT (.+) FROM bookings").
		WithArgs("ada@example.com").
		WillReturnRows(rows)

	out, err := repo.List(context.Background(), "ada@example.com")
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "b1", out[0].ID)
	assert.Equal(t, "Coffee Chat", out[1].ServiceTitle)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresDelete(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("DELETE FROM bookings").
		WithArgs("b1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	require.NoError(t, repo.Delete(context.Background(), "b1"))

	mock.ExpectExec("DELETE FROM bookings").
		WithArgs("missing").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	err := repo.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
