package bookings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryCreateReusesUserByEmail(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	first, err := repo.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	req := validCreateRequest()
	req.UserEmail = "ADA@example.com"
	second, err := repo.Create(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, first.UserID, second.UserID)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestInMemoryListOrdersByDate(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	late := validCreateRequest()
	late.BookingDate = "2026-09-10"
	_, err := repo.Create(ctx, late)
	require.NoError(t, err)

	early := validCreateRequest()
	early.BookingDate = "2026-09-01"
	_, err = repo.Create(ctx, early)
	require.NoError(t, err)

	other := validCreateRequest()
	other.UserEmail = "sam@example.com"
	_, err = repo.Create(ctx, other)
	require.NoError(t, err)

	mine, err := repo.List(ctx, "ada@example.com")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "2026-09-01", mine[0].BookingDate)

	all, err := repo.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestInMemoryDelete(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	b, err := repo.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, b.ID))
	assert.ErrorIs(t, repo.Delete(ctx, b.ID), ErrBookingNotFound)
}
