package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daymaker2day/daymaker2day/internal/bookings"
	"github.com/daymaker2day/daymaker2day/internal/livesession"
	"github.com/daymaker2day/daymaker2day/internal/schedule"
	"github.com/daymaker2day/daymaker2day/pkg/logging"
)

func testApp(now time.Time) (*App, *schedule.FakeClock) {
	clock := &schedule.FakeClock{Current: now}
	logger := logging.New("error")
	monitor := schedule.NewMonitor(clock, time.Minute, nil, logger)
	a := New(Options{
		Monitor:        monitor,
		Bookings:       bookings.NewService(bookings.NewInMemoryRepository(), logger),
		HostJoinDelay:  5 * time.Millisecond,
		AutoReplyDelay: 5 * time.Millisecond,
		Logger:         logger,
	})
	return a, clock
}

func bookedSession(slot string) schedule.Session {
	return schedule.Session{
		ID:            schedule.NewSessionID(),
		OfferingID:    "hc1",
		OfferingTitle: "Coffee Break Chat",
		Date:          time.Date(2026, time.August, 28, 0, 0, 0, 0, time.Local),
		TimeSlot:      slot,
		CustomerName:  "Ada",
		CustomerEmail: "ada@example.com",
	}
}

func TestConfirmSessionSchedulesAndPersists(t *testing.T) {
	now := time.Date(2026, 8, 28, 13, 0, 0, 0, time.Local)
	a, _ := testApp(now)

	sess := bookedSession("2:00 PM")
	a.ConfirmSession(context.Background(), sess)

	assert.Len(t, a.Monitor().Sessions(), 1)
	recs, err := a.Bookings().List(context.Background(), "ada@example.com")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "hc1", recs[0].ServiceID)
}

func TestEnterLiveSessionRequiresJoinableWindow(t *testing.T) {
	now := time.Date(2026, 8, 28, 13, 0, 0, 0, time.Local)
	a, clock := testApp(now)

	sess := bookedSession("2:00 PM")
	a.ConfirmSession(context.Background(), sess)

	// An hour early: not joinable.
	_, err := a.EnterLiveSession(sess.ID)
	assert.ErrorIs(t, err, ErrSessionNotJoinable)

	// Inside the early-join grace.
	clock.Advance(59 * time.Minute)
	a.Monitor().Poll()
	live, err := a.EnterLiveSession(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, live.Scheduled().ID)

	// Re-entry returns the same open session.
	again, err := a.EnterLiveSession(sess.ID)
	require.NoError(t, err)
	assert.Same(t, live, again)
}

func TestLiveSessionEndRetiresBooking(t *testing.T) {
	now := time.Date(2026, 8, 28, 13, 59, 0, 0, time.Local)
	a, _ := testApp(now)

	sess := bookedSession("2:00 PM")
	a.ConfirmSession(context.Background(), sess)
	a.Monitor().Poll()

	live, err := a.EnterLiveSession(sess.ID)
	require.NoError(t, err)

	live.End()
	assert.Empty(t, a.Monitor().Sessions())
	_, open := a.LiveSession(sess.ID)
	assert.False(t, open)

	// Single-use: no re-join after completion.
	_, err = a.EnterLiveSession(sess.ID)
	assert.ErrorIs(t, err, ErrSessionNotJoinable)
}

func TestCancelSessionEndsOpenLiveSession(t *testing.T) {
	now := time.Date(2026, 8, 28, 13, 59, 0, 0, time.Local)
	a, _ := testApp(now)

	sess := bookedSession("2:00 PM")
	a.ConfirmSession(context.Background(), sess)
	a.Monitor().Poll()

	live, err := a.EnterLiveSession(sess.ID)
	require.NoError(t, err)

	a.CancelSession(sess.ID)
	assert.Equal(t, livesession.PhaseEnded, live.Phase())
	assert.Empty(t, a.Monitor().Sessions())
}

func TestCancelSessionWithoutLiveSession(t *testing.T) {
	now := time.Date(2026, 8, 28, 13, 0, 0, 0, time.Local)
	a, _ := testApp(now)

	sess := bookedSession("2:00 PM")
	a.ConfirmSession(context.Background(), sess)
	a.CancelSession(sess.ID)
	assert.Empty(t, a.Monitor().Sessions())
}

func TestShutdownEndsEverything(t *testing.T) {
	now := time.Date(2026, 8, 28, 13, 59, 0, 0, time.Local)
	a, _ := testApp(now)

	sess := bookedSession("2:00 PM")
	a.ConfirmSession(context.Background(), sess)
	a.Monitor().Poll()

	live, err := a.EnterLiveSession(sess.ID)
	require.NoError(t, err)

	a.Shutdown()
	assert.Equal(t, livesession.PhaseEnded, live.Phase())
}
