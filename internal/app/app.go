package app

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/daymaker2day/daymaker2day/internal/bookings"
	"github.com/daymaker2day/daymaker2day/internal/concierge"
	"github.com/daymaker2day/daymaker2day/internal/livesession"
	"github.com/daymaker2day/daymaker2day/internal/observability/metrics"
	"github.com/daymaker2day/daymaker2day/internal/schedule"
	"github.com/daymaker2day/daymaker2day/pkg/logging"
)

var (
	// ErrSessionNotJoinable is returned when a live session is requested
	// outside the scheduled session's activity window.
	ErrSessionNotJoinable = errors.New("app: session is not joinable right now")
)

// Options carries the collaborators the application core composes.
type Options struct {
	Monitor     *schedule.Monitor
	Bookings    *bookings.Service
	Concierge   *concierge.Service
	Transcripts *livesession.TranscriptStore
	Metrics     *metrics.SessionMetrics

	HostJoinDelay  time.Duration
	AutoReplyDelay time.Duration
	Capturer       livesession.Capturer
	Logger         *logging.Logger
}

// App owns the top-level state: the scheduled-session collection (via the
// activity monitor), any open live sessions, and the services the HTTP
// layer calls into.
type App struct {
	monitor     *schedule.Monitor
	bookings    *bookings.Service
	concierge   *concierge.Service
	transcripts *livesession.TranscriptStore
	metrics     *metrics.SessionMetrics

	hostJoinDelay  time.Duration
	autoReplyDelay time.Duration
	capturer       livesession.Capturer
	logger         *logging.Logger

	mu   sync.Mutex
	live map[string]*livesession.Session // by scheduled session id
}

// New assembles the application core.
func New(opts Options) *App {
	if opts.Logger == nil {
		opts.Logger = logging.Default()
	}
	if opts.Monitor == nil {
		opts.Monitor = schedule.NewMonitor(schedule.SystemClock{}, schedule.DefaultPollInterval, opts.Metrics, opts.Logger)
	}
	return &App{
		monitor:        opts.Monitor,
		bookings:       opts.Bookings,
		concierge:      opts.Concierge,
		transcripts:    opts.Transcripts,
		metrics:        opts.Metrics,
		hostJoinDelay:  opts.HostJoinDelay,
		autoReplyDelay: opts.AutoReplyDelay,
		capturer:       opts.Capturer,
		logger:         opts.Logger,
		live:           make(map[string]*livesession.Session),
	}
}

// Monitor exposes the activity monitor.
func (a *App) Monitor() *schedule.Monitor { return a.monitor }

// Concierge exposes the recommendation service; may be nil.
func (a *App) Concierge() *concierge.Service { return a.concierge }

// Bookings exposes the persistence service; may be nil.
func (a *App) Bookings() *bookings.Service { return a.bookings }

// ConfirmSession registers a finalized booking: the monitor starts watching
// it and the persistence collaborator records it. Persistence failure is
// logged and swallowed; the in-memory schedule keeps the session usable.
func (a *App) ConfirmSession(ctx context.Context, sess schedule.Session) {
	a.monitor.Add(sess)

	if a.bookings == nil {
		return
	}
	_, err := a.bookings.Create(ctx, &bookings.CreateBookingRequest{
		UserName:     sess.CustomerName,
		UserEmail:    sess.CustomerEmail,
		ServiceID:    sess.OfferingID,
		ServiceTitle: sess.OfferingTitle,
		BookingDate:  sess.Date.Format("2006-01-02"),
		TimeSlot:     sess.TimeSlot,
	})
	if err != nil {
		a.logger.Error("booking persistence failed, keeping in-memory session", "error", err, "session_id", sess.ID)
	}
}

// CancelSession drops a scheduled session. An open live session for it is
// ended first.
func (a *App) CancelSession(id string) {
	a.mu.Lock()
	s := a.live[id]
	a.mu.Unlock()
	if s != nil {
		s.End()
		return // End's hook removes the schedule entry
	}
	a.monitor.Remove(id)
}

// Joinable returns the scheduled session currently inside its activity
// window, if any.
func (a *App) Joinable() *schedule.Session {
	return a.monitor.Active()
}

// EnterLiveSession opens (or returns the already-open) live session for the
// joinable scheduled session with the given id.
func (a *App) EnterLiveSession(id string) (*livesession.Session, error) {
	active := a.monitor.Active()
	if active == nil || active.ID != id {
		return nil, ErrSessionNotJoinable
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if s, ok := a.live[id]; ok {
		return s, nil
	}

	s := livesession.Open(*active, livesession.Options{
		HostJoinDelay: a.hostJoinDelay,
		Counterparty:  livesession.NewSimulatedHost(a.autoReplyDelay),
		Capturer:      a.capturer,
		Metrics:       a.metrics,
		Logger:        a.logger,
		OnEnd:         a.onLiveSessionEnd,
	})
	a.live[id] = s
	return s, nil
}

// LiveSession returns the open live session for a scheduled id, if any.
func (a *App) LiveSession(id string) (*livesession.Session, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	s, ok := a.live[id]
	return s, ok
}

// onLiveSessionEnd archives the transcript and retires the single-use
// scheduled session.
func (a *App) onLiveSessionEnd(scheduledID string) {
	a.mu.Lock()
	s := a.live[scheduledID]
	delete(a.live, scheduledID)
	a.mu.Unlock()

	a.monitor.Remove(scheduledID)

	if s != nil && a.transcripts != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		for _, msg := range s.Transcript() {
			if err := a.transcripts.Append(ctx, scheduledID, msg); err != nil {
				a.logger.Error("transcript archive failed", "error", err, "session_id", scheduledID)
				break
			}
		}
	}
}

// Shutdown ends every open live session.
func (a *App) Shutdown() {
	a.mu.Lock()
	open := make([]*livesession.Session, 0, len(a.live))
	for _, s := range a.live {
		open = append(open, s)
	}
	a.mu.Unlock()
	for _, s := range open {
		s.End()
	}
}
