package schedule

import (
	"context"
	"sync"
	"time"

	"github.com/daymaker2day/daymaker2day/internal/observability/metrics"
	"github.com/daymaker2day/daymaker2day/pkg/logging"
)

// DefaultPollInterval is the cadence at which the monitor re-evaluates
// activity windows when the session collection is idle.
const DefaultPollInterval = 30 * time.Second

// Monitor owns the collection of scheduled sessions and surfaces at most one
// currently joinable session. Selection is first-match-wins over the stored
// order: when two bookings overlap, the one added first stays selected until
// the collection changes. A real multi-session view would need an explicit
// earliest-start tie-break; this mirrors the single "Join Now" affordance.
type Monitor struct {
	clock    Clock
	interval time.Duration
	logger   *logging.Logger
	metrics  *metrics.SessionMetrics

	mu          sync.Mutex
	sessions    []Session
	active      *Session
	subscribers []func(*Session)
}

// NewMonitor creates a monitor. A nil clock reads the system clock; a zero
// interval uses DefaultPollInterval.
func NewMonitor(clock Clock, interval time.Duration, m *metrics.SessionMetrics, logger *logging.Logger) *Monitor {
	if clock == nil {
		clock = SystemClock{}
	}
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Monitor{
		clock:    clock,
		interval: interval,
		logger:   logger,
		metrics:  m,
	}
}

// Subscribe registers a callback invoked whenever the selected joinable
// session changes. The callback receives nil when no session is in window.
// Subscribers must be registered before Run starts.
func (m *Monitor) Subscribe(fn func(*Session)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subscribers = append(m.subscribers, fn)
}

// Add appends a session to the collection and re-evaluates immediately.
func (m *Monitor) Add(s Session) {
	m.mu.Lock()
	m.sessions = append(m.sessions, s)
	m.logger.Info("scheduled session added", "session_id", s.ID, "offering_id", s.OfferingID, "time_slot", s.TimeSlot)
	publish := m.evaluateLocked()
	m.mu.Unlock()
	publish()
}

// Remove deletes a session by id (a session is single-use once its live view
// ends) and re-evaluates immediately. Unknown ids are ignored.
func (m *Monitor) Remove(id string) {
	m.mu.Lock()
	for i, s := range m.sessions {
		if s.ID == id {
			m.sessions = append(m.sessions[:i], m.sessions[i+1:]...)
			m.logger.Info("scheduled session removed", "session_id", id)
			break
		}
	}
	publish := m.evaluateLocked()
	m.mu.Unlock()
	publish()
}

// Sessions returns a copy of the collection in stored order.
func (m *Monitor) Sessions() []Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Session, len(m.sessions))
	copy(out, m.sessions)
	return out
}

// Active returns the currently joinable session, or nil.
func (m *Monitor) Active() *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.active == nil {
		return nil
	}
	s := *m.active
	return &s
}

// Poll forces a re-evaluation against the injected clock.
func (m *Monitor) Poll() {
	m.mu.Lock()
	publish := m.evaluateLocked()
	m.mu.Unlock()
	publish()
}

// Run polls on the configured cadence until ctx is cancelled. Mutations via
// Add/Remove still re-evaluate immediately between ticks.
func (m *Monitor) Run(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Poll()
		}
	}
}

// evaluateLocked scans the stored order for the first in-window session and
// returns a func that publishes the change to subscribers. Callers must hold
// m.mu and invoke the returned func after releasing it, so subscribers may
// call back into the monitor without deadlocking.
func (m *Monitor) evaluateLocked() func() {
	now := m.clock.Now()

	var selected *Session
	for i := range m.sessions {
		s := m.sessions[i]
		if _, ok := s.StartTime(); !ok {
			m.metrics.ObserveMalformedSlot()
			m.logger.Debug("skipping session with malformed time slot", "session_id", s.ID, "time_slot", s.TimeSlot)
			continue
		}
		if Classify(s, now) == InWindow {
			selected = &s
			break
		}
	}

	m.metrics.ObservePoll(selected != nil)

	if sameSelection(m.active, selected) {
		return func() {}
	}
	m.active = selected
	if selected != nil {
		m.logger.Info("session is joinable", "session_id", selected.ID, "offering_id", selected.OfferingID)
	} else {
		m.logger.Info("no session currently joinable")
	}

	subs := make([]func(*Session), len(m.subscribers))
	copy(subs, m.subscribers)
	return func() {
		for _, fn := range subs {
			fn(selected)
		}
	}
}

func sameSelection(a, b *Session) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.ID == b.ID
}
