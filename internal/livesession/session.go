package livesession

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/daymaker2day/daymaker2day/internal/observability/metrics"
	"github.com/daymaker2day/daymaker2day/internal/schedule"
	"github.com/daymaker2day/daymaker2day/pkg/logging"
)

// Phase is the live session lifecycle state.
type Phase string

const (
	PhaseWaiting Phase = "waiting"
	PhaseActive  Phase = "active"
	PhaseEnded   Phase = "ended"
)

// Role identifies a chat participant.
type Role string

const (
	RoleHost    Role = "host"
	RoleVisitor Role = "visitor"
)

// ChatMessage is one entry in the session transcript.
type ChatMessage struct {
	ID     string    `json:"id"`
	Role   Role      `json:"role"`
	Text   string    `json:"text"`
	SentAt time.Time `json:"sent_at"`
}

// DefaultHostJoinDelay is the simulated connection delay before the host
// joins the waiting room.
const DefaultHostJoinDelay = 1500 * time.Millisecond

// Options configures a live session.
type Options struct {
	HostJoinDelay time.Duration
	TickInterval  time.Duration // counter resolution, 1s in production
	Counterparty  Counterparty
	Capturer      Capturer
	Metrics       *metrics.SessionMetrics
	Logger        *logging.Logger
	// OnEnd is invoked once, after the session reaches the terminal phase,
	// with the owning scheduled session's id. The activity monitor uses it
	// to drop the single-use booking.
	OnEnd func(scheduledID string)
}

// Session is the state machine for one in-progress live session, from
// waiting room through active call to ended. All mutators are safe for
// concurrent use; after the terminal phase every mutator is a no-op, so a
// timer callback firing late cannot corrupt state.
type Session struct {
	scheduled schedule.Session
	opts      Options
	logger    *logging.Logger

	mu             sync.Mutex
	phase          Phase
	waitingSeconds int
	activeSeconds  int
	muted          bool
	videoOn        bool
	screenSharing  bool
	hostJoined     bool
	transcript     []ChatMessage
	capture        CaptureHandle
	pendingReplies map[string]func()

	hostJoinTimer *time.Timer
	tickDone      chan struct{}
	endDone       chan struct{}
}

// Open creates the live session view for a joinable scheduled session and
// enters the waiting room. The waiting counter starts ticking immediately
// and the simulated host joins after the configured delay.
func Open(scheduled schedule.Session, opts Options) *Session {
	if opts.HostJoinDelay <= 0 {
		opts.HostJoinDelay = DefaultHostJoinDelay
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = time.Second
	}
	if opts.Counterparty == nil {
		opts.Counterparty = NewSimulatedHost(DefaultReplyDelay)
	}
	if opts.Logger == nil {
		opts.Logger = logging.Default()
	}

	s := &Session{
		scheduled:      scheduled,
		opts:           opts,
		logger:         opts.Logger,
		phase:          PhaseWaiting,
		videoOn:        true,
		pendingReplies: make(map[string]func()),
		tickDone:       make(chan struct{}),
		endDone:        make(chan struct{}),
	}

	s.hostJoinTimer = time.AfterFunc(opts.HostJoinDelay, s.hostAutoJoin)
	go s.runTicker()

	opts.Metrics.ObserveSessionOpened()
	s.logger.Info("live session opened", "session_id", scheduled.ID, "offering_id", scheduled.OfferingID)
	return s
}

// Scheduled returns the owning scheduled session.
func (s *Session) Scheduled() schedule.Session { return s.scheduled }

func (s *Session) runTicker() {
	ticker := time.NewTicker(s.opts.TickInterval)
	defer ticker.Stop()
	for {
		select {
		case <-s.tickDone:
			return
		case <-ticker.C:
			s.mu.Lock()
			switch s.phase {
			case PhaseWaiting:
				s.waitingSeconds++
			case PhaseActive:
				s.activeSeconds++
			}
			s.mu.Unlock()
		}
	}
}

func (s *Session) hostAutoJoin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseWaiting {
		return
	}
	s.activateLocked()
}

// JoinNow is the explicit host-side transition out of the waiting room.
func (s *Session) JoinNow() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseWaiting {
		return
	}
	s.activateLocked()
}

// activateLocked performs WAITING → ACTIVE: the host is marked joined, the
// greeting is seeded into the chat, and the active counter starts at zero.
func (s *Session) activateLocked() {
	s.phase = PhaseActive
	s.hostJoined = true
	s.activeSeconds = 0
	s.appendMessageLocked(RoleHost, s.opts.Counterparty.Greeting())
	s.logger.Info("host joined, session active", "session_id", s.scheduled.ID, "waited_seconds", s.waitingSeconds)
}

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// WaitingSeconds returns the elapsed waiting-room time.
func (s *Session) WaitingSeconds() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.waitingSeconds
}

// ActiveSeconds returns the elapsed in-call time.
func (s *Session) ActiveSeconds() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeSeconds
}

// HostJoined reports whether the host has entered the call.
func (s *Session) HostJoined() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hostJoined
}

// ToggleMute flips the mute flag. Default is unmuted.
func (s *Session) ToggleMute() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase == PhaseEnded {
		return s.muted
	}
	s.muted = !s.muted
	return s.muted
}

// Muted reports the mute flag.
func (s *Session) Muted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.muted
}

// ToggleVideo flips the camera flag. Default is on.
func (s *Session) ToggleVideo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase == PhaseEnded {
		return s.videoOn
	}
	s.videoOn = !s.videoOn
	return s.videoOn
}

// VideoOn reports the camera flag.
func (s *Session) VideoOn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.videoOn
}

// ScreenSharing reports whether a capture stream is held.
func (s *Session) ScreenSharing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.screenSharing
}

// StartScreenShare acquires the capture resource. A refused or failed
// acquisition leaves the flag off with no surfaced error; the user may
// retry manually. Returns whether sharing is on afterwards.
func (s *Session) StartScreenShare(ctx context.Context) bool {
	s.mu.Lock()
	if s.phase != PhaseActive || s.screenSharing || s.opts.Capturer == nil {
		on := s.screenSharing
		s.mu.Unlock()
		return on
	}
	s.mu.Unlock()

	handle, err := s.opts.Capturer.Start(ctx)
	if err != nil || handle == nil {
		s.logger.Debug("screen share refused", "session_id", s.scheduled.ID, "error", err)
		return false
	}

	s.mu.Lock()
	if s.phase != PhaseActive || s.screenSharing {
		// Session moved on while the permission prompt was open.
		s.mu.Unlock()
		handle.Release()
		return false
	}
	s.capture = handle
	s.screenSharing = true
	s.mu.Unlock()

	go s.watchCapture(handle)
	s.logger.Info("screen share started", "session_id", s.scheduled.ID)
	return true
}

// StopScreenShare releases the capture stream if one is held.
func (s *Session) StopScreenShare() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.releaseCaptureLocked()
}

// watchCapture waits for external termination of the stream (the user
// stopped sharing via a system control) and converges on the same cleanup
// as the explicit stop. The handle identity check makes release idempotent
// across the three release paths.
func (s *Session) watchCapture(handle CaptureHandle) {
	select {
	case <-handle.Done():
		s.mu.Lock()
		if s.capture == handle {
			s.releaseCaptureLocked()
			s.logger.Info("screen share ended externally", "session_id", s.scheduled.ID)
		}
		s.mu.Unlock()
	case <-s.endDone:
		// End already released the handle.
	}
}

// releaseCaptureLocked is the single cleanup routine for the capture
// stream. Callers must hold s.mu.
func (s *Session) releaseCaptureLocked() {
	if s.capture != nil {
		s.capture.Release()
		s.capture = nil
	}
	s.screenSharing = false
}

// SendMessage appends a chat message. Visitor messages schedule a simulated
// host reply; replies landing after the session ended are dropped.
func (s *Session) SendMessage(role Role, text string) (ChatMessage, bool) {
	s.mu.Lock()
	if s.phase == PhaseEnded || text == "" {
		s.mu.Unlock()
		return ChatMessage{}, false
	}
	msg := s.appendMessageLocked(role, text)

	if role == RoleVisitor {
		replyID := uuid.NewString()
		cancel := s.opts.Counterparty.Reply(text, func(reply string) {
			s.deliverReply(replyID, reply)
		})
		s.pendingReplies[replyID] = cancel
	}
	s.mu.Unlock()
	return msg, true
}

func (s *Session) deliverReply(replyID, reply string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pendingReplies, replyID)
	if s.phase == PhaseEnded {
		return
	}
	s.appendMessageLocked(RoleHost, reply)
}

func (s *Session) appendMessageLocked(role Role, text string) ChatMessage {
	msg := ChatMessage{
		ID:     uuid.NewString(),
		Role:   role,
		Text:   text,
		SentAt: time.Now().UTC(),
	}
	s.transcript = append(s.transcript, msg)
	s.opts.Metrics.ObserveChatMessage(string(role))
	return msg
}

// Transcript returns a copy of the chat log in append order.
func (s *Session) Transcript() []ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ChatMessage, len(s.transcript))
	copy(out, s.transcript)
	return out
}

// End drives the session to the terminal phase from either WAITING or
// ACTIVE: the host-join timer and tick counters stop, pending auto-replies
// are cancelled, the capture stream is released, and the owner is notified
// exactly once. Subsequent calls are no-ops.
func (s *Session) End() {
	s.mu.Lock()
	if s.phase == PhaseEnded {
		s.mu.Unlock()
		return
	}
	fromPhase := s.phase
	s.phase = PhaseEnded

	s.hostJoinTimer.Stop()
	close(s.tickDone)
	close(s.endDone)

	for id, cancel := range s.pendingReplies {
		cancel()
		delete(s.pendingReplies, id)
	}
	s.releaseCaptureLocked()
	s.mu.Unlock()

	s.opts.Metrics.ObserveSessionEnded(string(fromPhase))
	s.logger.Info("live session ended", "session_id", s.scheduled.ID, "from_phase", string(fromPhase))

	if s.opts.OnEnd != nil {
		s.opts.OnEnd(s.scheduled.ID)
	}
}
