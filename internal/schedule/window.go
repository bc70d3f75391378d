package schedule

import (
	"time"

	"github.com/daymaker2day/daymaker2day/internal/catalog"
)

// JoinGrace is the early-join allowance before a session's scheduled start.
const JoinGrace = 2 * time.Minute

// Classification places "now" relative to a session's activity window.
type Classification int

const (
	BeforeWindow Classification = iota
	InWindow
	AfterWindow
)

func (c Classification) String() string {
	switch c {
	case InWindow:
		return "in_window"
	case AfterWindow:
		return "after_window"
	default:
		return "before_window"
	}
}

// ActivityWindow is the interval during which a session may be joined:
// [scheduled start − grace, scheduled start + duration]. The grace period is
// always shorter than the shortest class duration, so Start < End holds.
type ActivityWindow struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window, inclusive at both ends.
func (w ActivityWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// Window computes the activity window for a session. The offering's class
// type decides the duration; a dangling offering id defaults to the
// half-class duration. The boolean is false when the time slot is malformed,
// in which case the session is never joinable.
func Window(s Session) (ActivityWindow, bool) {
	start, ok := s.StartTime()
	if !ok {
		return ActivityWindow{}, false
	}
	duration := catalog.DurationFor(s.OfferingID).Duration()
	return ActivityWindow{
		Start: start.Add(-JoinGrace),
		End:   start.Add(duration),
	}, true
}

// Classify is the pure evaluator mapping (session, now) to a window
// classification. Malformed scheduling data is absorbed here: an
// unparseable slot classifies as BeforeWindow rather than erroring, because
// this drives a best-effort UI affordance.
func Classify(s Session, now time.Time) Classification {
	w, ok := Window(s)
	if !ok {
		return BeforeWindow
	}
	switch {
	case now.Before(w.Start):
		return BeforeWindow
	case now.After(w.End):
		return AfterWindow
	default:
		return InWindow
	}
}
