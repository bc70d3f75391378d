package schedule

import "time"

// Clock supplies the current time. The window evaluator takes "now" as an
// explicit argument; only the Monitor reads a Clock repeatedly.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FakeClock is a settable clock for tests.
type FakeClock struct {
	Current time.Time
}

func (c *FakeClock) Now() time.Time { return c.Current }

// Advance moves the fake clock forward.
func (c *FakeClock) Advance(d time.Duration) { c.Current = c.Current.Add(d) }
