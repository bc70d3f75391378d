package livesession

import (
	"context"
	"sync"
)

// Capturer acquires a screen-capture resource. Acquisition can be refused by
// the user or the environment; refusal is a normal outcome, not a fault.
type Capturer interface {
	Start(ctx context.Context) (CaptureHandle, error)
}

// CaptureHandle is an acquired capture stream. Done is closed when the
// stream is terminated externally (the user stopped sharing through a system
// control outside the app); Release frees the stream and must be safe to
// call exactly once per acquisition.
type CaptureHandle interface {
	Done() <-chan struct{}
	Release()
}

// SimulatedCapturer grants every capture request. It stands in for a real
// display-capture backend; the stream stays open until released.
type SimulatedCapturer struct{}

func (SimulatedCapturer) Start(ctx context.Context) (CaptureHandle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &simulatedCapture{done: make(chan struct{})}, nil
}

type simulatedCapture struct {
	once sync.Once
	done chan struct{}
}

func (c *simulatedCapture) Done() <-chan struct{} { return c.done }

func (c *simulatedCapture) Release() { c.once.Do(func() { close(c.done) }) }
