package livesession

import (
	"time"
)

// Counterparty produces host replies to visitor messages. The default
// implementation is a simulated host; a real transport can be substituted
// without touching the state machine.
type Counterparty interface {
	// Greeting is the message the host seeds into the chat on joining.
	Greeting() string
	// Reply schedules a reply to a visitor message and returns a cancel
	// function. deliver runs later, possibly on another goroutine.
	Reply(visitorText string, deliver func(reply string)) (cancel func())
}

const (
	defaultGreeting  = "Hey! I can see you. Ready when you are! 👋"
	defaultAutoReply = "Got it! Let me help you with that..."
	// DefaultReplyDelay is the simulated think time before the host answers.
	DefaultReplyDelay = 2 * time.Second
)

// SimulatedHost answers every visitor message with a canned reply after a
// fixed delay. It stands in for the real second party, which this system
// does not have.
type SimulatedHost struct {
	Delay     time.Duration
	GreetText string
	ReplyText string
}

// NewSimulatedHost creates a simulated host with the default texts.
func NewSimulatedHost(delay time.Duration) *SimulatedHost {
	if delay <= 0 {
		delay = DefaultReplyDelay
	}
	return &SimulatedHost{Delay: delay, GreetText: defaultGreeting, ReplyText: defaultAutoReply}
}

func (h *SimulatedHost) Greeting() string {
	if h.GreetText == "" {
		return defaultGreeting
	}
	return h.GreetText
}

func (h *SimulatedHost) Reply(_ string, deliver func(string)) func() {
	reply := h.ReplyText
	if reply == "" {
		reply = defaultAutoReply
	}
	timer := time.AfterFunc(h.Delay, func() { deliver(reply) })
	return func() { timer.Stop() }
}
