package booking

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DefaultSessionFeeCents is the flat session fee.
const DefaultSessionFeeCents = 2500

// Receipt records a completed charge.
type Receipt struct {
	ID          string        `json:"id"`
	Method      PaymentMethod `json:"method"`
	AmountCents int           `json:"amount_cents"`
	PaidAt      time.Time     `json:"paid_at"`
}

// Processor charges the session fee. The production implementation would
// front a payment provider; the simulated one always succeeds after a fixed
// processing delay.
type Processor interface {
	Charge(ctx context.Context, method PaymentMethod, amountCents int) (Receipt, error)
}

// DefaultProcessingDelay mirrors the checkout's simulated processing time.
const DefaultProcessingDelay = 1500 * time.Millisecond

// SimulatedProcessor approves every charge after Delay.
type SimulatedProcessor struct {
	Delay time.Duration
}

func NewSimulatedProcessor(delay time.Duration) *SimulatedProcessor {
	if delay <= 0 {
		delay = DefaultProcessingDelay
	}
	return &SimulatedProcessor{Delay: delay}
}

func (p *SimulatedProcessor) Charge(ctx context.Context, method PaymentMethod, amountCents int) (Receipt, error) {
	timer := time.NewTimer(p.Delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return Receipt{}, ctx.Err()
	case <-timer.C:
	}
	return Receipt{
		ID:          "pay-" + uuid.NewString(),
		Method:      method,
		AmountCents: amountCents,
		PaidAt:      time.Now().UTC(),
	}, nil
}
