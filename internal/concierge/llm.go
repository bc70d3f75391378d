package concierge

import "context"

// LLMClient is the narrow surface the concierge needs from a hosted
// text-completion service.
type LLMClient interface {
	Complete(ctx context.Context, system, userQuery string) (string, error)
	Close() error
}
