package concierge

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"

	"github.com/daymaker2day/daymaker2day/internal/catalog"
	"github.com/daymaker2day/daymaker2day/internal/observability/metrics"
	"github.com/daymaker2day/daymaker2day/pkg/logging"
)

var conciergeTracer = otel.Tracer("daymaker.internal.concierge")

// OfflineFallback is returned whenever a recommendation cannot be produced.
// The concierge is best-effort; the menu stays browsable either way.
const OfflineFallback = "AI is currently offline. Please browse the menu manually."

// EmptyResultFallback is returned when the model answers with nothing usable.
const EmptyResultFallback = "I couldn't find a perfect match, but take a look at our menu!"

const systemPromptFormat = `You are the AI Concierge for "daymaker2day", a futuristic micro-service booking app.
We offer 25-minute and 55-minute Zoom sessions.

Here is our menu:
%s

Your task:
1. Analyze the user's mood or request.
2. Recommend 1-3 specific services from the list above that would "make their day".
3. Be brief, friendly, and futuristic in tone.
4. Do not invent services not on the list.`

// Service produces catalog recommendations from a hosted LLM, degrading to
// a static fallback on any failure.
type Service struct {
	llm     LLMClient
	metrics *metrics.ConciergeMetrics
	logger  *logging.Logger
}

// NewService creates a concierge service. llm may be nil; every request then
// takes the offline fallback.
func NewService(llm LLMClient, m *metrics.ConciergeMetrics, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{llm: llm, metrics: m, logger: logger}
}

// Recommend answers a visitor's mood or request with 1-3 menu suggestions.
// It never returns an error: failures collapse to the offline fallback so
// the chat widget always has something to show.
func (s *Service) Recommend(ctx context.Context, userQuery string) string {
	ctx, span := conciergeTracer.Start(ctx, "concierge.recommend")
	defer span.End()

	if strings.TrimSpace(userQuery) == "" || s.llm == nil {
		s.metrics.ObserveRequest("fallback")
		return OfflineFallback
	}

	system := fmt.Sprintf(systemPromptFormat, catalog.MenuContext(catalog.Offerings))
	text, err := s.llm.Complete(ctx, system, userQuery)
	if err != nil {
		span.RecordError(err)
		s.logger.Error("concierge completion failed", "error", err)
		s.metrics.ObserveRequest("error")
		return OfflineFallback
	}
	if strings.TrimSpace(text) == "" {
		s.metrics.ObserveRequest("empty")
		return EmptyResultFallback
	}

	s.metrics.ObserveRequest("ok")
	return text
}
