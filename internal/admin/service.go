package admin

import (
	"context"
	"fmt"

	"github.com/daymaker2day/daymaker2day/internal/notify"
	"github.com/daymaker2day/daymaker2day/pkg/logging"
)

// Subscriber is one newsletter recipient.
type Subscriber struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// SubscriberSource lists the current newsletter audience.
type SubscriberSource interface {
	Subscribers(ctx context.Context) ([]Subscriber, error)
}

// Service runs the admin panel's side effects, chiefly newsletter delivery.
type Service struct {
	store       *Store
	email       notify.EmailSender
	subscribers SubscriberSource
	logger      *logging.Logger
}

// NewService creates the admin service. email and subscribers may be nil;
// sending then fails cleanly without touching newsletter state.
func NewService(store *Store, email notify.EmailSender, subscribers SubscriberSource, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{store: store, email: email, subscribers: subscribers, logger: logger}
}

// Store exposes the underlying content store.
func (s *Service) Store() *Store { return s.store }

// SendNewsletter delivers a newsletter to every subscriber and marks it
// sent. Individual delivery failures are logged and skipped; the newsletter
// is marked sent if at least one delivery succeeded.
func (s *Service) SendNewsletter(ctx context.Context, id string) (*Newsletter, error) {
	n, err := s.store.GetNewsletter(id)
	if err != nil {
		return nil, err
	}
	if s.email == nil || s.subscribers == nil {
		return nil, fmt.Errorf("admin: newsletter delivery not configured")
	}

	audience, err := s.subscribers.Subscribers(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin: list subscribers: %w", err)
	}
	if len(audience) == 0 {
		return nil, fmt.Errorf("admin: no subscribers to send to")
	}

	delivered := 0
	for _, sub := range audience {
		err := s.email.Send(ctx, notify.EmailMessage{
			To:      sub.Email,
			ToName:  sub.Name,
			Subject: n.Subject,
			Body:    n.Content,
		})
		if err != nil {
			s.logger.Error("newsletter delivery failed", "error", err, "newsletter_id", id, "to", sub.Email)
			continue
		}
		delivered++
	}
	if delivered == 0 {
		return nil, fmt.Errorf("admin: newsletter %s: all deliveries failed", id)
	}

	s.logger.Info("newsletter sent", "newsletter_id", id, "delivered", delivered, "audience", len(audience))
	return s.store.MarkNewsletterSent(id, delivered)
}

// BookingSubscribers derives the newsletter audience from booking records:
// everyone who has booked, deduplicated by email.
type BookingSubscribers struct {
	List func(ctx context.Context) ([]Subscriber, error)
}

func (b BookingSubscribers) Subscribers(ctx context.Context) ([]Subscriber, error) {
	if b.List == nil {
		return nil, nil
	}
	all, err := b.List(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(all))
	out := make([]Subscriber, 0, len(all))
	for _, sub := range all {
		if sub.Email == "" || seen[sub.Email] {
			continue
		}
		seen[sub.Email] = true
		out = append(out, sub)
	}
	return out, nil
}
