package admin

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daymaker2day/daymaker2day/internal/notify"
	"github.com/daymaker2day/daymaker2day/pkg/logging"
)

type flakySender struct {
	failFor map[string]bool
	sent    []string
}

func (s *flakySender) Send(_ context.Context, msg notify.EmailMessage) error {
	if s.failFor[msg.To] {
		return errors.New("bounce")
	}
	s.sent = append(s.sent, msg.To)
	return nil
}

type staticSubscribers []Subscriber

func (s staticSubscribers) Subscribers(context.Context) ([]Subscriber, error) {
	return s, nil
}

func TestSendNewsletterDeliversAndMarksSent(t *testing.T) {
	store := NewStore()
	n := store.CreateNewsletter(Newsletter{Subject: "hello", Content: "body"})

	sender := &flakySender{}
	svc := NewService(store, sender, staticSubscribers{
		{Name: "Ada", Email: "ada@example.com"},
		{Name: "Sam", Email: "sam@example.com"},
	}, logging.New("error"))

	sent, err := svc.SendNewsletter(context.Background(), n.ID)
	require.NoError(t, err)
	assert.Equal(t, NewsletterSent, sent.Status)
	assert.Equal(t, 2, sent.Recipients)
	assert.Equal(t, []string{"ada@example.com", "sam@example.com"}, sender.sent)
}

func TestSendNewsletterSkipsFailedDeliveries(t *testing.T) {
	store := NewStore()
	n := store.CreateNewsletter(Newsletter{Subject: "hello", Content: "body"})

	sender := &flakySender{failFor: map[string]bool{"ada@example.com": true}}
	svc := NewService(store, sender, staticSubscribers{
		{Name: "Ada", Email: "ada@example.com"},
		{Name: "Sam", Email: "sam@example.com"},
	}, logging.New("error"))

	sent, err := svc.SendNewsletter(context.Background(), n.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, sent.Recipients)
}

func TestSendNewsletterAllFail(t *testing.T) {
	store := NewStore()
	n := store.CreateNewsletter(Newsletter{Subject: "hello", Content: "body"})

	sender := &flakySender{failFor: map[string]bool{"ada@example.com": true}}
	svc := NewService(store, sender, staticSubscribers{{Name: "Ada", Email: "ada@example.com"}}, logging.New("error"))

	_, err := svc.SendNewsletter(context.Background(), n.ID)
	assert.Error(t, err)

	// Status unchanged on total failure.
	current, err := store.GetNewsletter(n.ID)
	require.NoError(t, err)
	assert.Equal(t, NewsletterDraft, current.Status)
}

func TestSendNewsletterUnconfigured(t *testing.T) {
	store := NewStore()
	n := store.CreateNewsletter(Newsletter{Subject: "hello", Content: "body"})
	svc := NewService(store, nil, nil, logging.New("error"))

	_, err := svc.SendNewsletter(context.Background(), n.ID)
	assert.Error(t, err)
}

func TestSendNewsletterUnknownID(t *testing.T) {
	svc := NewService(NewStore(), &flakySender{}, staticSubscribers{}, logging.New("error"))
	_, err := svc.SendNewsletter(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNewsletterNotFound)
}

func TestBookingSubscribersDeduplicates(t *testing.T) {
	src := BookingSubscribers{List: func(context.Context) ([]Subscriber, error) {
		return []Subscriber{
			{Name: "Ada", Email: "ada@example.com"},
			{Name: "Ada L", Email: "ada@example.com"},
			{Name: "Sam", Email: "sam@example.com"},
			{Name: "Nameless", Email: ""},
		}, nil
	}}

	out, err := src.Subscribers(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Ada", out[0].Name)
}
