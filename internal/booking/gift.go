package booking

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/daymaker2day/daymaker2day/internal/notify"
	"github.com/daymaker2day/daymaker2day/pkg/logging"
)

// GiftSubject is the prefilled email subject for a gifted session.
const GiftSubject = "You've been gifted a session!"

// Gift is a purchased session awaiting delivery to its recipient.
type Gift struct {
	Token          string `json:"token"`
	RecipientName  string `json:"recipient_name"`
	RecipientEmail string `json:"recipient_email,omitempty"`
	SessionTitle   string `json:"session_title"`
	Link           string `json:"link"`
}

// DeliveryResult is what the chosen delivery method produced: a sent email,
// a link to copy, or a share payload. Delivered is false when the share
// sheet was refused, which is a normal outcome and leaves the gift claimable
// through another method.
type DeliveryResult struct {
	Method    DeliveryMethod `json:"method"`
	Delivered bool           `json:"delivered"`
	Link      string         `json:"link"`
	Subject   string         `json:"subject,omitempty"`
	Message   string         `json:"message,omitempty"`
}

// Courier materializes gift links and runs the chosen delivery method.
type Courier struct {
	baseURL string
	email   notify.EmailSender
	logger  *logging.Logger
}

// NewCourier creates a courier minting links under baseURL. email may be nil;
// the EMAIL method then falls back to returning the prefilled message for
// the caller's mail client.
func NewCourier(baseURL string, email notify.EmailSender, logger *logging.Logger) *Courier {
	if logger == nil {
		logger = logging.Default()
	}
	return &Courier{
		baseURL: strings.TrimRight(baseURL, "/"),
		email:   email,
		logger:  logger,
	}
}

// Wrap mints a unique gift link for a purchased session.
func (c *Courier) Wrap(recipientName, recipientEmail, sessionTitle string) Gift {
	token := uuid.NewString()
	return Gift{
		Token:          token,
		RecipientName:  recipientName,
		RecipientEmail: recipientEmail,
		SessionTitle:   sessionTitle,
		Link:           fmt.Sprintf("%s/gift/%s", c.baseURL, token),
	}
}

// Message is the prefilled text accompanying a gift link.
func (c *Courier) Message(g Gift) string {
	name := g.RecipientName
	if name == "" {
		name = "there"
	}
	return fmt.Sprintf(
		"Hi %s!\n\nSomeone just gifted you a fun 25-minute Zoom session:\n\n%q\n\nClick here to choose your time:\n%s\n\nEnjoy!",
		name, g.SessionTitle, g.Link,
	)
}

// Deliver runs the chosen delivery method for a wrapped gift.
func (c *Courier) Deliver(ctx context.Context, method DeliveryMethod, g Gift) (DeliveryResult, error) {
	result := DeliveryResult{
		Method:  method,
		Link:    g.Link,
		Subject: GiftSubject,
		Message: c.Message(g),
	}

	switch method {
	case DeliverEmail:
		if c.email == nil || g.RecipientEmail == "" {
			// No sender configured: hand the prefilled message back so the
			// user's own mail client can carry it.
			result.Delivered = false
			return result, nil
		}
		err := c.email.Send(ctx, notify.EmailMessage{
			To:      g.RecipientEmail,
			ToName:  g.RecipientName,
			Subject: GiftSubject,
			Body:    result.Message,
		})
		if err != nil {
			return result, fmt.Errorf("booking: deliver gift email: %w", err)
		}
		result.Delivered = true
		c.logger.Info("gift delivered by email", "token", g.Token, "to", g.RecipientEmail)
		return result, nil

	case DeliverCopyLink:
		result.Delivered = true
		return result, nil

	case DeliverShare:
		// The share sheet lives on the client; producing the payload is all
		// the server-side delivery there is. Refusal is reported by the
		// client and needs no action here.
		result.Delivered = true
		return result, nil

	default:
		return DeliveryResult{}, fmt.Errorf("booking: unknown delivery method %q", method)
	}
}
