package booking

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/daymaker2day/daymaker2day/internal/catalog"
	"github.com/daymaker2day/daymaker2day/internal/schedule"
)

// Step is the wizard's position in the linear booking sequence.
type Step string

const (
	StepDetail   Step = "detail"
	StepCalendar Step = "calendar"
	StepPayment  Step = "payment"
	StepDelivery Step = "delivery"
	StepConfirm  Step = "confirm"
)

var (
	ErrWrongStep       = errors.New("booking: action not valid for current step")
	ErrUnknownOffering = errors.New("booking: unknown offering")
	ErrIncompleteDraft = errors.New("booking: offering, date and time are required")
)

// Default host identity attached to finalized sessions. A multi-host
// deployment would look these up per offering.
const (
	DefaultHostName  = "Danny"
	DefaultHostImage = "/images/host.jpg"
)

// Wizard drives the booking sequence: service detail, then calendar and
// time, then payment, then gift delivery when gifting, then confirmation.
// Each step's completion fills one draft field and advances the pointer.
// Going back moves the pointer only; fields are retained so the user can
// revise without re-entering earlier answers.
type Wizard struct {
	draft Draft
	step  Step

	HostName  string
	HostImage string
}

// NewWizard starts an empty draft at the detail step. gift switches the
// flow to include the delivery step.
func NewWizard(gift bool) *Wizard {
	return &Wizard{
		draft:     Draft{Gift: gift},
		step:      StepDetail,
		HostName:  DefaultHostName,
		HostImage: DefaultHostImage,
	}
}

// Step returns the current step.
func (w *Wizard) Step() Step { return w.step }

// Draft returns a copy of the accumulated draft.
func (w *Wizard) Draft() Draft { return w.draft }

// SelectOffering completes the detail step.
func (w *Wizard) SelectOffering(id string) error {
	if w.step != StepDetail {
		return ErrWrongStep
	}
	if _, ok := catalog.Lookup(id); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownOffering, id)
	}
	w.draft.OfferingID = id
	w.step = StepCalendar
	return nil
}

// SelectSchedule completes the calendar step with a date (YYYY-MM-DD) and a
// time-slot token.
func (w *Wizard) SelectSchedule(date, slot string) error {
	if w.step != StepCalendar {
		return ErrWrongStep
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("booking: invalid date %q: %w", date, err)
	}
	if _, _, err := schedule.ParseTimeSlot(slot); err != nil {
		return fmt.Errorf("booking: invalid time slot: %w", err)
	}
	w.draft.Date = date
	w.draft.TimeSlot = slot
	w.step = StepPayment
	return nil
}

// RecordPayment completes the payment step. Gifting continues to delivery;
// a self-booking goes straight to confirmation.
func (w *Wizard) RecordPayment(method PaymentMethod) error {
	if w.step != StepPayment {
		return ErrWrongStep
	}
	switch method {
	case PaymentApplePay, PaymentGooglePay, PaymentStripe:
	default:
		return fmt.Errorf("booking: unknown payment method %q", method)
	}
	w.draft.PaymentMethod = method
	if w.draft.Gift {
		w.step = StepDelivery
	} else {
		w.step = StepConfirm
	}
	return nil
}

// SelectDelivery completes the gift delivery step.
func (w *Wizard) SelectDelivery(method DeliveryMethod) error {
	if w.step != StepDelivery {
		return ErrWrongStep
	}
	switch method {
	case DeliverEmail, DeliverCopyLink, DeliverShare:
	default:
		return fmt.Errorf("booking: unknown delivery method %q", method)
	}
	w.draft.DeliveryMethod = method
	w.step = StepConfirm
	return nil
}

// SetContact stores the contact fields. They can be set at any step and are
// validated only at finalization.
func (w *Wizard) SetContact(name, email string) {
	w.draft.ContactName = name
	w.draft.ContactEmail = email
}

// SetRecipient stores the gift recipient's display name.
func (w *Wizard) SetRecipient(name string) {
	w.draft.RecipientName = name
}

// Back moves the step pointer one step toward the start. Fields stay filled.
func (w *Wizard) Back() {
	switch w.step {
	case StepCalendar:
		w.step = StepDetail
	case StepPayment:
		w.step = StepCalendar
	case StepDelivery:
		w.step = StepPayment
	case StepConfirm:
		if w.draft.Gift {
			w.step = StepDelivery
		} else {
			w.step = StepPayment
		}
	}
}

// Finalize converts the draft into a scheduled session. It requires the
// offering, date and time to be present, a non-empty contact name, and an
// email-shaped contact address. The draft is not cleared; the caller
// discards the wizard after a successful submission.
func (w *Wizard) Finalize() (schedule.Session, error) {
	if w.draft.OfferingID == "" || w.draft.Date == "" || w.draft.TimeSlot == "" {
		return schedule.Session{}, ErrIncompleteDraft
	}
	offering, ok := catalog.Lookup(w.draft.OfferingID)
	if !ok {
		return schedule.Session{}, fmt.Errorf("%w: %q", ErrUnknownOffering, w.draft.OfferingID)
	}
	if strings.TrimSpace(w.draft.ContactName) == "" {
		return schedule.Session{}, errors.New("booking: contact name required")
	}
	if _, err := mail.ParseAddress(w.draft.ContactEmail); err != nil {
		return schedule.Session{}, fmt.Errorf("booking: invalid contact email: %w", err)
	}
	date, err := time.ParseInLocation("2006-01-02", w.draft.Date, time.Local)
	if err != nil {
		return schedule.Session{}, fmt.Errorf("booking: invalid date %q: %w", w.draft.Date, err)
	}

	return schedule.Session{
		ID:            schedule.NewSessionID(),
		OfferingID:    offering.ID,
		OfferingTitle: offering.Title,
		Date:          date,
		TimeSlot:      w.draft.TimeSlot,
		HostName:      w.HostName,
		HostImage:     w.HostImage,
		CustomerName:  strings.TrimSpace(w.draft.ContactName),
		CustomerEmail: w.draft.ContactEmail,
	}, nil
}
