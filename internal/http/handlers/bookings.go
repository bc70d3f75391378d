package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/daymaker2day/daymaker2day/internal/app"
	"github.com/daymaker2day/daymaker2day/internal/booking"
	"github.com/daymaker2day/daymaker2day/internal/bookings"
	"github.com/daymaker2day/daymaker2day/internal/schedule"
	"github.com/daymaker2day/daymaker2day/pkg/logging"
)

// BookingsHandler runs the booking wizard server-side and fronts the
// persistence collaborator.
type BookingsHandler struct {
	app       *app.App
	processor booking.Processor
	courier   *booking.Courier
	logger    *logging.Logger
}

// NewBookingsHandler creates a bookings handler.
func NewBookingsHandler(a *app.App, processor booking.Processor, courier *booking.Courier, logger *logging.Logger) *BookingsHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &BookingsHandler{app: a, processor: processor, courier: courier, logger: logger}
}

type createBookingRequest struct {
	ServiceID      string `json:"service_id"`
	Date           string `json:"date"` // YYYY-MM-DD
	TimeSlot       string `json:"time_slot"`
	PaymentMethod  string `json:"payment_method"`
	UserName       string `json:"user_name"`
	UserEmail      string `json:"user_email"`
	Gift           bool   `json:"gift"`
	DeliveryMethod string `json:"delivery_method,omitempty"`
	RecipientName  string `json:"recipient_name,omitempty"`
	RecipientEmail string `json:"recipient_email,omitempty"`
}

type createBookingResponse struct {
	Session  schedule.Session        `json:"session"`
	Receipt  booking.Receipt         `json:"receipt"`
	Delivery *booking.DeliveryResult `json:"delivery,omitempty"`
	Message  string                  `json:"message"`
}

// Create walks the whole wizard for a submitted booking: service, schedule,
// payment, optional gift delivery, then confirmation. Step failures come
// back as 400s; only a payment fault is a 502.
func (h *BookingsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createBookingRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	wiz := booking.NewWizard(req.Gift)
	wiz.SetContact(req.UserName, req.UserEmail)
	wiz.SetRecipient(req.RecipientName)

	if err := wiz.SelectOffering(req.ServiceID); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := wiz.SelectSchedule(req.Date, req.TimeSlot); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	receipt, err := h.processor.Charge(r.Context(), booking.PaymentMethod(req.PaymentMethod), booking.DefaultSessionFeeCents)
	if err != nil {
		h.logger.Error("payment failed", "error", err, "service_id", req.ServiceID)
		writeError(w, http.StatusBadGateway, "payment failed")
		return
	}
	if err := wiz.RecordPayment(booking.PaymentMethod(req.PaymentMethod)); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Gift {
		if err := wiz.SelectDelivery(booking.DeliveryMethod(req.DeliveryMethod)); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	sess, err := wiz.Finalize()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp := createBookingResponse{
		Session: sess,
		Receipt: receipt,
		Message: "Booking created successfully",
	}
	if req.Gift && h.courier != nil {
		gift := h.courier.Wrap(req.RecipientName, req.RecipientEmail, sess.OfferingTitle)
		delivery, err := h.courier.Deliver(r.Context(), booking.DeliveryMethod(req.DeliveryMethod), gift)
		if err != nil {
			// The session is booked either way; the gift stays claimable
			// through another channel.
			h.logger.Error("gift delivery failed", "error", err, "session_id", sess.ID)
		} else {
			resp.Delivery = &delivery
		}
	}

	h.app.ConfirmSession(r.Context(), sess)
	writeJSON(w, http.StatusCreated, resp)
}

// List returns persisted bookings, optionally scoped to a user's email.
func (h *BookingsHandler) List(w http.ResponseWriter, r *http.Request) {
	svc := h.app.Bookings()
	if svc == nil {
		writeJSON(w, http.StatusOK, map[string]any{"bookings": []*bookings.Booking{}})
		return
	}
	out, err := svc.List(r.Context(), r.URL.Query().Get("userEmail"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not list bookings")
		return
	}
	if out == nil {
		out = []*bookings.Booking{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"bookings": out})
}

// Delete cancels a persisted booking.
func (h *BookingsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	svc := h.app.Bookings()
	if svc == nil {
		writeError(w, http.StatusServiceUnavailable, "persistence not configured")
		return
	}
	id := chi.URLParam(r, "bookingID")
	if err := svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, bookings.ErrBookingNotFound) {
			writeError(w, http.StatusNotFound, "booking not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "could not cancel booking")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Booking cancelled"})
}
