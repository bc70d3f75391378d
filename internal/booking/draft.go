package booking

// PaymentMethod is one of the checkout buttons.
type PaymentMethod string

const (
	PaymentApplePay  PaymentMethod = "APPLE_PAY"
	PaymentGooglePay PaymentMethod = "GOOGLE_PAY"
	PaymentStripe    PaymentMethod = "STRIPE"
)

// DeliveryMethod is how a gifted session reaches its recipient.
type DeliveryMethod string

const (
	DeliverEmail    DeliveryMethod = "EMAIL"
	DeliverCopyLink DeliveryMethod = "COPY_LINK"
	DeliverShare    DeliveryMethod = "SHARE"
)

// Draft accumulates field-by-field as a user moves through the booking
// wizard. Every field is revisable until the draft is finalized; the draft
// itself does not validate, the wizard does that at step boundaries.
type Draft struct {
	OfferingID     string         `json:"offering_id,omitempty"`
	Date           string         `json:"date,omitempty"` // YYYY-MM-DD
	TimeSlot       string         `json:"time_slot,omitempty"`
	PaymentMethod  PaymentMethod  `json:"payment_method,omitempty"`
	Gift           bool           `json:"gift,omitempty"`
	DeliveryMethod DeliveryMethod `json:"delivery_method,omitempty"`
	ContactName    string         `json:"contact_name,omitempty"`
	ContactEmail   string         `json:"contact_email,omitempty"`
	RecipientName  string         `json:"recipient_name,omitempty"`
}
