package razorpay

// Payment link status mirror values as reported by the gateway.
const (
	LinkStatusCreated       = "created"
	LinkStatusPaid          = "paid"
	LinkStatusCancelled     = "cancelled"
	LinkStatusExpired       = "expired"
	LinkStatusPartiallyPaid = "partially_paid"
)

// Customer identifies the payer on a payment link.
type Customer struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// CreatePaymentLinkParams creates a gateway-hosted payment page with an
// attached settlement transfer instruction. TransferAmountMinor is the
// commission-adjusted amount frozen at link creation time.
type CreatePaymentLinkParams struct {
	AmountMinor         int64             `json:"amount"`
	Currency            string            `json:"currency"`
	Customer            Customer          `json:"customer"`
	ReferenceID         string            `json:"reference_id"`
	LinkedAccountID     string            `json:"linked_account_id,omitempty"`
	TransferAmountMinor int64             `json:"transfer_amount,omitempty"`
	SettlementSchedule  string            `json:"settlement_schedule,omitempty"`
	Notes               map[string]string `json:"notes,omitempty"`
}

// PaymentLink is the gateway's representation of a hosted payment page.
type PaymentLink struct {
	ID          string `json:"id"`
	ShortURL    string `json:"short_url"`
	Status      string `json:"status"`
	AmountMinor int64  `json:"amount"`
	ReferenceID string `json:"reference_id"`
}

// CreateTransferParams moves money from the settlement pool to a linked
// account, sourced from a captured payment.
type CreateTransferParams struct {
	PaymentID   string            `json:"payment_id"`
	AccountID   string            `json:"account"`
	AmountMinor int64             `json:"amount"`
	Notes       map[string]string `json:"notes,omitempty"`
}

// Transfer is the gateway's record of a settlement transfer.
type Transfer struct {
	ID          string `json:"id"`
	Status      string `json:"status"`
	AmountMinor int64  `json:"amount"`
	PaymentID   string `json:"source"`
	AccountID   string `json:"recipient"`
}

// Event is the inbound webhook envelope: {event, payload, account_id?} with a
// detached HMAC signature in the request header.
type Event struct {
	ID        string       `json:"id"`
	Event     string       `json:"event"`
	AccountID string       `json:"account_id,omitempty"`
	Payload   EventPayload `json:"payload"`
}

// EventPayload carries the event-specific fields. Only the fields relevant to
// the given event type are populated.
type EventPayload struct {
	LinkID      string `json:"link_id,omitempty"`
	ReferenceID string `json:"reference_id,omitempty"`
	PaymentID   string `json:"payment_id,omitempty"`
	AmountMinor int64  `json:"amount,omitempty"`
	TransferID  string `json:"transfer_id,omitempty"`
	Status      string `json:"status,omitempty"`
	Reason      string `json:"reason,omitempty"`
}

// EventKind is the closed set of gateway event types. String-keyed dispatch is
// parsed once into this enum so each handler switch is exhaustive and a new
// event type is a compile-visible addition.
type EventKind int

const (
	EventUnknown EventKind = iota
	EventLinkPaid
	EventLinkCancelled
	EventLinkExpired
	EventLinkPartiallyPaid
	EventTransferProcessed
	EventTransferFailed
	EventAccountActivated
	EventAccountSuspended
)

// Wire names of the gateway event types.
const (
	eventNameLinkPaid          = "link.paid"
	eventNameLinkCancelled     = "link.cancelled"
	eventNameLinkExpired       = "link.expired"
	eventNameLinkPartiallyPaid = "link.partially_paid"
	eventNameTransferProcessed = "transfer.processed"
	eventNameTransferFailed    = "transfer.failed"
	eventNameAccountActivated  = "account.activated"
	eventNameAccountSuspended  = "account.suspended"
)

// ParseEventKind maps a wire event name to its EventKind.
func ParseEventKind(name string) EventKind {
	switch name {
	case eventNameLinkPaid:
		return EventLinkPaid
	case eventNameLinkCancelled:
		return EventLinkCancelled
	case eventNameLinkExpired:
		return EventLinkExpired
	case eventNameLinkPartiallyPaid:
		return EventLinkPartiallyPaid
	case eventNameTransferProcessed:
		return EventTransferProcessed
	case eventNameTransferFailed:
		return EventTransferFailed
	case eventNameAccountActivated:
		return EventAccountActivated
	case eventNameAccountSuspended:
		return EventAccountSuspended
	default:
		return EventUnknown
	}
}

// String returns the wire name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventLinkPaid:
		return eventNameLinkPaid
	case EventLinkCancelled:
		return eventNameLinkCancelled
	case EventLinkExpired:
		return eventNameLinkExpired
	case EventLinkPartiallyPaid:
		return eventNameLinkPartiallyPaid
	case EventTransferProcessed:
		return eventNameTransferProcessed
	case EventTransferFailed:
		return eventNameTransferFailed
	case EventAccountActivated:
		return eventNameAccountActivated
	case EventAccountSuspended:
		return eventNameAccountSuspended
	default:
		return "unknown"
	}
}
