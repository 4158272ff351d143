package db

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// Invoice status values. Transitions are driven exclusively by the webhook
// processor; "paid" is terminal with respect to gateway downgrade events.
const (
	InvoiceStatusPending   = "pending"
	InvoiceStatusPaid      = "paid"
	InvoiceStatusOverdue   = "overdue"
	InvoiceStatusCancelled = "cancelled"
)

// Transfer status values.
const (
	TransferStatusRequested = "requested"
	TransferStatusProcessed = "processed"
	TransferStatusFailed    = "failed"
)

// Recurrence units for recurring invoice templates.
const (
	RecurrenceWeekly    = "weekly"
	RecurrenceMonthly   = "monthly"
	RecurrenceQuarterly = "quarterly"
	RecurrenceYearly    = "yearly"
)

// Biller is the owning account an invoice is issued by.
type Biller struct {
	ID               uuid.UUID
	Name             string
	Email            string
	PaymentTermsDays int32
	CreatedAt        pgtype.Timestamptz
	UpdatedAt        pgtype.Timestamptz
}

// Invoice is the persistent invoice record. Version is a monotonically
// increasing counter bumped on every mutation; conditional updates check it
// to serialize concurrent webhook and scheduler writes.
type Invoice struct {
	ID                  uuid.UUID
	BillerID            uuid.UUID
	TemplateID          pgtype.UUID
	InvoiceNumber       string
	Status              string
	Currency            string
	TaxRateBps          int32
	DiscountBps         int32
	SubtotalMinor       int64
	TotalMinor          int64
	IssuedDate          pgtype.Timestamptz
	DueDate             pgtype.Timestamptz
	PaymentLinkID       pgtype.Text
	PaymentLinkURL      pgtype.Text
	PaymentLinkStatus   pgtype.Text
	TransferAmountMinor pgtype.Int8
	GatewayPaymentID    pgtype.Text
	GatewayTransferID   pgtype.Text
	PartiallyPaid       pgtype.Bool
	NeedsAttention      pgtype.Bool
	AttentionReason     pgtype.Text
	PaidAt              pgtype.Timestamptz
	Version             int32
	CreatedAt           pgtype.Timestamptz
	UpdatedAt           pgtype.Timestamptz
}

// InvoiceItem is a line on an invoice. AmountMinor is the computed line total,
// frozen at creation time.
type InvoiceItem struct {
	ID            uuid.UUID
	InvoiceID     uuid.UUID
	Description   string
	Quantity      float64
	UnitRateMinor int64
	AmountMinor   int64
	CreatedAt     pgtype.Timestamptz
}

// RecurringInvoiceTemplate is a saved invoice blueprint that spawns concrete
// invoices on a schedule. NextIssueDate only moves forward, one recurrence
// period at a time, and only after a successful generation.
type RecurringInvoiceTemplate struct {
	ID                  uuid.UUID
	BillerID            uuid.UUID
	Recurrence          string
	NextIssueDate       pgtype.Timestamptz
	OccurrenceCount     int32
	MaxOccurrences      pgtype.Int4
	AutoGenerateEnabled bool
	AutoSendEnabled     bool
	SendDayOfPeriod     pgtype.Int4
	Currency            string
	TaxRateBps          int32
	DiscountBps         int32
	Recipients          []string
	LastSentAt          pgtype.Timestamptz
	Version             int32
	CreatedAt           pgtype.Timestamptz
	UpdatedAt           pgtype.Timestamptz
}

// TemplateItem is an item blueprint on a recurring template. Line totals are
// not persisted here; they are recomputed at generation time.
type TemplateItem struct {
	ID            uuid.UUID
	TemplateID    uuid.UUID
	Description   string
	Quantity      float64
	UnitRateMinor int64
	CreatedAt     pgtype.Timestamptz
}

// Transfer records a settlement money movement from the platform pool to a
// biller's linked account. Exactly one is created per paid invoice.
type Transfer struct {
	ID                   uuid.UUID
	InvoiceID            uuid.UUID
	GatewayTransferID    pgtype.Text
	GatewayPaymentID     string
	DestinationAccountID string
	AmountMinor          int64
	Status               string
	FailureReason        pgtype.Text
	CreatedAt            pgtype.Timestamptz
	UpdatedAt            pgtype.Timestamptz
}

// LinkedAccountSettings is the per-biller settlement configuration. It is a
// read-only input to commission math; only account lifecycle events from the
// gateway mutate the active flag.
type LinkedAccountSettings struct {
	ID                   uuid.UUID
	BillerID             uuid.UUID
	AccountID            string
	Active               bool
	AccountStatus        string
	CommissionEnabled    bool
	CommissionPercentBps int32
	SettlementSchedule   pgtype.Text
	Version              int32
	CreatedAt            pgtype.Timestamptz
	UpdatedAt            pgtype.Timestamptz
}

// WebhookEvent is the idempotency ledger for inbound gateway events.
type WebhookEvent struct {
	ID         uuid.UUID
	EventID    string
	EventType  string
	InvoiceID  pgtype.UUID
	Payload    []byte
	ReceivedAt pgtype.Timestamptz
}
