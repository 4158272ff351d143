package db

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Querier is the storage interface consumed by services. Mocked in tests via
// internal/mocks.
type Querier interface {
	// Billers
	GetBiller(ctx context.Context, id uuid.UUID) (Biller, error)

	// Invoices
	CreateInvoice(ctx context.Context, arg CreateInvoiceParams) (Invoice, error)
	CreateInvoiceItem(ctx context.Context, arg CreateInvoiceItemParams) (InvoiceItem, error)
	GetInvoiceByID(ctx context.Context, id uuid.UUID) (Invoice, error)
	GetInvoiceByPaymentLinkID(ctx context.Context, paymentLinkID string) (Invoice, error)
	GetInvoiceItems(ctx context.Context, invoiceID uuid.UUID) ([]InvoiceItem, error)
	ListInvoicesByBiller(ctx context.Context, billerID uuid.UUID) ([]Invoice, error)
	GetNextInvoiceSequence(ctx context.Context, billerID uuid.UUID) (int32, error)
	AttachPaymentLink(ctx context.Context, arg AttachPaymentLinkParams) (Invoice, error)
	MarkInvoicePaid(ctx context.Context, arg MarkInvoicePaidParams) (int64, error)
	UpdateInvoiceStatusIfNotPaid(ctx context.Context, arg UpdateInvoiceStatusIfNotPaidParams) (int64, error)
	SetInvoicePartiallyPaid(ctx context.Context, id uuid.UUID) error
	AttachTransferConfirmation(ctx context.Context, arg AttachTransferConfirmationParams) error
	FlagInvoiceForAttention(ctx context.Context, arg FlagInvoiceForAttentionParams) error

	// Transfers
	CreateTransfer(ctx context.Context, arg CreateTransferParams) (Transfer, error)
	GetTransferByGatewayPaymentID(ctx context.Context, gatewayPaymentID string) (Transfer, error)
	SetTransferResult(ctx context.Context, arg SetTransferResultParams) error
	UpdateTransferStatusByGatewayID(ctx context.Context, arg UpdateTransferStatusByGatewayIDParams) (Transfer, error)

	// Recurring templates
	ListDueTemplates(ctx context.Context, now time.Time) ([]RecurringInvoiceTemplate, error)
	GetTemplate(ctx context.Context, id uuid.UUID) (RecurringInvoiceTemplate, error)
	GetTemplateItems(ctx context.Context, templateID uuid.UUID) ([]TemplateItem, error)
	AdvanceTemplateSchedule(ctx context.Context, arg AdvanceTemplateScheduleParams) (int64, error)

	// Linked settlement accounts
	GetLinkedAccountSettings(ctx context.Context, billerID uuid.UUID) (LinkedAccountSettings, error)
	UpdateLinkedAccountStatusByAccountID(ctx context.Context, arg UpdateLinkedAccountStatusByAccountIDParams) (int64, error)

	// Webhook event ledger
	GetWebhookEventByEventID(ctx context.Context, eventID string) (WebhookEvent, error)
	CreateWebhookEvent(ctx context.Context, arg CreateWebhookEventParams) (WebhookEvent, error)
}

var _ Querier = (*Queries)(nil)
