package services

import (
	"context"

	"github.com/swiftbill/swiftbill-api/internal/client/razorpay"
	"github.com/swiftbill/swiftbill-api/internal/db"
)

// Local interfaces so services depend on behavior, not concrete clients.

// GatewayClient is the slice of the payment gateway API the services use.
type GatewayClient interface {
	CreatePaymentLink(ctx context.Context, params razorpay.CreatePaymentLinkParams) (*razorpay.PaymentLink, error)
	CreateTransfer(ctx context.Context, params razorpay.CreateTransferParams) (*razorpay.Transfer, error)
	VerifyWebhookSignature(body []byte, signature string) bool
}

// EmailSender delivers rendered invoice emails.
type EmailSender interface {
	SendInvoiceEmail(ctx context.Context, params InvoiceEmailParams) error
}

// TemplateLease guards a recurring template against concurrent generation.
type TemplateLease interface {
	Acquire(ctx context.Context, resourceID string) (bool, error)
	Release(ctx context.Context, resourceID string) error
}

// InvoiceEmailParams carries everything needed to render and send an invoice
// notification.
type InvoiceEmailParams struct {
	Invoice    db.Invoice
	Items      []db.InvoiceItem
	BillerName string
	Recipients []string
}
