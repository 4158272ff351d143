package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/swiftbill/swiftbill-api/internal/client/razorpay"
	"github.com/swiftbill/swiftbill-api/internal/db"
)

// Outcome of processing a single webhook delivery.
const (
	OutcomeApplied   = "applied"   // event changed state
	OutcomeDuplicate = "duplicate" // already seen or already in target state
	OutcomeDropped   = "dropped"   // referenced entity not found
	OutcomeIgnored   = "ignored"   // recognized envelope, no action required
)

// ProcessResult reports what a webhook delivery did.
type ProcessResult struct {
	Outcome   string
	Kind      razorpay.EventKind
	InvoiceID uuid.UUID
}

// WebhookProcessor applies gateway events to invoice, transfer and linked
// account state. All state transitions run through conditional SQL so
// redelivered and out-of-order events are safe to replay.
type WebhookProcessor struct {
	queries db.Querier
	gateway GatewayClient
	logger  *zap.Logger
}

// NewWebhookProcessor creates a webhook processor.
func NewWebhookProcessor(queries db.Querier, gateway GatewayClient, logger *zap.Logger) *WebhookProcessor {
	return &WebhookProcessor{
		queries: queries,
		gateway: gateway,
		logger:  logger,
	}
}

// ProcessEvent verifies, deduplicates and applies one webhook delivery.
// Returns ErrInvalidSignature when the body fails verification; any other
// error means the delivery should be retried by the gateway.
func (p *WebhookProcessor) ProcessEvent(ctx context.Context, body []byte, signature string) (*ProcessResult, error) {
	if !p.gateway.VerifyWebhookSignature(body, signature) {
		return nil, ErrInvalidSignature
	}

	event, err := razorpay.ParseEvent(body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse webhook body: %w", err)
	}

	kind := razorpay.ParseEventKind(event.Event)
	if kind == razorpay.EventUnknown {
		p.logger.Info("ignoring unrecognized webhook event", zap.String("event", event.Event))
		return &ProcessResult{Outcome: OutcomeIgnored, Kind: kind}, nil
	}

	// Some gateways omit the envelope id on older API versions; fall back to
	// a synthetic key so redeliveries still dedupe. An empty key means the
	// payload had no discriminating field either; those deliveries skip the
	// ledger and rely on the conditional updates alone.
	eventID := event.ID
	if eventID == "" {
		eventID = syntheticEventID(event)
	}

	if eventID != "" {
		if _, err := p.queries.GetWebhookEventByEventID(ctx, eventID); err == nil {
			p.logger.Info("duplicate webhook delivery",
				zap.String("event_id", eventID),
				zap.String("event", event.Event))
			return &ProcessResult{Outcome: OutcomeDuplicate, Kind: kind}, nil
		} else if !errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("failed to check webhook event ledger: %w", err)
		}
	}

	result, err := p.apply(ctx, kind, event)
	if err != nil {
		return nil, err
	}

	// Ledger insert is best effort: the conditional updates above are
	// idempotent, so a missed insert only costs one redundant replay.
	if eventID != "" {
		invoiceID := pgtype.UUID{}
		if result.InvoiceID != uuid.Nil {
			invoiceID = pgtype.UUID{Bytes: result.InvoiceID, Valid: true}
		}
		if _, err := p.queries.CreateWebhookEvent(ctx, db.CreateWebhookEventParams{
			EventID:   eventID,
			EventType: event.Event,
			InvoiceID: invoiceID,
			Payload:   body,
		}); err != nil {
			p.logger.Warn("failed to record webhook event",
				zap.String("event_id", eventID),
				zap.Error(err))
		}
	}

	return result, nil
}

// syntheticEventID derives a dedup key for an envelope without an id from the
// field that identifies the event's subject. Link, transfer and account events
// each carry a different one, so events of the same type never share a key.
func syntheticEventID(event razorpay.Event) string {
	switch {
	case event.Payload.LinkID != "":
		return event.Payload.LinkID + "_" + event.Event
	case event.Payload.TransferID != "":
		return event.Payload.TransferID + "_" + event.Event
	case event.AccountID != "":
		return event.AccountID + "_" + event.Event
	default:
		return ""
	}
}

func (p *WebhookProcessor) apply(ctx context.Context, kind razorpay.EventKind, event razorpay.Event) (*ProcessResult, error) {
	switch kind {
	case razorpay.EventLinkPaid:
		return p.applyLinkPaid(ctx, kind, event)
	case razorpay.EventLinkCancelled:
		return p.applyLinkStatus(ctx, kind, event, db.InvoiceStatusCancelled, razorpay.LinkStatusCancelled)
	case razorpay.EventLinkExpired:
		return p.applyLinkStatus(ctx, kind, event, db.InvoiceStatusOverdue, razorpay.LinkStatusExpired)
	case razorpay.EventLinkPartiallyPaid:
		return p.applyLinkPartiallyPaid(ctx, kind, event)
	case razorpay.EventTransferProcessed, razorpay.EventTransferFailed:
		return p.applyTransferResult(ctx, kind, event)
	case razorpay.EventAccountActivated:
		return p.applyAccountStatus(ctx, kind, event, true, "activated")
	case razorpay.EventAccountSuspended:
		return p.applyAccountStatus(ctx, kind, event, false, "suspended")
	default:
		return &ProcessResult{Outcome: OutcomeIgnored, Kind: kind}, nil
	}
}

// resolveInvoice locates the invoice a link event refers to, preferring the
// gateway link id and falling back to the reference id we set at creation.
func (p *WebhookProcessor) resolveInvoice(ctx context.Context, payload razorpay.EventPayload) (db.Invoice, bool, error) {
	if payload.LinkID != "" {
		invoice, err := p.queries.GetInvoiceByPaymentLinkID(ctx, payload.LinkID)
		if err == nil {
			return invoice, true, nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return db.Invoice{}, false, fmt.Errorf("failed to look up invoice by link id: %w", err)
		}
	}

	if payload.ReferenceID != "" {
		invoiceID, err := uuid.Parse(payload.ReferenceID)
		if err == nil {
			invoice, err := p.queries.GetInvoiceByID(ctx, invoiceID)
			if err == nil {
				return invoice, true, nil
			}
			if !errors.Is(err, pgx.ErrNoRows) {
				return db.Invoice{}, false, fmt.Errorf("failed to look up invoice by reference id: %w", err)
			}
		}
	}

	return db.Invoice{}, false, nil
}

func (p *WebhookProcessor) applyLinkPaid(ctx context.Context, kind razorpay.EventKind, event razorpay.Event) (*ProcessResult, error) {
	invoice, found, err := p.resolveInvoice(ctx, event.Payload)
	if err != nil {
		return nil, err
	}
	if !found {
		p.logger.Warn("paid event references unknown invoice",
			zap.String("link_id", event.Payload.LinkID),
			zap.String("reference_id", event.Payload.ReferenceID))
		return &ProcessResult{Outcome: OutcomeDropped, Kind: kind}, nil
	}

	rows, err := p.queries.MarkInvoicePaid(ctx, db.MarkInvoicePaidParams{
		ID:               invoice.ID,
		GatewayPaymentID: event.Payload.PaymentID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to mark invoice paid: %w", err)
	}
	if rows == 0 {
		// Already paid; the guard in the update keeps replays harmless.
		return &ProcessResult{Outcome: OutcomeDuplicate, Kind: kind, InvoiceID: invoice.ID}, nil
	}

	p.logger.Info("invoice paid",
		zap.String("invoice_id", invoice.ID.String()),
		zap.String("payment_id", event.Payload.PaymentID))

	p.initiateTransfer(ctx, invoice, event.Payload.PaymentID)

	return &ProcessResult{Outcome: OutcomeApplied, Kind: kind, InvoiceID: invoice.ID}, nil
}

// initiateTransfer kicks off the settlement transfer for a freshly paid
// invoice. Transfer failures never fail the webhook: the paid transition is
// already committed, so problems are flagged for manual attention instead.
func (p *WebhookProcessor) initiateTransfer(ctx context.Context, invoice db.Invoice, paymentID string) {
	if paymentID == "" {
		p.logger.Warn("paid event carried no payment id, skipping transfer",
			zap.String("invoice_id", invoice.ID.String()))
		return
	}
	if !invoice.TransferAmountMinor.Valid || invoice.TransferAmountMinor.Int64 <= 0 {
		p.logger.Info("invoice has no transfer amount, skipping transfer",
			zap.String("invoice_id", invoice.ID.String()))
		return
	}

	settings, err := p.queries.GetLinkedAccountSettings(ctx, invoice.BillerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			p.logger.Info("biller has no linked account, skipping transfer",
				zap.String("invoice_id", invoice.ID.String()))
			return
		}
		p.logger.Error("failed to load linked account settings", zap.Error(err))
		p.flagAttention(ctx, invoice.ID, "could not load linked account settings for transfer")
		return
	}
	if !settings.Active {
		p.logger.Warn("linked account inactive, holding transfer",
			zap.String("invoice_id", invoice.ID.String()),
			zap.String("account_id", settings.AccountID))
		p.flagAttention(ctx, invoice.ID, "linked account inactive at payment time")
		return
	}

	// Exactly one transfer per captured payment.
	if _, err := p.queries.GetTransferByGatewayPaymentID(ctx, paymentID); err == nil {
		p.logger.Info("transfer already exists for payment",
			zap.String("payment_id", paymentID))
		return
	} else if !errors.Is(err, pgx.ErrNoRows) {
		p.logger.Error("failed to check existing transfer", zap.Error(err))
		p.flagAttention(ctx, invoice.ID, "could not verify transfer uniqueness")
		return
	}

	record, err := p.queries.CreateTransfer(ctx, db.CreateTransferParams{
		InvoiceID:            invoice.ID,
		GatewayPaymentID:     paymentID,
		DestinationAccountID: settings.AccountID,
		AmountMinor:          invoice.TransferAmountMinor.Int64,
		Status:               db.TransferStatusRequested,
	})
	if err != nil {
		p.logger.Error("failed to record transfer", zap.Error(err))
		p.flagAttention(ctx, invoice.ID, "could not record settlement transfer")
		return
	}

	gwTransfer, err := p.gateway.CreateTransfer(ctx, razorpay.CreateTransferParams{
		PaymentID:   paymentID,
		AccountID:   settings.AccountID,
		AmountMinor: invoice.TransferAmountMinor.Int64,
		Notes:       map[string]string{"invoice_id": invoice.ID.String()},
	})
	if err != nil {
		p.logger.Error("gateway transfer failed",
			zap.String("invoice_id", invoice.ID.String()),
			zap.Error(err))
		if setErr := p.queries.SetTransferResult(ctx, db.SetTransferResultParams{
			ID:            record.ID,
			Status:        db.TransferStatusFailed,
			FailureReason: pgtype.Text{String: err.Error(), Valid: true},
		}); setErr != nil {
			p.logger.Error("failed to record transfer failure", zap.Error(setErr))
		}
		p.flagAttention(ctx, invoice.ID, "settlement transfer failed: "+err.Error())
		return
	}

	if err := p.queries.SetTransferResult(ctx, db.SetTransferResultParams{
		ID:                record.ID,
		GatewayTransferID: pgtype.Text{String: gwTransfer.ID, Valid: true},
		Status:            db.TransferStatusRequested,
	}); err != nil {
		p.logger.Error("failed to record gateway transfer id", zap.Error(err))
	}
}

func (p *WebhookProcessor) flagAttention(ctx context.Context, invoiceID uuid.UUID, reason string) {
	if err := p.queries.FlagInvoiceForAttention(ctx, db.FlagInvoiceForAttentionParams{
		ID:     invoiceID,
		Reason: reason,
	}); err != nil {
		p.logger.Error("failed to flag invoice for attention",
			zap.String("invoice_id", invoiceID.String()),
			zap.Error(err))
	}
}

func (p *WebhookProcessor) applyLinkStatus(ctx context.Context, kind razorpay.EventKind, event razorpay.Event, status, linkStatus string) (*ProcessResult, error) {
	invoice, found, err := p.resolveInvoice(ctx, event.Payload)
	if err != nil {
		return nil, err
	}
	if !found {
		return &ProcessResult{Outcome: OutcomeDropped, Kind: kind}, nil
	}

	rows, err := p.queries.UpdateInvoiceStatusIfNotPaid(ctx, db.UpdateInvoiceStatusIfNotPaidParams{
		ID:                invoice.ID,
		Status:            status,
		PaymentLinkStatus: linkStatus,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update invoice status: %w", err)
	}
	if rows == 0 {
		// Paid already won; downgrade events never claw it back.
		p.logger.Info("ignoring status downgrade for paid invoice",
			zap.String("invoice_id", invoice.ID.String()),
			zap.String("event", kind.String()))
		return &ProcessResult{Outcome: OutcomeIgnored, Kind: kind, InvoiceID: invoice.ID}, nil
	}

	p.logger.Info("invoice status updated",
		zap.String("invoice_id", invoice.ID.String()),
		zap.String("status", status))
	return &ProcessResult{Outcome: OutcomeApplied, Kind: kind, InvoiceID: invoice.ID}, nil
}

func (p *WebhookProcessor) applyLinkPartiallyPaid(ctx context.Context, kind razorpay.EventKind, event razorpay.Event) (*ProcessResult, error) {
	invoice, found, err := p.resolveInvoice(ctx, event.Payload)
	if err != nil {
		return nil, err
	}
	if !found {
		return &ProcessResult{Outcome: OutcomeDropped, Kind: kind}, nil
	}

	// Partial payment is a display-only marker; the invoice stays pending
	// until the link reports fully paid.
	if err := p.queries.SetInvoicePartiallyPaid(ctx, invoice.ID); err != nil {
		return nil, fmt.Errorf("failed to mark invoice partially paid: %w", err)
	}
	return &ProcessResult{Outcome: OutcomeApplied, Kind: kind, InvoiceID: invoice.ID}, nil
}

func (p *WebhookProcessor) applyTransferResult(ctx context.Context, kind razorpay.EventKind, event razorpay.Event) (*ProcessResult, error) {
	if event.Payload.TransferID == "" {
		return &ProcessResult{Outcome: OutcomeDropped, Kind: kind}, nil
	}

	status := db.TransferStatusProcessed
	failureReason := pgtype.Text{}
	if kind == razorpay.EventTransferFailed {
		status = db.TransferStatusFailed
		reason := event.Payload.Reason
		if reason == "" {
			reason = "transfer failed at gateway"
		}
		failureReason = pgtype.Text{String: reason, Valid: true}
	}

	transfer, err := p.queries.UpdateTransferStatusByGatewayID(ctx, db.UpdateTransferStatusByGatewayIDParams{
		GatewayTransferID: event.Payload.TransferID,
		Status:            status,
		FailureReason:     failureReason,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			p.logger.Warn("transfer event references unknown transfer",
				zap.String("transfer_id", event.Payload.TransferID))
			return &ProcessResult{Outcome: OutcomeDropped, Kind: kind}, nil
		}
		return nil, fmt.Errorf("failed to update transfer status: %w", err)
	}

	if kind == razorpay.EventTransferFailed {
		p.flagAttention(ctx, transfer.InvoiceID, "settlement transfer failed: "+failureReason.String)
	} else {
		if err := p.queries.AttachTransferConfirmation(ctx, db.AttachTransferConfirmationParams{
			ID:                transfer.InvoiceID,
			GatewayTransferID: event.Payload.TransferID,
		}); err != nil {
			p.logger.Error("failed to attach transfer confirmation", zap.Error(err))
		}
	}

	return &ProcessResult{Outcome: OutcomeApplied, Kind: kind, InvoiceID: transfer.InvoiceID}, nil
}

func (p *WebhookProcessor) applyAccountStatus(ctx context.Context, kind razorpay.EventKind, event razorpay.Event, active bool, accountStatus string) (*ProcessResult, error) {
	accountID := event.AccountID
	if accountID == "" {
		return &ProcessResult{Outcome: OutcomeDropped, Kind: kind}, nil
	}

	rows, err := p.queries.UpdateLinkedAccountStatusByAccountID(ctx, db.UpdateLinkedAccountStatusByAccountIDParams{
		AccountID:     accountID,
		Active:        active,
		AccountStatus: accountStatus,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update linked account status: %w", err)
	}
	if rows == 0 {
		p.logger.Warn("account event references unknown linked account",
			zap.String("account_id", accountID))
		return &ProcessResult{Outcome: OutcomeDropped, Kind: kind}, nil
	}

	p.logger.Info("linked account status updated",
		zap.String("account_id", accountID),
		zap.String("status", accountStatus))
	return &ProcessResult{Outcome: OutcomeApplied, Kind: kind}, nil
}
