package services

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/swiftbill/swiftbill-api/internal/db"
)

// InvoiceGenerator materializes concrete invoices from recurring templates.
type InvoiceGenerator struct {
	queries  db.Querier
	invoices *InvoiceService
	email    EmailSender
	logger   *zap.Logger
}

// NewInvoiceGenerator creates an invoice generator. email may be nil when
// auto-send is not configured for the deployment.
func NewInvoiceGenerator(queries db.Querier, invoices *InvoiceService, email EmailSender, logger *zap.Logger) *InvoiceGenerator {
	return &InvoiceGenerator{
		queries:  queries,
		invoices: invoices,
		email:    email,
		logger:   logger,
	}
}

// GenerateFromTemplate snapshots a template into a concrete pending invoice:
// items are copied with line totals computed at generation time, the next
// invoice number is allocated, and a payment link is issued. Link or email
// failures do not fail the generation; the invoice exists either way.
func (g *InvoiceGenerator) GenerateFromTemplate(ctx context.Context, tpl db.RecurringInvoiceTemplate, now time.Time) (*InvoiceWithItems, error) {
	items, err := g.queries.GetTemplateItems(ctx, tpl.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get template items: %w", err)
	}
	if len(items) == 0 {
		return nil, errors.Errorf("template %s has no items", tpl.ID)
	}

	inputs := make([]InvoiceItemInput, 0, len(items))
	for _, item := range items {
		inputs = append(inputs, InvoiceItemInput{
			Description:   item.Description,
			Quantity:      item.Quantity,
			UnitRateMinor: item.UnitRateMinor,
		})
	}

	issuedDate := tpl.NextIssueDate.Time
	if !tpl.NextIssueDate.Valid {
		issuedDate = now
	}

	result, err := g.invoices.CreateInvoice(ctx, CreateInvoiceParams{
		BillerID:    tpl.BillerID,
		TemplateID:  pgtype.UUID{Bytes: tpl.ID, Valid: true},
		Currency:    tpl.Currency,
		TaxRateBps:  tpl.TaxRateBps,
		DiscountBps: tpl.DiscountBps,
		IssuedDate:  issuedDate,
		Items:       inputs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create invoice from template: %w", err)
	}

	updated, err := g.invoices.CreatePaymentLinkForInvoice(ctx, result.Invoice.ID)
	if err != nil {
		// The invoice stands; a link can be issued manually later.
		g.logger.Error("failed to issue payment link for generated invoice",
			zap.String("invoice_id", result.Invoice.ID.String()),
			zap.String("template_id", tpl.ID.String()),
			zap.Error(err))
	} else {
		result.Invoice = *updated
	}

	if tpl.AutoSendEnabled {
		g.sendInvoiceEmail(ctx, tpl, result)
	}

	g.logger.Info("invoice generated from template",
		zap.String("template_id", tpl.ID.String()),
		zap.String("invoice_id", result.Invoice.ID.String()),
		zap.String("invoice_number", result.Invoice.InvoiceNumber))
	return result, nil
}

func (g *InvoiceGenerator) sendInvoiceEmail(ctx context.Context, tpl db.RecurringInvoiceTemplate, result *InvoiceWithItems) {
	if g.email == nil || len(tpl.Recipients) == 0 {
		return
	}

	biller, err := g.queries.GetBiller(ctx, tpl.BillerID)
	if err != nil {
		g.logger.Error("failed to load biller for invoice email", zap.Error(err))
		return
	}

	if err := g.email.SendInvoiceEmail(ctx, InvoiceEmailParams{
		Invoice:    result.Invoice,
		Items:      result.Items,
		BillerName: biller.Name,
		Recipients: tpl.Recipients,
	}); err != nil {
		g.logger.Error("failed to send invoice email",
			zap.String("invoice_id", result.Invoice.ID.String()),
			zap.Error(err))
	}
}
