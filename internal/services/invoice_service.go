package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/swiftbill/swiftbill-api/internal/client/razorpay"
	"github.com/swiftbill/swiftbill-api/internal/db"
)

// InvoiceService handles invoice creation and payment link issuance.
type InvoiceService struct {
	queries db.Querier
	gateway GatewayClient
	logger  *zap.Logger
}

// NewInvoiceService creates a new invoice service.
func NewInvoiceService(queries db.Querier, gateway GatewayClient, logger *zap.Logger) *InvoiceService {
	return &InvoiceService{
		queries: queries,
		gateway: gateway,
		logger:  logger,
	}
}

// InvoiceItemInput is one line on an invoice being created.
type InvoiceItemInput struct {
	Description   string  `json:"description" binding:"required"`
	Quantity      float64 `json:"quantity" binding:"required,gt=0"`
	UnitRateMinor int64   `json:"unit_rate_minor" binding:"required,gt=0"`
}

// CreateInvoiceParams describes a manually created invoice.
type CreateInvoiceParams struct {
	BillerID    uuid.UUID
	TemplateID  pgtype.UUID
	Currency    string
	TaxRateBps  int32
	DiscountBps int32
	IssuedDate  time.Time
	Items       []InvoiceItemInput
}

// InvoiceWithItems pairs an invoice with its line items.
type InvoiceWithItems struct {
	Invoice db.Invoice
	Items   []db.InvoiceItem
}

// CreateInvoice computes totals, allocates the next invoice number for the
// biller and persists the invoice with its items in pending status.
func (s *InvoiceService) CreateInvoice(ctx context.Context, params CreateInvoiceParams) (*InvoiceWithItems, error) {
	if len(params.Items) == 0 {
		return nil, errors.New("invoice requires at least one item")
	}

	biller, err := s.queries.GetBiller(ctx, params.BillerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBillerNotFound
		}
		return nil, fmt.Errorf("failed to get biller: %w", err)
	}

	seq, err := s.queries.GetNextInvoiceSequence(ctx, biller.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate invoice number: %w", err)
	}
	invoiceNumber := FormatInvoiceNumber(params.IssuedDate.Year(), seq)

	subtotal := int64(0)
	for _, item := range params.Items {
		subtotal += LineTotalMinor(item.Quantity, item.UnitRateMinor)
	}
	totals := ApplyTaxAndDiscount(subtotal, params.TaxRateBps, params.DiscountBps)

	dueDate := params.IssuedDate.AddDate(0, 0, int(biller.PaymentTermsDays))

	invoice, err := s.queries.CreateInvoice(ctx, db.CreateInvoiceParams{
		BillerID:      biller.ID,
		TemplateID:    params.TemplateID,
		InvoiceNumber: invoiceNumber,
		Status:        db.InvoiceStatusPending,
		Currency:      params.Currency,
		TaxRateBps:    params.TaxRateBps,
		DiscountBps:   params.DiscountBps,
		SubtotalMinor: totals.SubtotalMinor,
		TotalMinor:    totals.TotalMinor,
		IssuedDate:    pgtype.Timestamptz{Time: params.IssuedDate, Valid: true},
		DueDate:       pgtype.Timestamptz{Time: dueDate, Valid: true},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}

	items := make([]db.InvoiceItem, 0, len(params.Items))
	for _, input := range params.Items {
		item, err := s.queries.CreateInvoiceItem(ctx, db.CreateInvoiceItemParams{
			InvoiceID:     invoice.ID,
			Description:   input.Description,
			Quantity:      input.Quantity,
			UnitRateMinor: input.UnitRateMinor,
			AmountMinor:   LineTotalMinor(input.Quantity, input.UnitRateMinor),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create invoice item: %w", err)
		}
		items = append(items, item)
	}

	s.logger.Info("invoice created",
		zap.String("invoice_id", invoice.ID.String()),
		zap.String("invoice_number", invoice.InvoiceNumber),
		zap.Int64("total_minor", invoice.TotalMinor))

	return &InvoiceWithItems{Invoice: invoice, Items: items}, nil
}

// GetInvoiceWithItems fetches an invoice and its items.
func (s *InvoiceService) GetInvoiceWithItems(ctx context.Context, invoiceID uuid.UUID) (*InvoiceWithItems, error) {
	invoice, err := s.queries.GetInvoiceByID(ctx, invoiceID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("failed to get invoice: %w", err)
	}
	items, err := s.queries.GetInvoiceItems(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get invoice items: %w", err)
	}
	return &InvoiceWithItems{Invoice: invoice, Items: items}, nil
}

// ListInvoices returns all invoices for a biller, newest first.
func (s *InvoiceService) ListInvoices(ctx context.Context, billerID uuid.UUID) ([]db.Invoice, error) {
	invoices, err := s.queries.ListInvoicesByBiller(ctx, billerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	return invoices, nil
}

// CreatePaymentLinkForInvoice issues a hosted payment link for a pending
// invoice. The commission split is computed here, once, and the resulting
// transfer amount is frozen onto the invoice; later commission setting
// changes never affect an already-issued link.
func (s *InvoiceService) CreatePaymentLinkForInvoice(ctx context.Context, invoiceID uuid.UUID) (*db.Invoice, error) {
	invoice, err := s.queries.GetInvoiceByID(ctx, invoiceID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("failed to get invoice: %w", err)
	}
	if invoice.Status != db.InvoiceStatusPending {
		return nil, errors.Errorf("cannot issue payment link for %s invoice", invoice.Status)
	}
	if invoice.PaymentLinkID.Valid {
		// Idempotent: the existing link stands.
		return &invoice, nil
	}

	biller, err := s.queries.GetBiller(ctx, invoice.BillerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get biller: %w", err)
	}

	linkParams := razorpay.CreatePaymentLinkParams{
		AmountMinor: invoice.TotalMinor,
		Currency:    invoice.Currency,
		Customer:    razorpay.Customer{Name: biller.Name, Email: biller.Email},
		ReferenceID: invoice.ID.String(),
		Notes: map[string]string{
			"invoice_number": invoice.InvoiceNumber,
		},
	}

	transferAmount := pgtype.Int8{}
	settings, err := s.queries.GetLinkedAccountSettings(ctx, invoice.BillerID)
	switch {
	case err == nil && settings.Active:
		split := SplitCommission(invoice.TotalMinor, settings.CommissionEnabled, settings.CommissionPercentBps)
		transferAmount = pgtype.Int8{Int64: split.TransferMinor, Valid: true}
		linkParams.LinkedAccountID = settings.AccountID
		linkParams.TransferAmountMinor = split.TransferMinor
		if settings.SettlementSchedule.Valid {
			linkParams.SettlementSchedule = settings.SettlementSchedule.String
		}
	case err == nil:
		s.logger.Warn("linked account inactive, issuing link without transfer",
			zap.String("invoice_id", invoice.ID.String()),
			zap.String("account_id", settings.AccountID))
	case errors.Is(err, pgx.ErrNoRows):
		s.logger.Info("biller has no linked account, issuing link without transfer",
			zap.String("invoice_id", invoice.ID.String()))
	default:
		return nil, fmt.Errorf("failed to get linked account settings: %w", err)
	}

	link, err := s.gateway.CreatePaymentLink(ctx, linkParams)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment link: %w", err)
	}

	updated, err := s.queries.AttachPaymentLink(ctx, db.AttachPaymentLinkParams{
		ID:                  invoice.ID,
		PaymentLinkID:       link.ID,
		PaymentLinkURL:      link.ShortURL,
		PaymentLinkStatus:   link.Status,
		TransferAmountMinor: transferAmount,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to attach payment link: %w", err)
	}

	s.logger.Info("payment link attached",
		zap.String("invoice_id", invoice.ID.String()),
		zap.String("link_id", link.ID))
	return &updated, nil
}

// FormatInvoiceNumber renders a biller-scoped invoice number, e.g.
// INV-2026-0042.
func FormatInvoiceNumber(year int, seq int32) string {
	return fmt.Sprintf("INV-%d-%04d", year, seq)
}
