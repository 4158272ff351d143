package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const invoiceColumns = `id, biller_id, template_id, invoice_number, status, currency,
	tax_rate_bps, discount_bps, subtotal_minor, total_minor, issued_date, due_date,
	payment_link_id, payment_link_url, payment_link_status, transfer_amount_minor,
	gateway_payment_id, gateway_transfer_id, partially_paid, needs_attention,
	attention_reason, paid_at, version, created_at, updated_at`

func scanInvoice(row interface{ Scan(dest ...interface{}) error }) (Invoice, error) {
	var i Invoice
	err := row.Scan(
		&i.ID, &i.BillerID, &i.TemplateID, &i.InvoiceNumber, &i.Status, &i.Currency,
		&i.TaxRateBps, &i.DiscountBps, &i.SubtotalMinor, &i.TotalMinor, &i.IssuedDate, &i.DueDate,
		&i.PaymentLinkID, &i.PaymentLinkURL, &i.PaymentLinkStatus, &i.TransferAmountMinor,
		&i.GatewayPaymentID, &i.GatewayTransferID, &i.PartiallyPaid, &i.NeedsAttention,
		&i.AttentionReason, &i.PaidAt, &i.Version, &i.CreatedAt, &i.UpdatedAt,
	)
	return i, err
}

// CreateInvoiceParams holds the fields needed to insert a new invoice.
type CreateInvoiceParams struct {
	BillerID      uuid.UUID
	TemplateID    pgtype.UUID
	InvoiceNumber string
	Status        string
	Currency      string
	TaxRateBps    int32
	DiscountBps   int32
	SubtotalMinor int64
	TotalMinor    int64
	IssuedDate    pgtype.Timestamptz
	DueDate       pgtype.Timestamptz
}

const createInvoice = `
INSERT INTO invoices (
	biller_id, template_id, invoice_number, status, currency,
	tax_rate_bps, discount_bps, subtotal_minor, total_minor, issued_date, due_date
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING ` + invoiceColumns

func (q *Queries) CreateInvoice(ctx context.Context, arg CreateInvoiceParams) (Invoice, error) {
	row := q.db.QueryRow(ctx, createInvoice,
		arg.BillerID, arg.TemplateID, arg.InvoiceNumber, arg.Status, arg.Currency,
		arg.TaxRateBps, arg.DiscountBps, arg.SubtotalMinor, arg.TotalMinor, arg.IssuedDate, arg.DueDate,
	)
	return scanInvoice(row)
}

// CreateInvoiceItemParams holds the fields for one invoice line.
type CreateInvoiceItemParams struct {
	InvoiceID     uuid.UUID
	Description   string
	Quantity      float64
	UnitRateMinor int64
	AmountMinor   int64
}

const createInvoiceItem = `
INSERT INTO invoice_items (invoice_id, description, quantity, unit_rate_minor, amount_minor)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, invoice_id, description, quantity, unit_rate_minor, amount_minor, created_at`

func (q *Queries) CreateInvoiceItem(ctx context.Context, arg CreateInvoiceItemParams) (InvoiceItem, error) {
	var item InvoiceItem
	err := q.db.QueryRow(ctx, createInvoiceItem,
		arg.InvoiceID, arg.Description, arg.Quantity, arg.UnitRateMinor, arg.AmountMinor,
	).Scan(&item.ID, &item.InvoiceID, &item.Description, &item.Quantity, &item.UnitRateMinor, &item.AmountMinor, &item.CreatedAt)
	return item, err
}

const getInvoiceByID = `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1`

func (q *Queries) GetInvoiceByID(ctx context.Context, id uuid.UUID) (Invoice, error) {
	return scanInvoice(q.db.QueryRow(ctx, getInvoiceByID, id))
}

const getInvoiceByPaymentLinkID = `SELECT ` + invoiceColumns + ` FROM invoices WHERE payment_link_id = $1`

func (q *Queries) GetInvoiceByPaymentLinkID(ctx context.Context, paymentLinkID string) (Invoice, error) {
	return scanInvoice(q.db.QueryRow(ctx, getInvoiceByPaymentLinkID, paymentLinkID))
}

const getInvoiceItems = `
SELECT id, invoice_id, description, quantity, unit_rate_minor, amount_minor, created_at
FROM invoice_items WHERE invoice_id = $1 ORDER BY created_at`

func (q *Queries) GetInvoiceItems(ctx context.Context, invoiceID uuid.UUID) ([]InvoiceItem, error) {
	rows, err := q.db.Query(ctx, getInvoiceItems, invoiceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []InvoiceItem
	for rows.Next() {
		var item InvoiceItem
		if err := rows.Scan(&item.ID, &item.InvoiceID, &item.Description, &item.Quantity, &item.UnitRateMinor, &item.AmountMinor, &item.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

const listInvoicesByBiller = `SELECT ` + invoiceColumns + ` FROM invoices WHERE biller_id = $1 ORDER BY created_at DESC`

func (q *Queries) ListInvoicesByBiller(ctx context.Context, billerID uuid.UUID) ([]Invoice, error) {
	rows, err := q.db.Query(ctx, listInvoicesByBiller, billerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invoices []Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, inv)
	}
	return invoices, rows.Err()
}

const getNextInvoiceSequence = `
UPDATE billers SET invoice_sequence = invoice_sequence + 1, updated_at = now()
WHERE id = $1
RETURNING invoice_sequence`

func (q *Queries) GetNextInvoiceSequence(ctx context.Context, billerID uuid.UUID) (int32, error) {
	var seq int32
	err := q.db.QueryRow(ctx, getNextInvoiceSequence, billerID).Scan(&seq)
	return seq, err
}

// AttachPaymentLinkParams stores the gateway link reference and the frozen
// commission-adjusted transfer amount on the invoice.
type AttachPaymentLinkParams struct {
	ID                  uuid.UUID
	PaymentLinkID       string
	PaymentLinkURL      string
	PaymentLinkStatus   string
	TransferAmountMinor pgtype.Int8
}

const attachPaymentLink = `
UPDATE invoices SET
	payment_link_id = $2, payment_link_url = $3, payment_link_status = $4,
	transfer_amount_minor = $5, version = version + 1, updated_at = now()
WHERE id = $1
RETURNING ` + invoiceColumns

func (q *Queries) AttachPaymentLink(ctx context.Context, arg AttachPaymentLinkParams) (Invoice, error) {
	row := q.db.QueryRow(ctx, attachPaymentLink,
		arg.ID, arg.PaymentLinkID, arg.PaymentLinkURL, arg.PaymentLinkStatus, arg.TransferAmountMinor,
	)
	return scanInvoice(row)
}

// MarkInvoicePaidParams marks an invoice paid. The WHERE clause refuses to
// touch an invoice that is already paid, which makes re-delivered paid events
// a no-op and keeps racing downgrade events from corrupting the status.
type MarkInvoicePaidParams struct {
	ID               uuid.UUID
	GatewayPaymentID string
}

const markInvoicePaid = `
UPDATE invoices SET
	status = 'paid', gateway_payment_id = $2, payment_link_status = 'paid',
	paid_at = now(), version = version + 1, updated_at = now()
WHERE id = $1 AND status <> 'paid'`

func (q *Queries) MarkInvoicePaid(ctx context.Context, arg MarkInvoicePaidParams) (int64, error) {
	tag, err := q.db.Exec(ctx, markInvoicePaid, arg.ID, arg.GatewayPaymentID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// UpdateInvoiceStatusIfNotPaidParams applies a downgrade transition
// (cancelled, overdue) only while the invoice has not been paid.
type UpdateInvoiceStatusIfNotPaidParams struct {
	ID                uuid.UUID
	Status            string
	PaymentLinkStatus string
}

const updateInvoiceStatusIfNotPaid = `
UPDATE invoices SET
	status = $2, payment_link_status = $3, version = version + 1, updated_at = now()
WHERE id = $1 AND status <> 'paid'`

func (q *Queries) UpdateInvoiceStatusIfNotPaid(ctx context.Context, arg UpdateInvoiceStatusIfNotPaidParams) (int64, error) {
	tag, err := q.db.Exec(ctx, updateInvoiceStatusIfNotPaid, arg.ID, arg.Status, arg.PaymentLinkStatus)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const setInvoicePartiallyPaid = `
UPDATE invoices SET
	partially_paid = true, payment_link_status = 'partially_paid',
	version = version + 1, updated_at = now()
WHERE id = $1`

func (q *Queries) SetInvoicePartiallyPaid(ctx context.Context, id uuid.UUID) error {
	_, err := q.db.Exec(ctx, setInvoicePartiallyPaid, id)
	return err
}

// AttachTransferConfirmationParams records the settled transfer id on the invoice.
type AttachTransferConfirmationParams struct {
	ID                uuid.UUID
	GatewayTransferID string
}

const attachTransferConfirmation = `
UPDATE invoices SET
	gateway_transfer_id = $2, attention_reason = NULL, needs_attention = false,
	version = version + 1, updated_at = now()
WHERE id = $1`

func (q *Queries) AttachTransferConfirmation(ctx context.Context, arg AttachTransferConfirmationParams) error {
	_, err := q.db.Exec(ctx, attachTransferConfirmation, arg.ID, arg.GatewayTransferID)
	return err
}

// FlagInvoiceForAttentionParams marks an invoice for manual reconciliation,
// e.g. after a failed or unknown-outcome settlement transfer.
type FlagInvoiceForAttentionParams struct {
	ID     uuid.UUID
	Reason string
}

const flagInvoiceForAttention = `
UPDATE invoices SET
	needs_attention = true, attention_reason = $2,
	version = version + 1, updated_at = now()
WHERE id = $1`

func (q *Queries) FlagInvoiceForAttention(ctx context.Context, arg FlagInvoiceForAttentionParams) error {
	_, err := q.db.Exec(ctx, flagInvoiceForAttention, arg.ID, arg.Reason)
	return err
}
