package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const transferColumns = `id, invoice_id, gateway_transfer_id, gateway_payment_id,
	destination_account_id, amount_minor, status, failure_reason, created_at, updated_at`

func scanTransfer(row interface{ Scan(dest ...interface{}) error }) (Transfer, error) {
	var t Transfer
	err := row.Scan(
		&t.ID, &t.InvoiceID, &t.GatewayTransferID, &t.GatewayPaymentID,
		&t.DestinationAccountID, &t.AmountMinor, &t.Status, &t.FailureReason, &t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

// CreateTransferParams records a settlement transfer attempt before the
// gateway call is made, so an in-flight transfer is always visible.
type CreateTransferParams struct {
	InvoiceID            uuid.UUID
	GatewayPaymentID     string
	DestinationAccountID string
	AmountMinor          int64
	Status               string
}

const createTransfer = `
INSERT INTO transfers (invoice_id, gateway_payment_id, destination_account_id, amount_minor, status)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + transferColumns

func (q *Queries) CreateTransfer(ctx context.Context, arg CreateTransferParams) (Transfer, error) {
	row := q.db.QueryRow(ctx, createTransfer,
		arg.InvoiceID, arg.GatewayPaymentID, arg.DestinationAccountID, arg.AmountMinor, arg.Status,
	)
	return scanTransfer(row)
}

const getTransferByGatewayPaymentID = `SELECT ` + transferColumns + ` FROM transfers WHERE gateway_payment_id = $1`

func (q *Queries) GetTransferByGatewayPaymentID(ctx context.Context, gatewayPaymentID string) (Transfer, error) {
	return scanTransfer(q.db.QueryRow(ctx, getTransferByGatewayPaymentID, gatewayPaymentID))
}

// SetTransferResultParams finalizes a transfer row after the gateway call.
type SetTransferResultParams struct {
	ID                uuid.UUID
	GatewayTransferID pgtype.Text
	Status            string
	FailureReason     pgtype.Text
}

const setTransferResult = `
UPDATE transfers SET gateway_transfer_id = $2, status = $3, failure_reason = $4, updated_at = now()
WHERE id = $1`

func (q *Queries) SetTransferResult(ctx context.Context, arg SetTransferResultParams) error {
	_, err := q.db.Exec(ctx, setTransferResult, arg.ID, arg.GatewayTransferID, arg.Status, arg.FailureReason)
	return err
}

// UpdateTransferStatusByGatewayIDParams applies transfer lifecycle events
// delivered by the gateway (transfer.processed / transfer.failed).
type UpdateTransferStatusByGatewayIDParams struct {
	GatewayTransferID string
	Status            string
	FailureReason     pgtype.Text
}

const updateTransferStatusByGatewayID = `
UPDATE transfers SET status = $2, failure_reason = $3, updated_at = now()
WHERE gateway_transfer_id = $1
RETURNING ` + transferColumns

func (q *Queries) UpdateTransferStatusByGatewayID(ctx context.Context, arg UpdateTransferStatusByGatewayIDParams) (Transfer, error) {
	row := q.db.QueryRow(ctx, updateTransferStatusByGatewayID, arg.GatewayTransferID, arg.Status, arg.FailureReason)
	return scanTransfer(row)
}
