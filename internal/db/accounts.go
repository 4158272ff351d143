package db

import (
	"context"

	"github.com/google/uuid"
)

const getBiller = `
SELECT id, name, email, payment_terms_days, created_at, updated_at
FROM billers WHERE id = $1`

func (q *Queries) GetBiller(ctx context.Context, id uuid.UUID) (Biller, error) {
	var b Biller
	err := q.db.QueryRow(ctx, getBiller, id).Scan(&b.ID, &b.Name, &b.Email, &b.PaymentTermsDays, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}

const linkedAccountColumns = `id, biller_id, account_id, active, account_status,
	commission_enabled, commission_percent_bps, settlement_schedule, version, created_at, updated_at`

func scanLinkedAccount(row interface{ Scan(dest ...interface{}) error }) (LinkedAccountSettings, error) {
	var a LinkedAccountSettings
	err := row.Scan(
		&a.ID, &a.BillerID, &a.AccountID, &a.Active, &a.AccountStatus,
		&a.CommissionEnabled, &a.CommissionPercentBps, &a.SettlementSchedule, &a.Version, &a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}

const getLinkedAccountSettings = `SELECT ` + linkedAccountColumns + ` FROM linked_account_settings WHERE biller_id = $1`

func (q *Queries) GetLinkedAccountSettings(ctx context.Context, billerID uuid.UUID) (LinkedAccountSettings, error) {
	return scanLinkedAccount(q.db.QueryRow(ctx, getLinkedAccountSettings, billerID))
}

// UpdateLinkedAccountStatusByAccountIDParams applies account lifecycle events
// (account.activated / account.suspended) from the gateway.
type UpdateLinkedAccountStatusByAccountIDParams struct {
	AccountID     string
	Active        bool
	AccountStatus string
}

const updateLinkedAccountStatusByAccountID = `
UPDATE linked_account_settings SET active = $2, account_status = $3, version = version + 1, updated_at = now()
WHERE account_id = $1`

func (q *Queries) UpdateLinkedAccountStatusByAccountID(ctx context.Context, arg UpdateLinkedAccountStatusByAccountIDParams) (int64, error) {
	tag, err := q.db.Exec(ctx, updateLinkedAccountStatusByAccountID, arg.AccountID, arg.Active, arg.AccountStatus)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
