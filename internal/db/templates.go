package db

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const templateColumns = `id, biller_id, recurrence, next_issue_date, occurrence_count,
	max_occurrences, auto_generate_enabled, auto_send_enabled, send_day_of_period,
	currency, tax_rate_bps, discount_bps, recipients, last_sent_at, version,
	created_at, updated_at`

func scanTemplate(row interface{ Scan(dest ...interface{}) error }) (RecurringInvoiceTemplate, error) {
	var t RecurringInvoiceTemplate
	err := row.Scan(
		&t.ID, &t.BillerID, &t.Recurrence, &t.NextIssueDate, &t.OccurrenceCount,
		&t.MaxOccurrences, &t.AutoGenerateEnabled, &t.AutoSendEnabled, &t.SendDayOfPeriod,
		&t.Currency, &t.TaxRateBps, &t.DiscountBps, &t.Recipients, &t.LastSentAt, &t.Version,
		&t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

// listDueTemplates selects templates eligible for generation: auto-generate
// on, issue date reached, occurrence cap not exhausted.
const listDueTemplates = `
SELECT ` + templateColumns + ` FROM recurring_invoice_templates
WHERE auto_generate_enabled = true
  AND next_issue_date <= $1
  AND (max_occurrences IS NULL OR occurrence_count < max_occurrences)
ORDER BY next_issue_date`

func (q *Queries) ListDueTemplates(ctx context.Context, now time.Time) ([]RecurringInvoiceTemplate, error) {
	rows, err := q.db.Query(ctx, listDueTemplates, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var templates []RecurringInvoiceTemplate
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	return templates, rows.Err()
}

const getTemplate = `SELECT ` + templateColumns + ` FROM recurring_invoice_templates WHERE id = $1`

func (q *Queries) GetTemplate(ctx context.Context, id uuid.UUID) (RecurringInvoiceTemplate, error) {
	return scanTemplate(q.db.QueryRow(ctx, getTemplate, id))
}

const getTemplateItems = `
SELECT id, template_id, description, quantity, unit_rate_minor, created_at
FROM template_items WHERE template_id = $1 ORDER BY created_at`

func (q *Queries) GetTemplateItems(ctx context.Context, templateID uuid.UUID) ([]TemplateItem, error) {
	rows, err := q.db.Query(ctx, getTemplateItems, templateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []TemplateItem
	for rows.Next() {
		var item TemplateItem
		if err := rows.Scan(&item.ID, &item.TemplateID, &item.Description, &item.Quantity, &item.UnitRateMinor, &item.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// AdvanceTemplateScheduleParams moves a template's schedule forward after a
// successful generation. The version check makes the advance conditional: an
// overlapping run that already advanced the template leaves this update with
// zero rows.
type AdvanceTemplateScheduleParams struct {
	ID            uuid.UUID
	Version       int32
	NextIssueDate time.Time
	LastSentAt    pgtype.Timestamptz
}

const advanceTemplateSchedule = `
UPDATE recurring_invoice_templates SET
	next_issue_date = $3, occurrence_count = occurrence_count + 1,
	last_sent_at = COALESCE($4, last_sent_at), version = version + 1, updated_at = now()
WHERE id = $1 AND version = $2`

func (q *Queries) AdvanceTemplateSchedule(ctx context.Context, arg AdvanceTemplateScheduleParams) (int64, error) {
	tag, err := q.db.Exec(ctx, advanceTemplateSchedule, arg.ID, arg.Version, arg.NextIssueDate, arg.LastSentAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
