package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const getWebhookEventByEventID = `
SELECT id, event_id, event_type, invoice_id, payload, received_at
FROM webhook_events WHERE event_id = $1`

func (q *Queries) GetWebhookEventByEventID(ctx context.Context, eventID string) (WebhookEvent, error) {
	var e WebhookEvent
	err := q.db.QueryRow(ctx, getWebhookEventByEventID, eventID).Scan(
		&e.ID, &e.EventID, &e.EventType, &e.InvoiceID, &e.Payload, &e.ReceivedAt,
	)
	return e, err
}

// CreateWebhookEventParams appends an inbound gateway event to the
// idempotency ledger. The unique index on event_id rejects duplicates that
// race past the read check.
type CreateWebhookEventParams struct {
	EventID   string
	EventType string
	InvoiceID pgtype.UUID
	Payload   []byte
}

const createWebhookEvent = `
INSERT INTO webhook_events (event_id, event_type, invoice_id, payload)
VALUES ($1, $2, $3, $4)
RETURNING id, event_id, event_type, invoice_id, payload, received_at`

func (q *Queries) CreateWebhookEvent(ctx context.Context, arg CreateWebhookEventParams) (WebhookEvent, error) {
	var e WebhookEvent
	err := q.db.QueryRow(ctx, createWebhookEvent, arg.EventID, arg.EventType, arg.InvoiceID, arg.Payload).Scan(
		&e.ID, &e.EventID, &e.EventType, &e.InvoiceID, &e.Payload, &e.ReceivedAt,
	)
	return e, err
}
