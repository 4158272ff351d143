package razorpay

import (
	"context"

	"go.uber.org/zap"
)

// CreatePaymentLink creates a hosted payment link with an attached transfer
// instruction for the biller's linked account. The reference id makes link
// creation idempotent on the gateway side, so transient failures are retried.
func (c *Client) CreatePaymentLink(ctx context.Context, params CreatePaymentLinkParams) (*PaymentLink, error) {
	var link PaymentLink
	if err := c.doWithRetry(ctx, "POST", "/v1/payment_links", params, &link); err != nil {
		return nil, err
	}

	c.logger.Info("created payment link",
		zap.String("link_id", link.ID),
		zap.String("reference_id", params.ReferenceID),
		zap.Int64("amount_minor", params.AmountMinor))

	return &link, nil
}
