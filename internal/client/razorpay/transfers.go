package razorpay

import (
	"context"

	"go.uber.org/zap"
)

// CreateTransfer moves money from the settlement pool to a linked account.
// Deliberately not retried: a timed-out transfer has an unknown outcome and
// must go to manual reconciliation rather than risk a duplicate payout.
func (c *Client) CreateTransfer(ctx context.Context, params CreateTransferParams) (*Transfer, error) {
	var transfer Transfer
	if err := c.doRequest(ctx, "POST", "/v1/transfers", params, &transfer); err != nil {
		return nil, err
	}

	c.logger.Info("created settlement transfer",
		zap.String("transfer_id", transfer.ID),
		zap.String("payment_id", params.PaymentID),
		zap.String("account_id", params.AccountID),
		zap.Int64("amount_minor", params.AmountMinor))

	return &transfer, nil
}
