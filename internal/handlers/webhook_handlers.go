package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/swiftbill/swiftbill-api/internal/services"
)

// SignatureHeader carries the gateway's detached HMAC over the raw body.
const SignatureHeader = "X-Gateway-Signature"

// WebhookProcessor is the slice of the webhook service the handler needs.
type WebhookProcessor interface {
	ProcessEvent(ctx context.Context, body []byte, signature string) (*services.ProcessResult, error)
}

// WebhookHandler receives payment gateway event deliveries.
type WebhookHandler struct {
	common    *CommonServices
	processor WebhookProcessor
	logger    *zap.Logger
}

// NewWebhookHandler creates a webhook handler.
func NewWebhookHandler(common *CommonServices, processor WebhookProcessor, logger *zap.Logger) *WebhookHandler {
	if logger == nil {
		logger = zap.L()
	}
	return &WebhookHandler{
		common:    common,
		processor: processor,
		logger:    logger,
	}
}

// WebhookResponse reports what a delivery did.
type WebhookResponse struct {
	Outcome string `json:"outcome"`
	Event   string `json:"event,omitempty"`
}

// HandleGatewayWebhook godoc
// @Summary Receive a payment gateway webhook
// @Description Verifies the signature and applies the event to invoice and transfer state
// @Tags webhooks
// @Accept json
// @Produce json
// @Param X-Gateway-Signature header string true "HMAC-SHA256 signature over the raw body"
// @Success 200 {object} WebhookResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /webhooks/gateway [post]
func (h *WebhookHandler) HandleGatewayWebhook(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil || len(body) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing request body"})
		return
	}

	signature := c.GetHeader(SignatureHeader)
	if signature == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing signature header"})
		return
	}

	result, err := h.processor.ProcessEvent(c.Request.Context(), body, signature)
	if err != nil {
		if errors.Is(err, services.ErrInvalidSignature) {
			h.logger.Warn("rejected webhook with invalid signature",
				zap.String("remote_addr", c.ClientIP()))
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid signature"})
			return
		}
		h.logger.Error("failed to process webhook", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to process event"})
		return
	}

	c.JSON(http.StatusOK, WebhookResponse{
		Outcome: result.Outcome,
		Event:   result.Kind.String(),
	})
}
