package handlers_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/swiftbill/swiftbill-api/internal/client/razorpay"
	"github.com/swiftbill/swiftbill-api/internal/handlers"
	"github.com/swiftbill/swiftbill-api/internal/services"
)

type stubProcessor struct {
	result *services.ProcessResult
	err    error

	gotBody      []byte
	gotSignature string
}

func (s *stubProcessor) ProcessEvent(_ context.Context, body []byte, signature string) (*services.ProcessResult, error) {
	s.gotBody = body
	s.gotSignature = signature
	return s.result, s.err
}

func newWebhookRouter(processor handlers.WebhookProcessor) *gin.Engine {
	gin.SetMode(gin.TestMode)
	common := handlers.NewCommonServices(handlers.CommonServicesConfig{Logger: zap.NewNop()})
	handler := handlers.NewWebhookHandler(common, processor, zap.NewNop())

	router := gin.New()
	router.POST("/webhooks/gateway", handler.HandleGatewayWebhook)
	return router
}

func TestHandleGatewayWebhook(t *testing.T) {
	body := []byte(`{"id":"evt_1","event":"link.paid","payload":{"link_id":"plink_1"}}`)

	tests := []struct {
		name       string
		body       []byte
		signature  string
		processor  *stubProcessor
		wantStatus int
	}{
		{
			name:      "applied event returns 200",
			body:      body,
			signature: "sig",
			processor: &stubProcessor{
				result: &services.ProcessResult{Outcome: services.OutcomeApplied, Kind: razorpay.EventLinkPaid},
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing body returns 400",
			body:       nil,
			signature:  "sig",
			processor:  &stubProcessor{},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing signature returns 400",
			body:       body,
			signature:  "",
			processor:  &stubProcessor{},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid signature returns 401",
			body:       body,
			signature:  "bad",
			processor:  &stubProcessor{err: services.ErrInvalidSignature},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "processing error returns 500",
			body:       body,
			signature:  "sig",
			processor:  &stubProcessor{err: assert.AnError},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newWebhookRouter(tt.processor)

			req := httptest.NewRequest(http.MethodPost, "/webhooks/gateway", bytes.NewReader(tt.body))
			if tt.signature != "" {
				req.Header.Set(handlers.SignatureHeader, tt.signature)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestHandleGatewayWebhookPassesRawBody(t *testing.T) {
	body := []byte(`{"id":"evt_raw","event":"link.cancelled","payload":{"link_id":"plink_9"}}`)
	processor := &stubProcessor{
		result: &services.ProcessResult{Outcome: services.OutcomeApplied, Kind: razorpay.EventLinkCancelled},
	}
	router := newWebhookRouter(processor)

	req := httptest.NewRequest(http.MethodPost, "/webhooks/gateway", bytes.NewReader(body))
	req.Header.Set(handlers.SignatureHeader, "sig-123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, body, processor.gotBody)
	assert.Equal(t, "sig-123", processor.gotSignature)
	assert.Contains(t, w.Body.String(), services.OutcomeApplied)
}
