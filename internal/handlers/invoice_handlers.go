package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/swiftbill/swiftbill-api/internal/db"
	"github.com/swiftbill/swiftbill-api/internal/services"
)

// InvoiceHandler handles invoice HTTP requests.
type InvoiceHandler struct {
	common   *CommonServices
	invoices *services.InvoiceService
	logger   *zap.Logger
}

// NewInvoiceHandler creates an invoice handler.
func NewInvoiceHandler(common *CommonServices, invoices *services.InvoiceService, logger *zap.Logger) *InvoiceHandler {
	if logger == nil {
		logger = zap.L()
	}
	return &InvoiceHandler{
		common:   common,
		invoices: invoices,
		logger:   logger,
	}
}

// CreateInvoiceRequest represents the request to create an invoice.
type CreateInvoiceRequest struct {
	BillerID    uuid.UUID                   `json:"biller_id" binding:"required"`
	Currency    string                      `json:"currency" binding:"required,len=3"`
	TaxRateBps  int32                       `json:"tax_rate_bps" binding:"gte=0"`
	DiscountBps int32                       `json:"discount_bps" binding:"gte=0"`
	IssuedDate  *time.Time                  `json:"issued_date,omitempty"`
	Items       []services.InvoiceItemInput `json:"items" binding:"required,min=1,dive"`
}

// InvoiceResponse represents an invoice in API responses.
type InvoiceResponse struct {
	ID                  uuid.UUID             `json:"id"`
	BillerID            uuid.UUID             `json:"biller_id"`
	TemplateID          *uuid.UUID            `json:"template_id,omitempty"`
	InvoiceNumber       string                `json:"invoice_number"`
	Status              string                `json:"status"`
	Currency            string                `json:"currency"`
	SubtotalMinor       int64                 `json:"subtotal_minor"`
	TotalMinor          int64                 `json:"total_minor"`
	IssuedDate          *time.Time            `json:"issued_date,omitempty"`
	DueDate             *time.Time            `json:"due_date,omitempty"`
	PaymentLinkURL      *string               `json:"payment_link_url,omitempty"`
	PaymentLinkStatus   *string               `json:"payment_link_status,omitempty"`
	TransferAmountMinor *int64                `json:"transfer_amount_minor,omitempty"`
	GatewayTransferID   *string               `json:"gateway_transfer_id,omitempty"`
	PartiallyPaid       bool                  `json:"partially_paid"`
	NeedsAttention      bool                  `json:"needs_attention"`
	AttentionReason     *string               `json:"attention_reason,omitempty"`
	PaidAt              *time.Time            `json:"paid_at,omitempty"`
	Items               []InvoiceItemResponse `json:"items,omitempty"`
}

// InvoiceItemResponse represents a line item in API responses.
type InvoiceItemResponse struct {
	ID            uuid.UUID `json:"id"`
	Description   string    `json:"description"`
	Quantity      float64   `json:"quantity"`
	UnitRateMinor int64     `json:"unit_rate_minor"`
	AmountMinor   int64     `json:"amount_minor"`
}

func toInvoiceResponse(invoice db.Invoice, items []db.InvoiceItem) InvoiceResponse {
	resp := InvoiceResponse{
		ID:            invoice.ID,
		BillerID:      invoice.BillerID,
		InvoiceNumber: invoice.InvoiceNumber,
		Status:        invoice.Status,
		Currency:      invoice.Currency,
		SubtotalMinor: invoice.SubtotalMinor,
		TotalMinor:    invoice.TotalMinor,
		PartiallyPaid: invoice.PartiallyPaid.Bool,
	}
	if invoice.TemplateID.Valid {
		id := uuid.UUID(invoice.TemplateID.Bytes)
		resp.TemplateID = &id
	}
	if invoice.IssuedDate.Valid {
		resp.IssuedDate = &invoice.IssuedDate.Time
	}
	if invoice.DueDate.Valid {
		resp.DueDate = &invoice.DueDate.Time
	}
	if invoice.PaymentLinkURL.Valid {
		resp.PaymentLinkURL = &invoice.PaymentLinkURL.String
	}
	if invoice.PaymentLinkStatus.Valid {
		resp.PaymentLinkStatus = &invoice.PaymentLinkStatus.String
	}
	if invoice.TransferAmountMinor.Valid {
		resp.TransferAmountMinor = &invoice.TransferAmountMinor.Int64
	}
	if invoice.GatewayTransferID.Valid {
		resp.GatewayTransferID = &invoice.GatewayTransferID.String
	}
	if invoice.NeedsAttention.Bool {
		resp.NeedsAttention = true
	}
	if invoice.AttentionReason.Valid {
		resp.AttentionReason = &invoice.AttentionReason.String
	}
	if invoice.PaidAt.Valid {
		resp.PaidAt = &invoice.PaidAt.Time
	}
	for _, item := range items {
		resp.Items = append(resp.Items, InvoiceItemResponse{
			ID:            item.ID,
			Description:   item.Description,
			Quantity:      item.Quantity,
			UnitRateMinor: item.UnitRateMinor,
			AmountMinor:   item.AmountMinor,
		})
	}
	return resp
}

// CreateInvoice godoc
// @Summary Create a new invoice
// @Description Create a pending invoice with computed totals and a biller-scoped invoice number
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoice body CreateInvoiceRequest true "Invoice to create"
// @Success 201 {object} InvoiceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /invoices [post]
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var req CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	issued := time.Now().UTC()
	if req.IssuedDate != nil {
		issued = *req.IssuedDate
	}

	result, err := h.invoices.CreateInvoice(c.Request.Context(), services.CreateInvoiceParams{
		BillerID:    req.BillerID,
		Currency:    req.Currency,
		TaxRateBps:  req.TaxRateBps,
		DiscountBps: req.DiscountBps,
		IssuedDate:  issued,
		Items:       req.Items,
	})
	if err != nil {
		if errors.Is(err, services.ErrBillerNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "biller not found"})
			return
		}
		h.logger.Error("failed to create invoice", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to create invoice"})
		return
	}

	c.JSON(http.StatusCreated, toInvoiceResponse(result.Invoice, result.Items))
}

// GetInvoice godoc
// @Summary Get an invoice
// @Description Returns an invoice with its line items
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} InvoiceResponse
// @Failure 404 {object} ErrorResponse
// @Router /invoices/{id} [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	invoiceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid invoice id"})
		return
	}

	result, err := h.invoices.GetInvoiceWithItems(c.Request.Context(), invoiceID)
	if err != nil {
		if errors.Is(err, services.ErrInvoiceNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "invoice not found"})
			return
		}
		h.logger.Error("failed to get invoice", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to get invoice"})
		return
	}

	c.JSON(http.StatusOK, toInvoiceResponse(result.Invoice, result.Items))
}

// ListInvoices godoc
// @Summary List invoices for a biller
// @Tags invoices
// @Produce json
// @Param biller_id query string true "Biller ID"
// @Success 200 {array} InvoiceResponse
// @Failure 400 {object} ErrorResponse
// @Router /invoices [get]
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	billerID, err := uuid.Parse(c.Query("biller_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid or missing biller_id"})
		return
	}

	invoices, err := h.invoices.ListInvoices(c.Request.Context(), billerID)
	if err != nil {
		h.logger.Error("failed to list invoices", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to list invoices"})
		return
	}

	responses := make([]InvoiceResponse, 0, len(invoices))
	for _, invoice := range invoices {
		responses = append(responses, toInvoiceResponse(invoice, nil))
	}
	c.JSON(http.StatusOK, responses)
}

// IssuePaymentLink godoc
// @Summary Issue a payment link for a pending invoice
// @Description Computes the commission split, freezes the transfer amount and attaches a gateway payment link
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} InvoiceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /invoices/{id}/payment-link [post]
func (h *InvoiceHandler) IssuePaymentLink(c *gin.Context) {
	invoiceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid invoice id"})
		return
	}

	invoice, err := h.invoices.CreatePaymentLinkForInvoice(c.Request.Context(), invoiceID)
	if err != nil {
		if errors.Is(err, services.ErrInvoiceNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "invoice not found"})
			return
		}
		h.logger.Error("failed to issue payment link", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, toInvoiceResponse(*invoice, nil))
}
