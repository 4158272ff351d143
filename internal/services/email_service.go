package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"

	"github.com/google/uuid"
	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

// EmailService sends invoice notification emails through Resend.
type EmailService struct {
	client    *resend.Client
	logger    *zap.Logger
	fromEmail string
	fromName  string
	tmpl      *template.Template
}

// NewEmailService creates a new email service.
func NewEmailService(apiKey, fromEmail, fromName string, logger *zap.Logger) *EmailService {
	return &EmailService{
		client:    resend.NewClient(apiKey),
		logger:    logger,
		fromEmail: fromEmail,
		fromName:  fromName,
		tmpl:      template.Must(template.New("invoice").Parse(invoiceEmailTemplate)),
	}
}

type invoiceEmailData struct {
	BillerName    string
	InvoiceNumber string
	Amount        string
	Currency      string
	DueDate       string
	PaymentLink   string
	Items         []invoiceEmailItem
}

type invoiceEmailItem struct {
	Description string
	Quantity    float64
	Amount      string
}

const invoiceEmailTemplate = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Invoice {{.InvoiceNumber}} from {{.BillerName}}</h2>
  <p>Amount due: <strong>{{.Currency}} {{.Amount}}</strong>{{if .DueDate}} by {{.DueDate}}{{end}}</p>
  <table style="border-collapse: collapse; width: 100%;">
    <tr><th align="left">Description</th><th align="right">Qty</th><th align="right">Amount</th></tr>
    {{range .Items}}
    <tr><td>{{.Description}}</td><td align="right">{{.Quantity}}</td><td align="right">{{.Amount}}</td></tr>
    {{end}}
  </table>
  {{if .PaymentLink}}
  <p><a href="{{.PaymentLink}}" style="background: #2563eb; color: #fff; padding: 10px 20px; text-decoration: none; border-radius: 4px;">Pay now</a></p>
  {{end}}
</body>
</html>`

// SendInvoiceEmail renders and sends the invoice notification to all
// template recipients in a single delivery.
func (s *EmailService) SendInvoiceEmail(ctx context.Context, params InvoiceEmailParams) error {
	if len(params.Recipients) == 0 {
		return nil
	}

	data := invoiceEmailData{
		BillerName:    params.BillerName,
		InvoiceNumber: params.Invoice.InvoiceNumber,
		Amount:        formatMinor(params.Invoice.TotalMinor),
		Currency:      params.Invoice.Currency,
	}
	if params.Invoice.DueDate.Valid {
		data.DueDate = params.Invoice.DueDate.Time.Format("2 Jan 2006")
	}
	if params.Invoice.PaymentLinkURL.Valid {
		data.PaymentLink = params.Invoice.PaymentLinkURL.String
	}
	for _, item := range params.Items {
		data.Items = append(data.Items, invoiceEmailItem{
			Description: item.Description,
			Quantity:    item.Quantity,
			Amount:      formatMinor(item.AmountMinor),
		})
	}

	var html bytes.Buffer
	if err := s.tmpl.Execute(&html, data); err != nil {
		return fmt.Errorf("failed to render invoice email: %w", err)
	}

	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)
	sent, err := s.client.Emails.Send(&resend.SendEmailRequest{
		From:    from,
		To:      params.Recipients,
		Subject: fmt.Sprintf("Invoice %s from %s", params.Invoice.InvoiceNumber, params.BillerName),
		Html:    html.String(),
		Headers: map[string]string{
			"X-Entity-Ref-ID": uuid.New().String(),
		},
		Tags: []resend.Tag{
			{Name: "category", Value: "invoice"},
		},
	})
	if err != nil {
		s.logger.Error("failed to send invoice email",
			zap.String("invoice_number", params.Invoice.InvoiceNumber),
			zap.Strings("to", params.Recipients),
			zap.Error(err))
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Info("invoice email sent",
		zap.String("email_id", sent.Id),
		zap.String("invoice_number", params.Invoice.InvoiceNumber),
		zap.Int("recipients", len(params.Recipients)))
	return nil
}

// formatMinor renders minor units as a major-unit decimal string.
func formatMinor(minor int64) string {
	sign := ""
	if minor < 0 {
		sign = "-"
		minor = -minor
	}
	s := fmt.Sprintf("%s%d.%02d", sign, minor/100, minor%100)
	// Insert thousands separators into the integer part.
	dot := strings.Index(s, ".")
	intPart := s[:dot]
	start := 0
	if sign != "" {
		start = 1
	}
	var b strings.Builder
	b.WriteString(intPart[:start])
	digits := intPart[start:]
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return b.String() + s[dot:]
}
