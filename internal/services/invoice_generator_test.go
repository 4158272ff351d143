package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/swiftbill/swiftbill-api/internal/client/razorpay"
	"github.com/swiftbill/swiftbill-api/internal/db"
	"github.com/swiftbill/swiftbill-api/internal/mocks"
	"github.com/swiftbill/swiftbill-api/internal/services"
)

func TestGenerateFromTemplate_SnapshotsItemsAndSendsEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockGateway := mocks.NewMockGatewayClient(ctrl)
	mockEmail := mocks.NewMockEmailSender(ctrl)
	logger := zap.NewNop()

	invoiceService := services.NewInvoiceService(mockQuerier, mockGateway, logger)
	generator := services.NewInvoiceGenerator(mockQuerier, invoiceService, mockEmail, logger)
	ctx := context.Background()

	billerID := uuid.New()
	invoiceID := uuid.New()
	issueDate := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	now := issueDate.Add(2 * time.Hour)

	tpl := db.RecurringInvoiceTemplate{
		ID:                  uuid.New(),
		BillerID:            billerID,
		Recurrence:          db.RecurrenceMonthly,
		NextIssueDate:       pgtype.Timestamptz{Time: issueDate, Valid: true},
		AutoGenerateEnabled: true,
		AutoSendEnabled:     true,
		Currency:            "INR",
		TaxRateBps:          1800,
		Recipients:          []string{"client@example.com"},
	}
	biller := db.Biller{ID: billerID, Name: "Asha", Email: "asha@example.com", PaymentTermsDays: 7}

	mockQuerier.EXPECT().GetTemplateItems(ctx, tpl.ID).Return([]db.TemplateItem{
		{TemplateID: tpl.ID, Description: "Monthly retainer", Quantity: 1, UnitRateMinor: 500000},
		{TemplateID: tpl.ID, Description: "Extra hours", Quantity: 2.5, UnitRateMinor: 20000},
	}, nil)
	// Fetched by invoice creation, link issuance and the email path.
	mockQuerier.EXPECT().GetBiller(ctx, billerID).Return(biller, nil).Times(3)
	mockQuerier.EXPECT().GetNextInvoiceSequence(ctx, billerID).Return(int32(3), nil)
	mockQuerier.EXPECT().CreateInvoice(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.CreateInvoiceParams) (db.Invoice, error) {
			// Issue date comes from the schedule, not the wall clock.
			assert.Equal(t, issueDate, arg.IssuedDate.Time)
			assert.Equal(t, tpl.ID, uuid.UUID(arg.TemplateID.Bytes))
			// 500000 + 50000 = 550000 subtotal, 18% tax
			assert.Equal(t, int64(550000), arg.SubtotalMinor)
			assert.Equal(t, int64(649000), arg.TotalMinor)
			return db.Invoice{
				ID:            invoiceID,
				BillerID:      billerID,
				InvoiceNumber: arg.InvoiceNumber,
				Status:        db.InvoiceStatusPending,
				Currency:      arg.Currency,
				TotalMinor:    arg.TotalMinor,
			}, nil
		})
	mockQuerier.EXPECT().CreateInvoiceItem(ctx, gomock.Any()).
		Return(db.InvoiceItem{InvoiceID: invoiceID}, nil).Times(2)

	// Payment link issuance, without a linked account.
	mockQuerier.EXPECT().GetInvoiceByID(ctx, invoiceID).Return(db.Invoice{
		ID:         invoiceID,
		BillerID:   billerID,
		Status:     db.InvoiceStatusPending,
		Currency:   "INR",
		TotalMinor: 649000,
	}, nil)
	mockQuerier.EXPECT().GetLinkedAccountSettings(ctx, billerID).
		Return(db.LinkedAccountSettings{}, pgx.ErrNoRows)
	mockGateway.EXPECT().CreatePaymentLink(ctx, gomock.Any()).
		Return(&razorpay.PaymentLink{
			ID:       "plink_gen",
			ShortURL: "https://rzp.io/l/gen",
			Status:   razorpay.LinkStatusCreated,
		}, nil)
	mockQuerier.EXPECT().AttachPaymentLink(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.AttachPaymentLinkParams) (db.Invoice, error) {
			return db.Invoice{
				ID:             invoiceID,
				BillerID:       billerID,
				Status:         db.InvoiceStatusPending,
				PaymentLinkID:  pgtype.Text{String: arg.PaymentLinkID, Valid: true},
				PaymentLinkURL: pgtype.Text{String: arg.PaymentLinkURL, Valid: true},
			}, nil
		})

	mockEmail.EXPECT().SendInvoiceEmail(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, params services.InvoiceEmailParams) error {
			assert.Equal(t, []string{"client@example.com"}, params.Recipients)
			assert.Equal(t, "Asha", params.BillerName)
			return nil
		})

	result, err := generator.GenerateFromTemplate(ctx, tpl, now)
	assert.NoError(t, err)
	assert.Equal(t, invoiceID, result.Invoice.ID)
	assert.True(t, result.Invoice.PaymentLinkID.Valid)
}

func TestGenerateFromTemplate_NoItemsFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockGateway := mocks.NewMockGatewayClient(ctrl)
	logger := zap.NewNop()

	invoiceService := services.NewInvoiceService(mockQuerier, mockGateway, logger)
	generator := services.NewInvoiceGenerator(mockQuerier, invoiceService, nil, logger)

	tpl := db.RecurringInvoiceTemplate{ID: uuid.New(), BillerID: uuid.New()}
	mockQuerier.EXPECT().GetTemplateItems(gomock.Any(), tpl.ID).Return(nil, nil)

	_, err := generator.GenerateFromTemplate(context.Background(), tpl, time.Now())
	assert.Error(t, err)
}

func TestGenerateFromTemplate_LinkFailureIsNonFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockGateway := mocks.NewMockGatewayClient(ctrl)
	logger := zap.NewNop()

	invoiceService := services.NewInvoiceService(mockQuerier, mockGateway, logger)
	generator := services.NewInvoiceGenerator(mockQuerier, invoiceService, nil, logger)
	ctx := context.Background()

	billerID := uuid.New()
	invoiceID := uuid.New()
	tpl := db.RecurringInvoiceTemplate{
		ID:            uuid.New(),
		BillerID:      billerID,
		Recurrence:    db.RecurrenceMonthly,
		NextIssueDate: pgtype.Timestamptz{Time: time.Now(), Valid: true},
		Currency:      "INR",
	}

	mockQuerier.EXPECT().GetTemplateItems(ctx, tpl.ID).Return([]db.TemplateItem{
		{Description: "Retainer", Quantity: 1, UnitRateMinor: 100000},
	}, nil)
	mockQuerier.EXPECT().GetBiller(ctx, billerID).
		Return(db.Biller{ID: billerID, PaymentTermsDays: 14}, nil)
	mockQuerier.EXPECT().GetNextInvoiceSequence(ctx, billerID).Return(int32(1), nil)
	mockQuerier.EXPECT().CreateInvoice(ctx, gomock.Any()).
		Return(db.Invoice{ID: invoiceID, BillerID: billerID, Status: db.InvoiceStatusPending}, nil)
	mockQuerier.EXPECT().CreateInvoiceItem(ctx, gomock.Any()).
		Return(db.InvoiceItem{}, nil)

	// Link issuance blows up on the invoice re-read; generation still
	// succeeds and the invoice exists without a link.
	mockQuerier.EXPECT().GetInvoiceByID(ctx, invoiceID).Return(db.Invoice{}, pgx.ErrNoRows)

	result, err := generator.GenerateFromTemplate(ctx, tpl, time.Now())
	assert.NoError(t, err)
	assert.Equal(t, invoiceID, result.Invoice.ID)
	assert.False(t, result.Invoice.PaymentLinkID.Valid)
}
