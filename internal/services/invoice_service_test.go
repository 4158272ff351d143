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

func TestFormatInvoiceNumber(t *testing.T) {
	assert.Equal(t, "INV-2026-0042", services.FormatInvoiceNumber(2026, 42))
	assert.Equal(t, "INV-2025-0001", services.FormatInvoiceNumber(2025, 1))
	assert.Equal(t, "INV-2025-12345", services.FormatInvoiceNumber(2025, 12345))
}

func TestInvoiceService_CreateInvoice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockGateway := mocks.NewMockGatewayClient(ctrl)
	service := services.NewInvoiceService(mockQuerier, mockGateway, zap.NewNop())
	ctx := context.Background()

	billerID := uuid.New()
	invoiceID := uuid.New()
	issued := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	mockQuerier.EXPECT().GetBiller(ctx, billerID).Return(db.Biller{
		ID:               billerID,
		Name:             "Asha",
		PaymentTermsDays: 14,
	}, nil)
	mockQuerier.EXPECT().GetNextInvoiceSequence(ctx, billerID).Return(int32(8), nil)
	mockQuerier.EXPECT().CreateInvoice(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.CreateInvoiceParams) (db.Invoice, error) {
			assert.Equal(t, "INV-2026-0008", arg.InvoiceNumber)
			assert.Equal(t, db.InvoiceStatusPending, arg.Status)
			// 2 x 25000 + 1.5 x 10000 = 65000, 18% tax on full subtotal
			assert.Equal(t, int64(65000), arg.SubtotalMinor)
			assert.Equal(t, int64(76700), arg.TotalMinor)
			assert.Equal(t, issued.AddDate(0, 0, 14), arg.DueDate.Time)
			return db.Invoice{ID: invoiceID, InvoiceNumber: arg.InvoiceNumber, TotalMinor: arg.TotalMinor}, nil
		})
	mockQuerier.EXPECT().CreateInvoiceItem(ctx, gomock.Any()).
		Return(db.InvoiceItem{InvoiceID: invoiceID}, nil).Times(2)

	result, err := service.CreateInvoice(ctx, services.CreateInvoiceParams{
		BillerID:   billerID,
		Currency:   "INR",
		TaxRateBps: 1800,
		IssuedDate: issued,
		Items: []services.InvoiceItemInput{
			{Description: "Design work", Quantity: 2, UnitRateMinor: 25000},
			{Description: "Consulting", Quantity: 1.5, UnitRateMinor: 10000},
		},
	})
	assert.NoError(t, err)
	assert.Equal(t, "INV-2026-0008", result.Invoice.InvoiceNumber)
	assert.Len(t, result.Items, 2)
}

func TestInvoiceService_CreateInvoiceRequiresItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockGateway := mocks.NewMockGatewayClient(ctrl)
	service := services.NewInvoiceService(mockQuerier, mockGateway, zap.NewNop())

	_, err := service.CreateInvoice(context.Background(), services.CreateInvoiceParams{
		BillerID: uuid.New(),
		Currency: "INR",
	})
	assert.Error(t, err)
}

func TestInvoiceService_CreatePaymentLinkFreezesCommission(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockGateway := mocks.NewMockGatewayClient(ctrl)
	service := services.NewInvoiceService(mockQuerier, mockGateway, zap.NewNop())
	ctx := context.Background()

	invoiceID := uuid.New()
	billerID := uuid.New()
	invoice := db.Invoice{
		ID:            invoiceID,
		BillerID:      billerID,
		InvoiceNumber: "INV-2026-0001",
		Status:        db.InvoiceStatusPending,
		Currency:      "INR",
		TotalMinor:    10000,
	}

	mockQuerier.EXPECT().GetInvoiceByID(ctx, invoiceID).Return(invoice, nil)
	mockQuerier.EXPECT().GetBiller(ctx, billerID).Return(db.Biller{
		ID:    billerID,
		Name:  "Asha",
		Email: "asha@example.com",
	}, nil)
	mockQuerier.EXPECT().GetLinkedAccountSettings(ctx, billerID).Return(db.LinkedAccountSettings{
		BillerID:             billerID,
		AccountID:            "acc_42",
		Active:               true,
		CommissionEnabled:    true,
		CommissionPercentBps: 500,
	}, nil)
	mockGateway.EXPECT().CreatePaymentLink(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, params razorpay.CreatePaymentLinkParams) (*razorpay.PaymentLink, error) {
			assert.Equal(t, int64(10000), params.AmountMinor)
			assert.Equal(t, invoiceID.String(), params.ReferenceID)
			assert.Equal(t, "acc_42", params.LinkedAccountID)
			assert.Equal(t, int64(9500), params.TransferAmountMinor)
			return &razorpay.PaymentLink{
				ID:       "plink_1",
				ShortURL: "https://rzp.io/l/abc",
				Status:   razorpay.LinkStatusCreated,
			}, nil
		})
	mockQuerier.EXPECT().AttachPaymentLink(ctx, db.AttachPaymentLinkParams{
		ID:                  invoiceID,
		PaymentLinkID:       "plink_1",
		PaymentLinkURL:      "https://rzp.io/l/abc",
		PaymentLinkStatus:   razorpay.LinkStatusCreated,
		TransferAmountMinor: pgtype.Int8{Int64: 9500, Valid: true},
	}).DoAndReturn(func(_ context.Context, arg db.AttachPaymentLinkParams) (db.Invoice, error) {
		updated := invoice
		updated.PaymentLinkID = pgtype.Text{String: arg.PaymentLinkID, Valid: true}
		updated.TransferAmountMinor = arg.TransferAmountMinor
		return updated, nil
	})

	updated, err := service.CreatePaymentLinkForInvoice(ctx, invoiceID)
	assert.NoError(t, err)
	assert.Equal(t, int64(9500), updated.TransferAmountMinor.Int64)
}

func TestInvoiceService_CreatePaymentLinkNoLinkedAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockGateway := mocks.NewMockGatewayClient(ctrl)
	service := services.NewInvoiceService(mockQuerier, mockGateway, zap.NewNop())
	ctx := context.Background()

	invoiceID := uuid.New()
	billerID := uuid.New()
	invoice := db.Invoice{
		ID:         invoiceID,
		BillerID:   billerID,
		Status:     db.InvoiceStatusPending,
		Currency:   "INR",
		TotalMinor: 10000,
	}

	mockQuerier.EXPECT().GetInvoiceByID(ctx, invoiceID).Return(invoice, nil)
	mockQuerier.EXPECT().GetBiller(ctx, billerID).Return(db.Biller{ID: billerID}, nil)
	mockQuerier.EXPECT().GetLinkedAccountSettings(ctx, billerID).
		Return(db.LinkedAccountSettings{}, pgx.ErrNoRows)
	mockGateway.EXPECT().CreatePaymentLink(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, params razorpay.CreatePaymentLinkParams) (*razorpay.PaymentLink, error) {
			assert.Empty(t, params.LinkedAccountID)
			assert.Zero(t, params.TransferAmountMinor)
			return &razorpay.PaymentLink{ID: "plink_2", Status: razorpay.LinkStatusCreated}, nil
		})
	mockQuerier.EXPECT().AttachPaymentLink(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.AttachPaymentLinkParams) (db.Invoice, error) {
			assert.False(t, arg.TransferAmountMinor.Valid)
			return invoice, nil
		})

	_, err := service.CreatePaymentLinkForInvoice(ctx, invoiceID)
	assert.NoError(t, err)
}

func TestInvoiceService_CreatePaymentLinkIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockGateway := mocks.NewMockGatewayClient(ctrl)
	service := services.NewInvoiceService(mockQuerier, mockGateway, zap.NewNop())
	ctx := context.Background()

	invoiceID := uuid.New()
	invoice := db.Invoice{
		ID:            invoiceID,
		Status:        db.InvoiceStatusPending,
		PaymentLinkID: pgtype.Text{String: "plink_existing", Valid: true},
	}

	mockQuerier.EXPECT().GetInvoiceByID(ctx, invoiceID).Return(invoice, nil)

	result, err := service.CreatePaymentLinkForInvoice(ctx, invoiceID)
	assert.NoError(t, err)
	assert.Equal(t, "plink_existing", result.PaymentLinkID.String)
}

func TestInvoiceService_CreatePaymentLinkRejectsNonPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockGateway := mocks.NewMockGatewayClient(ctrl)
	service := services.NewInvoiceService(mockQuerier, mockGateway, zap.NewNop())
	ctx := context.Background()

	invoiceID := uuid.New()
	mockQuerier.EXPECT().GetInvoiceByID(ctx, invoiceID).
		Return(db.Invoice{ID: invoiceID, Status: db.InvoiceStatusCancelled}, nil)

	_, err := service.CreatePaymentLinkForInvoice(ctx, invoiceID)
	assert.Error(t, err)
}

func TestInvoiceService_GetInvoiceWithItemsNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockGateway := mocks.NewMockGatewayClient(ctrl)
	service := services.NewInvoiceService(mockQuerier, mockGateway, zap.NewNop())
	ctx := context.Background()

	invoiceID := uuid.New()
	mockQuerier.EXPECT().GetInvoiceByID(ctx, invoiceID).Return(db.Invoice{}, pgx.ErrNoRows)

	_, err := service.GetInvoiceWithItems(ctx, invoiceID)
	assert.ErrorIs(t, err, services.ErrInvoiceNotFound)
}
