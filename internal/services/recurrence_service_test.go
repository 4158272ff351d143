package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/swiftbill/swiftbill-api/internal/db"
	"github.com/swiftbill/swiftbill-api/internal/mocks"
	"github.com/swiftbill/swiftbill-api/internal/services"
)

func TestNextRecurrence(t *testing.T) {
	base := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		unit string
		from time.Time
		want time.Time
	}{
		{"weekly", db.RecurrenceWeekly, base, time.Date(2025, 1, 22, 0, 0, 0, 0, time.UTC)},
		{"monthly", db.RecurrenceMonthly, base, time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC)},
		{"quarterly", db.RecurrenceQuarterly, base, time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC)},
		{"yearly", db.RecurrenceYearly, base, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)},
		{
			"monthly from jan 31 normalizes",
			db.RecurrenceMonthly,
			time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
		},
		{
			"december rolls into next year",
			db.RecurrenceMonthly,
			time.Date(2025, 12, 15, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := services.NextRecurrence(tt.unit, tt.from)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.After(tt.from), "schedule must always move forward")
		})
	}
}

// newTestTemplate returns a due monthly template with one item blueprint.
func newTestTemplate(billerID uuid.UUID, nextIssue time.Time) db.RecurringInvoiceTemplate {
	return db.RecurringInvoiceTemplate{
		ID:                  uuid.New(),
		BillerID:            billerID,
		Recurrence:          db.RecurrenceMonthly,
		NextIssueDate:       pgtype.Timestamptz{Time: nextIssue, Valid: true},
		AutoGenerateEnabled: true,
		Currency:            "INR",
		Version:             3,
	}
}

// expectGeneration wires the minimal query expectations for one successful
// template generation with no payment link or email side effects.
func expectGeneration(mockQuerier *mocks.MockQuerier, mockGateway *mocks.MockGatewayClient, tpl db.RecurringInvoiceTemplate, seq int32) uuid.UUID {
	invoiceID := uuid.New()
	biller := db.Biller{ID: tpl.BillerID, Name: "Asha", Email: "asha@example.com", PaymentTermsDays: 14}

	mockQuerier.EXPECT().GetTemplateItems(gomock.Any(), tpl.ID).Return([]db.TemplateItem{
		{TemplateID: tpl.ID, Description: "Retainer", Quantity: 1, UnitRateMinor: 500000},
	}, nil)
	mockQuerier.EXPECT().GetBiller(gomock.Any(), tpl.BillerID).Return(biller, nil)
	mockQuerier.EXPECT().GetNextInvoiceSequence(gomock.Any(), tpl.BillerID).Return(seq, nil)
	mockQuerier.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.CreateInvoiceParams) (db.Invoice, error) {
			return db.Invoice{
				ID:            invoiceID,
				BillerID:      arg.BillerID,
				TemplateID:    arg.TemplateID,
				InvoiceNumber: arg.InvoiceNumber,
				Status:        arg.Status,
				Currency:      arg.Currency,
				SubtotalMinor: arg.SubtotalMinor,
				TotalMinor:    arg.TotalMinor,
			}, nil
		})
	mockQuerier.EXPECT().CreateInvoiceItem(gomock.Any(), gomock.Any()).
		Return(db.InvoiceItem{InvoiceID: invoiceID}, nil)

	// Link issuance path inside the generator.
	mockQuerier.EXPECT().GetInvoiceByID(gomock.Any(), invoiceID).Return(db.Invoice{
		ID:         invoiceID,
		BillerID:   tpl.BillerID,
		Status:     db.InvoiceStatusPending,
		TotalMinor: 500000,
		Currency:   "INR",
	}, nil)
	mockQuerier.EXPECT().GetBiller(gomock.Any(), tpl.BillerID).Return(biller, nil)
	mockQuerier.EXPECT().GetLinkedAccountSettings(gomock.Any(), tpl.BillerID).
		Return(db.LinkedAccountSettings{}, errors.New("no rows in result set"))

	return invoiceID
}

func TestRunDueGenerations_AdvancesFromScheduledDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockGateway := mocks.NewMockGatewayClient(ctrl)
	mockLease := mocks.NewMockTemplateLease(ctrl)
	logger := zap.NewNop()

	invoiceService := services.NewInvoiceService(mockQuerier, mockGateway, logger)
	generator := services.NewInvoiceGenerator(mockQuerier, invoiceService, nil, logger)
	recurrence := services.NewRecurrenceService(mockQuerier, generator, mockLease, logger)

	ctx := context.Background()
	// Run fires three days late; the schedule must advance from the 15th,
	// not from today.
	scheduled := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 1, 18, 9, 0, 0, 0, time.UTC)

	tpl := newTestTemplate(uuid.New(), scheduled)

	mockQuerier.EXPECT().ListDueTemplates(ctx, now).
		Return([]db.RecurringInvoiceTemplate{tpl}, nil)
	mockLease.EXPECT().Acquire(ctx, tpl.ID.String()).Return(true, nil)
	mockLease.EXPECT().Release(ctx, tpl.ID.String()).Return(nil)
	mockQuerier.EXPECT().GetTemplate(ctx, tpl.ID).Return(tpl, nil)
	expectGeneration(mockQuerier, mockGateway, tpl, 7)
	mockQuerier.EXPECT().AdvanceTemplateSchedule(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.AdvanceTemplateScheduleParams) (int64, error) {
			assert.Equal(t, tpl.ID, arg.ID)
			assert.Equal(t, tpl.Version, arg.Version)
			assert.Equal(t, time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC), arg.NextIssueDate)
			return 1, nil
		})

	results, err := recurrence.RunDueGenerations(ctx, now)
	assert.NoError(t, err)
	assert.Equal(t, 1, results.Generated)
	assert.Equal(t, 0, results.Failed)
}

func TestRunDueGenerations_FailureIsolation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockGateway := mocks.NewMockGatewayClient(ctrl)
	mockLease := mocks.NewMockTemplateLease(ctrl)
	logger := zap.NewNop()

	invoiceService := services.NewInvoiceService(mockQuerier, mockGateway, logger)
	generator := services.NewInvoiceGenerator(mockQuerier, invoiceService, nil, logger)
	recurrence := services.NewRecurrenceService(mockQuerier, generator, mockLease, logger)

	ctx := context.Background()
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	due := now.AddDate(0, 0, -1)

	good1 := newTestTemplate(uuid.New(), due)
	broken := newTestTemplate(uuid.New(), due)
	good2 := newTestTemplate(uuid.New(), due)

	mockQuerier.EXPECT().ListDueTemplates(ctx, now).
		Return([]db.RecurringInvoiceTemplate{good1, broken, good2}, nil)

	for _, tpl := range []db.RecurringInvoiceTemplate{good1, broken, good2} {
		mockLease.EXPECT().Acquire(ctx, tpl.ID.String()).Return(true, nil)
		mockLease.EXPECT().Release(ctx, tpl.ID.String()).Return(nil)
		mockQuerier.EXPECT().GetTemplate(ctx, tpl.ID).Return(tpl, nil)
	}

	expectGeneration(mockQuerier, mockGateway, good1, 1)
	// The broken template has no items, which fails its generation.
	mockQuerier.EXPECT().GetTemplateItems(ctx, broken.ID).Return([]db.TemplateItem{}, nil)
	expectGeneration(mockQuerier, mockGateway, good2, 1)

	// Schedule advances only for the two templates that generated; the
	// broken one stays due for the next run.
	mockQuerier.EXPECT().AdvanceTemplateSchedule(ctx, gomock.Any()).Return(int64(1), nil).Times(2)

	results, err := recurrence.RunDueGenerations(ctx, now)
	assert.NoError(t, err)
	assert.Equal(t, 3, results.Due)
	assert.Equal(t, 2, results.Generated)
	assert.Equal(t, 1, results.Failed)
}

func TestRunDueGenerations_LeaseHeldSkips(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockGateway := mocks.NewMockGatewayClient(ctrl)
	mockLease := mocks.NewMockTemplateLease(ctrl)
	logger := zap.NewNop()

	invoiceService := services.NewInvoiceService(mockQuerier, mockGateway, logger)
	generator := services.NewInvoiceGenerator(mockQuerier, invoiceService, nil, logger)
	recurrence := services.NewRecurrenceService(mockQuerier, generator, mockLease, logger)

	ctx := context.Background()
	now := time.Now()
	tpl := newTestTemplate(uuid.New(), now.AddDate(0, 0, -1))

	mockQuerier.EXPECT().ListDueTemplates(ctx, now).
		Return([]db.RecurringInvoiceTemplate{tpl}, nil)
	mockLease.EXPECT().Acquire(ctx, tpl.ID.String()).Return(false, nil)

	results, err := recurrence.RunDueGenerations(ctx, now)
	assert.NoError(t, err)
	assert.Equal(t, 1, results.Skipped)
	assert.Equal(t, 0, results.Generated)
}

func TestRunDueGenerations_StaleTemplateSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockGateway := mocks.NewMockGatewayClient(ctrl)
	mockLease := mocks.NewMockTemplateLease(ctrl)
	logger := zap.NewNop()

	invoiceService := services.NewInvoiceService(mockQuerier, mockGateway, logger)
	generator := services.NewInvoiceGenerator(mockQuerier, invoiceService, nil, logger)
	recurrence := services.NewRecurrenceService(mockQuerier, generator, mockLease, logger)

	ctx := context.Background()
	now := time.Now()
	tpl := newTestTemplate(uuid.New(), now.AddDate(0, 0, -1))

	// Another worker advanced the template between the list and the lease;
	// the re-fetch sees it no longer due.
	advanced := tpl
	advanced.NextIssueDate = pgtype.Timestamptz{Time: now.AddDate(0, 1, 0), Valid: true}

	mockQuerier.EXPECT().ListDueTemplates(ctx, now).
		Return([]db.RecurringInvoiceTemplate{tpl}, nil)
	mockLease.EXPECT().Acquire(ctx, tpl.ID.String()).Return(true, nil)
	mockLease.EXPECT().Release(ctx, tpl.ID.String()).Return(nil)
	mockQuerier.EXPECT().GetTemplate(ctx, tpl.ID).Return(advanced, nil)

	results, err := recurrence.RunDueGenerations(ctx, now)
	assert.NoError(t, err)
	assert.Equal(t, 1, results.Skipped)
}

func TestRunDueGenerations_MaxOccurrencesReached(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockGateway := mocks.NewMockGatewayClient(ctrl)
	mockLease := mocks.NewMockTemplateLease(ctrl)
	logger := zap.NewNop()

	invoiceService := services.NewInvoiceService(mockQuerier, mockGateway, logger)
	generator := services.NewInvoiceGenerator(mockQuerier, invoiceService, nil, logger)
	recurrence := services.NewRecurrenceService(mockQuerier, generator, mockLease, logger)

	ctx := context.Background()
	now := time.Now()
	tpl := newTestTemplate(uuid.New(), now.AddDate(0, 0, -1))
	tpl.OccurrenceCount = 12
	tpl.MaxOccurrences = pgtype.Int4{Int32: 12, Valid: true}

	mockQuerier.EXPECT().ListDueTemplates(ctx, now).
		Return([]db.RecurringInvoiceTemplate{tpl}, nil)
	mockLease.EXPECT().Acquire(ctx, tpl.ID.String()).Return(true, nil)
	mockLease.EXPECT().Release(ctx, tpl.ID.String()).Return(nil)
	mockQuerier.EXPECT().GetTemplate(ctx, tpl.ID).Return(tpl, nil)

	results, err := recurrence.RunDueGenerations(ctx, now)
	assert.NoError(t, err)
	assert.Equal(t, 1, results.Skipped)
	assert.Equal(t, 0, results.Generated)
}
