package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/swiftbill/swiftbill-api/internal/db"
)

// RecurrenceService drives scheduled invoice generation. One run scans due
// templates and generates an invoice per template, guarded by a per-template
// lease so overlapping runs never double-generate.
type RecurrenceService struct {
	queries   db.Querier
	generator *InvoiceGenerator
	leases    TemplateLease
	logger    *zap.Logger
}

// NewRecurrenceService creates a recurrence service.
func NewRecurrenceService(queries db.Querier, generator *InvoiceGenerator, leases TemplateLease, logger *zap.Logger) *RecurrenceService {
	return &RecurrenceService{
		queries:   queries,
		generator: generator,
		leases:    leases,
		logger:    logger,
	}
}

// GenerationResults summarizes one generation run.
type GenerationResults struct {
	Due       int `json:"due"`
	Generated int `json:"generated"`
	Skipped   int `json:"skipped"`
	Failed    int `json:"failed"`
}

// RunDueGenerations generates invoices for every template whose next issue
// date has arrived. Failures are isolated per template: one broken template
// never blocks the rest, and its schedule is left untouched for the next run.
func (s *RecurrenceService) RunDueGenerations(ctx context.Context, now time.Time) (GenerationResults, error) {
	templates, err := s.queries.ListDueTemplates(ctx, now)
	if err != nil {
		return GenerationResults{}, errors.Wrap(err, "failed to list due templates")
	}

	results := GenerationResults{Due: len(templates)}
	for _, tpl := range templates {
		switch s.generateOne(ctx, tpl.ID, now) {
		case generationOK:
			results.Generated++
		case generationSkipped:
			results.Skipped++
		case generationFailed:
			results.Failed++
		}
	}

	s.logger.Info("generation run complete",
		zap.Int("due", results.Due),
		zap.Int("generated", results.Generated),
		zap.Int("skipped", results.Skipped),
		zap.Int("failed", results.Failed))
	return results, nil
}

type generationOutcome int

const (
	generationOK generationOutcome = iota
	generationSkipped
	generationFailed
)

func (s *RecurrenceService) generateOne(ctx context.Context, tplID uuid.UUID, now time.Time) generationOutcome {
	acquired, err := s.leases.Acquire(ctx, tplID.String())
	if err != nil {
		s.logger.Error("failed to acquire template lease",
			zap.String("template_id", tplID.String()),
			zap.Error(err))
		return generationFailed
	}
	if !acquired {
		s.logger.Info("template lease held elsewhere, skipping",
			zap.String("template_id", tplID.String()))
		return generationSkipped
	}
	defer func() {
		if err := s.leases.Release(ctx, tplID.String()); err != nil {
			s.logger.Warn("failed to release template lease",
				zap.String("template_id", tplID.String()),
				zap.Error(err))
		}
	}()

	// Re-fetch under the lease: the list snapshot may be stale by the time
	// this template's turn comes up.
	tpl, err := s.queries.GetTemplate(ctx, tplID)
	if err != nil {
		s.logger.Error("failed to re-fetch template",
			zap.String("template_id", tplID.String()),
			zap.Error(err))
		return generationFailed
	}
	if !s.stillDue(tpl, now) {
		return generationSkipped
	}

	result, err := s.generator.GenerateFromTemplate(ctx, tpl, now)
	if err != nil {
		// Schedule intentionally not advanced: the template stays due and
		// the next run retries it.
		s.logger.Error("generation failed",
			zap.String("template_id", tplID.String()),
			zap.Error(err))
		return generationFailed
	}

	lastSentAt := pgtype.Timestamptz{}
	if tpl.AutoSendEnabled {
		lastSentAt = pgtype.Timestamptz{Time: now, Valid: true}
	}

	// Advance from the previous scheduled date, not from now, so a run that
	// fires late does not drift the whole schedule.
	next := NextRecurrence(tpl.Recurrence, tpl.NextIssueDate.Time)
	rows, err := s.queries.AdvanceTemplateSchedule(ctx, db.AdvanceTemplateScheduleParams{
		ID:            tpl.ID,
		Version:       tpl.Version,
		NextIssueDate: next,
		LastSentAt:    lastSentAt,
	})
	if err != nil {
		s.logger.Error("failed to advance template schedule",
			zap.String("template_id", tplID.String()),
			zap.Error(err))
		return generationFailed
	}
	if rows == 0 {
		s.logger.Warn("template changed during generation, schedule not advanced",
			zap.String("template_id", tplID.String()),
			zap.Int32("version", tpl.Version))
	}

	s.logger.Info("template advanced",
		zap.String("template_id", tplID.String()),
		zap.String("invoice_id", result.Invoice.ID.String()),
		zap.Time("next_issue_date", next))
	return generationOK
}

func (s *RecurrenceService) stillDue(tpl db.RecurringInvoiceTemplate, now time.Time) bool {
	if !tpl.AutoGenerateEnabled {
		return false
	}
	if !tpl.NextIssueDate.Valid || tpl.NextIssueDate.Time.After(now) {
		return false
	}
	if tpl.MaxOccurrences.Valid && tpl.OccurrenceCount >= tpl.MaxOccurrences.Int32 {
		return false
	}
	return true
}

// NextRecurrence advances a scheduled date by one recurrence period.
// Month-based units use calendar arithmetic, so Jan 31 monthly normalizes to
// Mar 2/3 per time.AddDate; billers who need end-of-month anchoring schedule
// on the 28th or earlier.
func NextRecurrence(unit string, from time.Time) time.Time {
	switch unit {
	case db.RecurrenceWeekly:
		return from.AddDate(0, 0, 7)
	case db.RecurrenceMonthly:
		return from.AddDate(0, 1, 0)
	case db.RecurrenceQuarterly:
		return from.AddDate(0, 3, 0)
	case db.RecurrenceYearly:
		return from.AddDate(1, 0, 0)
	default:
		return from.AddDate(0, 1, 0)
	}
}
