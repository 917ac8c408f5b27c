package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rcashie/fb-web-import/internal/core/domain"
	"github.com/rcashie/fb-web-import/internal/core/ports/driven"
	"github.com/rcashie/fb-web-import/internal/core/ports/driving"
	"github.com/rcashie/fb-web-import/internal/logger"
)

// Ensure ApplyService implements the interface.
var _ driving.Applier = (*ApplyService)(nil)

// ApplyService creates and approves proposals for actionable plans.
type ApplyService struct {
	writer   driven.ProposalWriter
	journal  driven.ApplyJournal
	newRunID func() string
	now      func() time.Time
}

// NewApplyService creates a new apply service.
// The journal is optional - if nil, outcomes are only logged.
func NewApplyService(writer driven.ProposalWriter, journal driven.ApplyJournal, newRunID func() string) *ApplyService {
	return &ApplyService{
		writer:   writer,
		journal:  journal,
		newRunID: newRunID,
		now:      time.Now,
	}
}

// Apply creates and approves a proposal for every New or Updated plan.
//
// None and IgnoredNew plans are skipped. A failed create or approve is
// logged and journaled, and the run continues with the next plan. Rejected
// credentials stop the run: every later write would be rejected too.
func (s *ApplyService) Apply(ctx context.Context, plans []domain.Plan) (*domain.ApplySummary, error) {
	summary := &domain.ApplySummary{RunID: s.newRunID()}
	if len(plans) == 0 {
		logger.Info("Nothing to apply")
		return summary, nil
	}
	if s.writer == nil {
		return nil, fmt.Errorf("apply: proposal writer: %w", domain.ErrNotConfigured)
	}

	logger.Section("Applying plans")
	for i := range plans {
		if err := ctx.Err(); err != nil {
			return summary, fmt.Errorf("apply: %w", err)
		}

		plan := &plans[i]
		if !plan.IsActionable() {
			summary.Skipped++
			continue
		}

		entry, err := s.applyPlan(ctx, plan)
		entry.RunID = summary.RunID
		s.record(ctx, entry)

		if err == nil {
			summary.Applied++
			continue
		}
		summary.Failed++
		if errors.Is(err, domain.ErrUnauthorized) {
			return summary, fmt.Errorf("apply %s: %w", plan.Proposal.Target, err)
		}
	}

	logger.Info("Applied %d, failed %d, skipped %d", summary.Applied, summary.Failed, summary.Skipped)
	return summary, nil
}

func (s *ApplyService) applyPlan(ctx context.Context, plan *domain.Plan) (domain.JournalEntry, error) {
	target := plan.Proposal.Target
	entry := domain.JournalEntry{
		Target:   target,
		PlanType: plan.Type,
		Status:   domain.ApplyStatusFailed,
	}

	logger.Info("Creating proposal for %s", target)
	ref, err := s.writer.CreateProposal(ctx, plan.Proposal)
	if err != nil {
		logger.Error("create proposal for %s: %v", target, err)
		entry.Error = err.Error()
		return entry, err
	}
	entry.Proposal = ref

	logger.Info("Approving proposal %s", ref)
	if err := s.writer.ApproveProposal(ctx, ref); err != nil {
		logger.Error("approve proposal %s: %v", ref, err)
		entry.Error = err.Error()
		return entry, err
	}

	entry.Status = domain.ApplyStatusApproved
	return entry, nil
}

func (s *ApplyService) record(ctx context.Context, entry domain.JournalEntry) {
	if s.journal == nil {
		return
	}
	entry.AppliedAt = s.now()
	if err := s.journal.Record(ctx, entry); err != nil {
		logger.Warn("journal %s: %v", entry.Target, err)
	}
}

// History returns the most recent apply outcomes, newest first.
func (s *ApplyService) History(ctx context.Context, limit int) ([]domain.JournalEntry, error) {
	if s.journal == nil {
		return nil, fmt.Errorf("history: journal: %w", domain.ErrNotConfigured)
	}
	entries, err := s.journal.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}
	return entries, nil
}

// RunHistory returns the outcomes of one apply run in recorded order.
func (s *ApplyService) RunHistory(ctx context.Context, runID string) ([]domain.JournalEntry, error) {
	if s.journal == nil {
		return nil, fmt.Errorf("history: journal: %w", domain.ErrNotConfigured)
	}
	entries, err := s.journal.ListRun(ctx, runID)
	if err != nil {
		return nil, fmt.Errorf("history %s: %w", runID, err)
	}
	return entries, nil
}
