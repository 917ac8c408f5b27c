package driving

import (
	"context"

	"github.com/rcashie/fb-web-import/internal/core/domain"
)

// Planner classifies proposals against the document store.
type Planner interface {
	// CreatePlans returns one plan per proposal, in input order.
	// Per-proposal read failures degrade the classification and never
	// abort the batch. An error is returned only if ctx is cancelled.
	CreatePlans(ctx context.Context, proposals []domain.Proposal) ([]domain.Plan, error)
}

// Applier sends actionable plans to the document store.
type Applier interface {
	// Apply creates and approves a proposal for every New or Updated plan.
	// Failures are recorded per plan and do not stop the run, except
	// rejected credentials, which return an error wrapping
	// domain.ErrUnauthorized.
	Apply(ctx context.Context, plans []domain.Plan) (*domain.ApplySummary, error)

	// History returns the most recent apply outcomes, newest first.
	History(ctx context.Context, limit int) ([]domain.JournalEntry, error)

	// RunHistory returns the outcomes of one apply run in recorded order.
	RunHistory(ctx context.Context, runID string) ([]domain.JournalEntry, error)
}
