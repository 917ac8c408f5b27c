package domain

import "time"

// ApplyStatus is the outcome of applying one plan.
type ApplyStatus string

// Available apply statuses.
const (
	ApplyStatusApproved ApplyStatus = "approved"
	ApplyStatusFailed   ApplyStatus = "failed"
)

// ProposalRef identifies a proposal version created in the document store.
type ProposalRef struct {
	ID      string
	Version string
}

// String returns the id/version form used in approval paths.
func (r ProposalRef) String() string {
	return r.ID + "/" + r.Version
}

// JournalEntry records the outcome of applying one plan.
type JournalEntry struct {
	// ID is the row identifier, assigned by the journal.
	ID int64

	// RunID groups entries from a single apply run.
	RunID string

	// Target is the proposal target.
	Target string

	// PlanType is the classification that was applied.
	PlanType ChangeType

	// Proposal is the created proposal, empty if creation failed.
	Proposal ProposalRef

	// Status is the apply outcome.
	Status ApplyStatus

	// Error holds the failure message when Status is failed.
	Error string

	// AppliedAt is when the outcome was recorded.
	AppliedAt time.Time
}

// ApplySummary totals one apply run.
type ApplySummary struct {
	RunID   string
	Applied int
	Failed  int
	Skipped int
}
