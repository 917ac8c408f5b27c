package driven

import (
	"context"

	"github.com/rcashie/fb-web-import/internal/core/domain"
)

// ApplyJournal records the outcome of applying plans.
// Backed by SQLite.
type ApplyJournal interface {
	// Record stores one apply outcome.
	Record(ctx context.Context, entry domain.JournalEntry) error

	// List returns the most recent entries, newest first.
	// A limit of zero or less returns all entries.
	List(ctx context.Context, limit int) ([]domain.JournalEntry, error)

	// ListRun returns the entries of one apply run in recorded order.
	ListRun(ctx context.Context, runID string) ([]domain.JournalEntry, error)
}
