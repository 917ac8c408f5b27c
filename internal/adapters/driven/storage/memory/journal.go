package memory

import (
	"context"
	"sync"

	"github.com/rcashie/fb-web-import/internal/core/domain"
	"github.com/rcashie/fb-web-import/internal/core/ports/driven"
)

// Ensure ApplyJournal implements the interface.
var _ driven.ApplyJournal = (*ApplyJournal)(nil)

// ApplyJournal is an in-memory implementation of driven.ApplyJournal.
type ApplyJournal struct {
	mu      sync.RWMutex
	entries []domain.JournalEntry
}

// NewApplyJournal creates a new in-memory apply journal.
func NewApplyJournal() *ApplyJournal {
	return &ApplyJournal{}
}

// Record stores one apply outcome.
func (j *ApplyJournal) Record(_ context.Context, entry domain.JournalEntry) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	entry.ID = int64(len(j.entries) + 1)
	j.entries = append(j.entries, entry)
	return nil
}

// List returns the most recent entries, newest first.
func (j *ApplyJournal) List(_ context.Context, limit int) ([]domain.JournalEntry, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	n := len(j.entries)
	if limit > 0 && limit < n {
		n = limit
	}
	result := make([]domain.JournalEntry, 0, n)
	for i := len(j.entries) - 1; i >= 0 && len(result) < n; i-- {
		result = append(result, j.entries[i])
	}
	return result, nil
}

// ListRun returns the entries of one apply run in recorded order.
func (j *ApplyJournal) ListRun(_ context.Context, runID string) ([]domain.JournalEntry, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	var result []domain.JournalEntry
	for _, e := range j.entries {
		if e.RunID == runID {
			result = append(result, e)
		}
	}
	return result, nil
}
