package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rcashie/fb-web-import/internal/core/domain"
	"github.com/rcashie/fb-web-import/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.ApplyJournal = (*Store)(nil)

const journalColumns = `id, run_id, target, plan_type, proposal_id, version, status, error, applied_at`

// Record stores one apply outcome.
func (s *Store) Record(ctx context.Context, entry domain.JournalEntry) error {
	if entry.AppliedAt.IsZero() {
		entry.AppliedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO apply_journal (run_id, target, plan_type, proposal_id, version, status, error, applied_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, entry.RunID, entry.Target, string(entry.PlanType), entry.Proposal.ID, entry.Proposal.Version,
		string(entry.Status), entry.Error, entry.AppliedAt.UTC())
	if err != nil {
		return fmt.Errorf("recording %s: %w", entry.Target, err)
	}
	return nil
}

// List returns the most recent entries, newest first.
// A limit of zero or less returns all entries.
func (s *Store) List(ctx context.Context, limit int) ([]domain.JournalEntry, error) {
	query := `SELECT ` + journalColumns + ` FROM apply_journal ORDER BY id DESC`
	var args []any
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying journal: %w", err)
	}
	defer rows.Close()
	return scanJournalRows(rows)
}

// ListRun returns the entries of one apply run in recorded order.
func (s *Store) ListRun(ctx context.Context, runID string) ([]domain.JournalEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+journalColumns+` FROM apply_journal WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying run %s: %w", runID, err)
	}
	defer rows.Close()
	return scanJournalRows(rows)
}

func scanJournalRows(rows *sql.Rows) ([]domain.JournalEntry, error) {
	var entries []domain.JournalEntry //nolint:prealloc // size unknown from query
	for rows.Next() {
		var (
			e                domain.JournalEntry
			planType, status string
		)
		if err := rows.Scan(&e.ID, &e.RunID, &e.Target, &planType,
			&e.Proposal.ID, &e.Proposal.Version, &status, &e.Error, &e.AppliedAt); err != nil {
			return nil, fmt.Errorf("scanning journal entry: %w", err)
		}
		e.PlanType = domain.ChangeType(planType)
		e.Status = domain.ApplyStatus(status)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating journal: %w", err)
	}
	return entries, nil
}
