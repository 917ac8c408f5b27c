package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcashie/fb-web-import/internal/core/domain"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, store)
	t.Cleanup(func() {
		assert.NoError(t, store.Close())
	})
	return store
}

func TestNewStore_CreatesDatabase(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")

	store, err := NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, filepath.Join(dir, dbFile), store.Path())
	_, err = os.Stat(store.Path())
	assert.NoError(t, err)
}

func TestNewStore_ReopenKeepsEntries(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Record(ctx, domain.JournalEntry{
		RunID: "run-1", Target: "sfv", PlanType: domain.ChangeNew, Status: domain.ApplyStatusApproved,
	}))
	require.NoError(t, store.Close())

	store, err = NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	entries, err := store.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	var versions int
	require.NoError(t, store.db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&versions))
	assert.Equal(t, 1, versions)
}

func TestJournal_RecordAndList(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, store.Record(ctx, domain.JournalEntry{
		RunID:     "run-1",
		Target:    "sfv",
		PlanType:  domain.ChangeNew,
		Proposal:  domain.ProposalRef{ID: "p1", Version: "1"},
		Status:    domain.ApplyStatusApproved,
		AppliedAt: at,
	}))
	require.NoError(t, store.Record(ctx, domain.JournalEntry{
		RunID:     "run-1",
		Target:    "sfv.ryu",
		PlanType:  domain.ChangeUpdated,
		Status:    domain.ApplyStatusFailed,
		Error:     "docapi: API error 500",
		AppliedAt: at.Add(time.Second),
	}))

	entries, err := store.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "sfv.ryu", entries[0].Target)
	assert.Equal(t, domain.ChangeUpdated, entries[0].PlanType)
	assert.Equal(t, domain.ApplyStatusFailed, entries[0].Status)
	assert.Equal(t, "docapi: API error 500", entries[0].Error)
	assert.Empty(t, entries[0].Proposal.ID)

	assert.Equal(t, "sfv", entries[1].Target)
	assert.Equal(t, domain.ProposalRef{ID: "p1", Version: "1"}, entries[1].Proposal)
	assert.True(t, at.Equal(entries[1].AppliedAt))
	assert.Greater(t, entries[0].ID, entries[1].ID)
}

func TestJournal_ListLimit(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	for _, target := range []string{"sfv", "sfv.ryu", "sfv.ken"} {
		require.NoError(t, store.Record(ctx, domain.JournalEntry{
			RunID: "run-1", Target: target, PlanType: domain.ChangeNew, Status: domain.ApplyStatusApproved,
		}))
	}

	entries, err := store.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "sfv.ken", entries[0].Target)
	assert.Equal(t, "sfv.ryu", entries[1].Target)
}

func TestJournal_ListRun(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	record := func(run, target string) {
		require.NoError(t, store.Record(ctx, domain.JournalEntry{
			RunID: run, Target: target, PlanType: domain.ChangeNew, Status: domain.ApplyStatusApproved,
		}))
	}
	record("run-1", "sfv")
	record("run-2", "sfv.ryu")
	record("run-1", "sfv.ken")

	entries, err := store.ListRun(ctx, "run-1")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "sfv", entries[0].Target)
	assert.Equal(t, "sfv.ken", entries[1].Target)
	assert.False(t, entries[0].AppliedAt.IsZero())

	entries, err = store.ListRun(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestJournal_CancelledContext(t *testing.T) {
	store := setupTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := store.Record(ctx, domain.JournalEntry{RunID: "run-1", Target: "sfv"})
	assert.Error(t, err)
}
