package cli

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcashie/fb-web-import/internal/adapters/driving/tui/review"
)

// stubReviewProgram replaces the TUI with a function that feeds keys to the model.
func stubReviewProgram(t *testing.T, keys ...string) {
	t.Helper()

	old := runReviewProgram
	runReviewProgram = func(_ context.Context, m *review.Model) (*review.Model, error) {
		for _, k := range keys {
			m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
		}
		return m, nil
	}
	t.Cleanup(func() { runReviewProgram = old })
}

func TestReviewCmd_Use(t *testing.T) {
	assert.Equal(t, "review", reviewCmd.Use)
	assert.Contains(t, reviewCmd.Long, "Apply and quit")
}

func TestReviewCmd_ApplyRequested(t *testing.T) {
	svc, imp, app := newTestServices()
	setupServices(t, svc)
	stubReviewProgram(t, "j", "a")

	out, err := execute(t, context.Background(), "", "review", "-f", "sfv.json")

	require.NoError(t, err)
	assert.Equal(t, []string{"fat-sfv:sfv.json"}, imp.calls)
	require.Len(t, app.applied, 1)
	assert.Len(t, app.applied[0], 3)
	assert.Contains(t, out, "Run run-1: 2 applied")
}

func TestReviewCmd_QuitWithoutApplying(t *testing.T) {
	svc, _, app := newTestServices()
	setupServices(t, svc)
	stubReviewProgram(t, "q")

	out, err := execute(t, context.Background(), "", "review", "-f", "sfv.json")

	require.NoError(t, err)
	assert.Contains(t, out, "No changes applied.")
	assert.Empty(t, app.applied)
}

func TestReviewCmd_ProgramError(t *testing.T) {
	svc, _, _ := newTestServices()
	setupServices(t, svc)

	old := runReviewProgram
	runReviewProgram = func(context.Context, *review.Model) (*review.Model, error) {
		return nil, errors.New("no tty")
	}
	defer func() { runReviewProgram = old }()

	_, err := execute(t, context.Background(), "", "review", "-f", "sfv.json")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "TUI error: no tty")
}

func TestReviewCmd_RequiresFile(t *testing.T) {
	svc, _, _ := newTestServices()
	setupServices(t, svc)

	_, err := execute(t, context.Background(), "", "review")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "--file is required")
}
