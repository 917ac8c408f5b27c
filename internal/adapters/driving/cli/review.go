package cli

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rcashie/fb-web-import/internal/adapters/driving/render"
	"github.com/rcashie/fb-web-import/internal/adapters/driving/tui/review"
)

// runReviewProgram runs the review model to completion.
// Replaced in tests.
var runReviewProgram = func(ctx context.Context, m *review.Model) (*review.Model, error) {
	final, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return nil, err
	}
	result, ok := final.(*review.Model)
	if !ok {
		return nil, fmt.Errorf("unexpected model %T", final)
	}
	return result, nil
}

var reviewFlags sourceFlags

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Review a plan interactively before applying",
	Long: `Builds the plan for a source data file and opens it in the terminal UI.

Controls:
  ↑/k, ↓/j - Navigate plans
  Enter    - Show or hide changes
  a        - Apply and quit
  ?        - Toggle help
  q        - Quit without applying`,
	Args: cobra.NoArgs,
	RunE: runReview,
}

func init() {
	reviewFlags.register(reviewCmd)
	rootCmd.AddCommand(reviewCmd)
}

func runReview(cmd *cobra.Command, _ []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("review: %v", r)
		}
	}()

	svc, closeFn, err := reviewFlags.open()
	defer closeFn()
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)
	plans, err := svc.Import.Plan(ctx, reviewFlags.importer, reviewFlags.file)
	if err != nil {
		return fmt.Errorf("plan %s: %w", reviewFlags.file, err)
	}

	result, err := runReviewProgram(ctx, review.New(plans, nil))
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	if !result.ApplyRequested() {
		cmd.Println("No changes applied.")
		return nil
	}

	return applyPlans(ctx, cmd, svc, render.NewPrinter(cmd.OutOrStdout()), result.Plans())
}
