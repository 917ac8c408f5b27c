package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcashie/fb-web-import/internal/adapters/driving/render"
	"github.com/rcashie/fb-web-import/internal/core/domain"
)

var (
	historyLimit int
	historyRun   string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently applied proposals",
	Long: `Show recently applied proposals, newest first.

With --run, show every outcome of one apply run in the order it was applied.
The run id is printed at the end of "fbimport import --apply".`,
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Number of entries to show (0 for all)")
	historyCmd.Flags().StringVar(&historyRun, "run", "", "Show all entries of one apply run")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	svc, closeFn, err := openServices(RunOptions{})
	defer closeFn()
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)
	var entries []domain.JournalEntry
	if historyRun != "" {
		entries, err = svc.Applier.RunHistory(ctx, historyRun)
	} else {
		entries, err = svc.Applier.History(ctx, historyLimit)
	}
	if err != nil {
		return fmt.Errorf("read history: %w", err)
	}
	render.NewPrinter(cmd.OutOrStdout()).History(entries)
	return nil
}
