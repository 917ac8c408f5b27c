package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/rcashie/fb-web-import/internal/adapters/driving/render"
	"github.com/rcashie/fb-web-import/internal/core/domain"
	"github.com/rcashie/fb-web-import/internal/importers/sfv"
	"github.com/rcashie/fb-web-import/internal/logger"
)

// watchDebounce collapses the burst of events an editor emits on save.
const watchDebounce = 250 * time.Millisecond

// sourceFlags are the flags shared by import and review.
type sourceFlags struct {
	file     string
	importer string
	game     string
	baseURL  string
}

func (f *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "Source data file (JSON or YAML)")
	cmd.Flags().StringVar(&f.importer, "importer", sfv.Name, "Importer used to build proposals")
	cmd.Flags().StringVar(&f.game, "game", sfv.DefaultGameID, "Target id of the game document")
	cmd.Flags().StringVar(&f.baseURL, "base-url", "", "Document store URL, overrides api.base_url")
}

func (f *sourceFlags) reset() {
	*f = sourceFlags{importer: sfv.Name, game: sfv.DefaultGameID}
}

func (f *sourceFlags) options() RunOptions {
	return RunOptions{BaseURL: f.baseURL, GameID: f.game}
}

// open validates the flags and builds services for them.
func (f *sourceFlags) open() (*Services, func(), error) {
	if f.file == "" {
		return nil, func() {}, errors.New("--file is required")
	}
	svc, closeFn, err := openServices(f.options())
	if err != nil {
		return nil, closeFn, err
	}
	if err := svc.API.ValidateRead(); err != nil {
		closeFn()
		return nil, func() {}, err
	}
	return svc, closeFn, nil
}

var (
	importFlags sourceFlags
	importApply bool
	importWatch bool
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Plan and optionally apply an import",
	Long: `Builds proposals from a source data file and compares each one with the
document store. New and changed documents are printed; unchanged documents
are not.

With --apply, a proposal is created and approved for every new or changed
document. With --watch, the plan is rebuilt each time the file is saved.`,
	Example: `  fbimport import -f sfv.json
  fbimport import -f sfv.json --apply
  fbimport import -f sfv.yaml --watch --base-url http://localhost:8080`,
	Args: cobra.NoArgs,
	RunE: runImport,
}

func init() {
	importFlags.register(importCmd)
	importCmd.Flags().BoolVarP(&importApply, "apply", "a", false, "Create and approve proposals for the plan")
	importCmd.Flags().BoolVar(&importWatch, "watch", false, "Re-plan whenever the source file changes")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, _ []string) error {
	if importApply && importWatch {
		return errors.New("--apply cannot be combined with --watch")
	}

	svc, closeFn, err := importFlags.open()
	defer closeFn()
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)
	printer := render.NewPrinter(cmd.OutOrStdout())

	if importWatch {
		return watchImport(ctx, cmd, svc, printer, importFlags.importer, importFlags.file)
	}

	plans, err := planAndPrint(ctx, svc, printer, importFlags.importer, importFlags.file)
	if err != nil {
		return err
	}
	if !importApply {
		return nil
	}
	return applyPlans(ctx, cmd, svc, printer, plans)
}

// planAndPrint builds plans for the file and prints them with a tally.
func planAndPrint(
	ctx context.Context,
	svc *Services,
	printer *render.Printer,
	importer, file string,
) ([]domain.Plan, error) {
	plans, err := svc.Import.Plan(ctx, importer, file)
	if err != nil {
		return nil, fmt.Errorf("plan %s: %w", file, err)
	}
	printer.Plans(plans)
	printer.Counts(plans)
	return plans, nil
}

// applyPlans applies plans and prints the run summary.
func applyPlans(
	ctx context.Context,
	cmd *cobra.Command,
	svc *Services,
	printer *render.Printer,
	plans []domain.Plan,
) error {
	if countActionable(plans) == 0 {
		cmd.Println("Nothing to apply")
		return nil
	}
	if err := svc.API.ValidateWrite(); err != nil {
		return fmt.Errorf("%w (run 'fbimport config login')", err)
	}

	summary, err := svc.Applier.Apply(ctx, plans)
	printer.Summary(summary)
	if errors.Is(err, domain.ErrUnauthorized) {
		return fmt.Errorf("apply: %w (run 'fbimport config login')", err)
	}
	if err != nil {
		return fmt.Errorf("apply: %w", err)
	}
	if summary.Failed > 0 {
		return fmt.Errorf("%d of %d proposals failed", summary.Failed, summary.Failed+summary.Applied)
	}
	return nil
}

func countActionable(plans []domain.Plan) int {
	n := 0
	for i := range plans {
		if plans[i].IsActionable() {
			n++
		}
	}
	return n
}

// watchImport plans once, then again after every write to file until ctx ends.
// The parent directory is watched so editors that replace the file on save
// are still picked up.
func watchImport(
	ctx context.Context,
	cmd *cobra.Command,
	svc *Services,
	printer *render.Printer,
	importer, file string,
) error {
	path, err := filepath.Abs(file)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", file, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}

	replan := func() {
		if _, err := planAndPrint(ctx, svc, printer, importer, file); err != nil {
			logger.Error("%v", err)
		}
	}

	replan()
	cmd.Printf("Watching %s for changes (ctrl+c to stop)\n", file)

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				pending = time.After(watchDebounce)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch: %v", err)

		case <-pending:
			pending = nil
			cmd.Printf("\n%s changed, re-planning\n", file)
			replan()
		}
	}
}
