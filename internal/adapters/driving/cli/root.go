package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/rcashie/fb-web-import/internal/core/domain"
	"github.com/rcashie/fb-web-import/internal/core/ports/driving"
	"github.com/rcashie/fb-web-import/internal/logger"
)

// RunOptions carries per-invocation overrides taken from flags.
type RunOptions struct {
	// BaseURL overrides api.base_url when set.
	BaseURL string

	// GameID is the target id of the game document.
	GameID string
}

// Services are the driving ports built for one command run.
type Services struct {
	Import  driving.ImportService
	Applier driving.Applier

	// API is the effective document store settings after overrides.
	API domain.APISettings

	// Close releases resources such as the journal database.
	Close func() error
}

// ServicesFactory builds the services for one command run.
type ServicesFactory func(opts RunOptions) (*Services, error)

var (
	version         = "dev"
	verbose         bool
	settingsService driving.SettingsService
	servicesFactory ServicesFactory
)

var rootCmd = &cobra.Command{
	Use:   "fbimport",
	Short: "Import frame data into the document store",
	Long: `fbimport turns frame data files into document proposals, compares them
with what the document store already holds and shows the resulting plan.

Plans can be reviewed interactively and applied, which creates and
approves one proposal per new or changed document.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show debug output")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetSettingsService sets the settings service used by config commands.
func SetSettingsService(s driving.SettingsService) {
	settingsService = s
}

// SetServicesFactory sets the factory used to build import services.
func SetServicesFactory(f ServicesFactory) {
	servicesFactory = f
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// openServices builds services for one run.
// The returned close function is never nil.
func openServices(opts RunOptions) (*Services, func(), error) {
	if servicesFactory == nil {
		return nil, func() {}, errors.New("import services not configured")
	}
	svc, err := servicesFactory(opts)
	if err != nil {
		return nil, func() {}, err
	}
	closeFn := func() {
		if svc.Close == nil {
			return
		}
		if err := svc.Close(); err != nil {
			logger.Warn("close: %v", err)
		}
	}
	return svc, closeFn, nil
}

// commandContext returns the command's context, falling back to background.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
