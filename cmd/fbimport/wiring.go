package main

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/rcashie/fb-web-import/internal/adapters/driven/cache"
	"github.com/rcashie/fb-web-import/internal/adapters/driven/docapi"
	sourcefile "github.com/rcashie/fb-web-import/internal/adapters/driven/source/file"
	"github.com/rcashie/fb-web-import/internal/adapters/driven/storage/sqlite"
	"github.com/rcashie/fb-web-import/internal/adapters/driving/cli"
	"github.com/rcashie/fb-web-import/internal/core/ports/driving"
	"github.com/rcashie/fb-web-import/internal/core/services"
	"github.com/rcashie/fb-web-import/internal/importers"
	"github.com/rcashie/fb-web-import/internal/importers/sfv"
)

// newServicesFactory wires adapters into services for one command run.
func newServicesFactory(settings driving.SettingsService) cli.ServicesFactory {
	return func(opts cli.RunOptions) (*cli.Services, error) {
		api := settings.API()
		if opts.BaseURL != "" {
			api.BaseURL = opts.BaseURL
			api = api.Normalized()
		}

		journal, err := sqlite.NewStore(settings.JournalPath())
		if err != nil {
			return nil, fmt.Errorf("open journal: %w", err)
		}

		registry := importers.NewRegistry()
		importers.RegisterDefaults(registry)
		if opts.GameID != "" {
			registry.Configure(sfv.Name, map[string]any{"game_id": opts.GameID})
		}

		client := docapi.NewClient(api)
		planner := services.NewPlanService(client, cache.NewFactory())

		return &cli.Services{
			Import:  services.NewImportService(sourcefile.NewSourceLoader(), registry, planner),
			Applier: services.NewApplyService(client, journal, uuid.NewString),
			API:     api,
			Close:   journal.Close,
		}, nil
	}
}
