package driving

import (
	"context"

	"github.com/rcashie/fb-web-import/internal/core/domain"
)

// ImportService turns a source data file into ordered proposals and plans.
type ImportService interface {
	// Proposals loads the file and builds proposals sorted by target.
	Proposals(ctx context.Context, importer, path string) ([]domain.Proposal, error)

	// Plan builds proposals from the file and classifies them.
	Plan(ctx context.Context, importer, path string) ([]domain.Plan, error)

	// Importers returns the names of all available importers.
	Importers() []string
}
