package services

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/rcashie/fb-web-import/internal/core/domain"
	"github.com/rcashie/fb-web-import/internal/core/ports/driven"
	"github.com/rcashie/fb-web-import/internal/core/ports/driving"
	"github.com/rcashie/fb-web-import/internal/logger"
)

// Ensure ImportService implements the interface.
var _ driving.ImportService = (*ImportService)(nil)

// ImportService turns source data files into sorted proposals and plans.
type ImportService struct {
	loader   driven.SourceLoader
	builders driven.ProposalBuilderRegistry
	planner  driving.Planner
}

// NewImportService creates a new import service.
func NewImportService(
	loader driven.SourceLoader,
	builders driven.ProposalBuilderRegistry,
	planner driving.Planner,
) *ImportService {
	return &ImportService{
		loader:   loader,
		builders: builders,
		planner:  planner,
	}
}

// Proposals loads the file and builds proposals sorted by target.
// Sorting places every parent before its children.
func (s *ImportService) Proposals(_ context.Context, importer, path string) ([]domain.Proposal, error) {
	builder, err := s.builders.Get(importer)
	if err != nil {
		return nil, fmt.Errorf("get importer: %w", err)
	}

	data, err := s.loader.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load source: %w", err)
	}

	logger.Section("Creating proposals")
	proposals, err := builder.Build(data)
	if err != nil {
		return nil, fmt.Errorf("build proposals: %w", err)
	}

	slices.SortStableFunc(proposals, func(a, b domain.Proposal) int {
		return strings.Compare(a.Target, b.Target)
	})
	logger.Info("Built %d proposals with %s", len(proposals), builder.Name())
	return proposals, nil
}

// Plan builds proposals from the file and classifies them.
func (s *ImportService) Plan(ctx context.Context, importer, path string) ([]domain.Plan, error) {
	proposals, err := s.Proposals(ctx, importer, path)
	if err != nil {
		return nil, err
	}
	return s.planner.CreatePlans(ctx, proposals)
}

// Importers returns the names of all available importers.
func (s *ImportService) Importers() []string {
	return s.builders.Names()
}
