package driven

import "github.com/rcashie/fb-web-import/internal/core/domain"

// SourceLoader reads a raw source data file.
type SourceLoader interface {
	// Load parses the file at path into a generic tree.
	Load(path string) (map[string]any, error)
}

// ProposalBuilder maps raw source data to proposals.
type ProposalBuilder interface {
	// Name returns the import source tag, e.g. "fat-sfv".
	Name() string

	// Build constructs proposals from raw source data.
	// Output order is not significant; callers sort by target.
	Build(data map[string]any) ([]domain.Proposal, error)
}

// ProposalBuilderRegistry looks up builders by name.
type ProposalBuilderRegistry interface {
	// Get returns the builder registered under name.
	Get(name string) (ProposalBuilder, error)

	// Names returns all registered builder names.
	Names() []string
}
