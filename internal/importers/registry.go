package importers

import (
	"fmt"
	"sort"

	"github.com/rcashie/fb-web-import/internal/core/domain"
	"github.com/rcashie/fb-web-import/internal/core/ports/driven"
)

// Ensure Registry implements the interface.
var _ driven.ProposalBuilderRegistry = (*Registry)(nil)

// BuilderFunc creates a ProposalBuilder from generic config.
// Config is a map of importer-specific settings parsed from user config or flags.
type BuilderFunc func(cfg map[string]any) (driven.ProposalBuilder, error)

// Registry maps importer names to their builders.
type Registry struct {
	builders map[string]BuilderFunc
	configs  map[string]map[string]any
}

// NewRegistry creates a new importer registry.
func NewRegistry() *Registry {
	return &Registry{
		builders: make(map[string]BuilderFunc),
		configs:  make(map[string]map[string]any),
	}
}

// Register adds an importer builder to the registry.
// Name should be unique and match the builder's Name() return value.
func (r *Registry) Register(name string, builder BuilderFunc) {
	r.builders[name] = builder
}

// Configure sets the config passed to the named builder on Get.
func (r *Registry) Configure(name string, cfg map[string]any) {
	r.configs[name] = cfg
}

// Get creates the importer registered under name.
// Returns domain.ErrUnsupportedType if the name is not registered.
func (r *Registry) Get(name string) (driven.ProposalBuilder, error) {
	builder, ok := r.builders[name]
	if !ok {
		return nil, fmt.Errorf("unknown importer %s: %w", name, domain.ErrUnsupportedType)
	}
	return builder(r.configs[name])
}

// Has returns true if an importer with the given name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.builders[name]
	return ok
}

// Names returns all registered importer names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.builders))
	for name := range r.builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
