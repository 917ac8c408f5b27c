package importers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcashie/fb-web-import/internal/core/domain"
	"github.com/rcashie/fb-web-import/internal/core/ports/driven"
)

// registryMockBuilder is a simple mock for testing registry functionality.
type registryMockBuilder struct {
	name string
}

func (m *registryMockBuilder) Name() string { return m.name }
func (m *registryMockBuilder) Build(_ map[string]any) ([]domain.Proposal, error) {
	return nil, nil
}

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	require.NotNil(t, r)
	assert.Empty(t, r.Names())
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry()
	r.Register("test", func(cfg map[string]any) (driven.ProposalBuilder, error) {
		name := "default"
		if n, ok := cfg["name"].(string); ok {
			name = n
		}
		return &registryMockBuilder{name: name}, nil
	})

	assert.True(t, r.Has("test"))

	b, err := r.Get("test")
	require.NoError(t, err)
	assert.Equal(t, "default", b.Name())

	r.Configure("test", map[string]any{"name": "configured"})
	b, err = r.Get("test")
	require.NoError(t, err)
	assert.Equal(t, "configured", b.Name())
}

func TestRegistry_Get_Unknown(t *testing.T) {
	r := NewRegistry()
	_, err := r.Get("nope")
	assert.ErrorIs(t, err, domain.ErrUnsupportedType)
	assert.Contains(t, err.Error(), "unknown importer nope")
}

func TestRegistry_Names_Sorted(t *testing.T) {
	r := NewRegistry()
	builder := func(_ map[string]any) (driven.ProposalBuilder, error) { return &registryMockBuilder{}, nil }
	r.Register("zeta", builder)
	r.Register("alpha", builder)
	assert.Equal(t, []string{"alpha", "zeta"}, r.Names())
}

func TestRegisterDefaults(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r)
	assert.Equal(t, []string{"fat-sfv"}, r.Names())

	b, err := r.Get("fat-sfv")
	require.NoError(t, err)
	assert.Equal(t, "fat-sfv", b.Name())

	r.Configure("fat-sfv", map[string]any{"game_id": "sfv-ce"})
	b, err = r.Get("fat-sfv")
	require.NoError(t, err)
	proposals, err := b.Build(map[string]any{})
	require.NoError(t, err)
	require.Len(t, proposals, 1)
	assert.Equal(t, "sfv-ce", proposals[0].Target)
}
