package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcashie/fb-web-import/internal/core/domain"
)

func TestDocumentCache_Miss(t *testing.T) {
	c := New()
	doc, ok := c.Get("sfv")
	assert.False(t, ok)
	assert.Nil(t, doc)
	assert.Equal(t, 0, c.Len())
}

func TestDocumentCache_Hit(t *testing.T) {
	c := New()
	c.Set("sfv", &domain.Document{Type: domain.DocumentTypeGame, Title: "Street Fighter V"})

	doc, ok := c.Get("sfv")
	require.True(t, ok)
	require.NotNil(t, doc)
	assert.Equal(t, "Street Fighter V", doc.Title)
	assert.Equal(t, 1, c.Len())
}

func TestDocumentCache_AbsentIsCached(t *testing.T) {
	c := New()
	c.Set("sfv.ryu", nil)

	doc, ok := c.Get("sfv.ryu")
	assert.True(t, ok)
	assert.Nil(t, doc)
	assert.Equal(t, 1, c.Len())
}

func TestNewFactory_FreshCaches(t *testing.T) {
	factory := NewFactory()
	first := factory()
	first.Set("sfv", nil)

	second := factory()
	_, ok := second.Get("sfv")
	assert.False(t, ok)
	assert.Equal(t, 1, first.Len())
}
