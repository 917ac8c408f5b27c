// Package cache provides the per-run document cache used while planning.
package cache

import (
	gocache "github.com/patrickmn/go-cache"

	"github.com/rcashie/fb-web-import/internal/core/domain"
	"github.com/rcashie/fb-web-import/internal/core/ports/driven"
)

// Ensure DocumentCache implements the interface.
var _ driven.DocumentCache = (*DocumentCache)(nil)

// DocumentCache memoises document reads, including absent documents.
// Entries never expire; a cache lives for one planning run.
type DocumentCache struct {
	cache *gocache.Cache
}

// New creates an empty document cache.
func New() *DocumentCache {
	return &DocumentCache{
		cache: gocache.New(gocache.NoExpiration, 0),
	}
}

// NewFactory returns a factory that creates a fresh cache per call.
func NewFactory() driven.DocumentCacheFactory {
	return func() driven.DocumentCache {
		return New()
	}
}

// Get returns the cached document and whether id has been cached.
// A cached absent document is returned as nil with true.
func (c *DocumentCache) Get(id string) (*domain.Document, bool) {
	val, found := c.cache.Get(id)
	if !found {
		return nil, false
	}
	doc, _ := val.(*domain.Document)
	return doc, true
}

// Set caches doc under id. A nil doc records the id as absent.
func (c *DocumentCache) Set(id string, doc *domain.Document) {
	c.cache.Set(id, doc, gocache.NoExpiration)
}

// Len returns the number of cached ids.
func (c *DocumentCache) Len() int {
	return c.cache.ItemCount()
}
