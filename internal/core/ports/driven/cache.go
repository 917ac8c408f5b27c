package driven

import "github.com/rcashie/fb-web-import/internal/core/domain"

// DocumentCache memoises document reads for one planning run.
// A nil document is a valid cached value meaning "absent".
type DocumentCache interface {
	// Get returns the cached document and whether the id has been cached.
	Get(id string) (*domain.Document, bool)

	// Set caches a document, or nil for an absent one.
	Set(id string, doc *domain.Document)

	// Len returns the number of cached ids.
	Len() int
}

// DocumentCacheFactory creates a fresh, empty cache.
type DocumentCacheFactory func() DocumentCache
