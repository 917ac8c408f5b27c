package services

import (
	"context"
	"errors"

	"github.com/rcashie/fb-web-import/internal/core/domain"
	"github.com/rcashie/fb-web-import/internal/core/ports/driven"
	"github.com/rcashie/fb-web-import/internal/logger"
)

// documentFetcher reads documents through a cache so that each id is
// requested from the store at most once per planning run.
type documentFetcher struct {
	reader driven.DocumentReader
	cache  driven.DocumentCache

	// invalid holds ids whose stored document exists but did not decode.
	invalid map[string]error
}

func newDocumentFetcher(reader driven.DocumentReader, cache driven.DocumentCache) *documentFetcher {
	return &documentFetcher{reader: reader, cache: cache, invalid: make(map[string]error)}
}

// get returns the document for id, or nil if it does not exist.
//
// Not-found and failed reads are both cached as absent. Failed reads are
// logged. A stored document that does not decode is not absent: its
// domain.ErrInvalidDocument error is remembered and returned for the rest
// of the run. Context errors are returned and never cached.
func (f *documentFetcher) get(ctx context.Context, id string, typ domain.DocumentType) (*domain.Document, error) {
	if err, ok := f.invalid[id]; ok {
		return nil, err
	}
	if doc, ok := f.cache.Get(id); ok {
		return doc, nil
	}

	logger.Debug("Fetching %s/%s", typ.Collection(), id)
	doc, err := f.reader.GetDocument(ctx, id, typ)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if errors.Is(err, domain.ErrInvalidDocument) {
			logger.Error("fetch %s/%s: %v", typ.Collection(), id, err)
			f.invalid[id] = err
			return nil, err
		}
		if !errors.Is(err, domain.ErrNotFound) {
			logger.Error("fetch %s/%s: %v", typ.Collection(), id, err)
		}
		doc = nil
	}

	f.cache.Set(id, doc)
	return doc, nil
}

// reads returns how many distinct ids were requested from the store.
func (f *documentFetcher) reads() int {
	return f.cache.Len() + len(f.invalid)
}
