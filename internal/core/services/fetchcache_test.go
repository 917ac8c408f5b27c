package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcashie/fb-web-import/internal/adapters/driven/cache"
	"github.com/rcashie/fb-web-import/internal/adapters/driven/storage/memory"
	"github.com/rcashie/fb-web-import/internal/core/domain"
)

func TestDocumentFetcher_CachesHits(t *testing.T) {
	store := memory.NewDocumentStore()
	store.Put("sfv", gameProposal().Document)
	c := cache.New()
	fetcher := newDocumentFetcher(store, c)

	for range 3 {
		doc, err := fetcher.get(context.Background(), "sfv", domain.DocumentTypeGame)
		require.NoError(t, err)
		require.NotNil(t, doc)
		assert.Equal(t, "Street Fighter V", doc.Title)
	}
	assert.Equal(t, 1, store.Reads("sfv"))
	assert.Equal(t, 1, c.Len())
}

func TestDocumentFetcher_CachesAbsence(t *testing.T) {
	store := memory.NewDocumentStore()
	fetcher := newDocumentFetcher(store, cache.New())

	for range 2 {
		doc, err := fetcher.get(context.Background(), "sfv.ryu", domain.DocumentTypeCharacter)
		require.NoError(t, err)
		assert.Nil(t, doc)
	}
	assert.Equal(t, 1, store.Reads("sfv.ryu"))
}

func TestDocumentFetcher_ContextErrorNotCached(t *testing.T) {
	store := memory.NewDocumentStore()
	store.FailWith("sfv", context.Canceled)
	c := cache.New()
	fetcher := newDocumentFetcher(store, c)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := fetcher.get(ctx, "sfv", domain.DocumentTypeGame)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, c.Len())
}

func TestDocumentFetcher_InvalidDocumentNotCachedAsAbsent(t *testing.T) {
	captureLogs(t)
	store := memory.NewDocumentStore()
	store.FailWith("sfv", fmt.Errorf("decode games/sfv: %w", domain.ErrInvalidDocument))
	c := cache.New()
	fetcher := newDocumentFetcher(store, c)

	for range 2 {
		doc, err := fetcher.get(context.Background(), "sfv", domain.DocumentTypeGame)
		assert.ErrorIs(t, err, domain.ErrInvalidDocument)
		assert.Nil(t, doc)
	}
	assert.Equal(t, 1, store.Reads("sfv"))
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 1, fetcher.reads())
}
