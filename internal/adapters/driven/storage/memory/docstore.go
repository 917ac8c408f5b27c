package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"

	"github.com/rcashie/fb-web-import/internal/core/domain"
	"github.com/rcashie/fb-web-import/internal/core/ports/driven"
)

// Ensure DocumentStore implements the interfaces.
var (
	_ driven.DocumentReader = (*DocumentStore)(nil)
	_ driven.ProposalWriter = (*DocumentStore)(nil)
)

// DocumentStore is an in-memory document store.
// Approving a proposal writes its document, so a second planning run
// over the same proposals classifies them as unchanged.
type DocumentStore struct {
	mu        sync.RWMutex
	documents map[string]domain.Document
	proposals map[domain.ProposalRef]domain.Proposal
	failures  map[string]error
	reads     map[string]int
	nextID    int
}

// NewDocumentStore creates a new in-memory document store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{
		documents: make(map[string]domain.Document),
		proposals: make(map[domain.ProposalRef]domain.Proposal),
		failures:  make(map[string]error),
		reads:     make(map[string]int),
	}
}

// Put stores a document under id.
func (s *DocumentStore) Put(id string, doc domain.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents[id] = doc
}

// FailWith makes every operation on id return err.
// Passing a nil error clears the failure.
func (s *DocumentStore) FailWith(id string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.failures, id)
		return
	}
	s.failures[id] = err
}

// Reads returns how many times id was requested.
func (s *DocumentStore) Reads(id string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reads[id]
}

// Len returns the number of stored documents.
func (s *DocumentStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.documents)
}

// GetDocument retrieves a document by id.
func (s *DocumentStore) GetDocument(_ context.Context, id string, typ domain.DocumentType) (*domain.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reads[id]++

	if err := s.failures[id]; err != nil {
		return nil, err
	}
	doc, ok := s.documents[id]
	if !ok || doc.Type != typ {
		return nil, fmt.Errorf("get %s/%s: %w", typ.Collection(), id, domain.ErrNotFound)
	}
	return cloneDocument(doc), nil
}

// CreateProposal stores a pending proposal and returns its reference.
func (s *DocumentStore) CreateProposal(_ context.Context, proposal domain.Proposal) (domain.ProposalRef, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.failures[proposal.Target]; err != nil {
		return domain.ProposalRef{}, err
	}
	s.nextID++
	ref := domain.ProposalRef{ID: "prop-" + strconv.Itoa(s.nextID), Version: "1"}
	s.proposals[ref] = proposal
	return ref, nil
}

// ApproveProposal writes the proposed document to the store.
func (s *DocumentStore) ApproveProposal(_ context.Context, ref domain.ProposalRef) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	proposal, ok := s.proposals[ref]
	if !ok {
		return fmt.Errorf("approve %s: %w", ref, domain.ErrNotFound)
	}
	if err := s.failures[ref.String()]; err != nil {
		return err
	}
	delete(s.proposals, ref)
	s.documents[proposal.Target] = *cloneDocument(proposal.Document)
	return nil
}

// Pending returns the number of created but unapproved proposals.
func (s *DocumentStore) Pending() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.proposals)
}

func cloneDocument(doc domain.Document) *domain.Document {
	c := doc
	c.Names = append([]string(nil), doc.Names...)
	c.Attributes = append([]domain.Attribute(nil), doc.Attributes...)
	if doc.Media != nil {
		c.Media = append(json.RawMessage(nil), doc.Media...)
	}
	return &c
}
