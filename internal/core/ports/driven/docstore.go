package driven

import (
	"context"

	"github.com/rcashie/fb-web-import/internal/core/domain"
)

// DocumentReader reads documents from the remote document store.
type DocumentReader interface {
	// GetDocument retrieves a document by target id.
	// The type selects the collection to read from.
	// Returns domain.ErrNotFound if the document does not exist.
	GetDocument(ctx context.Context, id string, typ domain.DocumentType) (*domain.Document, error)
}

// ProposalWriter submits proposals to the remote document store.
type ProposalWriter interface {
	// CreateProposal submits a proposal and returns the created version.
	CreateProposal(ctx context.Context, proposal domain.Proposal) (domain.ProposalRef, error)

	// ApproveProposal marks a created proposal version as approved.
	ApproveProposal(ctx context.Context, ref domain.ProposalRef) error
}
