package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rcashie/fb-web-import/internal/core/domain"
	"github.com/rcashie/fb-web-import/internal/core/ports/driven"
	"github.com/rcashie/fb-web-import/internal/core/ports/driving"
	"github.com/rcashie/fb-web-import/internal/logger"
)

// Ensure PlanService implements the interface.
var _ driving.Planner = (*PlanService)(nil)

// PlanService classifies proposals against the document store.
type PlanService struct {
	reader   driven.DocumentReader
	newCache driven.DocumentCacheFactory
}

// NewPlanService creates a new plan service.
// A fresh cache is taken from newCache for every CreatePlans call.
func NewPlanService(reader driven.DocumentReader, newCache driven.DocumentCacheFactory) *PlanService {
	return &PlanService{
		reader:   reader,
		newCache: newCache,
	}
}

// CreatePlans returns one plan per proposal, in input order.
//
// Proposals are processed strictly one at a time and share one document
// cache, so a parent read for one proposal is reused by its siblings.
func (s *PlanService) CreatePlans(ctx context.Context, proposals []domain.Proposal) ([]domain.Plan, error) {
	logger.Section("Creating plans")
	fetcher := newDocumentFetcher(s.reader, s.newCache())

	plans := make([]domain.Plan, 0, len(proposals))
	for i := range proposals {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("create plans: %w", err)
		}

		plan, err := s.planProposal(ctx, fetcher, proposals[i])
		if err != nil {
			return nil, fmt.Errorf("plan %s: %w", proposals[i].Target, err)
		}
		logger.Debug("%s: %s (%d changes)", plan.Proposal.Target, plan.Type, len(plan.Changes))
		plans = append(plans, plan)
	}

	logger.Info("Created %d plans from %d document reads", len(plans), fetcher.reads())
	return plans, nil
}

// planProposal applies the classification table to one proposal:
//
//  1. a wrong parent link or a missing parent short-circuits to IgnoredNew
//     without reading the target
//  2. a stored target that cannot be decoded is IgnoredNew
//  3. a missing target is New
//  4. otherwise the diff decides between Updated and None
func (s *PlanService) planProposal(ctx context.Context, fetcher *documentFetcher, proposal domain.Proposal) (domain.Plan, error) {
	proposed := &proposal.Document
	plan := domain.Plan{Proposal: proposal}

	if !proposed.Type.IsValid() {
		plan.Type = domain.ChangeIgnoredNew
		plan.Reason = fmt.Sprintf("This document cannot be applied. Unknown document type %q", proposed.Type)
		return plan, nil
	}

	if !parentLinkMatches(&proposal) {
		plan.Type = domain.ChangeIgnoredNew
		plan.Reason = fmt.Sprintf("%s (game %q, character %q)", domain.ReasonParentLink, proposed.Game, proposed.Character)
		return plan, nil
	}

	if parent, ok := ResolveParent(proposal.Target, proposed.Type); ok {
		exists, err := parentExists(ctx, fetcher, parent)
		if err != nil {
			return plan, err
		}
		if !exists {
			plan.Type = domain.ChangeIgnoredNew
			plan.Reason = domain.ReasonParentMissing
			return plan, nil
		}
	}

	current, err := fetcher.get(ctx, proposal.Target, proposed.Type)
	if errors.Is(err, domain.ErrInvalidDocument) {
		plan.Type = domain.ChangeIgnoredNew
		plan.Reason = domain.ReasonInvalidDocument
		return plan, nil
	}
	if err != nil {
		return plan, err
	}
	if current == nil {
		plan.Type = domain.ChangeNew
		plan.Reason = domain.ReasonNewDocument
		return plan, nil
	}

	plan.Changes = Diff(current, proposed)
	if len(plan.Changes) > 0 {
		plan.Type = domain.ChangeUpdated
		plan.Reason = domain.ReasonChangesDetected
	} else {
		plan.Type = domain.ChangeNone
		plan.Reason = domain.ReasonNoChanges
	}
	return plan, nil
}

// parentLinkMatches reports whether the document links to its target's
// parent through the one field its type uses. Games link to nothing.
func parentLinkMatches(proposal *domain.Proposal) bool {
	doc := &proposal.Document
	links := 0
	if doc.Game != "" {
		links++
	}
	if doc.Character != "" {
		links++
	}

	want := ""
	if _, ok := doc.Type.ParentType(); ok {
		want = domain.ParentTarget(proposal.Target)
	}
	if want == "" {
		return links == 0
	}
	return links == 1 && doc.Parent() == want
}

// parentExists reports whether the parent document is in the store.
// A target with no parent segment has no parent to find. A parent that
// exists but does not decode still exists.
func parentExists(ctx context.Context, fetcher *documentFetcher, parent ParentRef) (bool, error) {
	if parent.ID == "" {
		return false, nil
	}
	doc, err := fetcher.get(ctx, parent.ID, parent.Type)
	if errors.Is(err, domain.ErrInvalidDocument) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return doc != nil, nil
}
