package docapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/tidwall/gjson"

	"github.com/rcashie/fb-web-import/internal/core/domain"
)

// CreateProposal submits a proposal and returns the created version.
func (c *Client) CreateProposal(ctx context.Context, proposal domain.Proposal) (domain.ProposalRef, error) {
	if err := c.settings.ValidateWrite(); err != nil {
		return domain.ProposalRef{}, err
	}

	collection := proposal.Document.Type.Collection()
	if collection == "" {
		return domain.ProposalRef{}, fmt.Errorf("create proposal %s: %w: %s",
			proposal.Target, domain.ErrUnsupportedType, proposal.Document.Type)
	}

	body, err := json.Marshal(proposal)
	if err != nil {
		return domain.ProposalRef{}, fmt.Errorf("encode proposal: %w", err)
	}

	resp, err := c.do(withoutRetry(ctx), http.MethodPost, fmt.Sprintf("%s/props/%s", apiPrefix, collection), body, true)
	if err != nil {
		return domain.ProposalRef{}, err
	}
	if !resp.ok() {
		return domain.ProposalRef{}, newAPIError(resp.status, resp.body, resp.url)
	}

	result := gjson.ParseBytes(resp.body)
	id := result.Get("proposal")
	version := result.Get("version")
	if !id.Exists() || !version.Exists() || id.String() == "" {
		return domain.ProposalRef{}, fmt.Errorf("%w: missing proposal or version in %q", ErrUnexpectedResponse, resp.body)
	}
	return domain.ProposalRef{ID: id.String(), Version: version.String()}, nil
}

// ApproveProposal marks a created proposal version as approved.
func (c *Client) ApproveProposal(ctx context.Context, ref domain.ProposalRef) error {
	if err := c.settings.ValidateWrite(); err != nil {
		return err
	}

	path := fmt.Sprintf("%s/props/any/%s/%s/status/approved",
		apiPrefix, url.PathEscape(ref.ID), url.PathEscape(ref.Version))
	resp, err := c.do(ctx, http.MethodPatch, path, nil, true)
	if err != nil {
		return err
	}
	if !resp.ok() {
		return newAPIError(resp.status, resp.body, resp.url)
	}
	return nil
}
