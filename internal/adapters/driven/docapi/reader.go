package docapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/rcashie/fb-web-import/internal/core/domain"
)

// GetDocument retrieves a document by target id.
// Returns domain.ErrNotFound for a 404, domain.ErrInvalidDocument for a
// success body that does not decode, and *APIError for other failures.
func (c *Client) GetDocument(ctx context.Context, id string, typ domain.DocumentType) (*domain.Document, error) {
	collection := typ.Collection()
	if collection == "" {
		return nil, fmt.Errorf("get %s: %w: %s", id, domain.ErrUnsupportedType, typ)
	}

	path := fmt.Sprintf("%s/docs/%s/%s", apiPrefix, collection, url.PathEscape(id))
	resp, err := c.do(ctx, http.MethodGet, path, nil, false)
	if err != nil {
		return nil, err
	}

	switch {
	case resp.status == http.StatusNotFound:
		return nil, fmt.Errorf("get %s/%s: %w", collection, id, domain.ErrNotFound)
	case !resp.ok():
		return nil, newAPIError(resp.status, resp.body, resp.url)
	}

	var doc domain.Document
	if err := json.Unmarshal(resp.body, &doc); err != nil {
		return nil, fmt.Errorf("decode %s/%s: %w: %v", collection, id, domain.ErrInvalidDocument, err)
	}
	return &doc, nil
}
