package docapi

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/rcashie/fb-web-import/internal/core/domain"
)

// ErrUnexpectedResponse indicates a success response without the expected fields.
var ErrUnexpectedResponse = errors.New("docapi: unexpected response")

// maxMessageLen caps how much of an error body is kept.
const maxMessageLen = 200

// APIError represents a non-success document store response.
type APIError struct {
	StatusCode int
	Message    string
	URL        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("docapi: API error %d: %s (URL: %s)", e.StatusCode, e.Message, e.URL)
}

func newAPIError(status int, body []byte, url string) *APIError {
	msg := strings.TrimSpace(string(body))
	if len(msg) > maxMessageLen {
		msg = msg[:maxMessageLen] + "..."
	}
	if msg == "" {
		msg = http.StatusText(status)
	}
	return &APIError{StatusCode: status, Message: msg, URL: url}
}

// Unwrap maps the status onto the domain errors callers branch on:
// 404 is domain.ErrNotFound and 401 or 403 is domain.ErrUnauthorized.
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		return domain.ErrUnauthorized
	default:
		return nil
	}
}
