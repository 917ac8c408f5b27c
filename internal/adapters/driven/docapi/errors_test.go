package docapi

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rcashie/fb-web-import/internal/core/domain"
)

func TestAPIError_Error(t *testing.T) {
	err := newAPIError(500, []byte(" boom \n"), "http://x/doc-api/v1/docs/games/sfv")
	assert.Equal(t, "docapi: API error 500: boom (URL: http://x/doc-api/v1/docs/games/sfv)", err.Error())
}

func TestNewAPIError_Truncates(t *testing.T) {
	err := newAPIError(502, []byte(strings.Repeat("x", 500)), "u")
	assert.Len(t, err.Message, maxMessageLen+3)
}

func TestAPIError_Unwrap(t *testing.T) {
	assert.ErrorIs(t, &APIError{StatusCode: 404}, domain.ErrNotFound)
	assert.NotErrorIs(t, &APIError{StatusCode: 500}, domain.ErrNotFound)

	assert.ErrorIs(t, &APIError{StatusCode: 401}, domain.ErrUnauthorized)
	assert.ErrorIs(t, fmt.Errorf("wrapped: %w", &APIError{StatusCode: 403}), domain.ErrUnauthorized)
	assert.NotErrorIs(t, domain.ErrNotFound, domain.ErrUnauthorized)

	assert.Nil(t, (&APIError{StatusCode: 429}).Unwrap())
}
