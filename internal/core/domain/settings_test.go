package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPISettings_Normalized(t *testing.T) {
	s := APISettings{BaseURL: " https://fb.example.com/ ", RequestsPerSecond: 0, MaxRetries: -1}.Normalized()
	assert.Equal(t, "https://fb.example.com", s.BaseURL)
	assert.Equal(t, DefaultRequestsPerSecond, s.RequestsPerSecond)
	assert.Equal(t, DefaultMaxRetries, s.MaxRetries)

	s = APISettings{RequestsPerSecond: 10, MaxRetries: 0}.Normalized()
	assert.Equal(t, 10, s.RequestsPerSecond)
	assert.Equal(t, 0, s.MaxRetries)
}

func TestAPISettings_Validate(t *testing.T) {
	err := APISettings{}.ValidateRead()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotConfigured))

	s := APISettings{BaseURL: "http://localhost"}
	assert.NoError(t, s.ValidateRead())

	err = s.ValidateWrite()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotConfigured))

	s.Nonce = "n"
	s.Token = "t"
	assert.NoError(t, s.ValidateWrite())
}

func TestAPISettings_Cookie(t *testing.T) {
	s := APISettings{Nonce: "abc", Token: "xyz"}
	assert.Equal(t, "nonce=abc; token=xyz", s.Cookie())
}

func TestDefaultAPISettings(t *testing.T) {
	s := DefaultAPISettings()
	assert.Equal(t, 5, s.RequestsPerSecond)
	assert.Equal(t, 3, s.MaxRetries)
	assert.Empty(t, s.BaseURL)
}
