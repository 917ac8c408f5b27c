package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcashie/fb-web-import/internal/adapters/driven/storage/memory"
	"github.com/rcashie/fb-web-import/internal/core/domain"
)

func TestSettingsService_APIDefaults(t *testing.T) {
	svc := NewSettingsService(memory.NewConfigStore())

	api := svc.API()
	assert.Empty(t, api.BaseURL)
	assert.Equal(t, domain.DefaultRequestsPerSecond, api.RequestsPerSecond)
	assert.Equal(t, domain.DefaultMaxRetries, api.MaxRetries)
	assert.ErrorIs(t, api.ValidateRead(), domain.ErrNotConfigured)
}

func TestSettingsService_SetAndAPI(t *testing.T) {
	store := memory.NewConfigStore()
	svc := NewSettingsService(store)

	require.NoError(t, svc.Set(domain.ConfigKeyBaseURL, " https://framedb.example.com/ "))
	require.NoError(t, svc.Set(domain.ConfigKeyRequestsPerSecond, "2"))
	require.NoError(t, svc.Set(domain.ConfigKeyMaxRetries, "0"))
	require.NoError(t, svc.Set(domain.ConfigKeyJournalPath, "/tmp/journal"))

	api := svc.API()
	assert.Equal(t, "https://framedb.example.com", api.BaseURL)
	assert.Equal(t, 2, api.RequestsPerSecond)
	assert.Equal(t, 0, api.MaxRetries)
	assert.Equal(t, "/tmp/journal", svc.JournalPath())

	stored, ok := store.Get(domain.ConfigKeyRequestsPerSecond)
	require.True(t, ok)
	assert.Equal(t, 2, stored)
}

func TestSettingsService_SetRejectsInvalid(t *testing.T) {
	svc := NewSettingsService(memory.NewConfigStore())

	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown key", "api.password", "x"},
		{"non-numeric rate", domain.ConfigKeyRequestsPerSecond, "fast"},
		{"zero rate", domain.ConfigKeyRequestsPerSecond, "0"},
		{"negative retries", domain.ConfigKeyMaxRetries, "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, svc.Set(tt.key, tt.value), domain.ErrInvalidInput)
		})
	}
}

func TestSettingsService_SetCredentials(t *testing.T) {
	svc := NewSettingsService(memory.NewConfigStore())

	assert.ErrorIs(t, svc.SetCredentials("", "token"), domain.ErrInvalidInput)

	require.NoError(t, svc.SetCredentials(" n0nce ", "t0ken-value-123"))
	require.NoError(t, svc.Set(domain.ConfigKeyBaseURL, "https://framedb.example.com"))

	api := svc.API()
	assert.Equal(t, "n0nce", api.Nonce)
	assert.Equal(t, "t0ken-value-123", api.Token)
	assert.NoError(t, api.ValidateWrite())
}

func TestSettingsService_Entries(t *testing.T) {
	svc := NewSettingsService(memory.NewConfigStore())
	require.NoError(t, svc.SetCredentials("short", "t0ken-value-123"))

	entries := svc.Entries()
	require.Len(t, entries, 6)

	byKey := make(map[string]domain.ConfigEntry)
	for _, e := range entries {
		byKey[e.Key] = e
	}

	assert.Equal(t, domain.ConfigKeyBaseURL, entries[0].Key)
	assert.False(t, byKey[domain.ConfigKeyBaseURL].IsSet)
	assert.Equal(t, "****", byKey[domain.ConfigKeyNonce].Value)
	assert.Equal(t, "t0ke...-123", byKey[domain.ConfigKeyToken].Value)
	assert.True(t, byKey[domain.ConfigKeyToken].IsSet)
	assert.Equal(t, "5", byKey[domain.ConfigKeyRequestsPerSecond].Value)
	assert.False(t, byKey[domain.ConfigKeyRequestsPerSecond].IsSet)
	assert.Equal(t, "3", byKey[domain.ConfigKeyMaxRetries].Value)
}

func TestSettingsService_Path(t *testing.T) {
	svc := NewSettingsService(memory.NewConfigStore())
	assert.Equal(t, ":memory:", svc.Path())
}
