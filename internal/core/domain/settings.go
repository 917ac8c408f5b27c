package domain

import (
	"fmt"
	"strings"
)

// Default API settings.
const (
	DefaultRequestsPerSecond = 5
	DefaultMaxRetries        = 3
)

// APISettings holds the document store endpoint and session credentials.
type APISettings struct {
	// BaseURL is the document store root, e.g. "https://example.com".
	BaseURL string

	// Nonce is the session nonce cookie value.
	Nonce string

	// Token is the session token cookie value.
	Token string

	// RequestsPerSecond caps outgoing request rate.
	RequestsPerSecond int

	// MaxRetries bounds retries of transient failures.
	MaxRetries int
}

// DefaultAPISettings returns settings with rate and retry defaults applied.
func DefaultAPISettings() APISettings {
	return APISettings{
		RequestsPerSecond: DefaultRequestsPerSecond,
		MaxRetries:        DefaultMaxRetries,
	}
}

// Normalized returns a copy with a trimmed base URL and defaults for unset limits.
func (s APISettings) Normalized() APISettings {
	s.BaseURL = strings.TrimRight(strings.TrimSpace(s.BaseURL), "/")
	if s.RequestsPerSecond <= 0 {
		s.RequestsPerSecond = DefaultRequestsPerSecond
	}
	if s.MaxRetries < 0 {
		s.MaxRetries = DefaultMaxRetries
	}
	return s
}

// ValidateRead checks the settings needed to read documents.
func (s APISettings) ValidateRead() error {
	if strings.TrimSpace(s.BaseURL) == "" {
		return fmt.Errorf("%w: api.base_url is required", ErrNotConfigured)
	}
	return nil
}

// ValidateWrite checks the settings needed to create and approve proposals.
func (s APISettings) ValidateWrite() error {
	if err := s.ValidateRead(); err != nil {
		return err
	}
	if s.Nonce == "" || s.Token == "" {
		return fmt.Errorf("%w: api.nonce and api.token are required to apply", ErrNotConfigured)
	}
	return nil
}

// Cookie returns the session cookie header value.
func (s APISettings) Cookie() string {
	return fmt.Sprintf("nonce=%s; token=%s", s.Nonce, s.Token)
}

// Configuration keys.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	ConfigKeyBaseURL           = "api.base_url"
	ConfigKeyNonce             = "api.nonce"
	ConfigKeyToken             = "api.token"
	ConfigKeyRequestsPerSecond = "api.requests_per_second"
	ConfigKeyMaxRetries        = "api.max_retries"
	ConfigKeyJournalPath       = "journal.path"
)

// ConfigEntry is one configuration value prepared for display.
type ConfigEntry struct {
	Key   string
	Value string
	IsSet bool
}
