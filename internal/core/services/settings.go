package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rcashie/fb-web-import/internal/core/domain"
	"github.com/rcashie/fb-web-import/internal/core/ports/driven"
	"github.com/rcashie/fb-web-import/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// settingKind describes how a key is parsed and shown.
type settingKind int

const (
	kindString settingKind = iota
	kindSecret
	kindPositiveInt
	kindNonNegativeInt
)

// knownSettings lists every accepted key in display order.
var knownSettings = []struct {
	key  string
	kind settingKind
}{
	{domain.ConfigKeyBaseURL, kindString},
	{domain.ConfigKeyNonce, kindSecret},
	{domain.ConfigKeyToken, kindSecret},
	{domain.ConfigKeyRequestsPerSecond, kindPositiveInt},
	{domain.ConfigKeyMaxRetries, kindNonNegativeInt},
	{domain.ConfigKeyJournalPath, kindString},
}

// SettingsService manages importer settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// API returns the document store settings with defaults applied.
func (s *SettingsService) API() domain.APISettings {
	defaults := domain.DefaultAPISettings()
	return domain.APISettings{
		BaseURL:           s.configStore.GetString(domain.ConfigKeyBaseURL),
		Nonce:             s.configStore.GetString(domain.ConfigKeyNonce),
		Token:             s.configStore.GetString(domain.ConfigKeyToken),
		RequestsPerSecond: s.getInt(domain.ConfigKeyRequestsPerSecond, defaults.RequestsPerSecond),
		MaxRetries:        s.getInt(domain.ConfigKeyMaxRetries, defaults.MaxRetries),
	}.Normalized()
}

// JournalPath returns the apply journal directory, empty for the default.
func (s *SettingsService) JournalPath() string {
	return s.configStore.GetString(domain.ConfigKeyJournalPath)
}

// Entries returns every known key for display, with secrets masked.
func (s *SettingsService) Entries() []domain.ConfigEntry {
	api := s.API()
	entries := make([]domain.ConfigEntry, 0, len(knownSettings))
	for _, setting := range knownSettings {
		_, isSet := s.configStore.Get(setting.key)
		entry := domain.ConfigEntry{Key: setting.key, IsSet: isSet}

		switch setting.key {
		case domain.ConfigKeyRequestsPerSecond:
			entry.Value = strconv.Itoa(api.RequestsPerSecond)
		case domain.ConfigKeyMaxRetries:
			entry.Value = strconv.Itoa(api.MaxRetries)
		default:
			entry.Value = s.configStore.GetString(setting.key)
		}
		if setting.kind == kindSecret && entry.Value != "" {
			entry.Value = maskSecret(entry.Value)
		}
		entries = append(entries, entry)
	}
	return entries
}

// Set validates and stores one value.
func (s *SettingsService) Set(key, value string) error {
	value = strings.TrimSpace(value)
	for _, setting := range knownSettings {
		if setting.key != key {
			continue
		}

		switch setting.kind {
		case kindPositiveInt, kindNonNegativeInt:
			n, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("%w: %s must be an integer, got %q", domain.ErrInvalidInput, key, value)
			}
			if n < 0 || (n == 0 && setting.kind == kindPositiveInt) {
				return fmt.Errorf("%w: %s out of range: %d", domain.ErrInvalidInput, key, n)
			}
			if err := s.configStore.Set(key, n); err != nil {
				return fmt.Errorf("save %s: %w", key, err)
			}
		default:
			if key == domain.ConfigKeyBaseURL {
				value = strings.TrimRight(value, "/")
			}
			if err := s.configStore.Set(key, value); err != nil {
				return fmt.Errorf("save %s: %w", key, err)
			}
		}
		return nil
	}
	return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
}

// SetCredentials stores the session nonce and token.
func (s *SettingsService) SetCredentials(nonce, token string) error {
	nonce = strings.TrimSpace(nonce)
	token = strings.TrimSpace(token)
	if nonce == "" || token == "" {
		return fmt.Errorf("%w: nonce and token must not be empty", domain.ErrInvalidInput)
	}
	if err := s.configStore.Set(domain.ConfigKeyNonce, nonce); err != nil {
		return fmt.Errorf("save nonce: %w", err)
	}
	if err := s.configStore.Set(domain.ConfigKeyToken, token); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	return nil
}

// Path returns where the configuration is stored.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}

// getInt returns the stored integer or defaultVal when the key is unset.
func (s *SettingsService) getInt(key string, defaultVal int) int {
	if _, ok := s.configStore.Get(key); !ok {
		return defaultVal
	}
	return s.configStore.GetInt(key)
}

func maskSecret(secret string) string {
	if len(secret) <= 8 {
		return "****"
	}
	return secret[:4] + "..." + secret[len(secret)-4:]
}
