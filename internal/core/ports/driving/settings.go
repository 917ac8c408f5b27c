package driving

import "github.com/rcashie/fb-web-import/internal/core/domain"

// SettingsService manages persisted importer configuration.
type SettingsService interface {
	// API returns the document store settings with defaults applied.
	API() domain.APISettings

	// JournalPath returns the apply journal directory, empty for the default.
	JournalPath() string

	// Entries returns every known key for display, with secrets masked.
	Entries() []domain.ConfigEntry

	// Set validates and stores one value.
	// Returns domain.ErrInvalidInput for unknown keys or malformed values.
	Set(key, value string) error

	// SetCredentials stores the session nonce and token.
	SetCredentials(nonce, token string) error

	// Path returns where the configuration is stored.
	Path() string
}
