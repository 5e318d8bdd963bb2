package driving

import "github.com/custodia-labs/svcdir/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings, with defaults applied
	// for missing or malformed values.
	Get() domain.AppSettings

	// Set validates and persists a single setting by key.
	Set(key, value string) error

	// Keys returns the recognised setting keys.
	Keys() []string

	// Path returns where settings are stored.
	Path() string
}
