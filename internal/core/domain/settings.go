package domain

import "time"

// Default settings values.
const (
	DefaultLoadDelay = 800 * time.Millisecond
	DefaultLocale    = "en"
)

// AppSettings holds user-configurable application settings.
type AppSettings struct {
	// CatalogPath is a JSON or YAML catalog file. Empty selects the
	// built-in sample catalog.
	CatalogPath string

	// LoadDelay is the simulated latency before the catalog becomes ready.
	LoadDelay time.Duration

	// Locale is the BCP 47 tag used for alphabetical sorting.
	Locale string

	// DefaultSort is the sort mode new sessions start with.
	DefaultSort SortMode
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		CatalogPath: "",
		LoadDelay:   DefaultLoadDelay,
		Locale:      DefaultLocale,
		DefaultSort: SortDefault,
	}
}
