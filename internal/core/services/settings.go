package services

import (
	"fmt"
	"strconv"
	"time"

	"golang.org/x/text/language"

	"github.com/custodia-labs/svcdir/internal/core/domain"
	"github.com/custodia-labs/svcdir/internal/core/ports/driven"
	"github.com/custodia-labs/svcdir/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyCatalogPath = "catalog.path"
	KeyLoadDelay   = "catalog.load_delay_ms"
	KeyLocale      = "ui.locale"
	KeyDefaultSort = "ui.default_sort"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current settings. Missing or invalid values fall back
// to defaults.
func (s *SettingsService) Get() domain.AppSettings {
	defaults := domain.DefaultAppSettings()

	return domain.AppSettings{
		CatalogPath: s.configStore.GetString(KeyCatalogPath),
		LoadDelay:   s.getLoadDelay(defaults.LoadDelay),
		Locale:      s.getLocale(defaults.Locale),
		DefaultSort: s.getSort(defaults.DefaultSort),
	}
}

// Set validates and persists a single setting.
func (s *SettingsService) Set(key, value string) error {
	var stored any

	switch key {
	case KeyCatalogPath:
		stored = value
	case KeyLoadDelay:
		ms, err := strconv.Atoi(value)
		if err != nil || ms < 0 {
			return fmt.Errorf("%w: %s must be a non-negative integer", domain.ErrInvalidInput, key)
		}
		stored = ms
	case KeyLocale:
		if _, err := language.Parse(value); err != nil {
			return fmt.Errorf("%w: %s: %v", domain.ErrInvalidInput, key, err)
		}
		stored = value
	case KeyDefaultSort:
		mode, err := domain.ParseSortMode(value)
		if err != nil {
			return err
		}
		stored = mode.String()
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	if err := s.configStore.Set(key, stored); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Keys returns the recognised setting keys.
func (s *SettingsService) Keys() []string {
	return []string{KeyCatalogPath, KeyLoadDelay, KeyLocale, KeyDefaultSort}
}

// Path returns the configuration file path.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}

func (s *SettingsService) getLoadDelay(def time.Duration) time.Duration {
	if _, ok := s.configStore.Get(KeyLoadDelay); !ok {
		return def
	}
	ms := s.configStore.GetInt(KeyLoadDelay)
	if ms < 0 {
		return def
	}
	return time.Duration(ms) * time.Millisecond
}

func (s *SettingsService) getLocale(def string) string {
	v := s.configStore.GetString(KeyLocale)
	if v == "" {
		return def
	}
	if _, err := language.Parse(v); err != nil {
		return def
	}
	return v
}

func (s *SettingsService) getSort(def domain.SortMode) domain.SortMode {
	mode := domain.SortMode(s.configStore.GetString(KeyDefaultSort))
	if !mode.IsValid() {
		return def
	}
	return mode
}
