package driving

import "github.com/custodia-labs/gamefix/internal/core/domain"

// SettingsService manages repair settings.
type SettingsService interface {
	// Get returns the built-in defaults overlaid with stored values.
	Get() (*domain.RepairSettings, error)

	// Set validates and persists a single setting.
	Set(key, value string) error

	// Unset removes a stored setting so the built-in default applies again.
	Unset(key string) error

	// Keys returns the recognised setting keys, sorted.
	Keys() []string
}
