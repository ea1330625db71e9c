package services

import (
	"fmt"

	"github.com/custodia-labs/gamefix/internal/core/domain"
	"github.com/custodia-labs/gamefix/internal/core/ports/driven"
	"github.com/custodia-labs/gamefix/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// SettingsService manages repair settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get returns the built-in defaults overlaid with stored values.
// Empty stored strings fall back to the default, except for the
// replacement where empty is a valid value.
func (s *SettingsService) Get() (*domain.RepairSettings, error) {
	settings := domain.DefaultRepairSettings()
	if s.configStore == nil {
		return &settings, nil
	}

	settings.Path = s.getString(domain.KeyPath, settings.Path)
	settings.Marker = s.getString(domain.KeyMarker, settings.Marker)
	settings.Pattern = s.getString(domain.KeyPattern, settings.Pattern)
	settings.AuditTag = s.getString(domain.KeyAuditTag, settings.AuditTag)
	if _, ok := s.configStore.Get(domain.KeyReplacement); ok {
		settings.Replacement = s.configStore.GetString(domain.KeyReplacement)
	}

	return &settings, nil
}

// Set validates and persists a single setting.
func (s *SettingsService) Set(key, value string) error {
	if s.configStore == nil {
		return fmt.Errorf("%w: config store not configured", domain.ErrInvalidInput)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}
	if err := settings.Apply(key, value); err != nil {
		return err
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	return s.configStore.Set(key, value)
}

// Unset removes a stored setting so the built-in default applies again.
func (s *SettingsService) Unset(key string) error {
	if s.configStore == nil {
		return fmt.Errorf("%w: config store not configured", domain.ErrInvalidInput)
	}
	if _, err := (domain.RepairSettings{}).Value(key); err != nil {
		return err
	}
	return s.configStore.Delete(key)
}

// Keys returns the recognised setting keys, sorted.
func (s *SettingsService) Keys() []string {
	return domain.SettingKeys()
}

// getString returns the stored string for key, or defaultVal if unset or empty.
func (s *SettingsService) getString(key, defaultVal string) string {
	if v := s.configStore.GetString(key); v != "" {
		return v
	}
	return defaultVal
}
