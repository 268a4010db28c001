package services

import (
	"fmt"
	"time"

	"github.com/custodia-labs/relsync/internal/core/domain"
	"github.com/custodia-labs/relsync/internal/core/ports/driven"
	"github.com/custodia-labs/relsync/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyRemoteTimeout   = "remote.timeout_seconds"
	keyRemoteRateLimit = "remote.rate_limit"
	keyRemoteBurst     = "remote.burst"
	keyCommerceEnabled = "commerce.enabled"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Remote: domain.RemoteSettings{
			Timeout:   s.getSeconds(keyRemoteTimeout, defaults.Remote.Timeout),
			RateLimit: s.getInt(keyRemoteRateLimit, defaults.Remote.RateLimit),
			Burst:     s.getInt(keyRemoteBurst, defaults.Remote.Burst),
		},
		Commerce: domain.CommerceSettings{
			Enabled: s.getBool(keyCommerceEnabled, defaults.Commerce.Enabled),
		},
		Fields: domain.RelationshipFields{
			Post: s.configStore.GetStringSlice(keyPostFields),
			Term: s.configStore.GetStringSlice(keyTermFields),
		},
	}

	return settings, nil
}

// SetRemoteTimeout updates the remote lookup timeout in seconds.
func (s *SettingsService) SetRemoteTimeout(seconds int) error {
	if seconds <= 0 {
		return fmt.Errorf("%w: timeout must be positive", domain.ErrInvalidInput)
	}
	if err := s.configStore.Set(keyRemoteTimeout, seconds); err != nil {
		return fmt.Errorf("save remote timeout: %w", err)
	}
	return nil
}

// SetRateLimit updates the outbound request rate.
func (s *SettingsService) SetRateLimit(perSecond int) error {
	if perSecond <= 0 {
		return fmt.Errorf("%w: rate limit must be positive", domain.ErrInvalidInput)
	}
	if err := s.configStore.Set(keyRemoteRateLimit, perSecond); err != nil {
		return fmt.Errorf("save rate limit: %w", err)
	}
	return nil
}

// SetCommerceEnabled toggles the product integration.
func (s *SettingsService) SetCommerceEnabled(enabled bool) error {
	if err := s.configStore.Set(keyCommerceEnabled, enabled); err != nil {
		return fmt.Errorf("save commerce enabled: %w", err)
	}
	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	if _, ok := s.configStore.Get(key); !ok {
		return defaultVal
	}
	if v := s.configStore.GetInt(key); v > 0 {
		return v
	}
	return defaultVal
}

func (s *SettingsService) getSeconds(key string, defaultVal time.Duration) time.Duration {
	if v := s.getInt(key, 0); v > 0 {
		return time.Duration(v) * time.Second
	}
	return defaultVal
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, ok := s.configStore.Get(key); !ok {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}
