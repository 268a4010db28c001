package driving

import "github.com/custodia-labs/relsync/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// SetRemoteTimeout updates the remote lookup timeout in seconds.
	SetRemoteTimeout(seconds int) error

	// SetRateLimit updates the outbound request rate.
	SetRateLimit(perSecond int) error

	// SetCommerceEnabled toggles the product integration.
	SetCommerceEnabled(enabled bool) error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
