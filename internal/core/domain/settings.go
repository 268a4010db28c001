package domain

import "time"

// Default settings values.
const (
	DefaultRemoteTimeout = 5 * time.Second
	DefaultRateLimit     = 5
	DefaultRateBurst     = 5
)

// RemoteSettings controls the outbound REST client.
type RemoteSettings struct {
	// Timeout bounds a single remote lookup. No retries are made.
	Timeout time.Duration

	// RateLimit is the sustained requests per second across all blogs.
	RateLimit int

	// Burst is the token bucket size.
	Burst int
}

// CommerceSettings controls the product integration.
type CommerceSettings struct {
	// Enabled turns on product-aware lookups for post relationships.
	Enabled bool
}

// AppSettings is the full application configuration.
type AppSettings struct {
	Remote   RemoteSettings
	Commerce CommerceSettings
	Fields   RelationshipFields
}

// DefaultAppSettings returns settings with defaults applied.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Remote: RemoteSettings{
			Timeout:   DefaultRemoteTimeout,
			RateLimit: DefaultRateLimit,
			Burst:     DefaultRateBurst,
		},
		Commerce: CommerceSettings{Enabled: false},
	}
}
