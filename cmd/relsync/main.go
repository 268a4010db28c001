// Command relsync resolves relationship custom fields for cross-posted content.
package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/relsync/internal/adapters/driven/commerce"
	"github.com/custodia-labs/relsync/internal/adapters/driven/config/file"
	"github.com/custodia-labs/relsync/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/relsync/internal/adapters/driven/wordpress"
	"github.com/custodia-labs/relsync/internal/adapters/driving/cli"
	"github.com/custodia-labs/relsync/internal/core/services"
	"github.com/custodia-labs/relsync/internal/logger"
)

func main() {
	if err := cli.Execute(wire); err != nil {
		os.Exit(1)
	}
}

// wire builds the production services: TOML configuration, the SQLite
// store and the REST client for term lookups.
func wire(opts cli.Options) (*cli.Services, func(), error) {
	cfg, err := file.NewConfigStore(opts.ConfigDir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	store, err := sqlite.NewStore(opts.DataDir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open store: %w", err)
	}
	cleanup := func() {
		if err := store.Close(); err != nil {
			logger.Error("closing store: %v", err)
		}
	}

	settingsService := services.NewSettingsService(cfg)
	settings, err := settingsService.Get()
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to read settings: %w", err)
	}
	logger.Debug("remote timeout %s, rate limit %d/s", settings.Remote.Timeout, settings.Remote.RateLimit)

	client := wordpress.NewClient(wordpress.Config{
		Timeout: settings.Remote.Timeout,
		RateLimit: wordpress.RateLimitConfig{
			RequestsPerSecond: float64(settings.Remote.RateLimit),
			BurstSize:         settings.Remote.Burst,
		},
	})

	content := store.ContentStore()
	mappings := store.CrosspostMap()
	catalog := commerce.NewCatalog(settings.Commerce.Enabled, content, mappings, store.ProductMappingStore())
	fields := services.NewFieldService(cfg)

	return &cli.Services{
		Resolver:   services.NewRelationshipService(fields, mappings, content, client, catalog),
		Classifier: services.NewFieldClassifier(fields),
		Fields:     fields,
		Blogs:      services.NewBlogService(store.BlogStore(), mappings),
		Mappings:   services.NewMappingService(mappings, catalog),
		Content:    services.NewContentService(content),
		Settings:   settingsService,
		Watch:      cfg.Watch,
	}, cleanup, nil
}
