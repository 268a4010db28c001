// Package commerce provides the product-aware ProductCatalog.
//
// Whether a product is cross-posted to a blog depends on how the blog
// connects products (domain.ProductSync):
//
//   - none: products are never cross-posted
//   - shared: products use the post mapping
//   - independent: products have their own mapping
package commerce

import (
	"context"
	"fmt"

	"github.com/custodia-labs/relsync/internal/core/domain"
	"github.com/custodia-labs/relsync/internal/core/ports/driven"
)

// Ensure Catalog implements the interface.
var _ driven.ProductCatalog = (*Catalog)(nil)

// Catalog answers product cross-post lookups.
type Catalog struct {
	enabled  bool
	content  driven.ContentStore
	posts    driven.CrosspostMap
	products driven.ProductMappingStore
}

// NewCatalog creates a product catalogue.
// When enabled is false the catalogue reports itself unavailable.
func NewCatalog(
	enabled bool,
	content driven.ContentStore,
	posts driven.CrosspostMap,
	products driven.ProductMappingStore,
) *Catalog {
	return &Catalog{
		enabled:  enabled,
		content:  content,
		posts:    posts,
		products: products,
	}
}

// Enabled reports whether the commerce integration is active.
func (c *Catalog) Enabled() bool {
	return c.enabled
}

// CrosspostedProduct returns the remote ID of productID on blog.
func (c *Catalog) CrosspostedProduct(ctx context.Context, productID int64, blog domain.Blog) (int64, error) {
	if !c.enabled {
		return 0, domain.ErrCommerceDisabled
	}

	post, err := c.content.Post(ctx, productID)
	if err != nil {
		return 0, fmt.Errorf("product %d: %w", productID, err)
	}
	if !post.IsProduct() {
		return 0, fmt.Errorf("post %d is a %s: %w", productID, post.Type, domain.ErrNotFound)
	}

	blogID := c.posts.BlogID(blog)
	switch blog.ProductSync {
	case domain.ProductSyncNone:
		return 0, fmt.Errorf("products are not connected to %s: %w", blog.URL, domain.ErrNotFound)
	case domain.ProductSyncShared:
		return c.posts.RemoteID(ctx, productID, blogID)
	default:
		return c.products.ProductRemoteID(ctx, productID, blogID)
	}
}

// SaveProduct stores an independent product mapping.
// The mapping's BlogID must already be the store identifier.
func (c *Catalog) SaveProduct(ctx context.Context, mapping domain.CrosspostMapping) error {
	if !c.enabled {
		return domain.ErrCommerceDisabled
	}
	return c.products.SaveProductMapping(ctx, mapping)
}
