package driven

import (
	"context"

	"github.com/custodia-labs/relsync/internal/core/domain"
)

// CrosspostMap is the local record of which posts were cross-posted where.
// The resolver only reads it.
type CrosspostMap interface {
	// BlogID derives the store identifier that keys mapping rows for blog.
	BlogID(blog domain.Blog) string

	// RemoteID returns the remote post ID for localID on the blog.
	// Returns domain.ErrNotFound when the post has not been cross-posted.
	RemoteID(ctx context.Context, localID int64, blogID string) (int64, error)

	// Save stores or updates a mapping.
	Save(ctx context.Context, mapping domain.CrosspostMapping) error

	// Delete removes a mapping.
	Delete(ctx context.Context, localID int64, blogID string) error

	// List returns all mappings for a blog ordered by local ID.
	List(ctx context.Context, blogID string) ([]domain.CrosspostMapping, error)
}

// ProductCatalog answers product cross-post questions.
// It is optional; a nil catalogue or one that is not Enabled means
// every referenced object is treated as a plain post.
type ProductCatalog interface {
	// Enabled reports whether the commerce integration is active.
	Enabled() bool

	// CrosspostedProduct returns the remote ID of productID on blog.
	// It decides whether the product is connected to the blog at all.
	// Returns domain.ErrNotFound when it is not cross-posted.
	CrosspostedProduct(ctx context.Context, productID int64, blog domain.Blog) (int64, error)

	// SaveProduct stores a product mapping for catalogues that keep their own.
	SaveProduct(ctx context.Context, mapping domain.CrosspostMapping) error
}

// ProductMappingStore keeps product mappings for blogs whose products are
// connected independently of posts.
type ProductMappingStore interface {
	// ProductRemoteID returns the remote product ID for productID on the blog.
	// Returns domain.ErrNotFound when there is no mapping.
	ProductRemoteID(ctx context.Context, productID int64, blogID string) (int64, error)

	// SaveProductMapping stores or updates a product mapping.
	SaveProductMapping(ctx context.Context, mapping domain.CrosspostMapping) error
}
