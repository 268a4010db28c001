package driving

import (
	"context"

	"github.com/custodia-labs/relsync/internal/core/domain"
)

// BlogService manages remote blogs and their cross-post mappings.
type BlogService interface {
	// Add registers a blog. The store identifier is derived from the URL.
	Add(ctx context.Context, blog domain.Blog) (*domain.Blog, error)

	// Find looks a blog up by store identifier or URL.
	Find(ctx context.Context, ref string) (*domain.Blog, error)

	// List returns all registered blogs.
	List(ctx context.Context) ([]domain.Blog, error)

	// Remove deletes a blog by store identifier or URL.
	Remove(ctx context.Context, ref string) error
}

// MappingService records and inspects cross-post mappings.
type MappingService interface {
	// Set records that localID is remoteID on the blog.
	Set(ctx context.Context, blog domain.Blog, localID, remoteID int64) error

	// SetProduct records a product mapping on the blog.
	SetProduct(ctx context.Context, blog domain.Blog, productID, remoteID int64) error

	// Get returns the remote ID for localID on the blog.
	Get(ctx context.Context, blog domain.Blog, localID int64) (int64, error)

	// Remove forgets the mapping for localID on the blog.
	Remove(ctx context.Context, blog domain.Blog, localID int64) error

	// List returns every mapping for the blog.
	List(ctx context.Context, blog domain.Blog) ([]domain.CrosspostMapping, error)
}
