package driven

import (
	"context"

	"github.com/custodia-labs/relsync/internal/core/domain"
)

// BlogStore persists registered remote blogs.
type BlogStore interface {
	// Save stores or updates a blog.
	Save(ctx context.Context, blog domain.Blog) error

	// Get retrieves a blog by store identifier.
	Get(ctx context.Context, id string) (*domain.Blog, error)

	// Delete removes a blog.
	Delete(ctx context.Context, id string) error

	// List returns all registered blogs.
	List(ctx context.Context) ([]domain.Blog, error)
}
