package driven

import (
	"context"

	"github.com/custodia-labs/relsync/internal/core/domain"
)

// ContentStore exposes the local records the resolver needs to route references.
type ContentStore interface {
	// Post retrieves a post by ID.
	// Returns domain.ErrNotFound if it does not exist.
	Post(ctx context.Context, id int64) (*domain.Post, error)

	// Term retrieves a term by ID.
	// Returns domain.ErrNotFound if it does not exist.
	Term(ctx context.Context, id int64) (*domain.Term, error)

	// Taxonomy retrieves a taxonomy by name.
	// Returns domain.ErrNotFound if it is not registered.
	Taxonomy(ctx context.Context, name string) (*domain.Taxonomy, error)

	// SavePost stores or updates a post.
	SavePost(ctx context.Context, post domain.Post) error

	// SaveTerm stores or updates a term.
	SaveTerm(ctx context.Context, term domain.Term) error

	// SaveTaxonomy stores or updates a taxonomy.
	SaveTaxonomy(ctx context.Context, taxonomy domain.Taxonomy) error
}
