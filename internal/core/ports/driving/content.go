package driving

import (
	"context"

	"github.com/custodia-labs/relsync/internal/core/domain"
)

// ContentService records the local posts, terms and taxonomies that
// relationship fields refer to.
type ContentService interface {
	// AddPost records a post and its type.
	AddPost(ctx context.Context, post domain.Post) error

	// AddTerm records a term; its taxonomy must already be registered.
	AddTerm(ctx context.Context, term domain.Term) error

	// AddTaxonomy registers a taxonomy.
	AddTaxonomy(ctx context.Context, taxonomy domain.Taxonomy) error
}
