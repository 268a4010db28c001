package driving

import (
	"context"

	"github.com/custodia-labs/relsync/internal/core/domain"
)

// RelationshipResolver rewrites relationship field values for a target blog.
type RelationshipResolver interface {
	// ProcessMeta is the pre-crosspost filter for post meta and term meta.
	// It returns raw unchanged when key is not a relationship field.
	// It never fails; unresolvable references are dropped or become
	// domain.NoRelation.
	ProcessMeta(ctx context.Context, raw any, key string, objectID int64, blog domain.Blog) any

	// ResolvePosts maps local post IDs in raw to remote post IDs.
	ResolvePosts(ctx context.Context, raw any, blog domain.Blog) domain.Resolution

	// ResolveTerms maps local term IDs in raw to remote term IDs.
	ResolveTerms(ctx context.Context, raw any, blog domain.Blog) domain.Resolution
}

// FieldClassifier decides how a custom field participates in resolution.
type FieldClassifier interface {
	// Classify returns the kind of relationship field name is.
	Classify(name string) domain.FieldKind
}
