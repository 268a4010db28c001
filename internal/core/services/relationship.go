package services

import (
	"context"
	"errors"

	"github.com/custodia-labs/relsync/internal/core/domain"
	"github.com/custodia-labs/relsync/internal/core/ports/driven"
	"github.com/custodia-labs/relsync/internal/core/ports/driving"
	"github.com/custodia-labs/relsync/internal/logger"
	"github.com/custodia-labs/relsync/internal/metavalue"
)

// Ensure RelationshipService implements the interface.
var _ driving.RelationshipResolver = (*RelationshipService)(nil)

var log = logger.Named("resolver")

// RelationshipService resolves relationship field values for a target blog.
type RelationshipService struct {
	classifier *FieldClassifier
	mappings   driven.CrosspostMap
	content    driven.ContentStore
	remote     driven.TermSearcher
	products   driven.ProductCatalog
}

// NewRelationshipService creates a resolver.
// products may be nil when there is no commerce integration.
func NewRelationshipService(
	fields driven.FieldRegistry,
	mappings driven.CrosspostMap,
	content driven.ContentStore,
	remote driven.TermSearcher,
	products driven.ProductCatalog,
) *RelationshipService {
	return &RelationshipService{
		classifier: NewFieldClassifier(fields),
		mappings:   mappings,
		content:    content,
		remote:     remote,
		products:   products,
	}
}

// ProcessMeta is the pre-crosspost filter for post meta and term meta.
// objectID is the object the field belongs to; resolution does not depend on it.
func (s *RelationshipService) ProcessMeta(
	ctx context.Context, raw any, key string, objectID int64, blog domain.Blog,
) any {
	var res domain.Resolution
	switch kind := s.classifier.Classify(key); kind {
	case domain.FieldKindPost:
		res = s.ResolvePosts(ctx, raw, blog)
	case domain.FieldKindTerm:
		res = s.ResolveTerms(ctx, raw, blog)
	default:
		return raw
	}

	if res.IsUnresolved() {
		log.Debug("field %q on object %d: no relation on %s", key, objectID, blog.URL)
	}
	return res.Value()
}

// ResolvePosts maps each referenced local post to its remote ID.
// References without a mapping are dropped; order is preserved.
func (s *RelationshipService) ResolvePosts(ctx context.Context, raw any, blog domain.Blog) domain.Resolution {
	in := metavalue.Parse(raw)

	// Capability is fixed for the whole call.
	products := s.productCatalog()

	var blogID string
	if s.mappings != nil {
		blogID = s.mappings.BlogID(blog)
	}

	resolved := make([]int64, 0, len(in.Items))
	for _, id := range in.IDs() {
		remoteID, ok := s.resolvePost(ctx, id, blog, blogID, products)
		if !ok {
			log.Debug("post %d: not cross-posted to %s", id, blog.URL)
			continue
		}
		resolved = append(resolved, remoteID)
	}

	return domain.NewResolution(in, resolved)
}

func (s *RelationshipService) resolvePost(
	ctx context.Context, id int64, blog domain.Blog, blogID string, products driven.ProductCatalog,
) (int64, bool) {
	if products != nil && s.isProduct(ctx, id) {
		remoteID, err := products.CrosspostedProduct(ctx, id, blog)
		return remoteID, err == nil && remoteID > 0
	}

	if s.mappings == nil {
		return 0, false
	}
	remoteID, err := s.mappings.RemoteID(ctx, id, blogID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		log.Debug("post %d: mapping lookup: %v", id, err)
	}
	return remoteID, err == nil && remoteID > 0
}

func (s *RelationshipService) isProduct(ctx context.Context, id int64) bool {
	if s.content == nil {
		return false
	}
	post, err := s.content.Post(ctx, id)
	if err != nil || post == nil {
		return false
	}
	return post.IsProduct()
}

func (s *RelationshipService) productCatalog() driven.ProductCatalog {
	if s.products == nil || !s.products.Enabled() {
		return nil
	}
	return s.products
}

// ResolveTerms maps referenced local terms to remote terms by slug.
//
// The taxonomy of the first term found is used for the whole batch, so
// a field mixing taxonomies queries the wrong collection for the
// later terms. That behaviour is kept as is.
//
// Remote IDs come back in the order the remote returned them, which
// need not match the input order.
func (s *RelationshipService) ResolveTerms(ctx context.Context, raw any, blog domain.Blog) domain.Resolution {
	in := metavalue.Parse(raw)
	if s.content == nil {
		return domain.Unresolved(in)
	}

	var taxonomy string
	slugs := make([]string, 0, len(in.Items))
	for _, id := range in.IDs() {
		term, err := s.content.Term(ctx, id)
		if err != nil || term == nil {
			continue
		}
		if taxonomy == "" {
			taxonomy = term.Taxonomy
		}
		slugs = append(slugs, term.Slug)
	}

	if len(slugs) == 0 {
		return domain.Unresolved(in)
	}

	tax, err := s.content.Taxonomy(ctx, taxonomy)
	if err != nil || tax == nil {
		log.Debug("taxonomy %q: %v", taxonomy, err)
		return domain.Unresolved(in)
	}

	if s.remote == nil {
		return domain.NewResolution(in, nil)
	}

	ids, err := s.remote.SearchTermsBySlug(ctx, blog, tax.CollectionPath(), slugs)
	if err != nil {
		log.Debug("term search on %s failed: %v", blog.URL, err)
		ids = nil
	}

	return domain.NewResolution(in, ids)
}
