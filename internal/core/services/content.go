package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/custodia-labs/relsync/internal/core/domain"
	"github.com/custodia-labs/relsync/internal/core/ports/driven"
	"github.com/custodia-labs/relsync/internal/core/ports/driving"
)

// Ensure ContentService implements the interface.
var _ driving.ContentService = (*ContentService)(nil)

// ContentService validates and stores local content records.
type ContentService struct {
	store driven.ContentStore
}

// NewContentService creates a new content service.
func NewContentService(store driven.ContentStore) *ContentService {
	return &ContentService{store: store}
}

// AddPost records a post and its type.
func (s *ContentService) AddPost(ctx context.Context, post domain.Post) error {
	post.Type = strings.TrimSpace(post.Type)
	if post.ID <= 0 || post.Type == "" {
		return fmt.Errorf("%w: post needs an id and a type", domain.ErrInvalidInput)
	}
	return s.store.SavePost(ctx, post)
}

// AddTerm records a term; its taxonomy must already be registered.
func (s *ContentService) AddTerm(ctx context.Context, term domain.Term) error {
	term.Slug = strings.TrimSpace(term.Slug)
	if term.ID <= 0 || term.Slug == "" || term.Taxonomy == "" {
		return fmt.Errorf("%w: term needs an id, a taxonomy and a slug", domain.ErrInvalidInput)
	}
	if _, err := s.store.Taxonomy(ctx, term.Taxonomy); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("taxonomy %q: %w", term.Taxonomy, domain.ErrNotFound)
		}
		return err
	}
	return s.store.SaveTerm(ctx, term)
}

// AddTaxonomy registers a taxonomy.
func (s *ContentService) AddTaxonomy(ctx context.Context, taxonomy domain.Taxonomy) error {
	taxonomy.Name = strings.TrimSpace(taxonomy.Name)
	taxonomy.RESTBase = strings.Trim(strings.TrimSpace(taxonomy.RESTBase), "/")
	if taxonomy.Name == "" {
		return fmt.Errorf("%w: taxonomy needs a name", domain.ErrInvalidInput)
	}
	return s.store.SaveTaxonomy(ctx, taxonomy)
}
