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

// Ensure services implement the interfaces.
var (
	_ driving.BlogService    = (*BlogService)(nil)
	_ driving.MappingService = (*MappingService)(nil)
)

// BlogService manages registered remote blogs.
type BlogService struct {
	blogStore driven.BlogStore
	mappings  driven.CrosspostMap
}

// NewBlogService creates a new blog service.
// The mapping store derives each blog's store identifier.
func NewBlogService(blogStore driven.BlogStore, mappings driven.CrosspostMap) *BlogService {
	return &BlogService{blogStore: blogStore, mappings: mappings}
}

// Add registers a blog.
func (s *BlogService) Add(ctx context.Context, blog domain.Blog) (*domain.Blog, error) {
	if err := blog.Validate(); err != nil {
		return nil, err
	}
	mode, err := domain.ParseProductSync(string(blog.ProductSync))
	if err != nil {
		return nil, err
	}
	blog.ProductSync = mode
	blog.URL = blog.BaseURL()
	blog.ID = s.mappings.BlogID(domain.Blog{URL: blog.URL})

	if err := s.blogStore.Save(ctx, blog); err != nil {
		return nil, fmt.Errorf("save blog: %w", err)
	}
	return &blog, nil
}

// Find looks a blog up by store identifier or URL.
func (s *BlogService) Find(ctx context.Context, ref string) (*domain.Blog, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, fmt.Errorf("%w: empty blog reference", domain.ErrInvalidInput)
	}

	blog, err := s.blogStore.Get(ctx, ref)
	if err == nil {
		return blog, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	if strings.Contains(ref, "://") {
		return s.blogStore.Get(ctx, s.mappings.BlogID(domain.Blog{URL: ref}))
	}
	return nil, fmt.Errorf("blog %q: %w", ref, domain.ErrNotFound)
}

// List returns all registered blogs.
func (s *BlogService) List(ctx context.Context) ([]domain.Blog, error) {
	return s.blogStore.List(ctx)
}

// Remove deletes a blog by store identifier or URL.
func (s *BlogService) Remove(ctx context.Context, ref string) error {
	blog, err := s.Find(ctx, ref)
	if err != nil {
		return err
	}
	return s.blogStore.Delete(ctx, blog.ID)
}

// MappingService records cross-post mappings.
type MappingService struct {
	mappings driven.CrosspostMap
	products driven.ProductCatalog
}

// NewMappingService creates a new mapping service.
// products may be nil when there is no commerce integration.
func NewMappingService(mappings driven.CrosspostMap, products driven.ProductCatalog) *MappingService {
	return &MappingService{mappings: mappings, products: products}
}

// Set records that localID is remoteID on the blog.
func (s *MappingService) Set(ctx context.Context, blog domain.Blog, localID, remoteID int64) error {
	m := domain.CrosspostMapping{LocalID: localID, BlogID: s.mappings.BlogID(blog), RemoteID: remoteID}
	if !m.Valid() {
		return fmt.Errorf("%w: mapping needs positive ids", domain.ErrInvalidInput)
	}
	return s.mappings.Save(ctx, m)
}

// SetProduct records a product mapping on the blog, in the post mapping
// when the blog shares it with products.
func (s *MappingService) SetProduct(ctx context.Context, blog domain.Blog, productID, remoteID int64) error {
	if s.products == nil || !s.products.Enabled() {
		return domain.ErrCommerceDisabled
	}
	m := domain.CrosspostMapping{LocalID: productID, BlogID: s.mappings.BlogID(blog), RemoteID: remoteID}
	if !m.Valid() {
		return fmt.Errorf("%w: mapping needs positive ids", domain.ErrInvalidInput)
	}

	switch blog.ProductSync {
	case domain.ProductSyncNone:
		return fmt.Errorf("%w: products are not connected to %s", domain.ErrInvalidInput, blog.URL)
	case domain.ProductSyncShared:
		return s.mappings.Save(ctx, m)
	default:
		return s.products.SaveProduct(ctx, m)
	}
}

// Get returns the remote ID for localID on the blog.
func (s *MappingService) Get(ctx context.Context, blog domain.Blog, localID int64) (int64, error) {
	return s.mappings.RemoteID(ctx, localID, s.mappings.BlogID(blog))
}

// Remove forgets the mapping for localID on the blog.
func (s *MappingService) Remove(ctx context.Context, blog domain.Blog, localID int64) error {
	return s.mappings.Delete(ctx, localID, s.mappings.BlogID(blog))
}

// List returns every mapping for the blog.
func (s *MappingService) List(ctx context.Context, blog domain.Blog) ([]domain.CrosspostMapping, error) {
	return s.mappings.List(ctx, s.mappings.BlogID(blog))
}
