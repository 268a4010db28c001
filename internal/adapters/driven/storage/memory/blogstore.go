package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/relsync/internal/core/domain"
	"github.com/custodia-labs/relsync/internal/core/ports/driven"
)

// Ensure BlogStore implements the interface.
var _ driven.BlogStore = (*BlogStore)(nil)

// BlogStore is an in-memory implementation of driven.BlogStore.
type BlogStore struct {
	mu    sync.RWMutex
	blogs map[string]domain.Blog
}

// NewBlogStore creates a new in-memory blog store.
func NewBlogStore() *BlogStore {
	return &BlogStore{
		blogs: make(map[string]domain.Blog),
	}
}

// Save stores or updates a blog.
func (s *BlogStore) Save(_ context.Context, blog domain.Blog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blogs[blog.ID] = blog
	return nil
}

// Get retrieves a blog by store identifier.
func (s *BlogStore) Get(_ context.Context, id string) (*domain.Blog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	blog, ok := s.blogs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &blog, nil
}

// Delete removes a blog.
func (s *BlogStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.blogs, id)
	return nil
}

// List returns all registered blogs ordered by URL.
func (s *BlogStore) List(_ context.Context) ([]domain.Blog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Blog, 0, len(s.blogs))
	for _, blog := range s.blogs {
		result = append(result, blog)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].URL < result[j].URL })
	return result, nil
}
