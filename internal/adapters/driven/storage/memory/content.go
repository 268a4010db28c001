package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/relsync/internal/core/domain"
	"github.com/custodia-labs/relsync/internal/core/ports/driven"
)

// Ensure ContentStore implements the interface.
var _ driven.ContentStore = (*ContentStore)(nil)

// ContentStore is an in-memory implementation of driven.ContentStore.
type ContentStore struct {
	mu         sync.RWMutex
	posts      map[int64]domain.Post
	terms      map[int64]domain.Term
	taxonomies map[string]domain.Taxonomy
}

// NewContentStore creates a new in-memory content store.
func NewContentStore() *ContentStore {
	return &ContentStore{
		posts:      make(map[int64]domain.Post),
		terms:      make(map[int64]domain.Term),
		taxonomies: make(map[string]domain.Taxonomy),
	}
}

// Post retrieves a post by ID.
func (s *ContentStore) Post(_ context.Context, id int64) (*domain.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	post, ok := s.posts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &post, nil
}

// Term retrieves a term by ID.
func (s *ContentStore) Term(_ context.Context, id int64) (*domain.Term, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	term, ok := s.terms[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &term, nil
}

// Taxonomy retrieves a taxonomy by name.
func (s *ContentStore) Taxonomy(_ context.Context, name string) (*domain.Taxonomy, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tax, ok := s.taxonomies[name]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &tax, nil
}

// SavePost stores or updates a post.
func (s *ContentStore) SavePost(_ context.Context, post domain.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts[post.ID] = post
	return nil
}

// SaveTerm stores or updates a term.
func (s *ContentStore) SaveTerm(_ context.Context, term domain.Term) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.terms[term.ID] = term
	return nil
}

// SaveTaxonomy stores or updates a taxonomy.
func (s *ContentStore) SaveTaxonomy(_ context.Context, taxonomy domain.Taxonomy) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.taxonomies[taxonomy.Name] = taxonomy
	return nil
}
