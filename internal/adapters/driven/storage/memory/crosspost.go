package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/relsync/internal/adapters/driven/storage"
	"github.com/custodia-labs/relsync/internal/core/domain"
	"github.com/custodia-labs/relsync/internal/core/ports/driven"
)

// Ensure CrosspostMap implements the interfaces.
var (
	_ driven.CrosspostMap        = (*CrosspostMap)(nil)
	_ driven.ProductMappingStore = (*CrosspostMap)(nil)
)

type mappingKey struct {
	localID int64
	blogID  string
}

// CrosspostMap is an in-memory implementation of driven.CrosspostMap.
// It also keeps independent product mappings.
type CrosspostMap struct {
	mu       sync.RWMutex
	posts    map[mappingKey]int64
	products map[mappingKey]int64
}

// NewCrosspostMap creates a new in-memory mapping store.
func NewCrosspostMap() *CrosspostMap {
	return &CrosspostMap{
		posts:    make(map[mappingKey]int64),
		products: make(map[mappingKey]int64),
	}
}

// BlogID derives the store identifier for blog.
func (m *CrosspostMap) BlogID(blog domain.Blog) string {
	return storage.BlogID(blog)
}

// RemoteID returns the remote post ID for localID on the blog.
func (m *CrosspostMap) RemoteID(_ context.Context, localID int64, blogID string) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	id, ok := m.posts[mappingKey{localID, blogID}]
	if !ok {
		return 0, domain.ErrNotFound
	}
	return id, nil
}

// Save stores or updates a mapping.
func (m *CrosspostMap) Save(_ context.Context, mapping domain.CrosspostMapping) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.posts[mappingKey{mapping.LocalID, mapping.BlogID}] = mapping.RemoteID
	return nil
}

// Delete removes a mapping.
func (m *CrosspostMap) Delete(_ context.Context, localID int64, blogID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.posts, mappingKey{localID, blogID})
	return nil
}

// List returns all mappings for a blog ordered by local ID.
func (m *CrosspostMap) List(_ context.Context, blogID string) ([]domain.CrosspostMapping, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]domain.CrosspostMapping, 0)
	for k, remoteID := range m.posts {
		if k.blogID == blogID {
			result = append(result, domain.CrosspostMapping{LocalID: k.localID, BlogID: k.blogID, RemoteID: remoteID})
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].LocalID < result[j].LocalID })
	return result, nil
}

// ProductRemoteID returns the independent product mapping for productID.
func (m *CrosspostMap) ProductRemoteID(_ context.Context, productID int64, blogID string) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	id, ok := m.products[mappingKey{productID, blogID}]
	if !ok {
		return 0, domain.ErrNotFound
	}
	return id, nil
}

// SaveProductMapping stores an independent product mapping.
func (m *CrosspostMap) SaveProductMapping(_ context.Context, mapping domain.CrosspostMapping) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.products[mappingKey{mapping.LocalID, mapping.BlogID}] = mapping.RemoteID
	return nil
}
