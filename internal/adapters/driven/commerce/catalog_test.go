package commerce

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/relsync/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/relsync/internal/core/domain"
)

func setupCatalog(t *testing.T, enabled bool) (*Catalog, *memory.CrosspostMap) {
	t.Helper()
	ctx := context.Background()

	content := memory.NewContentStore()
	require.NoError(t, content.SavePost(ctx, domain.Post{ID: 10, Type: domain.PostTypeProduct}))
	require.NoError(t, content.SavePost(ctx, domain.Post{ID: 11, Type: "post"}))

	mappings := memory.NewCrosspostMap()
	return NewCatalog(enabled, content, mappings, mappings), mappings
}

func TestCatalog_Disabled(t *testing.T) {
	catalog, _ := setupCatalog(t, false)

	assert.False(t, catalog.Enabled())

	_, err := catalog.CrosspostedProduct(context.Background(), 10, domain.Blog{URL: "https://shop.example"})
	assert.ErrorIs(t, err, domain.ErrCommerceDisabled)

	err = catalog.SaveProduct(context.Background(), domain.CrosspostMapping{LocalID: 10, BlogID: "b", RemoteID: 1})
	assert.ErrorIs(t, err, domain.ErrCommerceDisabled)
}

func TestCatalog_Independent(t *testing.T) {
	catalog, mappings := setupCatalog(t, true)
	ctx := context.Background()
	blog := domain.Blog{URL: "https://shop.example", ProductSync: domain.ProductSyncIndependent}
	blogID := mappings.BlogID(blog)

	require.NoError(t, catalog.SaveProduct(ctx, domain.CrosspostMapping{LocalID: 10, BlogID: blogID, RemoteID: 210}))
	// A post mapping for the same ID is not consulted.
	require.NoError(t, mappings.Save(ctx, domain.CrosspostMapping{LocalID: 10, BlogID: blogID, RemoteID: 999}))

	id, err := catalog.CrosspostedProduct(ctx, 10, blog)

	require.NoError(t, err)
	assert.Equal(t, int64(210), id)
}

func TestCatalog_Shared(t *testing.T) {
	catalog, mappings := setupCatalog(t, true)
	ctx := context.Background()
	blog := domain.Blog{URL: "https://shop.example", ProductSync: domain.ProductSyncShared}
	require.NoError(t, mappings.Save(ctx, domain.CrosspostMapping{LocalID: 10, BlogID: mappings.BlogID(blog), RemoteID: 310}))

	id, err := catalog.CrosspostedProduct(ctx, 10, blog)

	require.NoError(t, err)
	assert.Equal(t, int64(310), id)
}

func TestCatalog_None(t *testing.T) {
	catalog, mappings := setupCatalog(t, true)
	ctx := context.Background()
	blog := domain.Blog{URL: "https://shop.example", ProductSync: domain.ProductSyncNone}
	require.NoError(t, mappings.Save(ctx, domain.CrosspostMapping{LocalID: 10, BlogID: mappings.BlogID(blog), RemoteID: 310}))
	require.NoError(t, mappings.SaveProductMapping(ctx, domain.CrosspostMapping{LocalID: 10, BlogID: mappings.BlogID(blog), RemoteID: 210}))

	_, err := catalog.CrosspostedProduct(ctx, 10, blog)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCatalog_NotAProduct(t *testing.T) {
	catalog, _ := setupCatalog(t, true)

	_, err := catalog.CrosspostedProduct(context.Background(), 11, domain.Blog{URL: "https://shop.example"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = catalog.CrosspostedProduct(context.Background(), 12, domain.Blog{URL: "https://shop.example"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
