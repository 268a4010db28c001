package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/relsync/internal/adapters/driven/commerce"
	"github.com/custodia-labs/relsync/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/relsync/internal/core/domain"
)

func setupBlogService() (*BlogService, *memory.CrosspostMap) {
	mappings := memory.NewCrosspostMap()
	return NewBlogService(memory.NewBlogStore(), mappings), mappings
}

func TestBlogService_Add(t *testing.T) {
	svc, mappings := setupBlogService()

	blog, err := svc.Add(context.Background(), domain.Blog{URL: "https://shop.example/", Login: "admin"})

	require.NoError(t, err)
	assert.Equal(t, "https://shop.example", blog.URL)
	assert.Equal(t, domain.ProductSyncIndependent, blog.ProductSync)
	assert.Equal(t, mappings.BlogID(domain.Blog{URL: "https://shop.example"}), blog.ID)
}

func TestBlogService_AddInvalid(t *testing.T) {
	svc, _ := setupBlogService()
	ctx := context.Background()

	_, err := svc.Add(ctx, domain.Blog{URL: "shop.example"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Add(ctx, domain.Blog{URL: "https://shop.example", ProductSync: "sometimes"})
	assert.ErrorIs(t, err, domain.ErrUnsupportedType)
}

func TestBlogService_Find(t *testing.T) {
	svc, _ := setupBlogService()
	ctx := context.Background()
	added, err := svc.Add(ctx, domain.Blog{URL: "https://shop.example"})
	require.NoError(t, err)

	byID, err := svc.Find(ctx, added.ID)
	require.NoError(t, err)
	assert.Equal(t, added.URL, byID.URL)

	byURL, err := svc.Find(ctx, "http://SHOP.example/")
	require.NoError(t, err)
	assert.Equal(t, added.ID, byURL.ID)

	_, err = svc.Find(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = svc.Find(ctx, " ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestBlogService_ListAndRemove(t *testing.T) {
	svc, _ := setupBlogService()
	ctx := context.Background()
	_, err := svc.Add(ctx, domain.Blog{URL: "https://b.example"})
	require.NoError(t, err)
	_, err = svc.Add(ctx, domain.Blog{URL: "https://a.example"})
	require.NoError(t, err)

	require.NoError(t, svc.Remove(ctx, "https://a.example"))

	blogs, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, blogs, 1)
	assert.Equal(t, "https://b.example", blogs[0].URL)
	assert.ErrorIs(t, svc.Remove(ctx, "https://a.example"), domain.ErrNotFound)
}

func TestMappingService_SetGetRemove(t *testing.T) {
	mappings := memory.NewCrosspostMap()
	svc := NewMappingService(mappings, nil)
	ctx := context.Background()
	blog := domain.Blog{URL: "https://shop.example"}

	require.NoError(t, svc.Set(ctx, blog, 5, 105))

	id, err := svc.Get(ctx, blog, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(105), id)

	list, err := svc.List(ctx, blog)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, svc.Remove(ctx, blog, 5))
	_, err = svc.Get(ctx, blog, 5)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, svc.Set(ctx, blog, 0, 105), domain.ErrInvalidInput)
}

func TestMappingService_SetProduct(t *testing.T) {
	ctx := context.Background()
	content := memory.NewContentStore()
	require.NoError(t, content.SavePost(ctx, domain.Post{ID: 10, Type: domain.PostTypeProduct}))
	mappings := memory.NewCrosspostMap()
	catalog := commerce.NewCatalog(true, content, mappings, mappings)
	svc := NewMappingService(mappings, catalog)

	independent := domain.Blog{URL: "https://a.example", ProductSync: domain.ProductSyncIndependent}
	shared := domain.Blog{URL: "https://b.example", ProductSync: domain.ProductSyncShared}
	none := domain.Blog{URL: "https://c.example", ProductSync: domain.ProductSyncNone}

	require.NoError(t, svc.SetProduct(ctx, independent, 10, 210))
	require.NoError(t, svc.SetProduct(ctx, shared, 10, 310))
	assert.ErrorIs(t, svc.SetProduct(ctx, none, 10, 410), domain.ErrInvalidInput)

	id, err := catalog.CrosspostedProduct(ctx, 10, independent)
	require.NoError(t, err)
	assert.Equal(t, int64(210), id)

	id, err = catalog.CrosspostedProduct(ctx, 10, shared)
	require.NoError(t, err)
	assert.Equal(t, int64(310), id)
}

func TestMappingService_SetProductCommerceDisabled(t *testing.T) {
	mappings := memory.NewCrosspostMap()
	blog := domain.Blog{URL: "https://shop.example"}

	err := NewMappingService(mappings, nil).SetProduct(context.Background(), blog, 10, 210)
	assert.ErrorIs(t, err, domain.ErrCommerceDisabled)

	disabled := commerce.NewCatalog(false, memory.NewContentStore(), mappings, mappings)
	err = NewMappingService(mappings, disabled).SetProduct(context.Background(), blog, 10, 210)
	assert.ErrorIs(t, err, domain.ErrCommerceDisabled)
}
