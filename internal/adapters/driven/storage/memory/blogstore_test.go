package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/relsync/internal/core/domain"
)

func TestBlogStore_CRUD(t *testing.T) {
	s := NewBlogStore()
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, domain.Blog{ID: "b", URL: "https://b.example"}))
	require.NoError(t, s.Save(ctx, domain.Blog{ID: "a", URL: "https://a.example"}))

	blog, err := s.Get(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, "https://b.example", blog.URL)

	blogs, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, blogs, 2)
	assert.Equal(t, "a", blogs[0].ID)

	require.NoError(t, s.Delete(ctx, "a"))
	_, err = s.Get(ctx, "a")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
