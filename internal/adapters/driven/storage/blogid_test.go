package storage

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/relsync/internal/core/domain"
)

func TestBlogID_ExplicitIDWins(t *testing.T) {
	assert.Equal(t, "blog-1", BlogID(domain.Blog{ID: "blog-1", URL: "https://example.com"}))
}

func TestBlogID_DerivedFromURL(t *testing.T) {
	a := BlogID(domain.Blog{URL: "https://example.com/"})
	b := BlogID(domain.Blog{URL: "http://Example.com"})
	c := BlogID(domain.Blog{URL: "https://other.example.com"})

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)

	parsed, err := uuid.Parse(a)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(5), parsed.Version())
}
