// Package storage holds helpers shared by the storage adapters.
package storage

import (
	"github.com/google/uuid"

	"github.com/custodia-labs/relsync/internal/core/domain"
)

// BlogID returns the store identifier for blog.
// An explicit ID wins; otherwise a name-based UUID of the normalised URL
// is used, so http/https and trailing-slash variants share mapping rows.
func BlogID(blog domain.Blog) string {
	if blog.ID != "" {
		return blog.ID
	}
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(blog.NormalisedURL())).String()
}
