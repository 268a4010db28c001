package driven

import (
	"context"

	"github.com/custodia-labs/relsync/internal/core/domain"
)

// TermSearcher looks up terms on a remote blog.
type TermSearcher interface {
	// SearchTermsBySlug issues a single request for all slugs against the
	// taxonomy collection restBase and returns the remote term IDs in the
	// order the remote returned them.
	SearchTermsBySlug(ctx context.Context, blog domain.Blog, restBase string, slugs []string) ([]int64, error)
}
