package domain

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// ProductSync describes how products are connected to a blog.
type ProductSync string

const (
	// ProductSyncNone means products are never cross-posted to the blog.
	ProductSyncNone ProductSync = "none"
	// ProductSyncIndependent means products have their own mapping, separate from posts.
	ProductSyncIndependent ProductSync = "independent"
	// ProductSyncShared means products share the post mapping.
	ProductSyncShared ProductSync = "shared"
)

// ParseProductSync parses a product sync mode from a string.
// An empty string yields ProductSyncIndependent.
func ParseProductSync(s string) (ProductSync, error) {
	switch ProductSync(strings.ToLower(strings.TrimSpace(s))) {
	case "", ProductSyncIndependent:
		return ProductSyncIndependent, nil
	case ProductSyncShared:
		return ProductSyncShared, nil
	case ProductSyncNone:
		return ProductSyncNone, nil
	default:
		return "", fmt.Errorf("%w: product sync %q", ErrUnsupportedType, s)
	}
}

// Blog describes a remote instance that content is cross-posted to.
// The resolver treats it as read-only.
type Blog struct {
	// ID is the store identifier used to key mapping rows.
	// It is derived from URL when empty.
	ID string

	// URL is the remote base URL, e.g. "https://shop.example.com".
	URL string

	// Login is the user for HTTP basic auth (application passwords).
	Login string

	// Password is the application password paired with Login.
	Password string

	// Token is a bearer token; it takes precedence over Login/Password.
	Token string

	// ProductSync controls product lookups for this blog.
	ProductSync ProductSync

	// CreatedAt is when the blog was registered.
	CreatedAt time.Time

	// UpdatedAt is when the blog was last updated.
	UpdatedAt time.Time
}

// BaseURL returns URL without trailing slashes.
func (b Blog) BaseURL() string {
	return strings.TrimRight(strings.TrimSpace(b.URL), "/")
}

// RESTURL returns the wp/v2 collection URL for path.
func (b Blog) RESTURL(path string) string {
	return b.BaseURL() + "/wp-json/wp/v2/" + strings.TrimLeft(path, "/")
}

// HasBasicAuth reports whether Login and Password are both set.
func (b Blog) HasBasicAuth() bool {
	return b.Login != "" && b.Password != ""
}

// Validate checks that the blog has an absolute http(s) URL.
func (b Blog) Validate() error {
	u, err := url.Parse(b.BaseURL())
	if err != nil {
		return fmt.Errorf("%w: blog url: %v", ErrInvalidInput, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: blog url must be http or https", ErrInvalidInput)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: blog url has no host", ErrInvalidInput)
	}
	return nil
}

// NormalisedURL returns the URL without scheme and trailing slashes,
// lower-cased, so http and https variants of a blog share one identity.
func (b Blog) NormalisedURL() string {
	s := strings.ToLower(b.BaseURL())
	s = strings.TrimPrefix(s, "https://")
	s = strings.TrimPrefix(s, "http://")
	return strings.TrimRight(s, "/")
}
