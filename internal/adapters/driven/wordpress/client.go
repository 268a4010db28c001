package wordpress

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"golang.org/x/oauth2"

	"github.com/custodia-labs/relsync/internal/core/domain"
	"github.com/custodia-labs/relsync/internal/core/ports/driven"
	"github.com/custodia-labs/relsync/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.TermSearcher = (*Client)(nil)

var log = logger.Named("wordpress")

const (
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 5 * time.Second

	// TermsPerPage is the page size of a slug lookup; one page is fetched.
	TermsPerPage = 50

	// statusTextOK is the reason phrase a successful lookup must carry.
	statusTextOK = "OK"

	// maxBodySize caps how much of a response is read.
	maxBodySize = 4 << 20
)

// Config holds configuration for the REST client.
type Config struct {
	// Timeout is the request timeout (default: 5s).
	Timeout time.Duration

	// RateLimit paces requests (default: DefaultRateLimit).
	RateLimit RateLimitConfig

	// HTTPClient overrides the base client. Its Timeout is replaced by Timeout.
	HTTPClient *http.Client
}

// Client queries remote blogs over the WordPress REST API.
type Client struct {
	base    *http.Client
	limiter *RateLimiter
}

// NewClient creates a new REST client.
func NewClient(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	base := &http.Client{}
	if cfg.HTTPClient != nil {
		clone := *cfg.HTTPClient
		base = &clone
	}
	base.Timeout = cfg.Timeout

	return &Client{
		base:    base,
		limiter: NewRateLimiter(cfg.RateLimit),
	}
}

// SearchTermsBySlug looks all slugs up in one request against the
// taxonomy collection restBase and returns remote term IDs in response order.
func (c *Client) SearchTermsBySlug(
	ctx context.Context, blog domain.Blog, restBase string, slugs []string,
) ([]int64, error) {
	if len(slugs) == 0 {
		return []int64{}, nil
	}

	// The timeout covers the limiter wait as well as the request.
	ctx, cancel := context.WithTimeout(ctx, c.base.Timeout)
	defer cancel()

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	endpoint := TermsURL(blog, restBase, slugs)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if blog.Token == "" && blog.HasBasicAuth() {
		req.SetBasicAuth(blog.Login, blog.Password)
	}

	log.Debug("GET %s", endpoint)
	resp, err := c.httpClient(ctx, blog).Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRemoteUnavailable, err)
	}
	defer resp.Body.Close()

	if reasonPhrase(resp) != statusTextOK {
		apiErr := &APIError{StatusCode: resp.StatusCode, Status: resp.Status, URL: endpoint}
		switch {
		case IsUnauthorized(apiErr):
			log.Debug("%s rejected the credentials (%s)", blog.URL, resp.Status)
		case IsNotFound(apiErr):
			log.Debug("%s has no collection %q", blog.URL, restBase)
		case IsRateLimited(apiErr):
			log.Debug("%s throttled the lookup; not retried", blog.URL)
		}
		return nil, apiErr
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	return ParseTermIDs(body)
}

// httpClient returns the client for blog, wrapping the base transport
// with a bearer token when the blog has one.
func (c *Client) httpClient(ctx context.Context, blog domain.Blog) *http.Client {
	if blog.Token == "" {
		return c.base
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.base)
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: blog.Token})
	tc := oauth2.NewClient(ctx, ts)
	tc.Timeout = c.base.Timeout
	return tc
}

// TermsURL builds the slug lookup URL for a taxonomy collection.
func TermsURL(blog domain.Blog, restBase string, slugs []string) string {
	q := url.Values{}
	q.Set("slug", strings.Join(slugs, ","))
	q.Set("hide_empty", "0")
	q.Set("per_page", strconv.Itoa(TermsPerPage))
	return blog.RESTURL(restBase) + "?" + q.Encode()
}

// ParseTermIDs extracts term IDs from a terms collection body.
// Elements without a positive id are skipped. An empty body or empty
// array yields no IDs; anything other than a JSON array is an error.
func ParseTermIDs(body []byte) ([]int64, error) {
	ids := make([]int64, 0)
	if len(strings.TrimSpace(string(body))) == 0 {
		return ids, nil
	}
	if !gjson.ValidBytes(body) {
		return ids, fmt.Errorf("%w: invalid JSON", ErrUnexpectedBody)
	}

	result := gjson.ParseBytes(body)
	if !result.IsArray() {
		return ids, fmt.Errorf("%w: expected an array, got %s", ErrUnexpectedBody, result.Type)
	}

	result.ForEach(func(_, term gjson.Result) bool {
		if id := term.Get("id"); id.Exists() && id.Int() > 0 {
			ids = append(ids, id.Int())
		}
		return true
	})
	return ids, nil
}

// reasonPhrase returns the text after the status code, e.g. "OK".
func reasonPhrase(resp *http.Response) string {
	return strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
}
