package wordpress

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPIError_Error(t *testing.T) {
	err := &APIError{StatusCode: 500, Status: "500 Internal Server Error", URL: "https://x/wp-json/wp/v2/tags"}

	assert.Contains(t, err.Error(), "500 Internal Server Error")
	assert.Contains(t, err.Error(), "https://x/wp-json/wp/v2/tags")
}

func TestErrorHelpers(t *testing.T) {
	notFound := fmt.Errorf("lookup: %w", &APIError{StatusCode: http.StatusNotFound})
	unauthorized := &APIError{StatusCode: http.StatusUnauthorized}
	forbidden := &APIError{StatusCode: http.StatusForbidden}
	throttled := &APIError{StatusCode: http.StatusTooManyRequests}
	plain := errors.New("boom")

	assert.True(t, IsNotFound(notFound))
	assert.False(t, IsNotFound(plain))
	assert.True(t, IsUnauthorized(unauthorized))
	assert.True(t, IsUnauthorized(forbidden))
	assert.False(t, IsUnauthorized(notFound))
	assert.True(t, IsRateLimited(throttled))
	assert.False(t, IsRateLimited(plain))
}
