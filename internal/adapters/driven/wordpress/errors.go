package wordpress

import (
	"errors"
	"fmt"
	"net/http"
)

// WordPress-specific errors.
var (
	// ErrUnexpectedBody indicates the response body was not a JSON array.
	ErrUnexpectedBody = errors.New("wordpress: unexpected response body")
)

// APIError represents a response whose status was not OK.
type APIError struct {
	StatusCode int
	Status     string
	URL        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("wordpress: API error %s (URL: %s)", e.Status, e.URL)
}

// IsNotFound checks if the error indicates the collection was not found.
func IsNotFound(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound
	}
	return false
}

// IsUnauthorized checks if the error indicates an authentication failure.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden
	}
	return false
}

// IsRateLimited checks if the error indicates the remote throttled us.
func IsRateLimited(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusTooManyRequests
	}
	return false
}
