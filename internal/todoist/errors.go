package todoist

import (
	"fmt"
	"net/http"
)

// AuthenticationError is returned when the API rejects the token (HTTP 401/403).
type AuthenticationError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface
func (e *AuthenticationError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("authentication failed: %s", e.Message)
	}
	return fmt.Sprintf("authentication failed (HTTP %d)", e.StatusCode)
}

// NotFoundError is returned when the requested resource does not exist (HTTP 404).
type NotFoundError struct {
	Message string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("not found: %s", e.Message)
	}
	return "resource not found"
}

// ClientError is returned for request errors the caller must fix (other 4xx).
// A 429 additionally carries the Retry-After header value in seconds.
type ClientError struct {
	StatusCode int
	Message    string
	RetryAfter int // Seconds, only set for HTTP 429
}

// Error implements the error interface
func (e *ClientError) Error() string {
	if e.StatusCode == http.StatusTooManyRequests {
		return fmt.Sprintf("rate limited (retry after %ds): %s", e.RetryAfter, e.Message)
	}
	if e.Message != "" {
		return fmt.Sprintf("bad request (HTTP %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("bad request (HTTP %d)", e.StatusCode)
}

// IsRateLimited reports whether the error is an HTTP 429 response.
func (e *ClientError) IsRateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests
}

// ServiceError is returned for server-side failures (5xx) and request
// timeouts. These are transient; the caller may try again later. The client
// itself never retries.
type ServiceError struct {
	StatusCode int // 0 for timeouts and transport failures
	Message    string
}

// Error implements the error interface
func (e *ServiceError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("service unavailable: %s", e.Message)
	}
	if e.Message != "" {
		return fmt.Sprintf("service error (HTTP %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("service error (HTTP %d)", e.StatusCode)
}
