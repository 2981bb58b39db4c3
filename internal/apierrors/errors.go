// Package apierrors provides shared error types for the Postmark client.
package apierrors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingServerToken is returned when no server token is provided.
	ErrMissingServerToken = errors.New("server token is required")

	// ErrUnauthorized is returned when the server token is invalid.
	ErrUnauthorized = errors.New("invalid or missing server token")

	// ErrNotFound is returned when the requested resource does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")
)

// Postmark error codes with a fixed meaning on the client side.
const (
	CodeInvalidToken     = 10
	CodeBounceNotFound   = 407
	CodeMessageNotFound  = 701
	CodeTemplateNotFound = 1101
)

// ValidationError is returned when the Postmark API rejects a request
// with a non-2xx status. ErrorCode and Message come from the response
// envelope when the body could be decoded.
type ValidationError struct {
	StatusCode int
	ErrorCode  int
	Message    string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("postmark: status %d, error code %d: %s", e.StatusCode, e.ErrorCode, e.Message)
	}
	return fmt.Sprintf("postmark: status %d, error code %d", e.StatusCode, e.ErrorCode)
}

// PostmarkError implements the PostmarkError marker interface.
func (e *ValidationError) PostmarkError() {}

// Is implements errors.Is for sentinel error matching.
func (e *ValidationError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.StatusCode == 401 || e.ErrorCode == CodeInvalidToken
	case ErrRateLimited:
		return e.StatusCode == 429
	case ErrNotFound:
		return e.isNotFound()
	}
	return false
}

// The service answers most missing-resource lookups with 422 and a
// resource-specific code, so the message text is the only common signal.
func (e *ValidationError) isNotFound() bool {
	if e.StatusCode == 404 {
		return true
	}
	switch e.ErrorCode {
	case CodeBounceNotFound, CodeMessageNotFound, CodeTemplateNotFound:
		return true
	}
	return e.StatusCode == 422 && strings.Contains(strings.ToLower(e.Message), "not found")
}

// TransportError represents a failure to complete the HTTP exchange:
// connection, DNS, TLS, cancellation or an unreadable response.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("postmark: %s %s: %v", e.Method, e.URL, e.Err)
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// PostmarkError implements the PostmarkError marker interface.
func (e *TransportError) PostmarkError() {}
