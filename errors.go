package postmark

import (
	"github.com/postmark-go/client-go/internal/apierrors"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingServerToken is returned by New when no server token is provided.
	ErrMissingServerToken = apierrors.ErrMissingServerToken

	// ErrUnauthorized is matched by errors returned for an invalid server token.
	ErrUnauthorized = apierrors.ErrUnauthorized

	// ErrNotFound is matched by errors returned when the requested resource
	// does not exist, including webhook configurations that were deleted.
	ErrNotFound = apierrors.ErrNotFound

	// ErrRateLimited is matched by errors returned when the API rate limit is exceeded.
	ErrRateLimited = apierrors.ErrRateLimited
)

// PostmarkError is implemented by the typed errors returned from API calls.
type PostmarkError interface {
	error
	PostmarkError() // marker method
}

// ValidationError is returned when the Postmark API rejects a request,
// that is for every response outside the 2xx range. It carries the HTTP
// status and the ErrorCode and Message reported by the service.
type ValidationError = apierrors.ValidationError

// TransportError is returned when a request could not be completed:
// connection, DNS or TLS failures, timeouts and context cancellation.
// The cause is available through errors.Unwrap.
type TransportError = apierrors.TransportError

var (
	_ PostmarkError = (*ValidationError)(nil)
	_ PostmarkError = (*TransportError)(nil)
)
