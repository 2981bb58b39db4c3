// Package api provides HTTP client functionality for communicating with the
// Postmark REST API. It handles authentication, request/response
// serialization and translation of error responses.
//
// # Client Creation
//
// The package provides two ways to create a client:
//
//   - [NewClient]: Struct-based configuration for explicit, type-safe setup.
//   - [New]: Functional options pattern for flexible configuration.
//
// Both require a server token, which is sent via the X-Postmark-Server-Token
// header on every request. The base URL defaults to [DefaultBaseURL].
//
// # Retries
//
// Every method issues exactly one request. Nothing is retried; callers
// decide whether a [apierrors.TransportError] is worth another attempt.
//
// # Error Handling
//
// Any non-2xx response becomes an [apierrors.ValidationError] carrying the
// HTTP status together with the ErrorCode and Message from the response
// envelope. Sentinels can be matched with errors.Is:
//
//   - [apierrors.ErrUnauthorized]: invalid server token.
//   - [apierrors.ErrNotFound]: the resource does not exist.
//   - [apierrors.ErrRateLimited]: rate limit exceeded (429).
//
// # Thread Safety
//
// The [Client] type is safe for concurrent use. Multiple goroutines may call
// methods on a single Client simultaneously.
package api
