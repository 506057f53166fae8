// Package errors provides the error types used throughout the Gatewayz Go SDK.
//
// # Error Types
//
//   - APIError: a failed request, carrying the HTTP status (0 for
//     connectivity failures, 408 for timeouts), the server message and an
//     optional server error code
//   - ValidationError: an input rejected before any request was sent
//
// Every APIError belongs to exactly one Kind:
//
//	Kind          Status     Retried
//	Network       0          yes
//	Timeout       408        only when the client timed out
//	RateLimit     429        yes
//	Server        >= 500     yes
//	Auth          401        no
//	Client        other 4xx  no
//
// # Error Handling
//
//	if apiErr, ok := errors.AsAPIError(err); ok {
//	    fmt.Printf("API error %d: %s", apiErr.StatusCode, apiErr.Message)
//	}
//
//	if errors.IsAuthError(err) {
//	    // credential expired, prompt for a new one
//	}
//
// Sentinel values match on status code only:
//
//	if stdErrors.Is(err, errors.ErrRateLimited) {
//	    // back off
//	}
package errors
