package gatewayz

import (
	pkgerrors "github.com/gatewayz/gatewayz-go/pkg/errors"
)

// Error types re-exported from pkg/errors.
type (
	// APIError represents a failed API request.
	APIError = pkgerrors.APIError
	// ValidationError represents an input rejected before sending.
	ValidationError = pkgerrors.ValidationError
	// ErrorCode categorizes errors for logging.
	ErrorCode = pkgerrors.ErrorCode
	// Kind is the coarse failure class of an APIError.
	Kind = pkgerrors.Kind
	// GatewayzError is implemented by every SDK error type.
	GatewayzError = pkgerrors.GatewayzError
)

// Failure kinds.
const (
	KindNetwork   = pkgerrors.KindNetwork
	KindTimeout   = pkgerrors.KindTimeout
	KindAuth      = pkgerrors.KindAuth
	KindRateLimit = pkgerrors.KindRateLimit
	KindServer    = pkgerrors.KindServer
	KindClient    = pkgerrors.KindClient
)

// Sentinel errors. APIError sentinels match any APIError with the same
// status through errors.Is.
var (
	ErrMissingBaseURL  = pkgerrors.ErrMissingBaseURL
	ErrInvalidConfig   = pkgerrors.ErrInvalidConfig
	ErrNoCredential    = pkgerrors.ErrNoCredential
	ErrEmptyCredential = pkgerrors.ErrEmptyCredential
	ErrMissingField    = pkgerrors.ErrMissingField

	ErrNetwork      = pkgerrors.ErrNetwork
	ErrUnauthorized = pkgerrors.ErrUnauthorized
	ErrForbidden    = pkgerrors.ErrForbidden
	ErrNotFound     = pkgerrors.ErrNotFound
	ErrTimeout      = pkgerrors.ErrTimeout
	ErrRateLimited  = pkgerrors.ErrRateLimited
)

// NewAPIError creates an APIError with the given message and status.
func NewAPIError(message string, status int) *APIError {
	return pkgerrors.NewAPIError(message, status)
}

// AsAPIError extracts an *APIError from err's chain.
func AsAPIError(err error) (*APIError, bool) {
	return pkgerrors.AsAPIError(err)
}

// IsRetryable reports whether err may succeed on a later attempt.
func IsRetryable(err error) bool {
	return pkgerrors.IsRetryable(err)
}

// IsAuthError reports whether err is a 401 response.
//
//	if gatewayz.IsAuthError(err) {
//	    // prompt for a new API key
//	}
func IsAuthError(err error) bool {
	return pkgerrors.IsAuthError(err)
}

// IsNetworkError reports whether err failed before a response was received.
func IsNetworkError(err error) bool {
	return pkgerrors.IsNetworkError(err)
}

// IsTimeout reports whether err is a client-side or server 408 timeout.
func IsTimeout(err error) bool {
	return pkgerrors.IsTimeout(err)
}

// ErrorMessage returns a message suitable for display. API errors yield the
// server's message.
func ErrorMessage(err error) string {
	return pkgerrors.Message(err)
}
