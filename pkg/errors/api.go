package errors

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Kind classifies an APIError by the failure it represents.
type Kind int

// Error kinds.
const (
	KindNetwork Kind = iota
	KindTimeout
	KindAuth
	KindRateLimit
	KindServer
	KindClient
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindTimeout:
		return "timeout"
	case KindAuth:
		return "auth"
	case KindRateLimit:
		return "rate_limit"
	case KindServer:
		return "server"
	case KindClient:
		return "client"
	default:
		return "unknown"
	}
}

// Status codes with special meaning to the SDK.
const (
	StatusNetwork      = 0
	StatusUnauthorized = 401
	StatusTimeout      = 408
	StatusRateLimited  = 429
)

// Sentinel APIError values for use with errors.Is().
// These match on status code only.
var (
	ErrNetwork      = &APIError{StatusCode: StatusNetwork}
	ErrUnauthorized = &APIError{StatusCode: StatusUnauthorized}
	ErrForbidden    = &APIError{StatusCode: 403}
	ErrNotFound     = &APIError{StatusCode: 404}
	ErrTimeout      = &APIError{StatusCode: StatusTimeout}
	ErrRateLimited  = &APIError{StatusCode: StatusRateLimited}
)

// APIError represents a failed Gatewayz API request.
// StatusCode is 0 when no HTTP response was received and 408 when the
// request timed out on the client side.
type APIError struct {
	StatusCode int           `json:"-"`
	Message    string        `json:"message"`
	ErrorCode  string        `json:"code,omitempty"`
	RequestID  string        `json:"-"`
	RetryAfter time.Duration `json:"-"` // From Retry-After header
	Err        error         `json:"-"` // Underlying transport error, if any
}

// NewAPIError creates an APIError with the given message and status.
func NewAPIError(message string, status int) *APIError {
	return &APIError{Message: message, StatusCode: status}
}

// Error implements the error interface.
func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = fmt.Sprintf("HTTP %d", e.StatusCode)
	}
	if e.ErrorCode != "" {
		return fmt.Sprintf("gatewayz: API error (status %d, code %s): %s", e.StatusCode, e.ErrorCode, msg)
	}
	return fmt.Sprintf("gatewayz: API error (status %d): %s", e.StatusCode, msg)
}

// String returns a compact string representation for debugging.
func (e *APIError) String() string {
	return fmt.Sprintf("APIError{Status: %d, Message: %q}", e.StatusCode, e.Message)
}

// Unwrap returns the underlying error for error chain support.
func (e *APIError) Unwrap() error {
	return e.Err
}

// Is implements error comparison for errors.Is().
// It matches on status code, allowing comparisons like:
//
//	if errors.Is(err, gatewayz.ErrUnauthorized) { ... }
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}
	return e.StatusCode == t.StatusCode
}

// Kind returns the failure class of the error.
func (e *APIError) Kind() Kind {
	switch {
	case e.StatusCode == StatusNetwork:
		return KindNetwork
	case e.StatusCode == StatusTimeout:
		return KindTimeout
	case e.StatusCode == StatusUnauthorized:
		return KindAuth
	case e.StatusCode == StatusRateLimited:
		return KindRateLimit
	case e.StatusCode >= 500:
		return KindServer
	default:
		return KindClient
	}
}

// IsNetwork returns true if no HTTP response was received.
func (e *APIError) IsNetwork() bool { return e.StatusCode == StatusNetwork }

// IsTimeout returns true if the request timed out.
func (e *APIError) IsTimeout() bool { return e.StatusCode == StatusTimeout }

// IsAttemptTimeout reports whether the client gave up waiting, as opposed to
// the server answering 408.
func (e *APIError) IsAttemptTimeout() bool {
	return e.StatusCode == StatusTimeout && errors.Is(e.Err, context.DeadlineExceeded)
}

// IsUnauthorized returns true if the error is a 401 Unauthorized error.
func (e *APIError) IsUnauthorized() bool { return e.StatusCode == StatusUnauthorized }

// IsRateLimited returns true if the error is a 429 Too Many Requests error.
func (e *APIError) IsRateLimited() bool { return e.StatusCode == StatusRateLimited }

// IsServerError returns true for any status >= 500.
func (e *APIError) IsServerError() bool { return e.StatusCode >= 500 }

// IsRetryable returns true for network, rate-limit and server errors and
// for client-side attempt timeouts. Every other 4xx, a 408 sent by the
// server included, is a permanent client error.
func (e *APIError) IsRetryable() bool {
	switch e.Kind() {
	case KindNetwork, KindRateLimit, KindServer:
		return true
	case KindTimeout:
		return e.IsAttemptTimeout()
	default:
		return false
	}
}

// SuggestedRetryAfter returns the delay from the Retry-After header, if any.
func (e *APIError) SuggestedRetryAfter() time.Duration {
	return e.RetryAfter
}

// Code returns the error code for the API error.
func (e *APIError) Code() ErrorCode {
	switch e.Kind() {
	case KindNetwork:
		return ErrCodeNetwork
	case KindTimeout:
		return ErrCodeTimeout
	case KindAuth:
		return ErrCodeAuth
	case KindRateLimit:
		return ErrCodeRateLimit
	case KindServer:
		return ErrCodeServer
	default:
		return ErrCodeAPI
	}
}

// Ensure APIError implements GatewayzError.
var _ GatewayzError = (*APIError)(nil)
