package errors

import (
	"errors"
)

// ErrorCode represents a category of error for logging.
type ErrorCode string

// Error codes for categorization.
const (
	ErrCodeConfig     ErrorCode = "CONFIG"     // Configuration errors
	ErrCodeValidation ErrorCode = "VALIDATION" // Request validation errors
	ErrCodeNetwork    ErrorCode = "NETWORK"    // Network/connection errors
	ErrCodeTimeout    ErrorCode = "TIMEOUT"    // Timeout errors
	ErrCodeAuth       ErrorCode = "AUTH"       // Authentication errors
	ErrCodeRateLimit  ErrorCode = "RATE_LIMIT" // Rate limiting errors
	ErrCodeServer     ErrorCode = "SERVER"     // 5xx responses
	ErrCodeAPI        ErrorCode = "API"        // Other API errors
)

// GatewayzError is the common interface for all SDK errors.
//
//	var gzErr errors.GatewayzError
//	if stdErrors.As(err, &gzErr) {
//	    log.Printf("code=%s retryable=%v", gzErr.Code(), gzErr.IsRetryable())
//	}
type GatewayzError interface {
	error

	// Code returns a machine-readable error code for categorization.
	Code() ErrorCode

	// IsRetryable returns true if the operation can be retried.
	IsRetryable() bool
}

// Sentinel errors for configuration validation.
var (
	ErrMissingBaseURL  = errors.New("gatewayz: base URL is required")
	ErrInvalidConfig   = errors.New("gatewayz: invalid configuration")
	ErrNoCredential    = errors.New("gatewayz: no credential set")
	ErrEmptyCredential = errors.New("gatewayz: credential cannot be blank")
	ErrMissingField    = errors.New("gatewayz: required field missing")
)
