package errors

import (
	"errors"
)

// AsAPIError extracts an APIError from the error chain.
// Returns the APIError and true if found, nil and false otherwise.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// AsValidationError extracts a ValidationError from the error chain.
func AsValidationError(err error) (*ValidationError, bool) {
	var valErr *ValidationError
	if errors.As(err, &valErr) {
		return valErr, true
	}
	return nil, false
}

// IsRetryable returns true if the error represents a retryable condition.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	var gzErr GatewayzError
	if errors.As(err, &gzErr) {
		return gzErr.IsRetryable()
	}
	return false
}

// IsAuthError reports whether err is a 401 response.
func IsAuthError(err error) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.IsUnauthorized()
}

// IsNetworkError reports whether err is a connectivity failure (status 0).
func IsNetworkError(err error) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.IsNetwork()
}

// IsTimeout reports whether err carries status 408, from either the client
// attempt deadline or the server.
func IsTimeout(err error) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.IsTimeout()
}

// KindOf returns the Kind of an APIError in the chain.
// The second result is false when err carries no APIError.
func KindOf(err error) (Kind, bool) {
	apiErr, ok := AsAPIError(err)
	if !ok {
		return 0, false
	}
	return apiErr.Kind(), true
}

// Message returns a display message for err.
// APIErrors yield their bare server message; nil yields "".
func Message(err error) string {
	if err == nil {
		return ""
	}
	if apiErr, ok := AsAPIError(err); ok {
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return apiErr.Error()
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return "An unexpected error occurred"
}
