package errors

// ValidationError is an argument rejected before any request was built.
// Field names the offending input using its wire name where one exists
// ("key_name", "messages[2].role").
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "gatewayz: invalid input: " + e.Message
	}
	return "gatewayz: invalid " + e.Field + ": " + e.Message
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Code implements GatewayzError.
func (e *ValidationError) Code() ErrorCode { return ErrCodeValidation }

// IsRetryable implements GatewayzError. Invalid input never succeeds on retry.
func (e *ValidationError) IsRetryable() bool { return false }

var _ GatewayzError = (*ValidationError)(nil)

// NewValidationError returns a ValidationError for field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// Required returns the ValidationError for a missing field, wrapping
// ErrMissingField.
func Required(field string) *ValidationError {
	return &ValidationError{Field: field, Message: "is required", Err: ErrMissingField}
}
