package http

import (
	"net/http"
	"time"
)

// HeaderRequestID carries the per-attempt request id.
const HeaderRequestID = "X-Request-ID"

// RequestAttempt records a single try of a logical request.
type RequestAttempt struct {
	Method string
	URL    string
	Header http.Header
	Body   []byte

	// Attempt is the 1-based attempt number.
	Attempt int

	// StatusCode is 0 if no response was received.
	StatusCode int
	Duration   time.Duration

	// Err is nil when the attempt produced a payload.
	Err error
}

// Succeeded reports whether the attempt produced a payload.
func (a RequestAttempt) Succeeded() bool {
	return a.Err == nil
}

// AttemptObserver receives every RequestAttempt after it completes.
type AttemptObserver func(RequestAttempt)
