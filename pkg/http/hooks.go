package http

import (
	"context"
	"net/http"
	"time"
)

// HTTPHook observes or modifies the requests a client sends. The executor
// invokes it once per attempt, so a retried call reaches it repeatedly.
type HTTPHook interface {
	// BeforeRequest runs after headers are set. A non-nil error aborts the
	// logical call without sending.
	BeforeRequest(ctx context.Context, req *http.Request) error

	// AfterResponse runs after every attempt. resp is nil when the transport
	// failed or the attempt timed out.
	AfterResponse(ctx context.Context, req *http.Request, resp *http.Response, duration time.Duration, err error)
}

// HookError is returned when BeforeRequest aborts a call. It is never
// retried.
type HookError struct {
	Err error
}

func (e *HookError) Error() string {
	return "gatewayz: hook BeforeRequest failed: " + e.Err.Error()
}

func (e *HookError) Unwrap() error { return e.Err }

// IsRetryable implements RetryableError.
func (e *HookError) IsRetryable() bool { return false }

// HTTPHookFunc builds an HTTPHook from optional functions.
type HTTPHookFunc struct {
	Before func(ctx context.Context, req *http.Request) error
	After  func(ctx context.Context, req *http.Request, resp *http.Response, duration time.Duration, err error)
}

// BeforeRequest implements HTTPHook.
func (f HTTPHookFunc) BeforeRequest(ctx context.Context, req *http.Request) error {
	if f.Before == nil {
		return nil
	}
	return f.Before(ctx, req)
}

// AfterResponse implements HTTPHook.
func (f HTTPHookFunc) AfterResponse(ctx context.Context, req *http.Request, resp *http.Response, duration time.Duration, err error) {
	if f.After != nil {
		f.After(ctx, req, resp, duration, err)
	}
}

// CombineHooks merges hooks into one, skipping nils. BeforeRequest runs in
// order and stops at the first error; AfterResponse unwinds in reverse.
// It returns nil for no hooks.
func CombineHooks(hooks []HTTPHook) HTTPHook {
	var live []HTTPHook
	for _, h := range hooks {
		if h != nil {
			live = append(live, h)
		}
	}
	if len(live) <= 1 {
		if len(live) == 0 {
			return nil
		}
		return live[0]
	}

	return HTTPHookFunc{
		Before: func(ctx context.Context, req *http.Request) error {
			for _, h := range live {
				if err := h.BeforeRequest(ctx, req); err != nil {
					return err
				}
			}
			return nil
		},
		After: func(ctx context.Context, req *http.Request, resp *http.Response, d time.Duration, err error) {
			for i := len(live) - 1; i >= 0; i-- {
				live[i].AfterResponse(ctx, req, resp, d, err)
			}
		},
	}
}

// Logger is what LoggingHook writes to.
type Logger interface {
	Debug(msg string, args ...any)
}

// HeaderHook sets fixed headers on every attempt, overriding the defaults.
func HeaderHook(headers map[string]string) HTTPHook {
	fixed := make(http.Header, len(headers))
	for k, v := range headers {
		fixed.Set(k, v)
	}
	return HTTPHookFunc{
		Before: func(_ context.Context, req *http.Request) error {
			for k, v := range fixed {
				req.Header[k] = v
			}
			return nil
		},
	}
}

// LoggingHook logs each attempt at debug level, keyed by its X-Request-ID.
// Credentials are not logged.
func LoggingHook(logger Logger) HTTPHook {
	return HTTPHookFunc{
		Before: func(_ context.Context, req *http.Request) error {
			logger.Debug("gatewayz: request",
				"method", req.Method, "path", req.URL.Path, "request_id", req.Header.Get(HeaderRequestID))
			return nil
		},
		After: func(_ context.Context, req *http.Request, resp *http.Response, d time.Duration, err error) {
			id := req.Header.Get(HeaderRequestID)
			if err != nil || resp == nil {
				logger.Debug("gatewayz: request failed",
					"method", req.Method, "path", req.URL.Path, "request_id", id, "duration", d, "error", err)
				return
			}
			logger.Debug("gatewayz: response",
				"method", req.Method, "path", req.URL.Path, "request_id", id, "duration", d, "status", resp.StatusCode)
		},
	}
}
