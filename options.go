package gatewayz

import (
	"net/http"
	"time"

	pkghttp "github.com/gatewayz/gatewayz-go/pkg/http"
)

// ConfigOption is a function that modifies a Config.
type ConfigOption func(*Config)

// WithBaseURL sets a custom base URL for the Gatewayz API.
func WithBaseURL(baseURL string) ConfigOption {
	return func(c *Config) {
		c.BaseURL = baseURL
	}
}

// WithCredential sets the initial bearer token.
func WithCredential(token string) ConfigOption {
	return func(c *Config) {
		c.Credential = token
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) ConfigOption {
	return func(c *Config) {
		c.HTTPClient = client
	}
}

// WithTimeout sets the per-attempt timeout.
func WithTimeout(timeout time.Duration) ConfigOption {
	return func(c *Config) {
		c.Timeout = timeout
	}
}

// WithRetryAttempts sets the total number of attempts per request.
func WithRetryAttempts(attempts int) ConfigOption {
	return func(c *Config) {
		c.RetryAttempts = attempts
	}
}

// WithRetryDelay sets the base delay of the linear backoff.
func WithRetryDelay(delay time.Duration) ConfigOption {
	return func(c *Config) {
		c.RetryDelay = delay
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) ConfigOption {
	return func(c *Config) {
		c.UserAgent = ua
	}
}

// WithDebug enables debug logging of every request.
func WithDebug(debug bool) ConfigOption {
	return func(c *Config) {
		c.Debug = debug
	}
}

// WithLogger sets a structured logger.
//
// Example with slog:
//
//	client, _ := gatewayz.New(
//	    gatewayz.WithLogger(gatewayz.NewSlogAdapter(slog.Default())),
//	)
func WithLogger(logger StructuredLogger) ConfigOption {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithHTTPHook adds a hook that runs around every attempt.
// Hooks run in the order they were added.
func WithHTTPHook(hook HTTPHook) ConfigOption {
	return func(c *Config) {
		c.HTTPHooks = append(c.HTTPHooks, hook)
	}
}

// WithAttemptObserver registers a callback that receives every attempt.
func WithAttemptObserver(observer AttemptObserver) ConfigOption {
	return func(c *Config) {
		c.AttemptObserver = observer
	}
}

// WithSleep replaces the function used to wait between attempts.
func WithSleep(sleep pkghttp.SleepFunc) ConfigOption {
	return func(c *Config) {
		c.Sleep = sleep
	}
}
