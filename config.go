package gatewayz

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	pkgconfig "github.com/gatewayz/gatewayz-go/pkg/config"
	pkghttp "github.com/gatewayz/gatewayz-go/pkg/http"
)

// Default configuration values (re-exported from pkg/config).
const (
	// DefaultBaseURL is the production Gatewayz API.
	DefaultBaseURL = pkgconfig.DefaultBaseURL

	// DefaultTimeout is the per-attempt request timeout.
	DefaultTimeout = pkgconfig.DefaultTimeout

	// DefaultRetryAttempts is the default total number of attempts.
	DefaultRetryAttempts = pkgconfig.DefaultRetryAttempts

	// DefaultRetryDelay is the base of the linear backoff.
	DefaultRetryDelay = pkgconfig.DefaultRetryDelay

	// MaxRetryAttempts is the maximum allowed number of attempts.
	MaxRetryAttempts = pkgconfig.MaxRetryAttempts

	// MaxTimeout is the maximum allowed per-attempt timeout.
	MaxTimeout = pkgconfig.MaxTimeout
)

// Config holds the configuration for the Gatewayz client.
type Config struct {
	// BaseURL is the base URL for the Gatewayz API.
	// Defaults to DefaultBaseURL.
	BaseURL string

	// Credential is the bearer token sent with every request. It may be
	// empty; public endpoints such as /models work without one.
	Credential string

	// HTTPClient is the HTTP client to use for requests.
	// If not set, a client without its own timeout is used; the per-attempt
	// timeout is applied through the request context.
	HTTPClient *http.Client

	// Timeout bounds each attempt.
	// Defaults to 30 seconds if not set.
	Timeout time.Duration

	// RetryAttempts is the total number of attempts per request.
	// Defaults to 3 if not set. Use 1 to disable retries.
	RetryAttempts int

	// RetryDelay is the base of the linear backoff.
	// Defaults to 1 second if not set.
	RetryDelay time.Duration

	// UserAgent overrides the User-Agent header.
	UserAgent string

	// Debug enables request logging through Logger. Without a Logger,
	// debug output goes to stderr.
	Debug bool

	// Logger is used for SDK logging. If nil, logging is disabled.
	Logger StructuredLogger

	// HTTPHooks run around every attempt.
	HTTPHooks []HTTPHook

	// AttemptObserver receives every attempt after it finishes.
	AttemptObserver AttemptObserver

	// Sleep waits between attempts. Tests replace it with a fake clock.
	Sleep pkghttp.SleepFunc
}

// applyDefaults fills zero values with their defaults.
func (c *Config) applyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	c.BaseURL = strings.TrimSuffix(c.BaseURL, "/")
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	if c.RetryAttempts == 0 {
		c.RetryAttempts = DefaultRetryAttempts
	}
	if c.RetryDelay == 0 {
		c.RetryDelay = DefaultRetryDelay
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{}
	}
	if c.UserAgent == "" {
		c.UserAgent = "gatewayz-go/" + Version
	}
	if c.Logger == nil {
		if c.Debug {
			c.Logger = NewSlogAdapter(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		} else {
			c.Logger = NopLogger{}
		}
	}
	if c.Sleep == nil {
		c.Sleep = pkghttp.Sleep
	}
}

// validate checks the configuration after defaults were applied.
func (c *Config) validate() error {
	if c.BaseURL == "" {
		return ErrMissingBaseURL
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: base URL %q is not an absolute URL", ErrInvalidConfig, c.BaseURL)
	}
	if c.Timeout < 0 || c.Timeout > MaxTimeout {
		return fmt.Errorf("%w: timeout %v out of range [0, %v] (0 uses the default)", ErrInvalidConfig, c.Timeout, MaxTimeout)
	}
	if c.RetryAttempts < 0 || c.RetryAttempts > MaxRetryAttempts {
		return fmt.Errorf("%w: retry attempts %d out of range [0, %d] (0 uses the default)", ErrInvalidConfig, c.RetryAttempts, MaxRetryAttempts)
	}
	if c.RetryDelay < 0 {
		return fmt.Errorf("%w: retry delay must not be negative", ErrInvalidConfig)
	}
	return nil
}

// settingsOptions converts file and environment settings into options.
// Zero values are skipped so the client defaults apply.
func settingsOptions(s *pkgconfig.Settings) []ConfigOption {
	opts := make([]ConfigOption, 0, 6)
	if s.BaseURL != "" {
		opts = append(opts, WithBaseURL(s.BaseURL))
	}
	if s.APIKey != "" {
		opts = append(opts, WithCredential(s.APIKey))
	}
	if s.Timeout > 0 {
		opts = append(opts, WithTimeout(s.Timeout))
	}
	if s.RetryAttempts > 0 {
		opts = append(opts, WithRetryAttempts(s.RetryAttempts))
	}
	if s.RetryDelay > 0 {
		opts = append(opts, WithRetryDelay(s.RetryDelay))
	}
	if s.Debug {
		opts = append(opts, WithDebug(true))
	}
	return opts
}
