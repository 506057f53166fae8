package gatewayz

import (
	"fmt"

	pkgconfig "github.com/gatewayz/gatewayz-go/pkg/config"
)

// Environment variable names for configuration (re-exported from pkg/config).
const (
	// EnvBaseURL is the environment variable for the API base URL.
	EnvBaseURL = pkgconfig.EnvBaseURL
	// EnvBaseURLLegacy is the dashboard's name for EnvBaseURL.
	EnvBaseURLLegacy = pkgconfig.EnvBaseURLLegacy
	// EnvAPIKey is the environment variable for the API key.
	EnvAPIKey = pkgconfig.EnvAPIKey
	// EnvTimeout is the per-attempt timeout ("30s" or milliseconds).
	EnvTimeout = pkgconfig.EnvTimeout
	// EnvRetryAttempts is the total number of attempts.
	EnvRetryAttempts = pkgconfig.EnvRetryAttempts
	// EnvRetryDelay is the backoff base ("1s" or milliseconds).
	EnvRetryDelay = pkgconfig.EnvRetryDelay
	// EnvDebug enables debug logging.
	EnvDebug = pkgconfig.EnvDebug
)

// NewFromEnv creates a client from the default config file, .env files and
// environment variables, in that order of increasing precedence. Explicit
// options override all of them.
//
// Example:
//
//	client, err := gatewayz.NewFromEnv(gatewayz.WithLogger(gatewayz.NewSlogAdapter(nil)))
//	if err != nil {
//	    log.Fatal(err)
//	}
func NewFromEnv(opts ...ConfigOption) (*Client, error) {
	settings, err := pkgconfig.Load("")
	if err != nil {
		return nil, fmt.Errorf("gatewayz: load configuration: %w", err)
	}
	return NewFromSettings(settings, opts...)
}

// NewFromSettings creates a client from loaded settings. Explicit options
// take precedence over the settings.
func NewFromSettings(settings *pkgconfig.Settings, opts ...ConfigOption) (*Client, error) {
	if settings == nil {
		return New(opts...)
	}
	// Append explicit options so they override settings
	all := append(settingsOptions(settings), opts...)
	return New(all...)
}
