// Package config holds the Gatewayz SDK defaults and loads settings from
// YAML files, .env files and environment variables.
package config

import (
	"fmt"
	"net/url"
	"time"
)

// Default configuration values.
const (
	// DefaultBaseURL is the production Gatewayz API host.
	DefaultBaseURL = "https://api.gatewayz.ai"

	// DefaultTimeout is the default per-attempt request timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultRetryAttempts is the default total number of attempts per call.
	DefaultRetryAttempts = 3

	// DefaultRetryDelay is the base of the linear retry backoff.
	DefaultRetryDelay = 1 * time.Second

	// MaxRetryAttempts is the maximum allowed attempt count.
	MaxRetryAttempts = 10

	// MaxTimeout is the maximum allowed request timeout.
	MaxTimeout = 5 * time.Minute

	// MinKeyLength is the minimum length accepted for an API key.
	MinKeyLength = 10

	// MaxKeyLength is the maximum length accepted for an API key.
	MaxKeyLength = 100
)

// Settings is the file and environment view of the client configuration.
// Durations in YAML use Go syntax ("30s", "1500ms").
type Settings struct {
	BaseURL       string        `yaml:"base_url"`
	APIKey        string        `yaml:"api_key"`
	Timeout       time.Duration `yaml:"timeout"`
	RetryAttempts int           `yaml:"retry_attempts"`
	RetryDelay    time.Duration `yaml:"retry_delay"`
	Debug         bool          `yaml:"debug"`
}

// Defaults returns Settings populated with the default values.
func Defaults() *Settings {
	return &Settings{
		BaseURL:       DefaultBaseURL,
		Timeout:       DefaultTimeout,
		RetryAttempts: DefaultRetryAttempts,
		RetryDelay:    DefaultRetryDelay,
	}
}

// Validate checks that the settings are usable.
func (s *Settings) Validate() error {
	if s.BaseURL == "" {
		return fmt.Errorf("config: base_url is required")
	}
	u, err := url.Parse(s.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("config: base_url %q is not an absolute URL", s.BaseURL)
	}
	if s.Timeout < 0 || s.Timeout > MaxTimeout {
		return fmt.Errorf("config: timeout %v out of range [0, %v]", s.Timeout, MaxTimeout)
	}
	if s.RetryAttempts < 0 || s.RetryAttempts > MaxRetryAttempts {
		return fmt.Errorf("config: retry_attempts %d out of range [0, %d]", s.RetryAttempts, MaxRetryAttempts)
	}
	if s.RetryDelay < 0 {
		return fmt.Errorf("config: retry_delay must not be negative")
	}
	return nil
}

// ValidateKey checks an API key against the accepted length bounds.
func ValidateKey(key string) error {
	switch {
	case len(key) < MinKeyLength:
		return fmt.Errorf("api key must be at least %d characters", MinKeyLength)
	case len(key) > MaxKeyLength:
		return fmt.Errorf("api key must be at most %d characters", MaxKeyLength)
	}
	return nil
}
