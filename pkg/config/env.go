package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Environment variable names for configuration.
const (
	EnvBaseURL       = "GATEWAYZ_API_URL"
	EnvBaseURLLegacy = "NEXT_PUBLIC_API_URL"
	EnvAPIKey        = "GATEWAYZ_API_KEY"
	EnvTimeout       = "GATEWAYZ_TIMEOUT"
	EnvRetryAttempts = "GATEWAYZ_RETRY_ATTEMPTS"
	EnvRetryDelay    = "GATEWAYZ_RETRY_DELAY"
	EnvDebug         = "GATEWAYZ_DEBUG"
)

// GetEnvString returns the value of an environment variable or a default.
func GetEnvString(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

// GetEnvBool returns true if the env var is "true" or "1".
func GetEnvBool(key string) bool {
	v := os.Getenv(key)
	return v == "true" || v == "1"
}

// GetEnvDuration parses an environment variable as a duration.
// Bare integers are read as milliseconds.
func GetEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return defaultValue, nil
	}
	d, err := ParseDuration(v)
	if err != nil {
		return defaultValue, fmt.Errorf("config: %s: %w", key, err)
	}
	return d, nil
}

// GetEnvInt parses an environment variable as an integer.
func GetEnvInt(key string, defaultValue int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return defaultValue, fmt.Errorf("config: %s: %w", key, err)
	}
	return n, nil
}

// ParseDuration accepts Go duration syntax or a bare millisecond count.
func ParseDuration(s string) (time.Duration, error) {
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Duration(ms) * time.Millisecond, nil
	}
	return time.ParseDuration(s)
}

// ApplyEnv overrides settings with any configured environment variables.
func ApplyEnv(s *Settings) error {
	s.BaseURL = GetEnvString(EnvBaseURL, GetEnvString(EnvBaseURLLegacy, s.BaseURL))
	s.APIKey = GetEnvString(EnvAPIKey, s.APIKey)
	if GetEnvBool(EnvDebug) {
		s.Debug = true
	}

	var err error
	if s.Timeout, err = GetEnvDuration(EnvTimeout, s.Timeout); err != nil {
		return err
	}
	if s.RetryDelay, err = GetEnvDuration(EnvRetryDelay, s.RetryDelay); err != nil {
		return err
	}
	if s.RetryAttempts, err = GetEnvInt(EnvRetryAttempts, s.RetryAttempts); err != nil {
		return err
	}
	return nil
}
