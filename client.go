package gatewayz

import (
	"fmt"
	"strings"
	"sync"
	"time"

	pkghttp "github.com/gatewayz/gatewayz-go/pkg/http"
)

// Client is the Gatewayz API client. It is safe for concurrent use.
type Client struct {
	config  *Config
	log     StructuredLogger
	hook    HTTPHook
	retrier *pkghttp.Retrier

	mu         sync.RWMutex
	credential string
}

// New creates a new Gatewayz client.
//
// Example:
//
//	client, err := gatewayz.New(
//	    gatewayz.WithCredential(apiKey),
//	    gatewayz.WithTimeout(10*time.Second),
//	)
func New(opts ...ConfigOption) (*Client, error) {
	cfg := &Config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return NewWithConfig(cfg)
}

// NewWithConfig creates a new Gatewayz client with the given configuration.
// The configuration is copied.
func NewWithConfig(cfg *Config) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}
	c := *cfg
	c.HTTPHooks = append([]HTTPHook(nil), cfg.HTTPHooks...)
	c.applyDefaults()
	if err := c.validate(); err != nil {
		return nil, err
	}

	hooks := c.HTTPHooks
	if c.Debug {
		hooks = append(hooks, LoggingHook(c.Logger))
	}

	client := &Client{
		config:     &c,
		log:        c.Logger,
		hook:       pkghttp.CombineHooks(hooks),
		credential: strings.TrimSpace(c.Credential),
	}
	client.retrier = &pkghttp.Retrier{
		Strategy: pkghttp.NewLinearBackoff(c.RetryDelay, c.RetryAttempts),
		Sleep:    c.Sleep,
		OnRetry: func(attempt int, delay time.Duration, err error) {
			client.log.Warn("gatewayz: retrying request",
				"attempt", attempt,
				"max_attempts", c.RetryAttempts,
				"delay", delay,
				"error", err,
			)
		},
	}
	return client, nil
}

// SetCredential replaces the bearer token used by subsequent requests.
// An empty token removes it. Requests already in flight keep the token
// they started with.
func (c *Client) SetCredential(token string) {
	c.mu.Lock()
	c.credential = strings.TrimSpace(token)
	c.mu.Unlock()
}

// ClearCredential removes the bearer token.
func (c *Client) ClearCredential() {
	c.SetCredential("")
}

// Credential returns the current bearer token, or "".
func (c *Client) Credential() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.credential
}

// HasCredential reports whether a bearer token is set.
func (c *Client) HasCredential() bool {
	return c.Credential() != ""
}

// BaseURL returns the API base URL without a trailing slash.
func (c *Client) BaseURL() string {
	return c.config.BaseURL
}

// Config returns a copy of the effective configuration. The Credential
// field reflects the current token.
func (c *Client) Config() Config {
	cfg := *c.config
	cfg.HTTPHooks = append([]HTTPHook(nil), c.config.HTTPHooks...)
	cfg.Credential = c.Credential()
	return cfg
}
