package mefrp

import (
	"net/http"
	"strings"
	"sync"
	"time"
)

const (
	// Version is the SDK version reported in the default user agent.
	Version = "0.3.0"

	// DefaultBaseURL is the production API root.
	DefaultBaseURL = "https://api.mefrp.com/api"

	// DefaultTimeout bounds a single call when no timeout is configured.
	DefaultTimeout = 10 * time.Second

	// DefaultUserAgent is sent when no user agent is configured.
	DefaultUserAgent = "MEFrp-Golang-SDK/" + Version
)

// Config holds the connection parameters of one client.
//
// The token is the only field expected to change after construction: Login
// and VerifyMagicLink store the token they receive. A call that is already in
// flight keeps the headers it was built with, so rotating the token while
// other goroutines are mid-request affects only their next call.
type Config struct {
	mu                sync.RWMutex
	token             string
	baseURL           string
	userAgent         string
	timeout           time.Duration
	bypassSystemProxy bool
}

// NewConfig returns a Config with defaults applied and the base URL normalized.
func NewConfig(token, baseURL, userAgent string, timeout time.Duration, bypassSystemProxy bool) *Config {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Config{
		token:             token,
		baseURL:           normalizeBaseURL(baseURL),
		userAgent:         userAgent,
		timeout:           timeout,
		bypassSystemProxy: bypassSystemProxy,
	}
}

func normalizeBaseURL(u string) string {
	if u == "" {
		return DefaultBaseURL
	}
	return strings.TrimRight(u, "/")
}

// Token returns the current bearer token. An empty token means unauthenticated.
func (c *Config) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// SetToken replaces the bearer token used by subsequent calls.
func (c *Config) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// BaseURL returns the API root without a trailing slash.
func (c *Config) BaseURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.baseURL
}

// SetBaseURL replaces the API root. Trailing slashes are removed and an empty
// value restores DefaultBaseURL.
func (c *Config) SetBaseURL(u string) {
	c.mu.Lock()
	c.baseURL = normalizeBaseURL(u)
	c.mu.Unlock()
}

// UserAgent returns the User-Agent header value.
func (c *Config) UserAgent() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.userAgent
}

// SetUserAgent replaces the User-Agent header value.
func (c *Config) SetUserAgent(ua string) {
	c.mu.Lock()
	c.userAgent = ua
	c.mu.Unlock()
}

// Timeout returns the per-call timeout.
func (c *Config) Timeout() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.timeout
}

// BypassSystemProxy reports whether sessions ignore HTTP_PROXY and friends.
func (c *Config) BypassSystemProxy() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.bypassSystemProxy
}

// Headers returns a new header set for one request. Authorization is present
// only when a token is set.
func (c *Config) Headers() http.Header {
	c.mu.RLock()
	defer c.mu.RUnlock()

	h := make(http.Header, 3)
	h.Set("Content-Type", "application/json")
	h.Set("User-Agent", c.userAgent)
	if c.token != "" {
		h.Set("Authorization", "Bearer "+c.token)
	}
	return h
}
