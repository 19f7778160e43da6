package mefrp

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Option configures a Client or AsyncClient.
type Option func(*clientOptions)

// clientOptions holds configuration options for the clients.
type clientOptions struct {
	token             string
	baseURL           string
	userAgent         string
	timeout           time.Duration
	bypassSystemProxy bool
	httpClient        *http.Client
	logger            zerolog.Logger
	observer          Observer
	factory           sessionFactory
}

func defaultOptions() clientOptions {
	return clientOptions{
		baseURL:   DefaultBaseURL,
		userAgent: DefaultUserAgent,
		timeout:   DefaultTimeout,
		logger:    zerolog.Nop(),
		factory:   newSession,
	}
}

// WithToken sets the initial bearer token.
func WithToken(token string) Option {
	return func(o *clientOptions) {
		o.token = token
	}
}

// WithBaseURL sets the API root. Trailing slashes are removed.
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		o.baseURL = baseURL
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		o.userAgent = userAgent
	}
}

// WithTimeout sets the per-call timeout. Non-positive values keep the default.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithBypassSystemProxy makes owned sessions ignore proxy environment variables.
func WithBypassSystemProxy(bypass bool) Option {
	return func(o *clientOptions) {
		o.bypassSystemProxy = bypass
	}
}

// WithHTTPClient lends an existing HTTP client to the SDK. The client is used
// for every call and is never closed by Close.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = hc
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *clientOptions) {
		o.logger = logger
	}
}

// WithObserver installs a hook that sees the outcome of every call.
func WithObserver(obs Observer) Option {
	return func(o *clientOptions) {
		o.observer = obs
	}
}
