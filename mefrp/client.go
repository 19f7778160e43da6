package mefrp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// codeOK is the envelope code of a successful call.
const codeOK = 200

// Observer is notified once per call with its outcome. Implementations must be
// safe for concurrent use.
type Observer interface {
	ObserveRequest(method, path string, kind ErrorKind, elapsed time.Duration)
}

// envelope is the wrapper around every response body.
type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Client is a blocking MEFrp API client. Each call opens its own session and
// releases it before returning.
type Client struct {
	cfg      *Config
	sessions sessionManager
	logger   zerolog.Logger
	observer Observer
}

// New creates a blocking client.
func New(opts ...Option) *Client {
	o := applyOptions(opts)
	cfg := newConfigFromOptions(o)
	return &Client{
		cfg:      cfg,
		sessions: &scopedSessions{cfg: cfg, borrowed: o.httpClient, factory: o.factory},
		logger:   o.logger,
		observer: o.observer,
	}
}

// AsyncClient shares one session between all calls and goroutines. The
// session is created on first use and released by Close.
type AsyncClient struct {
	*Client

	shared    *sharedSessions
	closeOnce sync.Once
	closeErr  error
}

// NewAsync creates a client for concurrent use. Callers must Close it.
func NewAsync(opts ...Option) *AsyncClient {
	o := applyOptions(opts)
	cfg := newConfigFromOptions(o)
	shared := newSharedSessions(cfg, o.httpClient, o.factory)
	return &AsyncClient{
		Client: &Client{
			cfg:      cfg,
			sessions: shared,
			logger:   o.logger,
			observer: o.observer,
		},
		shared: shared,
	}
}

// Close releases the shared session if the client created it. A borrowed
// *http.Client is left untouched. Close is idempotent.
func (c *AsyncClient) Close() error {
	c.closeOnce.Do(func() {
		c.closeErr = c.shared.close()
		c.logger.Debug().Msg("MEFrp client closed")
	})
	return c.closeErr
}

func applyOptions(opts []Option) clientOptions {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func newConfigFromOptions(o clientOptions) *Config {
	return NewConfig(o.token, o.baseURL, o.userAgent, o.timeout, o.bypassSystemProxy)
}

// Config returns the client's live configuration. Changes apply to the next call.
func (c *Client) Config() *Config {
	return c.cfg
}

// SetToken replaces the bearer token used by subsequent calls.
func (c *Client) SetToken(token string) {
	c.cfg.SetToken(token)
}

// send performs one exchange and returns the envelope's data member.
//
// Outcomes are classified in order: transport failure or timeout, HTTP 401,
// a body that is not a JSON envelope, a non-200 envelope code, success.
func (c *Client) send(ctx context.Context, method, path string, body any, query url.Values) (json.RawMessage, error) {
	// The timeout also bounds waiting for a shared session being created.
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout())
	defer cancel()

	sess, release, err := c.sessions.acquire(ctx)
	if err != nil {
		return nil, &NetworkError{Message: "failed to acquire session", Err: err}
	}
	defer release()

	req, err := c.newRequest(ctx, method, path, body, query)
	if err != nil {
		return nil, err
	}

	resp, err := sess.client.Do(req)
	if err != nil {
		return nil, transportError(err)
	}
	defer resp.Body.Close()

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Msg("MEFrp API response")

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, newAuthError()
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, transportError(err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		text := string(raw)
		return nil, &APIError{
			Code:    resp.StatusCode,
			Message: "failed to decode response: " + text,
			Body:    text,
		}
	}

	if env.Code != codeOK {
		msg := env.Message
		if msg == "" {
			msg = "Unknown error"
		}
		return nil, &APIError{Code: env.Code, Message: msg}
	}

	if env.Data == nil {
		env.Data = json.RawMessage("null")
	}
	return env.Data, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body any, query url.Values) (*http.Request, error) {
	u := c.cfg.BaseURL() + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, &NetworkError{Message: "failed to encode request body", Err: err}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, &NetworkError{Message: "failed to create request", Err: err}
	}
	req.Header = c.cfg.Headers()
	return req, nil
}

func transportError(err error) *NetworkError {
	if errors.Is(err, context.DeadlineExceeded) {
		return &NetworkError{Message: "request timed out", Err: err}
	}
	return &NetworkError{Message: "network request failed", Err: err}
}

// roundTrip runs send, hands the data to decode, then logs and observes the
// combined outcome.
func (c *Client) roundTrip(ctx context.Context, method, path string, body any, query url.Values, decode func(json.RawMessage) error) error {
	start := time.Now()

	raw, err := c.send(ctx, method, path, body, query)
	if err == nil && decode != nil {
		err = decode(raw)
	}

	elapsed := time.Since(start)
	kind := KindOf(err)
	if c.observer != nil {
		c.observer.ObserveRequest(method, path, kind, elapsed)
	}

	if err != nil {
		c.logger.Debug().
			Err(err).
			Str("method", method).
			Str("path", path).
			Stringer("kind", kind).
			Dur("duration", elapsed).
			Msg("MEFrp API request failed")
		return err
	}

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Dur("duration", elapsed).
		Msg("MEFrp API request completed")
	return nil
}

// exec performs a call whose data is not needed.
func (c *Client) exec(ctx context.Context, method, path string, body any, query url.Values) error {
	return c.roundTrip(ctx, method, path, body, query, nil)
}

// fetch performs a call and decodes its data as one T.
func fetch[T any](ctx context.Context, c *Client, method, path string, body any, query url.Values) (*T, error) {
	var out *T
	err := c.roundTrip(ctx, method, path, body, query, func(raw json.RawMessage) error {
		var err error
		out, err = DecodeRecord[T](raw)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// fetchList performs a call and decodes its data as a list of T.
func fetchList[T any](ctx context.Context, c *Client, method, path string, body any, query url.Values) ([]T, error) {
	var out []T
	err := c.roundTrip(ctx, method, path, body, query, func(raw json.RawMessage) error {
		var err error
		out, err = DecodeRecordList[T](raw)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// fetchValue performs a call whose data is a scalar or a plain JSON value.
func fetchValue[T any](ctx context.Context, c *Client, method, path string, body any, query url.Values) (T, error) {
	var zero T
	out, err := fetch[T](ctx, c, method, path, body, query)
	if err != nil {
		return zero, err
	}
	return *out, nil
}

func idQuery(key string, id int64) url.Values {
	q := url.Values{}
	q.Set(key, fmt.Sprintf("%d", id))
	return q
}
