package mefrp

import (
	"errors"
	"fmt"
	"net/http"
)

// Common errors
var (
	// ErrUnauthorized is matched by every *AuthError
	ErrUnauthorized = errors.New("unauthorized: invalid token")
	// ErrClientClosed is returned when a closed AsyncClient is used
	ErrClientClosed = errors.New("client is closed")
)

// ErrorKind names the class of a failed call.
type ErrorKind int

const (
	// KindNone is reported for a nil error.
	KindNone ErrorKind = iota
	// KindAuth means the service rejected the credentials (HTTP 401).
	KindAuth
	// KindAPI means the service answered but reported a failure.
	KindAPI
	// KindNetwork means no usable response arrived.
	KindNetwork
	// KindDecode means the response data did not fit the expected record.
	KindDecode
	// KindOther is reported for errors outside the taxonomy.
	KindOther
)

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "ok"
	case KindAuth:
		return "auth"
	case KindAPI:
		return "api"
	case KindNetwork:
		return "network"
	case KindDecode:
		return "decode"
	default:
		return "other"
	}
}

// KindOf classifies err by walking its chain.
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindNone
	}

	var authErr *AuthError
	var apiErr *APIError
	var netErr *NetworkError
	var decErr *DecodeError

	switch {
	case errors.As(err, &authErr):
		return KindAuth
	case errors.As(err, &apiErr):
		return KindAPI
	case errors.As(err, &netErr):
		return KindNetwork
	case errors.As(err, &decErr):
		return KindDecode
	default:
		return KindOther
	}
}

// AuthError is returned when the service answers with HTTP 401. The body of
// such a response is never inspected.
type AuthError struct {
	StatusCode int
}

func (e *AuthError) Error() string {
	return "Unauthorized: invalid token"
}

// Is makes errors.Is(err, ErrUnauthorized) hold for any *AuthError.
func (e *AuthError) Is(target error) bool {
	return target == ErrUnauthorized
}

func newAuthError() *AuthError {
	return &AuthError{StatusCode: http.StatusUnauthorized}
}

// APIError is returned when the envelope code is not 200, or when the body is
// not a JSON envelope at all. In the latter case Code is the HTTP status and
// Body holds the raw response text.
type APIError struct {
	Code    int
	Message string
	Body    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: %s (code: %d)", e.Message, e.Code)
}

// IsNotFound reports whether the service answered with a 404 code.
func (e *APIError) IsNotFound() bool {
	return e.Code == http.StatusNotFound
}

// NetworkError is returned when the exchange failed before a response could
// be classified: connection errors, timeouts and cancellation.
type NetworkError struct {
	Message string
	Err     error
}

func (e *NetworkError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the failure was the per-call deadline.
func (e *NetworkError) Timeout() bool {
	type timeout interface{ Timeout() bool }
	var t timeout
	return errors.As(e.Err, &t) && t.Timeout()
}

// DecodeError is returned when response data does not match the expected
// record. Field is the JSON path of the offending value, for example
// "data.proxies[2].proxyId".
type DecodeError struct {
	Field  string
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode field %q: %s", e.Field, e.Reason)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
