package mefrp

import (
	"context"
	"net/http"
	"sync"
)

// Session is the HTTP client a call travels on.
type Session struct {
	client *http.Client
	owned  bool
}

// Owned reports whether the session was created by this package and will be
// released by it.
func (s *Session) Owned() bool {
	return s.owned
}

func (s *Session) release() {
	if s.owned {
		s.client.CloseIdleConnections()
	}
}

// newSession builds an owned session. Proxy settings are read from the
// environment unless cfg bypasses them.
func newSession(cfg *Config) (*Session, error) {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if cfg.BypassSystemProxy() {
		transport.Proxy = nil
	} else {
		transport.Proxy = http.ProxyFromEnvironment
	}

	return &Session{
		client: &http.Client{Transport: transport},
		owned:  true,
	}, nil
}

type sessionFactory func(cfg *Config) (*Session, error)

// sessionManager hands out the session a call should use. The returned
// release func must be called once the call is finished with the session.
type sessionManager interface {
	acquire(ctx context.Context) (*Session, func(), error)
	close() error
}

// scopedSessions gives every call its own session, released when the call
// returns. A borrowed client is shared and never released.
type scopedSessions struct {
	cfg      *Config
	borrowed *http.Client
	factory  sessionFactory
}

func (s *scopedSessions) acquire(ctx context.Context) (*Session, func(), error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	if s.borrowed != nil {
		return &Session{client: s.borrowed}, func() {}, nil
	}

	sess, err := s.factory(s.cfg)
	if err != nil {
		return nil, nil, err
	}
	return sess, sess.release, nil
}

func (s *scopedSessions) close() error {
	return nil
}

type sessionState int

const (
	stateUninitialized sessionState = iota
	stateInitializing
	stateReady
	stateClosed
)

func (s sessionState) String() string {
	switch s {
	case stateUninitialized:
		return "uninitialized"
	case stateInitializing:
		return "initializing"
	case stateReady:
		return "ready"
	case stateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// sharedSessions lazily creates one session and shares it between all calls.
// Only the goroutine that moves the state from uninitialized to initializing
// runs the factory; concurrent callers wait on ready and then re-read the
// state, so exactly one session is created however many calls race.
type sharedSessions struct {
	cfg     *Config
	factory sessionFactory

	mu    sync.Mutex
	state sessionState
	ready chan struct{}
	sess  *Session
}

func newSharedSessions(cfg *Config, borrowed *http.Client, factory sessionFactory) *sharedSessions {
	s := &sharedSessions{cfg: cfg, factory: factory}
	if borrowed != nil {
		s.sess = &Session{client: borrowed}
		s.state = stateReady
	}
	return s
}

func (s *sharedSessions) acquire(ctx context.Context) (*Session, func(), error) {
	for {
		s.mu.Lock()
		switch s.state {
		case stateReady:
			sess := s.sess
			s.mu.Unlock()
			return sess, func() {}, nil

		case stateClosed:
			s.mu.Unlock()
			return nil, nil, ErrClientClosed

		case stateInitializing:
			ready := s.ready
			s.mu.Unlock()
			select {
			case <-ready:
				continue
			case <-ctx.Done():
				return nil, nil, ctx.Err()
			}

		default:
			s.state = stateInitializing
			s.ready = make(chan struct{})
			s.mu.Unlock()

			sess, err := s.factory(s.cfg)

			s.mu.Lock()
			switch {
			case s.state == stateClosed:
				// Close ran while the factory was busy.
				if sess != nil {
					sess.release()
				}
				err = ErrClientClosed
			case err != nil:
				s.state = stateUninitialized
			default:
				s.sess = sess
				s.state = stateReady
			}
			close(s.ready)
			s.mu.Unlock()

			if err != nil {
				return nil, nil, err
			}
			return sess, func() {}, nil
		}
	}
}

// close releases an owned session. Calling it again is a no-op.
func (s *sharedSessions) close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == stateClosed {
		return nil
	}
	if s.state == stateReady && s.sess != nil {
		s.sess.release()
	}
	s.sess = nil
	s.state = stateClosed
	return nil
}

func (s *sharedSessions) current() sessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}
