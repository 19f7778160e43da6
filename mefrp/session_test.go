package mefrp

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func statsHandler(w http.ResponseWriter, r *http.Request) {
	writeEnvelope(w, 200, "ok", map[string]any{"users": 1, "nodes": 1, "proxies": 1, "traffic": 1})
}

func TestSharedSessionSingleFlight(t *testing.T) {
	srv := newTestServer(t, statsHandler)

	var created atomic.Int32
	factory := func(cfg *Config) (*Session, error) {
		created.Add(1)
		time.Sleep(20 * time.Millisecond)
		return newSession(cfg)
	}

	c := NewAsync(WithBaseURL(srv.URL), withSessionFactory(factory))
	defer c.Close()

	const callers = 25
	g, ctx := errgroup.WithContext(context.Background())
	for i := 0; i < callers; i++ {
		g.Go(func() error {
			_, err := c.GetStatistics(ctx)
			return err
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, int32(1), created.Load())
	assert.Equal(t, stateReady, c.shared.current())
}

func TestSharedSessionRetriesAfterFactoryFailure(t *testing.T) {
	srv := newTestServer(t, statsHandler)

	var calls atomic.Int32
	factory := func(cfg *Config) (*Session, error) {
		if calls.Add(1) == 1 {
			return nil, errors.New("no sockets left")
		}
		return newSession(cfg)
	}

	c := NewAsync(WithBaseURL(srv.URL), withSessionFactory(factory))
	defer c.Close()

	_, err := c.GetStatistics(context.Background())
	assert.Equal(t, KindNetwork, KindOf(err))
	assert.Equal(t, stateUninitialized, c.shared.current())

	_, err = c.GetStatistics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestAsyncCloseReleasesOwnedSessionOnce(t *testing.T) {
	srv := newTestServer(t, statsHandler)

	tr := newTrackingTransport()
	factory := func(cfg *Config) (*Session, error) {
		return &Session{client: &http.Client{Transport: tr}, owned: true}, nil
	}

	c := NewAsync(WithBaseURL(srv.URL), withSessionFactory(factory))
	_, err := c.GetStatistics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(0), tr.closed.Load(), "calls never release the shared session")

	require.NoError(t, c.Close())
	require.NoError(t, c.Close())
	assert.Equal(t, int32(1), tr.closed.Load())
	assert.Equal(t, stateClosed, c.shared.current())

	_, err = c.GetStatistics(context.Background())
	assert.Equal(t, KindNetwork, KindOf(err))
	assert.ErrorIs(t, err, ErrClientClosed)
}

func TestAsyncCloseBeforeUse(t *testing.T) {
	var created atomic.Int32
	factory := func(cfg *Config) (*Session, error) {
		created.Add(1)
		return newSession(cfg)
	}

	c := NewAsync(withSessionFactory(factory))
	require.NoError(t, c.Close())
	assert.Zero(t, created.Load())
}

func TestBorrowedClientIsNeverReleased(t *testing.T) {
	srv := newTestServer(t, statsHandler)

	t.Run("async", func(t *testing.T) {
		tr := newTrackingTransport()
		hc := &http.Client{Transport: tr}

		c := NewAsync(WithBaseURL(srv.URL), WithHTTPClient(hc))
		_, err := c.GetStatistics(context.Background())
		require.NoError(t, err)
		require.NoError(t, c.Close())

		assert.Equal(t, int32(0), tr.closed.Load())
	})

	t.Run("blocking", func(t *testing.T) {
		tr := newTrackingTransport()
		hc := &http.Client{Transport: tr}

		c := New(WithBaseURL(srv.URL), WithHTTPClient(hc))
		_, err := c.GetStatistics(context.Background())
		require.NoError(t, err)

		assert.Equal(t, int32(0), tr.closed.Load())
	})
}

func TestScopedSessionsReleasedPerCall(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/user/info" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		statsHandler(w, r)
	})

	var transports []*trackingTransport
	factory := func(cfg *Config) (*Session, error) {
		tr := newTrackingTransport()
		transports = append(transports, tr)
		return &Session{client: &http.Client{Transport: tr}, owned: true}, nil
	}

	c := New(WithBaseURL(srv.URL), withSessionFactory(factory))
	_, err := c.GetStatistics(context.Background())
	require.NoError(t, err)
	_, err = c.GetUserInfo(context.Background())
	require.Error(t, err)

	require.Len(t, transports, 2, "one session per call")
	for _, tr := range transports {
		assert.Equal(t, int32(1), tr.closed.Load(), "released on success and on failure")
	}
}

func TestNewSessionProxySettings(t *testing.T) {
	bypass, err := newSession(NewConfig("", "", "", 0, true))
	require.NoError(t, err)
	assert.True(t, bypass.Owned())
	assert.Nil(t, bypass.client.Transport.(*http.Transport).Proxy)

	system, err := newSession(NewConfig("", "", "", 0, false))
	require.NoError(t, err)
	assert.NotNil(t, system.client.Transport.(*http.Transport).Proxy)
}

func TestSessionStateString(t *testing.T) {
	assert.Equal(t, "initializing", stateInitializing.String())
	assert.Equal(t, "closed", stateClosed.String())
}

func TestTimeoutBoundsWaitForSharedSession(t *testing.T) {
	srv := newTestServer(t, statsHandler)

	unblock := make(chan struct{})
	factory := func(cfg *Config) (*Session, error) {
		<-unblock
		return newSession(cfg)
	}

	c := NewAsync(WithBaseURL(srv.URL), WithTimeout(50*time.Millisecond), withSessionFactory(factory))
	defer c.Close()

	first := make(chan error, 1)
	go func() {
		_, err := c.GetStatistics(context.Background())
		first <- err
	}()
	require.Eventually(t, func() bool {
		return c.shared.current() == stateInitializing
	}, time.Second, 5*time.Millisecond)

	start := time.Now()
	_, err := c.GetStatistics(context.Background())
	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, KindNetwork, KindOf(err))
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	close(unblock)
	<-first
}
