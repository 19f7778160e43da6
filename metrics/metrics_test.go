package metrics

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/mefrp-go/mefrp"
)

func TestObserveRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(reg)

	c.ObserveRequest(http.MethodGet, "/auth/user/info", mefrp.KindNone, 20*time.Millisecond)
	c.ObserveRequest(http.MethodGet, "/auth/user/info", mefrp.KindAuth, 5*time.Millisecond)
	c.ObserveRequest(http.MethodGet, "/auth/user/info", mefrp.KindAuth, 5*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.RequestsTotal.WithLabelValues("GET", "/auth/user/info", "ok")))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.RequestsTotal.WithLabelValues("GET", "/auth/user/info", "auth")))
	assert.Equal(t, 1, testutil.CollectAndCount(c.RequestDuration))
}

func TestCollectorAsClientObserver(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"code":    200,
			"message": "ok",
			"data":    map[string]any{"status": 0, "remark": "fine"},
		})
	}))
	defer srv.Close()

	reg := prometheus.NewRegistry()
	c := New(reg)

	client := mefrp.New(mefrp.WithBaseURL(srv.URL), mefrp.WithObserver(c))
	_, err := client.GetSystemStatus(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.RequestsTotal.WithLabelValues("GET", "/auth/system/status", "ok")))
}

func TestWriteText(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(reg)
	c.ObserveRequest(http.MethodPost, "/auth/proxy/kick", mefrp.KindAPI, time.Millisecond)

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, reg))

	out := buf.String()
	assert.Contains(t, out, "mefrp_requests_total")
	assert.Contains(t, out, `outcome="api"`)
	assert.Contains(t, out, "mefrp_request_duration_seconds_bucket")
}
