package mefrp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func withSessionFactory(f sessionFactory) Option {
	return func(o *clientOptions) {
		o.factory = f
	}
}

func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func writeEnvelope(w http.ResponseWriter, code int, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"code":    code,
		"message": message,
		"data":    data,
	})
}

// trackingTransport counts how often the SDK releases it.
type trackingTransport struct {
	base   http.RoundTripper
	closed atomic.Int32
}

func (t *trackingTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	return t.base.RoundTrip(r)
}

func (t *trackingTransport) CloseIdleConnections() {
	t.closed.Add(1)
}

func newTrackingTransport() *trackingTransport {
	return &trackingTransport{base: http.DefaultTransport.(*http.Transport).Clone()}
}

const userInfoJSON = `{
	"userId": 42,
	"username": "alice",
	"email": "alice@example.com",
	"group": "vip",
	"isRealname": true,
	"regTime": 1700000000,
	"status": 0,
	"traffic": 1073741824,
	"usedProxies": 3,
	"friendlyGroup": "VIP",
	"maxProxies": 20,
	"inBound": 1024,
	"outBound": 1024,
	"todaySigned": false
}`

const proxyJSON = `{
	"proxyId": 7,
	"username": "alice",
	"proxyName": "web",
	"proxyType": "http",
	"isBanned": false,
	"isDisabled": false,
	"localIp": "127.0.0.1",
	"localPort": 8080,
	"remotePort": 0,
	"nodeId": 3,
	"runId": "abc",
	"isOnline": true,
	"domain": "web.example.com",
	"lastStartTime": 1700000000,
	"lastCloseTime": 0,
	"clientVersion": "0.61.0",
	"proxyProtocolVersion": "",
	"useEncryption": true,
	"useCompression": false,
	"accessKey": "",
	"hostHeaderRewrite": ""
}`
