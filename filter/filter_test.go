package filter

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/mefrp-go/mefrp"
)

func testSubjects() []Subject {
	list := &mefrp.ProxyList{
		Proxies: []mefrp.Proxy{
			{ProxyID: 1, ProxyName: "web", ProxyType: "http", IsOnline: true, NodeID: 10, LocalIP: "127.0.0.1", LocalPort: 8080, Domain: "Web.Example.com"},
			{ProxyID: 2, ProxyName: "ssh", ProxyType: "tcp", IsOnline: false, NodeID: 10, LocalPort: 22, RemotePort: 22022},
			{ProxyID: 3, ProxyName: "mc", ProxyType: "tcp", IsOnline: true, IsDisabled: true, NodeID: 20, LocalPort: 25565, RemotePort: 25565},
			{ProxyID: 4, ProxyName: "old", ProxyType: "udp", NodeID: 99, LastStartTime: time.Now().Add(-72 * time.Hour).Unix()},
		},
		Nodes: []mefrp.NodeConnection{
			{NodeID: 10, Name: "Shanghai", Hostname: "sh.example.com"},
			{NodeID: 20, Name: "Hong Kong", Hostname: "hk.example.com"},
		},
	}
	return Subjects(list)
}

func names(subjects []Subject) []string {
	out := make([]string, 0, len(subjects))
	for _, s := range subjects {
		out = append(out, s.Proxy.ProxyName)
	}
	return out
}

func TestSubjects(t *testing.T) {
	subjects := testSubjects()
	require.Len(t, subjects, 4)

	assert.Equal(t, "Shanghai", subjects[0].Node.Name)
	assert.Equal(t, "Hong Kong", subjects[2].Node.Name)
	// Unknown node keeps only the id.
	assert.Equal(t, int64(99), subjects[3].Node.NodeID)
	assert.Empty(t, subjects[3].Node.Name)

	assert.Empty(t, Subjects(nil))
}

func TestCompile(t *testing.T) {
	tests := []struct {
		name        string
		expression  string
		wantErr     bool
		errContains string
	}{
		{name: "simple bool", expression: "online"},
		{name: "combined", expression: `proxyType == "tcp" and remotePort > 20000`},
		{name: "helpers", expression: `icontains(domain, "example") or daysSince(lastStart) > 1`},
		{name: "node fields", expression: `nodeName == "Shanghai" && hostname endsWith ".com"`},
		{name: "empty expression", expression: "   ", wantErr: true, errContains: "empty expression"},
		{name: "invalid syntax", expression: `name == "unclosed`, wantErr: true},
		{name: "unknown variable", expression: `bandwidth > 10`, wantErr: true},
		{name: "type mismatch", expression: `name > 5`, wantErr: true},
		{name: "not boolean", expression: `localPort + 1`, wantErr: true},
	}

	compiler := NewExprCompiler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := compiler.Compile(tt.expression)
			if tt.wantErr {
				require.Error(t, err)
				var compErr *CompilationError
				assert.ErrorAs(t, err, &compErr)
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expression, f.Expression())
		})
	}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		expression string
		want       []string
	}{
		{expression: "online", want: []string{"web", "mc"}},
		{expression: "online and not disabled", want: []string{"web"}},
		{expression: `proxyType == "tcp"`, want: []string{"ssh", "mc"}},
		{expression: `icontains(domain, "web.example")`, want: []string{"web"}},
		{expression: `iprefix(nodeName, "hong")`, want: []string{"mc"}},
		{expression: `node == 10 and localPort < 1024`, want: []string{"ssh"}},
		{expression: `lastStart > 0 and daysSince(lastStart) >= 2`, want: []string{"old"}},
		{expression: `daysSince(lastStart) == -1`, want: []string{"web", "ssh", "mc"}},
		{expression: `lastStart < unixNow()`, want: []string{"web", "ssh", "mc", "old"}},
		{expression: `lower(name) in ["WEB", "mc"]`, want: []string{"mc"}},
	}

	compiler := NewExprCompiler()
	evaluator := NewConcurrentEvaluator()
	subjects := testSubjects()

	for _, tt := range tests {
		t.Run(tt.expression, func(t *testing.T) {
			f, err := compiler.Compile(tt.expression)
			require.NoError(t, err)

			got, err := evaluator.Evaluate(context.Background(), f, subjects)
			require.NoError(t, err)
			assert.Equal(t, tt.want, names(got))
		})
	}
}

func TestEvaluateRuntimeError(t *testing.T) {
	f, err := NewExprCompiler().Compile(`[1, 2][localPort] == 1`)
	require.NoError(t, err)

	_, err = NewConcurrentEvaluator().Evaluate(context.Background(), f, testSubjects())
	require.Error(t, err)

	var evalErr *EvaluationError
	require.ErrorAs(t, err, &evalErr)
	assert.Equal(t, "web", evalErr.ProxyName)
}

func TestCustomFunctions(t *testing.T) {
	compiler := NewExprCompiler(WithCustomFunctions(map[string]any{
		"isWebPort": func(port int) bool { return port == 80 || port == 443 || port == 8080 },
	}))

	f, err := compiler.Compile("isWebPort(localPort)")
	require.NoError(t, err)

	got, err := NewConcurrentEvaluator().Evaluate(context.Background(), f, testSubjects())
	require.NoError(t, err)
	assert.Equal(t, []string{"web"}, names(got))
}

func TestConcurrentEvaluationKeepsOrder(t *testing.T) {
	proxies := make([]mefrp.Proxy, 1000)
	for i := range proxies {
		proxies[i] = mefrp.Proxy{
			ProxyID:   int64(i),
			ProxyName: fmt.Sprintf("p%04d", i),
			LocalPort: i,
			IsOnline:  i%3 == 0,
		}
	}
	subjects := Subjects(&mefrp.ProxyList{Proxies: proxies})

	f, err := NewExprCompiler().Compile("online")
	require.NoError(t, err)

	evaluator := NewConcurrentEvaluator(WithWorkers(4), WithBatchSize(50))
	got, err := evaluator.Evaluate(context.Background(), f, subjects)
	require.NoError(t, err)
	require.Len(t, got, 334)

	for i, s := range got {
		assert.Equal(t, int64(i*3), s.Proxy.ProxyID)
	}
}

func TestEvaluateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f, err := NewExprCompiler().Compile("online")
	require.NoError(t, err)

	_, err = NewConcurrentEvaluator().Evaluate(ctx, f, testSubjects())
	assert.ErrorIs(t, err, context.Canceled)

	got, err := NewConcurrentEvaluator().Evaluate(ctx, f, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestManager(t *testing.T) {
	m := NewManager()

	require.NoError(t, m.RegisterPresets(map[string]string{
		"offline": "not online",
		"tcp":     `proxyType == "tcp"`,
	}))
	require.NoError(t, m.RegisterPreset("stale", "lastStart > 0 and daysSince(lastStart) > 1"))
	assert.Equal(t, []string{"offline", "stale", "tcp"}, m.Names())

	got, err := m.Apply(context.Background(), "offline", testSubjects())
	require.NoError(t, err)
	assert.Equal(t, []string{"ssh", "old"}, names(got))

	_, err = m.Apply(context.Background(), "missing", testSubjects())
	assert.ErrorIs(t, err, ErrPresetNotFound)

	got, err = m.ApplyExpression(context.Background(), "disabled", testSubjects())
	require.NoError(t, err)
	assert.Equal(t, []string{"mc"}, names(got))

	// A bad preset in the batch leaves the registry untouched.
	err = m.RegisterPresets(map[string]string{"good": "online", "bad": "online >"})
	require.Error(t, err)
	_, ok := m.Preset("good")
	assert.False(t, ok)
}

func TestCache(t *testing.T) {
	compiler := NewExprCompiler(WithCache(2))

	first, err := compiler.Compile("online")
	require.NoError(t, err)
	second, err := compiler.Compile("online")
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, 1, compiler.Size())

	_, err = compiler.Compile("disabled")
	require.NoError(t, err)
	_, err = compiler.Compile("banned")
	require.NoError(t, err)
	assert.Equal(t, 2, compiler.Size())

	// "online" was least recently used and has been evicted.
	third, err := compiler.Compile("online")
	require.NoError(t, err)
	assert.NotSame(t, first, third)

	compiler.Clear()
	assert.Equal(t, 0, compiler.Size())
	assert.Equal(t, 0, NewExprCompiler().Size())
}
