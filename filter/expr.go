package filter

import (
	"fmt"
	"maps"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// exprFilter implements CompiledFilter using the expr language
type exprFilter struct {
	expression string
	program    *vm.Program
	helpers    map[string]any
}

// ExprCompilerOption configures an expr compiler
type ExprCompilerOption func(*exprCompiler)

// WithCache enables filter caching with the specified size
func WithCache(size int) ExprCompilerOption {
	return func(c *exprCompiler) {
		if size > 0 {
			c.cache = newLRUCache[*exprFilter](size)
		}
	}
}

// WithCustomFunctions adds custom helper functions
func WithCustomFunctions(funcs map[string]any) ExprCompilerOption {
	return func(c *exprCompiler) {
		maps.Copy(c.helperFuncs, funcs)
	}
}

// NewExprCompiler creates a new expr-based filter compiler
func NewExprCompiler(opts ...ExprCompilerOption) CachingCompiler {
	c := &exprCompiler{
		helperFuncs: helperFunctions(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// exprCompiler implements Compiler for expr-based filters
type exprCompiler struct {
	helperFuncs map[string]any
	cache       *lruCache[*exprFilter]
}

// Compile compiles an expression into an executable filter
func (c *exprCompiler) Compile(expression string) (CompiledFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	if c.cache != nil {
		if cached, ok := c.cache.Get(expression); ok {
			return cached, nil
		}
	}

	// Compile against a typed environment so unknown names and type
	// mismatches are rejected up front.
	program, err := expr.Compile(expression,
		expr.Env(environment(Subject{}, c.helperFuncs)),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	filter := &exprFilter{
		expression: expression,
		program:    program,
		helpers:    c.helperFuncs,
	}

	if c.cache != nil {
		c.cache.Put(expression, filter)
	}

	return filter, nil
}

// Clear removes all cached filters
func (c *exprCompiler) Clear() {
	if c.cache != nil {
		c.cache.Clear()
	}
}

// Size returns the number of cached filters
func (c *exprCompiler) Size() int {
	if c.cache != nil {
		return c.cache.Len()
	}
	return 0
}

// Evaluate runs the filter against one subject
func (f *exprFilter) Evaluate(s Subject) (bool, error) {
	result, err := expr.Run(f.program, environment(s, f.helpers))
	if err != nil {
		return false, &EvaluationError{
			Expression: f.expression,
			ProxyName:  s.Proxy.ProxyName,
			Err:        err,
		}
	}

	matched, ok := result.(bool)
	if !ok {
		return false, &EvaluationError{
			Expression: f.expression,
			ProxyName:  s.Proxy.ProxyName,
			Err:        fmt.Errorf("expression returned %T, not bool", result),
		}
	}
	return matched, nil
}

// Expression returns the original expression
func (f *exprFilter) Expression() string {
	return f.expression
}

// helperFunctions returns the functions available to every expression
func helperFunctions() map[string]any {
	return map[string]any{
		// Timestamps from the API are unix seconds; zero means never.
		"daysSince": func(unix int) int {
			if unix <= 0 {
				return -1
			}
			return int(time.Since(time.Unix(int64(unix), 0)).Hours() / 24)
		},
		"hoursSince": func(unix int) int {
			if unix <= 0 {
				return -1
			}
			return int(time.Since(time.Unix(int64(unix), 0)).Hours())
		},
		"icontains": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		"iprefix": func(str, prefix string) bool {
			return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
		},
		"isuffix": func(str, suffix string) bool {
			return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
		},
		"unixNow": func() int {
			return int(time.Now().Unix())
		},
	}
}

// environment exposes a subject to expressions. Numbers are plain ints so
// literals compare without conversions.
func environment(s Subject, helpers map[string]any) map[string]any {
	p := s.Proxy
	env := make(map[string]any, len(helpers)+20)
	maps.Copy(env, helpers)

	env["id"] = int(p.ProxyID)
	env["name"] = p.ProxyName
	env["proxyType"] = p.ProxyType
	env["online"] = p.IsOnline
	env["disabled"] = p.IsDisabled
	env["banned"] = p.IsBanned
	env["node"] = int(p.NodeID)
	env["nodeName"] = s.Node.Name
	env["hostname"] = s.Node.Hostname
	env["localIp"] = p.LocalIP
	env["localPort"] = p.LocalPort
	env["remotePort"] = p.RemotePort
	env["domain"] = p.Domain
	env["lastStart"] = int(p.LastStartTime)
	env["lastClose"] = int(p.LastCloseTime)
	env["clientVersion"] = p.ClientVersion
	env["encrypted"] = p.UseEncryption
	env["compressed"] = p.UseCompression

	return env
}
