package filter

import (
	"context"

	"github.com/s0up4200/mefrp-go/mefrp"
)

// Subject is what a filter sees: one proxy and the node it runs on.
type Subject struct {
	Proxy mefrp.Proxy
	Node  mefrp.NodeConnection
}

// Subjects pairs every proxy in list with its node. Proxies on a node missing
// from the list get a zero NodeConnection carrying only the node id.
func Subjects(list *mefrp.ProxyList) []Subject {
	if list == nil {
		return []Subject{}
	}

	nodes := make(map[int64]mefrp.NodeConnection, len(list.Nodes))
	for _, n := range list.Nodes {
		nodes[n.NodeID] = n
	}

	out := make([]Subject, 0, len(list.Proxies))
	for _, p := range list.Proxies {
		node, ok := nodes[p.NodeID]
		if !ok {
			node = mefrp.NodeConnection{NodeID: p.NodeID}
		}
		out = append(out, Subject{Proxy: p, Node: node})
	}
	return out
}

// Filter checks a single subject
type Filter interface {
	// Evaluate reports whether s matches
	Evaluate(s Subject) (bool, error)
}

// CompiledFilter represents a pre-compiled filter ready for evaluation
type CompiledFilter interface {
	Filter

	// Expression returns the original filter expression
	Expression() string
}

// Compiler compiles filter expressions into executable filters
type Compiler interface {
	// Compile parses and compiles a filter expression
	Compile(expression string) (CompiledFilter, error)
}

// CachingCompiler provides caching for compiled filters
type CachingCompiler interface {
	Compiler

	// Clear removes all cached filters
	Clear()

	// Size returns the number of cached filters
	Size() int
}

// Evaluator applies a filter to many subjects
type Evaluator interface {
	Evaluate(ctx context.Context, filter CompiledFilter, subjects []Subject) ([]Subject, error)
}
