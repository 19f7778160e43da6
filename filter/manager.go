package filter

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"
)

// Manager holds named filter presets and applies them to proxy lists
type Manager struct {
	compiler  Compiler
	evaluator Evaluator
	presets   map[string]CompiledFilter
	mu        sync.RWMutex
}

// ManagerOption configures a filter manager
type ManagerOption func(*Manager)

// WithCompiler sets a custom compiler
func WithCompiler(compiler Compiler) ManagerOption {
	return func(m *Manager) {
		m.compiler = compiler
	}
}

// WithEvaluator sets a custom evaluator
func WithEvaluator(evaluator Evaluator) ManagerOption {
	return func(m *Manager) {
		m.evaluator = evaluator
	}
}

// NewManager creates a new filter manager
func NewManager(opts ...ManagerOption) *Manager {
	m := &Manager{
		compiler:  NewExprCompiler(WithCache(100)),
		evaluator: NewConcurrentEvaluator(),
		presets:   make(map[string]CompiledFilter),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// RegisterPreset compiles expression and stores it under name, replacing any
// existing preset with that name
func (m *Manager) RegisterPreset(name, expression string) error {
	filter, err := m.compiler.Compile(expression)
	if err != nil {
		return fmt.Errorf("failed to compile preset '%s': %w", name, err)
	}

	m.mu.Lock()
	m.presets[name] = filter
	m.mu.Unlock()

	return nil
}

// RegisterPresets registers several presets. Nothing is stored unless every
// expression compiles.
func (m *Manager) RegisterPresets(presets map[string]string) error {
	compiled := make(map[string]CompiledFilter, len(presets))

	for _, name := range slices.Sorted(maps.Keys(presets)) {
		filter, err := m.compiler.Compile(presets[name])
		if err != nil {
			return fmt.Errorf("failed to compile preset '%s': %w", name, err)
		}
		compiled[name] = filter
	}

	m.mu.Lock()
	maps.Copy(m.presets, compiled)
	m.mu.Unlock()

	return nil
}

// Preset returns a compiled preset by name
func (m *Manager) Preset(name string) (CompiledFilter, bool) {
	m.mu.RLock()
	filter, exists := m.presets[name]
	m.mu.RUnlock()
	return filter, exists
}

// Names returns all registered preset names in sorted order
func (m *Manager) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return slices.Sorted(maps.Keys(m.presets))
}

// Apply runs the named preset over subjects
func (m *Manager) Apply(ctx context.Context, name string, subjects []Subject) ([]Subject, error) {
	filter, exists := m.Preset(name)
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrPresetNotFound, name)
	}

	return m.evaluator.Evaluate(ctx, filter, subjects)
}

// ApplyExpression compiles an ad-hoc expression and runs it over subjects
func (m *Manager) ApplyExpression(ctx context.Context, expression string, subjects []Subject) ([]Subject, error) {
	filter, err := m.compiler.Compile(expression)
	if err != nil {
		return nil, err
	}

	return m.evaluator.Evaluate(ctx, filter, subjects)
}
