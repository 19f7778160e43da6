package filter

import (
	"errors"
	"fmt"
)

// ErrPresetNotFound is returned for an unknown preset name
var ErrPresetNotFound = errors.New("filter preset not found")

// Error types for filter operations
type (
	// CompilationError indicates a filter expression could not be compiled
	CompilationError struct {
		Expression string
		Reason     string
		Err        error
	}

	// EvaluationError indicates a filter failed at run time for one proxy
	EvaluationError struct {
		Expression string
		ProxyName  string
		Err        error
	}
)

func (e *CompilationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("compilation error in '%s': %s: %v", e.Expression, e.Reason, e.Err)
	}
	return fmt.Sprintf("compilation error in '%s': %s", e.Expression, e.Reason)
}

func (e *CompilationError) Unwrap() error {
	return e.Err
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("evaluation of '%s' failed on proxy '%s': %v", e.Expression, e.ProxyName, e.Err)
}

func (e *EvaluationError) Unwrap() error {
	return e.Err
}
