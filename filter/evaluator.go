package filter

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// EvaluatorOption configures an evaluator
type EvaluatorOption func(*ConcurrentEvaluator)

// WithWorkers sets the number of concurrent chunk workers
func WithWorkers(workers int) EvaluatorOption {
	return func(e *ConcurrentEvaluator) {
		if workers > 0 {
			e.workerCount = workers
		}
	}
}

// WithBatchSize sets the minimum chunk size; smaller inputs run sequentially
func WithBatchSize(size int) EvaluatorOption {
	return func(e *ConcurrentEvaluator) {
		if size > 0 {
			e.batchSize = size
		}
	}
}

// ConcurrentEvaluator splits large subject lists into chunks and evaluates
// them in parallel. Result order always matches input order.
type ConcurrentEvaluator struct {
	workerCount int
	batchSize   int
}

// NewConcurrentEvaluator creates a new concurrent evaluator
func NewConcurrentEvaluator(opts ...EvaluatorOption) *ConcurrentEvaluator {
	e := &ConcurrentEvaluator{
		workerCount: runtime.GOMAXPROCS(0),
		batchSize:   100,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Evaluate returns the subjects matching filter. The first evaluation
// error aborts the run.
func (e *ConcurrentEvaluator) Evaluate(ctx context.Context, filter CompiledFilter, subjects []Subject) ([]Subject, error) {
	if len(subjects) == 0 {
		return []Subject{}, nil
	}

	if len(subjects) < e.batchSize || e.workerCount == 1 {
		return evaluateChunk(ctx, filter, subjects)
	}

	return e.evaluateConcurrent(ctx, filter, subjects)
}

func (e *ConcurrentEvaluator) evaluateConcurrent(ctx context.Context, filter CompiledFilter, subjects []Subject) ([]Subject, error) {
	chunkSize := max(len(subjects)/e.workerCount, e.batchSize)
	chunks := (len(subjects) + chunkSize - 1) / chunkSize
	results := make([][]Subject, chunks)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workerCount)

	for i := range chunks {
		start := i * chunkSize
		end := min(start+chunkSize, len(subjects))

		g.Go(func() error {
			matches, err := evaluateChunk(ctx, filter, subjects[start:end])
			if err != nil {
				return err
			}
			// Each goroutine owns its slot.
			results[i] = matches
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, r := range results {
		total += len(r)
	}
	out := make([]Subject, 0, total)
	for _, r := range results {
		out = append(out, r...)
	}
	return out, nil
}

func evaluateChunk(ctx context.Context, filter CompiledFilter, subjects []Subject) ([]Subject, error) {
	matches := make([]Subject, 0, len(subjects)/4)
	for _, s := range subjects {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		ok, err := filter.Evaluate(s)
		if err != nil {
			return nil, err
		}
		if ok {
			matches = append(matches, s)
		}
	}
	return matches, nil
}
