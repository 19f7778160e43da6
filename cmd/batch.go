package cmd

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"
)

// batchLimit caps concurrent mutating calls against the API
const batchLimit = 5

// batchResult contains the results of a batch proxy operation
type batchResult struct {
	Requested  int
	Successful []int64
	Failed     []batchError
}

// batchError records a failed operation on one proxy
type batchError struct {
	ProxyID int64
	Err     error
}

func (e batchError) Error() string {
	return fmt.Sprintf("proxy %d: %v", e.ProxyID, e.Err)
}

// runBatch applies op to every id with bounded concurrency. Individual
// failures are collected rather than cancelling the remaining calls.
func runBatch(ctx context.Context, ids []int64, op func(ctx context.Context, id int64) error) batchResult {
	result := batchResult{Requested: len(ids)}
	if len(ids) == 0 {
		return result
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(batchLimit)

	successChan := make(chan int64, len(ids))
	errorChan := make(chan batchError, len(ids))

	for _, id := range ids {
		g.Go(func() error {
			if err := op(ctx, id); err != nil {
				errorChan <- batchError{ProxyID: id, Err: err}
				return nil
			}
			successChan <- id
			return nil
		})
	}

	_ = g.Wait()
	close(successChan)
	close(errorChan)

	for id := range successChan {
		result.Successful = append(result.Successful, id)
	}
	for err := range errorChan {
		result.Failed = append(result.Failed, err)
	}

	slices.Sort(result.Successful)
	slices.SortFunc(result.Failed, func(a, b batchError) int {
		return cmp.Compare(a.ProxyID, b.ProxyID)
	})
	return result
}
