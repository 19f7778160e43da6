package mefrp

import "context"

// Future is the pending result of an operation started with Go.
type Future[T any] struct {
	done chan struct{}
	val  T
	err  error
}

// Go runs fn on its own goroutine and returns immediately. It accepts any
// client method with the shape func(context.Context) (T, error), for example
// Go(ctx, client.GetUserInfo). Abandoning the Future does not stop the call.
func Go[T any](ctx context.Context, fn func(context.Context) (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		f.val, f.err = fn(ctx)
	}()
	return f
}

// Await blocks until the operation finishes and returns its result.
func (f *Future[T]) Await() (T, error) {
	<-f.done
	return f.val, f.err
}

// Done is closed when the operation finishes.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}
