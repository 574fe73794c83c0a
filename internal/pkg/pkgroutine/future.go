package pkgroutine

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
)

// Future is the pending result of a task started with Go.
type Future[T any] struct {
	done chan struct{}
	val  T
	err  error
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

func (f *Future[T]) resolve(val T, err error) {
	f.val = val
	f.err = err
	close(f.done)
}

// Done is closed once the future has resolved.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the future resolves or ctx is done.
//
// Giving up on ctx does not cancel the task; it keeps running under the
// context it was started with.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Go runs fn on a new goroutine bounded by m and returns its Future without
// waiting for a free slot. A nil manager runs fn unbounded.
//
// If ctx ends before a slot frees up, fn is never called and the future
// resolves with ctx.Err(). A panic in fn resolves the future with an error.
func Go[T any](ctx context.Context, m *Manager, fn func(ctx context.Context) (T, error)) *Future[T] {
	f := newFuture[T]()

	run := func() {
		var (
			val T
			err error
		)
		defer func() {
			if rvr := recover(); rvr != nil {
				slog.ErrorContext(ctx, "panic occurred in future", "stack", string(debug.Stack()))
				var zero T
				val, err = zero, fmt.Errorf("panic: %v", rvr)
			}
			f.resolve(val, err)
		}()

		val, err = fn(ctx)
	}

	if m == nil {
		go run()
		return f
	}

	m.spawn(ctx, run, func(err error) {
		var zero T
		f.resolve(zero, err)
	})

	return f
}
