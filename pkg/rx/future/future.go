package future

import (
	"context"
	"sync/atomic"
)

// Future is a handle to a one-shot deferred computation producing a single
// value of type T. Copies share the same resolution state, so a Future can
// be handed across goroutines and awaited from any of them.
type Future[T any] struct {
	state *state[T]
}

type state[T any] struct {
	promise func(ctx context.Context) T

	started atomic.Bool
	done    chan struct{}

	res T
}

// New creates a Future around promise. The promise is called at most once,
// by whichever Await drives the future first.
func New[T any](promise func(ctx context.Context) T) Future[T] {
	return Future[T]{state: &state[T]{
		promise: promise,
		done:    make(chan struct{}),
	}}
}

// Ready creates an already-resolved Future holding v.
func Ready[T any](v T) Future[T] {
	f := New(func(context.Context) T { return v })
	f.state.started.Store(true)
	f.state.run(context.Background())
	return f
}

func (s *state[T]) run(ctx context.Context) {
	s.res = s.promise(ctx)
	close(s.done)
}

// Await blocks until the result is available or ctx is done. The first
// caller drives the promise on its own goroutine and runs it to
// completion; the promise receives ctx and is responsible for honoring
// cancellation itself. Later callers only wait: on ctx expiry they return
// the zero value and ctx.Err() while the computation keeps running, and a
// later Await still observes its result.
func (f Future[T]) Await(ctx context.Context) (T, error) {
	s := f.state

	if s.started.CompareAndSwap(false, true) {
		s.run(ctx)
		return s.res, nil
	}

	select {
	case <-s.done:
		return s.res, nil
	default:
	}

	select {
	case <-s.done:
		return s.res, nil
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// TryAwait reports the result without blocking: ok is false while the
// future is still unresolved.
func (f Future[T]) TryAwait() (T, bool) {
	select {
	case <-f.state.done:
		return f.state.res, true
	default:
		var zero T
		return zero, false
	}
}
