package from

import (
	"context"
	"fmt"

	"github.com/rx-bridge/rxb/pkg/rx"
	"github.com/rx-bridge/rxb/pkg/rx/future"
	"github.com/rx-bridge/rxb/pkg/rx/pool"
)

// Future converts a one-shot future into an observable that delivers the
// resolved value as next(v) followed by complete, on a pool worker.
//
// The value is forwarded unexamined: a failure-shaped output still arrives
// via next, never as a stream error. Use FutureOutcome when the failure arm
// should reach the error handler instead.
//
// An optional pool may be injected; otherwise pool.Shared() is used.
func Future[T any](f future.Future[T], pools ...*pool.Pool) rx.Observable[T] {
	return rx.New[T](futureEmitter[T]{f: f, pool: pickPool(pools)})
}

type futureEmitter[T any] struct {
	f    future.Future[T]
	pool *pool.Pool
}

func (e futureEmitter[T]) Emit(o rx.Observer[T]) {
	submit(e.pool, func() {
		v, _ := e.f.Await(context.Background())
		rx.Just(v).Emit(o)
	})
}

// FutureOutcome converts a one-shot future into an observable, classifying
// the resolved output through the caller-supplied into conversion: the
// success arm is delivered as next(v)+complete, the failure arm as a single
// error notification. Exactly one of the two sequences fires.
func FutureOutcome[O, T any](f future.Future[O], into func(out O) rx.Outcome[T], pools ...*pool.Pool) rx.Observable[T] {
	return rx.New[T](futureOutcomeEmitter[O, T]{f: f, into: into, pool: pickPool(pools)})
}

// FutureResult bridges a future that already resolves to an Outcome.
func FutureResult[T any](f future.Future[rx.Outcome[T]], pools ...*pool.Pool) rx.Observable[T] {
	return FutureOutcome(f, func(out rx.Outcome[T]) rx.Outcome[T] { return out }, pools...)
}

type futureOutcomeEmitter[O, T any] struct {
	f    future.Future[O]
	into func(out O) rx.Outcome[T]
	pool *pool.Pool
}

func (e futureOutcomeEmitter[O, T]) Emit(o rx.Observer[T]) {
	submit(e.pool, func() {
		v, _ := e.f.Await(context.Background())
		rx.JustOutcome(e.into(v)).Emit(o)
	})
}

func pickPool(pools []*pool.Pool) *pool.Pool {
	if len(pools) > 0 {
		return pools[0]
	}
	return nil
}

// submit hands the continuation to the pool, falling back to the shared
// pool at emission time. A failed hand-off has no recovery path: the stream
// must either emit the full sequence or nothing, so it panics.
func submit(p *pool.Pool, work func()) {
	if p == nil {
		p = pool.Shared()
	}
	if err := p.Submit(work); err != nil {
		panic(fmt.Errorf("rxb: submit emission to worker pool: %w", err))
	}
}
