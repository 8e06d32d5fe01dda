package rx

// justEmitter pushes a single value and completes.
type justEmitter[T any] struct {
	value T
}

// Just returns an emitter that delivers next(v) followed by complete.
func Just[T any](v T) Emitter[T] {
	return justEmitter[T]{value: v}
}

func (e justEmitter[T]) Emit(o Observer[T]) {
	o.Next(e.value)
	o.Complete()
}

// outcomeEmitter pushes the success arm as next+complete and the failure
// arm as a single error notification.
type outcomeEmitter[T any] struct {
	outcome Outcome[T]
}

// JustOutcome returns an emitter that delivers out according to its arm:
// success becomes next(value)+complete, failure becomes error(err).
func JustOutcome[T any](out Outcome[T]) Emitter[T] {
	return outcomeEmitter[T]{outcome: out}
}

func (e outcomeEmitter[T]) Emit(o Observer[T]) {
	e.outcome.Match(
		func(v T) {
			o.Next(v)
			o.Complete()
		},
		o.Error,
	)
}
