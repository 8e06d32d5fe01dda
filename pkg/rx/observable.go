package rx

// Emitter is the plug-in point of the push protocol: Emit is invoked once
// per subscription with the sink to push into. Emitters must not assume the
// subscribing goroutine is the one the sink is invoked from.
type Emitter[T any] interface {
	Emit(o Observer[T])
}

// Observable is a subscribable wrapper around an Emitter.
type Observable[T any] struct {
	emitter Emitter[T]
}

// New builds an Observable around an emission routine.
func New[T any](e Emitter[T]) Observable[T] {
	return Observable[T]{emitter: e}
}

// Subscribe triggers the emitter with o as the sink. The observer is wrapped
// so it is safe to invoke from any goroutine and receives nothing after the
// terminal notification.
func (ob Observable[T]) Subscribe(o Observer[T]) {
	ob.emitter.Emit(newSubscriber(o))
}

// SubscribeFunc subscribes with handler funcs; nil handlers are ignored.
func (ob Observable[T]) SubscribeFunc(onNext func(v T), onError func(err error), onComplete func()) {
	ob.Subscribe(NewObserver(onNext, onError, onComplete))
}
