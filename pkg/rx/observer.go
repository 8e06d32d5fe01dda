package rx

import "sync"

// Observer receives push notifications. Next delivers a value, Error and
// Complete are terminal: after either one, no further calls arrive.
type Observer[T any] interface {
	Next(v T)
	Error(err error)
	Complete()
}

type funcObserver[T any] struct {
	onNext     func(v T)
	onError    func(err error)
	onComplete func()
}

// NewObserver builds an Observer from handler funcs. Nil handlers are
// ignored, so partial observers are fine.
func NewObserver[T any](onNext func(v T), onError func(err error), onComplete func()) Observer[T] {
	return funcObserver[T]{onNext: onNext, onError: onError, onComplete: onComplete}
}

func (o funcObserver[T]) Next(v T) {
	if o.onNext != nil {
		o.onNext(v)
	}
}

func (o funcObserver[T]) Error(err error) {
	if o.onError != nil {
		o.onError(err)
	}
}

func (o funcObserver[T]) Complete() {
	if o.onComplete != nil {
		o.onComplete()
	}
}

// subscriber makes the downstream observer safe to call from any goroutine
// and enforces the terminal-once rule: once Error or Complete has been
// delivered, every later notification is dropped.
type subscriber[T any] struct {
	mu   sync.Mutex
	dst  Observer[T]
	done bool
}

func newSubscriber[T any](dst Observer[T]) *subscriber[T] {
	return &subscriber[T]{dst: dst}
}

func (s *subscriber[T]) Next(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.done {
		return
	}
	s.dst.Next(v)
}

func (s *subscriber[T]) Error(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.done {
		return
	}
	s.done = true
	s.dst.Error(err)
}

func (s *subscriber[T]) Complete() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.done {
		return
	}
	s.done = true
	s.dst.Complete()
}
