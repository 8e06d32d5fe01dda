package rx

import (
	"time"

	"github.com/google/uuid"
)

// Outcome is the two-armed classification of a computation's output:
// either a success carrying a value or a failure carrying an error.
type Outcome[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	isSuccess bool
}

func Success[T any](v T) Outcome[T] {
	return Outcome[T]{
		value:     v,
		err:       nil,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Failure[T any](err error) Outcome[T] {
	return Outcome[T]{
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func (o Outcome[T]) Value() T {
	return o.value
}

func (o Outcome[T]) Err() error {
	return o.err
}

func (o Outcome[T]) IsSuccess() bool {
	return o.isSuccess
}

func (o Outcome[T]) IsFailure() bool {
	return !o.isSuccess
}

func (o Outcome[T]) CreatedAt() time.Time {
	return o.createdAt
}

func (o Outcome[T]) ID() uuid.UUID {
	return o.id
}

// Match dispatches on the arm: exactly one of the handlers runs. Nil
// handlers are ignored.
func (o Outcome[T]) Match(onSuccess func(v T), onFailure func(err error)) {
	if o.isSuccess {
		if onSuccess != nil {
			onSuccess(o.value)
		}
		return
	}
	if onFailure != nil {
		onFailure(o.err)
	}
}
