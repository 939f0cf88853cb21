package try

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Try holds either the value of a successful computation or the error it
// failed with. The zero Try is a failure holding ErrEmpty.
type Try[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	succeeded bool
}

func Success[T any](v T) Try[T] {
	return Try[T]{
		value:     v,
		err:       nil,
		succeeded: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Failure[T any](err error) Try[T] {
	if err == nil {
		err = ErrEmpty
	}
	return Try[T]{
		err:       err,
		succeeded: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// failureFrom carries the error and identity of a failed Try over to a new
// value type.
func failureFrom[In, Out any](from Try[In]) Try[Out] {
	return Try[Out]{
		err:       from.Err(),
		succeeded: false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (t Try[T]) IsSuccess() bool {
	return t.succeeded
}

func (t Try[T]) IsFailure() bool {
	return !t.IsSuccess()
}

// Err returns the stored error, or nil when t succeeded.
func (t Try[T]) Err() error {
	if t.succeeded {
		return nil
	}
	if t.err == nil {
		return ErrEmpty
	}
	return t.err
}

// Get returns the value of a successful Try. On failure it panics with an
// ErrUnwrap error whose cause is the stored error.
func (t Try[T]) Get() T {
	v, err := t.Value()
	if err != nil {
		panic(err)
	}
	return v
}

// Value returns the value of a successful Try, or the zero value and the
// same error Get would panic with.
func (t Try[T]) Value() (T, error) {
	if !t.succeeded {
		var zero T
		return zero, ErrUnwrap.Wrap(t.Err())
	}
	return t.value, nil
}

func (t Try[T]) GetOrElse(alternative T) T {
	if t.succeeded {
		return t.value
	}
	return alternative
}

// GetOrElseFunc computes the fallback from the failure only when needed.
func (t Try[T]) GetOrElseFunc(alternative func(err error) T) T {
	if t.succeeded {
		return t.value
	}
	return alternative(t.Err())
}

// DoIfSuccess calls sideEffect with the value when t succeeded and returns t.
func (t Try[T]) DoIfSuccess(sideEffect func(v T)) Try[T] {
	if t.succeeded {
		sideEffect(t.value)
	}
	return t
}

// DoIfFailed calls sideEffect when t failed and returns t.
func (t Try[T]) DoIfFailed(sideEffect func()) Try[T] {
	if !t.succeeded {
		sideEffect()
	}
	return t
}

// OnFailure calls sideEffect with the stored error when t failed and returns t.
func (t Try[T]) OnFailure(sideEffect func(err error)) Try[T] {
	if !t.succeeded {
		sideEffect(t.Err())
	}
	return t
}

func (t Try[T]) ID() uuid.UUID {
	return t.id
}

func (t Try[T]) CreatedAt() time.Time {
	return t.createdAt
}

func (t Try[T]) String() string {
	if t.succeeded {
		return fmt.Sprintf("Success(%v)", t.value)
	}
	return fmt.Sprintf("Failure(%v)", t.Err())
}
