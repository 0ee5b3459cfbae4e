// Package futures provides a one-shot Future representing an asynchronous
// computation.  Unlike a channel, a completed Future can be read any number
// of times by any number of goroutines, and all readers observe the same
// outcome.  The first completion wins; later completions are silently
// ignored.
package futures

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
)

var (
	// ErrCanceled is the error reported when a future is completed by calling Cancel.
	ErrCanceled = errors.New("future canceled")
)

// FutureFunc is the function signature required to create a Future via FromFunc.
type FutureFunc[T any] func() (T, error)

// PanicError is the error a FromFunc future fails with when the supplied
// function panics instead of returning.
type PanicError struct {
	Cause any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("future function panicked: %v", e.Cause)
}

// Future represents an asynchronous computation that eventually settles with
// either a value of type T or an error.  Create one with New and settle it
// manually with Complete, Fail or Cancel, or use FromFunc to drive it from a
// function on its own goroutine.
//
// Get extracts the outcome, blocking until the future settles or the provided
// context is canceled.  It can be called concurrently and repeatedly.
type Future[T any] struct {
	isCompleted uint32
	completed   chan struct{}

	value T
	err   error
}

// New creates an unsettled Future that must be settled by calling Complete,
// Fail, or Cancel.
func New[T any]() *Future[T] {
	return &Future[T]{
		completed: make(chan struct{}),
	}
}

// FromFunc creates a Future settled by the outcome of do, which is run on a
// new goroutine.  If do panics the future fails with a *PanicError instead of
// crashing the goroutine.
func FromFunc[T any](do FutureFunc[T]) *Future[T] {
	f := New[T]()

	go func() {
		defer func() {
			if cause := recover(); cause != nil {
				f.Fail(&PanicError{Cause: cause})
			}
		}()

		t, err := do()
		if err != nil {
			f.Fail(err)
			return
		}
		f.Complete(t)
	}()

	return f
}

// Complete settles this future with the provided value.  If the future has
// already settled this call is ignored.
func (f *Future[T]) Complete(value T) {
	f.settle(value, nil)
}

// Cancel settles this future with ErrCanceled.  If the future has already
// settled this call is ignored.
func (f *Future[T]) Cancel() {
	f.Fail(ErrCanceled)
}

// Fail settles this future with the provided error.  If the future has
// already settled this call is ignored.
func (f *Future[T]) Fail(err error) {
	f.settle(*new(T), err)
}

func (f *Future[T]) settle(val T, err error) {
	if atomic.CompareAndSwapUint32(&f.isCompleted, 0, 1) {
		f.value = val
		f.err = err
		close(f.completed)
	}
}

// Get retrieves the outcome of this future, blocking until it settles or
// until the provided context is canceled, in which case the context's error
// is returned.
func (f *Future[T]) Get(ctx context.Context) (T, error) {
	select {
	case <-f.completed:
		return f.value, f.err
	case <-ctx.Done():
		return *new(T), ctx.Err()
	}
}
