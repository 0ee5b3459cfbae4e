// Package result provides explicit result values for fallible operations.
// A Result is either the raw success payload or a Failure record carrying a
// caller-defined reason and a diagnostic stack trace.  The Safe and SafeAsync
// wrappers convert functions that return errors or panic into functions that
// return Results, so no fault ever crosses the wrapper boundary.
//
// A Result is classified by how it was constructed, never by the shape of its
// payload: Ok values are always successes and Err/Fail values are always
// failures, even when the payload itself is a struct that looks like a
// Failure.  The success payload is carried unwrapped, so Ok is the identity
// on its argument.
package result

import "fmt"

// Failure is the record carried by a failed Result.  Reason is the
// caller-defined description of what went wrong.  Stack is a human readable
// trace captured when the record was built via Err; records built by hand and
// wrapped with Fail are not required to carry one.
type Failure[E any] struct {
	Reason E
	Stack  string
}

// Error implements the error interface so a Failure can cross API boundaries
// that expect a plain error value.
func (f Failure[E]) Error() string {
	return fmt.Sprint(f.Reason)
}

// Result is either a success holding a value of type T or a failure holding a
// Failure[E].  The zero value is a success holding T's zero value.  Results
// are immutable plain data and safe to copy and share.
type Result[T any, E any] struct {
	val  T
	fail *Failure[E]
}

// Ok returns a successful Result holding val.  The payload is stored
// unchanged, including nil pointers, nil slices and zero values.
func Ok[T any, E any](val T) Result[T, E] {
	return Result[T, E]{val: val}
}

// Err returns a failed Result whose Failure carries the provided reason and a
// stack trace captured at the call site.  The trace is best effort and meant
// for humans; its exact format is not part of the package contract.
func Err[T any, E any](reason E) Result[T, E] {
	return Result[T, E]{fail: &Failure[E]{Reason: reason, Stack: callers(1)}}
}

// Fail returns a failed Result holding the provided record as-is.  Unlike
// Err, no stack trace is attached.
func Fail[T any, E any](f Failure[E]) Result[T, E] {
	return Result[T, E]{fail: &f}
}

// IsOk reports whether r is a success.
func (r Result[T, E]) IsOk() bool {
	return r.fail == nil
}

// IsErr reports whether r is a failure.  IsErr is always the exact negation
// of IsOk.
func (r Result[T, E]) IsErr() bool {
	return r.fail != nil
}

// Val returns the success payload, or T's zero value if r is a failure.
func (r Result[T, E]) Val() T {
	return r.val
}

// Failure returns the failure record and true if r is a failure.
func (r Result[T, E]) Failure() (Failure[E], bool) {
	if r.fail == nil {
		return Failure[E]{}, false
	}
	return *r.fail, true
}

// Reason returns the failure reason, or E's zero value if r is a success.
func (r Result[T, E]) Reason() E {
	if r.fail == nil {
		return *new(E)
	}
	return r.fail.Reason
}

// Stack returns the failure's stack trace, or "" if r is a success or the
// record was built without one.
func (r Result[T, E]) Stack() string {
	if r.fail == nil {
		return ""
	}
	return r.fail.Stack
}

// Get unpacks r into Go's conventional value/error pair.  The returned error
// is the Failure itself when r is a failure, nil otherwise.
func (r Result[T, E]) Get() (T, error) {
	if r.fail == nil {
		return r.val, nil
	}
	return r.val, *r.fail
}

// Unwrap returns the success payload and panics with the Failure if r is a
// failure.
func (r Result[T, E]) Unwrap() T {
	if r.fail != nil {
		panic(*r.fail)
	}
	return r.val
}

// UnwrapOr returns the success payload, or def if r is a failure.
func (r Result[T, E]) UnwrapOr(def T) T {
	if r.fail != nil {
		return def
	}
	return r.val
}
