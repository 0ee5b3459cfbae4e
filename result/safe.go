package result

import "fmt"

// MapFunc converts the cause of a failure into the caller's reason shape.
// The cause is the recovered panic value or the error returned by the wrapped
// function.
type MapFunc[E any] func(cause any) E

// DefaultReason is the mapping applied when no MapFunc is supplied: an
// error's message, a string cause unchanged, and fmt.Sprint of anything else.
func DefaultReason(cause any) string {
	switch c := cause.(type) {
	case error:
		return c.Error()
	case string:
		return c
	default:
		return fmt.Sprint(c)
	}
}

// Safe invokes fn and converts its outcome into a Result.  A returned error
// or a panic becomes a failure whose reason is DefaultReason of the cause.
// Safe never lets a panic escape and never returns an error: it is total over
// every possible behavior of fn.
func Safe[T any](fn func() (T, error)) Result[T, string] {
	return SafeWith(fn, DefaultReason)
}

// SafeWith is Safe with a caller-supplied mapping from the failure cause to
// the reason shape E.  The stack attached to the failure is captured where
// the cause is recovered, not where a panic was originally raised.  A panic
// inside mapErr itself is not contained.
func SafeWith[T any, E any](fn func() (T, error), mapErr MapFunc[E]) (res Result[T, E]) {
	defer func() {
		if cause := recover(); cause != nil {
			res = Err[T](mapErr(cause))
		}
	}()

	v, err := fn()
	if err != nil {
		return Err[T](mapErr(err))
	}
	return Ok[T, E](v)
}
