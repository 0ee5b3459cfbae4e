package result

import (
	"context"

	"github.com/abevier/okerr/futures"
)

// SafeAsync runs fn on its own goroutine and returns a future for the
// eventual Result.  The future is always completed successfully; failure of
// fn, whether by returned error or by panic, is reported only through the
// Result's failure branch.
func SafeAsync[T any](fn func() (T, error)) *futures.Future[Result[T, string]] {
	return SafeAsyncWith(fn, DefaultReason)
}

// SafeAsyncWith is SafeAsync with a caller-supplied reason mapping.
func SafeAsyncWith[T any, E any](fn func() (T, error), mapErr MapFunc[E]) *futures.Future[Result[T, E]] {
	f := futures.New[Result[T, E]]()

	go func() {
		f.Complete(SafeWith(fn, mapErr))
	}()

	return f
}

// Resolve waits for an already started future and adapts its outcome into a
// Result.  A failed or canceled future, or cancellation of ctx while
// waiting, becomes a failure with DefaultReason of the error.
func Resolve[T any](ctx context.Context, f *futures.Future[T]) Result[T, string] {
	return ResolveWith(ctx, f, DefaultReason)
}

// ResolveWith is Resolve with a caller-supplied reason mapping.
func ResolveWith[T any, E any](ctx context.Context, f *futures.Future[T], mapErr MapFunc[E]) Result[T, E] {
	v, err := f.Get(ctx)
	if err != nil {
		return Err[T](mapErr(err))
	}
	return Ok[T, E](v)
}

// ResolveAll waits for all of the provided futures and returns a Result for
// each future at the index corresponding to the provided slice.  Failed
// futures become failure Results.  If ctx is canceled the cancellation error
// is returned instead, since giving up waiting is the caller's decision and
// not an operation failure.
func ResolveAll[T any](ctx context.Context, fs []*futures.Future[T]) ([]Result[T, string], error) {
	res := make([]Result[T, string], 0, len(fs))

	for _, f := range fs {
		v, err := f.Get(ctx)
		if err != nil {
			res = append(res, Err[T, string](DefaultReason(err)))
		} else {
			res = append(res, Ok[T, string](v))
		}
		// check for the context error at the end of the loop to avoid the race
		// of canceling while Getting the last value in the list
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}

	return res, nil
}
