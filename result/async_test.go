package result

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abevier/okerr/futures"
	"github.com/stretchr/testify/require"
)

var errTest = errors.New("test error")

func TestSafeAsync(t *testing.T) {
	req := require.New(t)

	f := SafeAsync(func() (int, error) {
		return 7, nil
	})

	res, err := f.Get(context.Background())
	req.NoError(err)
	req.True(res.IsOk())
	req.Equal(7, res.Val())
}

func TestSafeAsyncError(t *testing.T) {
	req := require.New(t)

	f := SafeAsync(func() (int, error) {
		return 0, errors.New("x")
	})

	// the outer future settles successfully even though the operation failed
	res, err := f.Get(context.Background())
	req.NoError(err)
	req.True(res.IsErr())
	req.Equal("x", res.Reason())
	req.NotEmpty(res.Stack())
}

func TestSafeAsyncPanic(t *testing.T) {
	req := require.New(t)

	f := SafeAsync(func() (int, error) {
		panic("x")
	})

	res, err := f.Get(context.Background())
	req.NoError(err)
	req.True(res.IsErr())
	req.Equal("x", res.Reason())
}

func TestSafeAsyncWith(t *testing.T) {
	req := require.New(t)

	type reason struct{ Op string }

	f := SafeAsyncWith(func() (int, error) {
		return 0, errTest
	}, func(cause any) reason {
		return reason{Op: DefaultReason(cause)}
	})

	res, err := f.Get(context.Background())
	req.NoError(err)
	req.Equal(reason{Op: "test error"}, res.Reason())
}

func TestResolve(t *testing.T) {
	req := require.New(t)

	f := futures.FromFunc(func() (int, error) {
		time.Sleep(5 * time.Millisecond)
		return 3, nil
	})

	res := Resolve(context.Background(), f)
	req.True(res.IsOk())
	req.Equal(3, res.Val())

	f = futures.FromFunc(func() (int, error) {
		return 0, errTest
	})

	res = Resolve(context.Background(), f)
	req.True(res.IsErr())
	req.Equal(errTest.Error(), res.Reason())
}

func TestResolveCanceledContext(t *testing.T) {
	req := require.New(t)

	f := futures.New[int]()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := Resolve(ctx, f)
	req.True(res.IsErr())
	req.Equal(context.Canceled.Error(), res.Reason())
}

func TestResolveAll(t *testing.T) {
	req := require.New(t)

	f1 := futures.FromFunc(func() (int, error) {
		time.Sleep(6 * time.Millisecond)
		return 1, nil
	})

	f2 := futures.FromFunc(func() (int, error) {
		time.Sleep(4 * time.Millisecond)
		return 2, nil
	})

	f3 := futures.FromFunc(func() (int, error) {
		time.Sleep(2 * time.Millisecond)
		return 0, errTest
	})

	rs, err := ResolveAll(context.Background(), []*futures.Future[int]{f1, f2, f3})
	req.NoError(err)
	req.Len(rs, 3)

	req.True(rs[0].IsOk())
	req.Equal(1, rs[0].Val())
	req.True(rs[1].IsOk())
	req.Equal(2, rs[1].Val())
	req.True(rs[2].IsErr())
	req.Equal(errTest.Error(), rs[2].Reason())
}

func TestResolveAllCancellation(t *testing.T) {
	req := require.New(t)

	f1 := futures.New[int]()
	f2 := futures.New[int]()
	f3 := futures.New[int]()

	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := ResolveAll(ctx, []*futures.Future[int]{f1, f2, f3})
	req.ErrorIs(err, context.Canceled)
}
