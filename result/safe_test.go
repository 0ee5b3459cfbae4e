package result

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSafeSuccess(t *testing.T) {
	req := require.New(t)

	r := Safe(func() (int, error) {
		return 42, nil
	})

	req.True(r.IsOk())
	req.Equal(42, r.Val())
	req.Empty(r.Stack())
}

func TestSafeReturnedError(t *testing.T) {
	req := require.New(t)

	r := Safe(func() (int, error) {
		return 0, errors.New("boom")
	})

	req.True(r.IsErr())
	req.Equal("boom", r.Reason())
	req.NotEmpty(r.Stack())
}

func TestSafePanic(t *testing.T) {
	req := require.New(t)

	r := Safe(func() (int, error) {
		panic(errors.New("boom"))
	})

	req.True(r.IsErr())
	req.Equal("boom", r.Reason())
	req.NotEmpty(r.Stack())
}

func TestSafePanicRawValue(t *testing.T) {
	req := require.New(t)

	r := SafeWith(func() (int, error) {
		panic("raw")
	}, func(cause any) string {
		return fmt.Sprint(cause)
	})

	req.True(r.IsErr())
	req.Equal("raw", r.Reason())
}

type opFailure struct {
	Code int
	Msg  string
}

func TestSafeWithStructuredReason(t *testing.T) {
	req := require.New(t)

	r := SafeWith(func() (string, error) {
		return "", errors.New("no such row")
	}, func(cause any) opFailure {
		return opFailure{Code: 404, Msg: DefaultReason(cause)}
	})

	req.True(r.IsErr())
	req.Equal(opFailure{Code: 404, Msg: "no such row"}, r.Reason())
	req.NotEmpty(r.Stack())
}

func TestSafeNestedPanicValue(t *testing.T) {
	req := require.New(t)

	r := Safe(func() (int, error) {
		panic(42)
	})

	req.True(r.IsErr())
	req.Equal("42", r.Reason())
}

func TestDefaultReason(t *testing.T) {
	req := require.New(t)

	req.Equal("boom", DefaultReason(errors.New("boom")))
	req.Equal("raw", DefaultReason("raw"))
	req.Equal("42", DefaultReason(42))
}
