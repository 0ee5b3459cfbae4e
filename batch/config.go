package batch

import (
	"errors"
	"time"
)

var (
	// ErrBatchResultMismatch is the failure cause applied to every task in a
	// batch whose run function returned the wrong number of results.
	ErrBatchResultMismatch = errors.New("batch run function returned the wrong number of results")
)

// Opts is used to configure an Executor via the New function.
type Opts struct {
	// MaxSize is the number of tasks that triggers a batch run.
	MaxSize int
	// MaxLinger is how long an incomplete batch waits before running anyway.
	MaxLinger time.Duration
}

func (o Opts) validate() {
	if o.MaxSize <= 1 {
		panic("maximum batch size must be greater than 1")
	}

	if o.MaxLinger <= 0 {
		panic("batch linger must be greater than 0")
	}
}
