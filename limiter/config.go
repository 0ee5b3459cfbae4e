package limiter

import (
	"time"

	"github.com/abevier/okerr/internal/exec"
	"golang.org/x/time/rate"
)

var (
	// ErrQueueFull is the failure cause reported when the ErrorWhenFull
	// strategy rejects a submission.
	ErrQueueFull = exec.ErrQueueFull
)

// FullQueueStrategy is the behavior applied when too many tasks are queued.
type FullQueueStrategy exec.FullQueueStrategy

const (
	// BlockWhenFull exerts back pressure by blocking the caller until the queue drains.
	BlockWhenFull FullQueueStrategy = FullQueueStrategy(exec.BlockWhenFull)
	// ErrorWhenFull immediately fails the submission with ErrQueueFull.
	ErrorWhenFull FullQueueStrategy = FullQueueStrategy(exec.ErrorWhenFull)
)

// A rate limit expressed as N requests per second.
type Limit = rate.Limit

// Every converts the provided interval between requests into a rate limit,
// for instance Every(100 * time.Millisecond) yields 10 requests per second.
func Every(interval time.Duration) Limit {
	return rate.Every(interval)
}

// Opts is used to configure a Limiter via the New function.
type Opts struct {
	// Limit is the rate limit expressed in requests per second.
	Limit Limit
	// Burst is the size of the token bucket.
	Burst int
	// MaxQueueDepth controls the number of outstanding tasks that can be queued.
	MaxQueueDepth int
	// FullQueueStrategy determines the limiter's behavior when MaxQueueDepth
	// is exceeded.  By default the limiter will block the caller.
	FullQueueStrategy FullQueueStrategy
}

func (o Opts) validate() {
	if o.Limit < 0 {
		panic("limiter limit must be 0 or greater")
	}

	if o.Burst < 1 {
		panic("limiter burst must be 1 or greater")
	}

	if o.MaxQueueDepth < 0 {
		panic("limiter max queue depth must be 0 or greater")
	}
}
