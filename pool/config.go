package pool

import "github.com/abevier/okerr/internal/exec"

// FullQueueStrategy is the behavior applied when the task queue is full.
type FullQueueStrategy exec.FullQueueStrategy

const (
	// BlockWhenFull exerts back pressure by blocking the caller until the queue drains.
	BlockWhenFull FullQueueStrategy = FullQueueStrategy(exec.BlockWhenFull)
	// ErrorWhenFull immediately fails the submission with ErrQueueFull.
	ErrorWhenFull FullQueueStrategy = FullQueueStrategy(exec.ErrorWhenFull)
)

// Opts is used to configure a Pool via the New function.
type Opts struct {
	// MaxWorkers is the number of goroutines executing tasks.
	MaxWorkers int
	// MaxQueueDepth controls the number of outstanding tasks that can be queued.
	MaxQueueDepth int
	// FullQueueStrategy determines the pool's behavior when MaxQueueDepth is
	// exceeded.  By default the pool will block the caller.
	FullQueueStrategy FullQueueStrategy
}

func (o Opts) validate() {
	if o.MaxWorkers < 1 {
		panic("pool max workers must be 1 or greater")
	}

	if o.MaxQueueDepth < 0 {
		panic("pool max queue depth must be 0 or greater")
	}
}
