package pool

import (
	"errors"

	"github.com/abevier/okerr/internal/exec"
)

var (
	// ErrQueueFull is the failure cause reported when the ErrorWhenFull
	// strategy rejects a submission.
	ErrQueueFull = exec.ErrQueueFull
	// ErrStopped is the failure cause reported for submissions made after Stop.
	ErrStopped = errors.New("pool has been stopped")
)
