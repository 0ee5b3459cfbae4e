// Package pool provides a fixed-size worker pool whose submissions always
// come back as Results.  Run function errors and panics, a full queue, a
// stopped pool and caller cancellation are all reported through the Result's
// failure branch; Submit never returns an error and never panics.
package pool

import (
	"context"
	"errors"
	"sync"

	"github.com/abevier/okerr/futures"
	"github.com/abevier/okerr/internal/exec"
	"github.com/abevier/okerr/internal/lifecycle"
	"github.com/abevier/okerr/result"
)

// RunFunction is the work executed for each submitted task.  It may return an
// error or panic; neither escapes the pool.
type RunFunction[T any, R any] func(ctx context.Context, task T) (R, error)

type Pool[T any, R any, E any] struct {
	run    RunFunction[T, R]
	mapErr result.MapFunc[E]

	taskChan chan exec.TaskFuture[T, R, E]
	submit   exec.SubmitFunction[T, R, E]

	guard    *lifecycle.Guard
	waitStop *sync.WaitGroup
}

// New creates a pool whose failure reasons are strings produced by
// result.DefaultReason.
func New[T any, R any](opts Opts, run RunFunction[T, R]) *Pool[T, R, string] {
	return NewWith(opts, run, result.DefaultReason)
}

// NewWith creates a pool whose failure causes are mapped to the reason shape
// E by mapErr.
func NewWith[T any, R any, E any](opts Opts, run RunFunction[T, R], mapErr result.MapFunc[E]) *Pool[T, R, E] {
	opts.validate()

	p := &Pool[T, R, E]{
		run:      run,
		mapErr:   mapErr,
		taskChan: make(chan exec.TaskFuture[T, R, E], opts.MaxQueueDepth),
		submit:   exec.GetSubmitFunction[T, R, E](exec.FullQueueStrategy(opts.FullQueueStrategy)),
		guard:    lifecycle.NewGuard(),
		waitStop: &sync.WaitGroup{},
	}

	for i := 0; i < opts.MaxWorkers; i++ {
		p.waitStop.Add(1)
		go p.worker()
	}

	return p
}

func (p *Pool[T, R, E]) worker() {
	defer p.waitStop.Done()

	for tf := range p.taskChan {
		if err := tf.Ctx.Err(); err != nil {
			tf.Future.Complete(result.Err[R](p.mapErr(err)))
			continue
		}

		ctx, task := tf.Ctx, tf.Task
		tf.Future.Complete(result.SafeWith(func() (R, error) {
			return p.run(ctx, task)
		}, p.mapErr))
	}
}

// Submit runs the task on the pool and waits for its Result.  If ctx is
// canceled while waiting, a failure Result carrying the context's error is
// returned; the task itself may still run.
func (p *Pool[T, R, E]) Submit(ctx context.Context, task T) result.Result[R, E] {
	res, err := p.SubmitF(ctx, task).Get(ctx)
	if err != nil {
		return result.Err[R](p.mapErr(err))
	}
	return res
}

// SubmitF queues the task and returns a future for its Result.  The future
// is always completed successfully; submission problems surface as failure
// Results.
func (p *Pool[T, R, E]) SubmitF(ctx context.Context, task T) *futures.Future[result.Result[R, E]] {
	tf := exec.NewTaskFuture[T, R, E](ctx, task)

	err := p.guard.Do(func() error {
		return p.submit(p.taskChan, tf)
	})
	if err != nil {
		if errors.Is(err, lifecycle.ErrClosed) {
			err = ErrStopped
		}
		tf.Future.Complete(result.Err[R](p.mapErr(err)))
	}

	return tf.Future
}

// Stop prevents further submissions, waits for queued tasks to finish and
// joins the workers.  Stop is idempotent and safe to call concurrently with
// Submit.
func (p *Pool[T, R, E]) Stop() {
	p.guard.Close(func() {
		close(p.taskChan)
	})
	p.waitStop.Wait()
}
