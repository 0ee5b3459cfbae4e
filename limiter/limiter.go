// Package limiter provides a rate-limited executor with the same total,
// Result-returning submission contract as package pool: nothing the run
// function does, and nothing the limiter itself does, comes back to the
// caller as anything other than a Result.  The one edge outside that
// guarantee is lifecycle misuse: submitting after Close, or closing twice,
// panics on the closed queue.
package limiter

import (
	"context"

	"github.com/abevier/okerr/futures"
	"github.com/abevier/okerr/internal/exec"
	"github.com/abevier/okerr/result"
	"golang.org/x/time/rate"
)

// RunFunction is the work executed for each submitted task, subject to the
// rate limit.  It may return an error or panic; neither escapes the limiter.
type RunFunction[T any, R any] func(ctx context.Context, task T) (R, error)

type Limiter[T any, R any, E any] struct {
	limiter *rate.Limiter
	run     RunFunction[T, R]
	mapErr  result.MapFunc[E]

	taskChan chan exec.TaskFuture[T, R, E]
	submit   exec.SubmitFunction[T, R, E]
}

// New creates a limiter whose failure reasons are strings produced by
// result.DefaultReason.
func New[T any, R any](opts Opts, run RunFunction[T, R]) *Limiter[T, R, string] {
	return NewWith(opts, run, result.DefaultReason)
}

// NewWith creates a limiter whose failure causes are mapped to the reason
// shape E by mapErr.
func NewWith[T any, R any, E any](opts Opts, run RunFunction[T, R], mapErr result.MapFunc[E]) *Limiter[T, R, E] {
	opts.validate()

	l := &Limiter[T, R, E]{
		limiter:  rate.NewLimiter(rate.Limit(opts.Limit), opts.Burst),
		run:      run,
		mapErr:   mapErr,
		taskChan: make(chan exec.TaskFuture[T, R, E], opts.MaxQueueDepth),
		submit:   exec.GetSubmitFunction[T, R, E](exec.FullQueueStrategy(opts.FullQueueStrategy)),
	}

	l.startWorker()

	return l
}

func (l *Limiter[T, R, E]) startWorker() {
	go func() {
		for tf := range l.taskChan {
			if err := l.limiter.Wait(tf.Ctx); err != nil {
				tf.Future.Complete(result.Err[R](l.mapErr(err)))
				continue
			}

			l.runTask(tf)
		}
	}()
}

func (l *Limiter[T, R, E]) runTask(tf exec.TaskFuture[T, R, E]) {
	go func() {
		tf.Future.Complete(result.SafeWith(func() (R, error) {
			return l.run(tf.Ctx, tf.Task)
		}, l.mapErr))
	}()
}

// Submit runs the task once the rate limit allows and waits for its Result.
// Cancellation of ctx while queued or waiting becomes a failure Result.
func (l *Limiter[T, R, E]) Submit(ctx context.Context, task T) result.Result[R, E] {
	res, err := l.SubmitF(ctx, task).Get(ctx)
	if err != nil {
		return result.Err[R](l.mapErr(err))
	}
	return res
}

// SubmitF queues the task and returns a future for its Result.  The future
// is always completed successfully.
func (l *Limiter[T, R, E]) SubmitF(ctx context.Context, task T) *futures.Future[result.Result[R, E]] {
	tf := exec.NewTaskFuture[T, R, E](ctx, task)

	if err := l.submit(l.taskChan, tf); err != nil {
		tf.Future.Complete(result.Err[R](l.mapErr(err)))
	}

	return tf.Future
}

// Close stops the limiter's worker.  Submitting after Close, or calling
// Close twice, will panic.
func (l *Limiter[T, R, E]) Close() {
	close(l.taskChan)
}
