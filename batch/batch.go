// Package batch groups individually submitted tasks into batches and hands
// each batch to a single run function.  Like package pool, submission is
// total: a run function error or panic, a result-count mismatch and caller
// cancellation all come back as failure Results for the affected tasks.
package batch

import (
	"context"
	"sync"
	"time"

	"github.com/abevier/okerr/futures"
	"github.com/abevier/okerr/result"
)

// RunBatchFunction executes one batch.  It must return one Result per task,
// in task order.  Returning an error, returning the wrong number of results
// or panicking fails every task in the batch.
type RunBatchFunction[T any, R any, E any] func(tasks []T) ([]result.Result[R, E], error)

type pending[T any, R any, E any] struct {
	id      int
	tasks   []T
	futures []*futures.Future[result.Result[R, E]]
	linger  *time.Timer
}

func (b *pending[T, R, E]) add(task T, f *futures.Future[result.Result[R, E]]) {
	b.tasks = append(b.tasks, task)
	b.futures = append(b.futures, f)
}

type Executor[T any, R any, E any] struct {
	mu           sync.Mutex
	sequenceNum  int
	currentBatch *pending[T, R, E]

	run    RunBatchFunction[T, R, E]
	mapErr result.MapFunc[E]

	maxSize   int
	maxLinger time.Duration
}

// New creates an executor whose failure reasons are strings produced by
// result.DefaultReason.
func New[T any, R any](opts Opts, run RunBatchFunction[T, R, string]) *Executor[T, R, string] {
	return NewWith(opts, run, result.DefaultReason)
}

// NewWith creates an executor whose failure causes are mapped to the reason
// shape E by mapErr.
func NewWith[T any, R any, E any](opts Opts, run RunBatchFunction[T, R, E], mapErr result.MapFunc[E]) *Executor[T, R, E] {
	opts.validate()

	return &Executor[T, R, E]{
		run:       run,
		mapErr:    mapErr,
		maxSize:   opts.MaxSize,
		maxLinger: opts.MaxLinger,
	}
}

// Submit adds the task to the current batch and waits for its Result.  If
// ctx is canceled before the batch runs, a failure Result carrying the
// context's error is returned; the task may still be executed with its batch.
func (e *Executor[T, R, E]) Submit(ctx context.Context, task T) result.Result[R, E] {
	res, err := e.SubmitF(task).Get(ctx)
	if err != nil {
		return result.Err[R](e.mapErr(err))
	}
	return res
}

// SubmitF adds the task to the current batch and returns a future for its
// Result.  The future is always completed successfully.
func (e *Executor[T, R, E]) SubmitF(task T) *futures.Future[result.Result[R, E]] {
	f := futures.New[result.Result[R, E]]()

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.currentBatch == nil {
		e.currentBatch = e.newBatch()
	}
	e.currentBatch.add(task, f)

	if len(e.currentBatch.tasks) >= e.maxSize {
		e.currentBatch.linger.Stop()
		go e.runBatch(e.currentBatch)
		e.currentBatch = nil
	}

	return f
}

// newBatch must be called with e.mu held.
func (e *Executor[T, R, E]) newBatch() *pending[T, R, E] {
	e.sequenceNum++

	b := &pending[T, R, E]{
		id:    e.sequenceNum,
		tasks: make([]T, 0, e.maxSize),
	}

	b.linger = time.AfterFunc(e.maxLinger, func() {
		e.expireBatch(b.id)
	})
	return b
}

func (e *Executor[T, R, E]) expireBatch(batchID int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.currentBatch != nil && e.currentBatch.id == batchID {
		go e.runBatch(e.currentBatch)
		e.currentBatch = nil
	}
}

func (e *Executor[T, R, E]) runBatch(b *pending[T, R, E]) {
	rs, cause := e.safeRun(b.tasks)
	if cause != nil {
		e.failBatch(b, cause)
		return
	}

	if len(rs) != len(b.tasks) {
		e.failBatch(b, ErrBatchResultMismatch)
		return
	}

	for i, r := range rs {
		b.futures[i].Complete(r)
	}
}

// safeRun invokes the run function and hands back the untouched cause of its
// failure, so the executor's mapper sees the original error or panic value
// rather than a pre-rendered wrapper.
func (e *Executor[T, R, E]) safeRun(tasks []T) (rs []result.Result[R, E], cause any) {
	defer func() {
		if c := recover(); c != nil {
			rs = nil
			cause = c
		}
	}()

	var err error
	rs, err = e.run(tasks)
	if err != nil {
		return nil, err
	}
	return rs, nil
}

func (e *Executor[T, R, E]) failBatch(b *pending[T, R, E], cause any) {
	for _, f := range b.futures {
		f.Complete(result.Err[R](e.mapErr(cause)))
	}
}

// Close synchronously runs any batch still lingering below MaxSize.  It does
// not prevent further submissions; callers are expected to stop submitting
// before closing.
func (e *Executor[T, R, E]) Close() {
	e.mu.Lock()
	b := e.currentBatch
	e.currentBatch = nil
	e.mu.Unlock()

	if b != nil {
		b.linger.Stop()
		e.runBatch(b)
	}
}
