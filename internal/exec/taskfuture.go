package exec

import (
	"context"

	"github.com/abevier/okerr/futures"
	"github.com/abevier/okerr/result"
)

// TaskFuture pairs a submitted task with the future that will carry its
// Result.  Executors only ever Complete the future; every failure, including
// the executor's own (full queue, shutdown, cancellation), travels through
// the Result's failure branch so that submission stays total.
type TaskFuture[T any, R any, E any] struct {
	Ctx    context.Context
	Task   T
	Future *futures.Future[result.Result[R, E]]
}

func NewTaskFuture[T any, R any, E any](ctx context.Context, task T) TaskFuture[T, R, E] {
	return TaskFuture[T, R, E]{
		Ctx:    ctx,
		Task:   task,
		Future: futures.New[result.Result[R, E]](),
	}
}
