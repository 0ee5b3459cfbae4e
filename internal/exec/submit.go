package exec

import (
	"errors"
	"fmt"
)

var (
	ErrQueueFull = errors.New("submission queue is full")
)

type FullQueueStrategy int

const (
	BlockWhenFull FullQueueStrategy = iota
	ErrorWhenFull
)

// SubmitFunction places a TaskFuture on an executor's queue, reporting
// ErrQueueFull or the task context's error when it cannot.
type SubmitFunction[T any, R any, E any] func(taskChan chan<- TaskFuture[T, R, E], tf TaskFuture[T, R, E]) error

func GetSubmitFunction[T any, R any, E any](s FullQueueStrategy) SubmitFunction[T, R, E] {
	switch s {
	case BlockWhenFull:
		return blockWhenFullStrategy[T, R, E]
	case ErrorWhenFull:
		return errorWhenFullStrategy[T, R, E]
	default:
		panic(fmt.Sprintf("invalid submit strategy value %d", s))
	}
}

func blockWhenFullStrategy[T any, R any, E any](taskChan chan<- TaskFuture[T, R, E], tf TaskFuture[T, R, E]) error {
	select {
	case taskChan <- tf:
		return nil
	case <-tf.Ctx.Done():
		return tf.Ctx.Err()
	}
}

func errorWhenFullStrategy[T any, R any, E any](taskChan chan<- TaskFuture[T, R, E], tf TaskFuture[T, R, E]) error {
	select {
	case taskChan <- tf:
		return nil
	default:
		return ErrQueueFull
	}
}
