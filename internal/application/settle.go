package application

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

var (
	ErrTaskPanicked = errors.New("task panicked")
	errNilTask      = errors.New("task is nil")
)

// Task is one independent asynchronous unit of work.
type Task[T any] func(ctx context.Context) (T, error)

// Settlement is the terminal state of one task: a value, or the error it
// failed with.
type Settlement[T any] struct {
	Value T
	Err   error
}

func (s Settlement[T]) Fulfilled() bool {
	return s.Err == nil
}

// ValueOr returns the settled value, or fallback when the task failed.
func (s Settlement[T]) ValueOr(fallback T) T {
	if s.Err != nil {
		return fallback
	}
	return s.Value
}

// SettleAll runs every task concurrently and waits until all of them have
// settled. A failing task never cancels its siblings. Settlements are returned
// in task order, not completion order.
func SettleAll[T any](ctx context.Context, tasks ...Task[T]) []Settlement[T] {
	settlements := make([]Settlement[T], len(tasks))

	// A plain Group: no derived context, so one failure cannot cancel the rest.
	var g errgroup.Group
	for i, task := range tasks {
		g.Go(func() error {
			settlements[i] = settle(ctx, task)
			return nil
		})
	}
	_ = g.Wait()

	return settlements
}

func settle[T any](ctx context.Context, task Task[T]) (result Settlement[T]) {
	defer func() {
		if r := recover(); r != nil {
			result = Settlement[T]{Err: fmt.Errorf("%w: %v", ErrTaskPanicked, r)}
		}
	}()

	if task == nil {
		return Settlement[T]{Err: errNilTask}
	}

	value, err := task(ctx)
	if err != nil {
		return Settlement[T]{Err: err}
	}
	return Settlement[T]{Value: value}
}
