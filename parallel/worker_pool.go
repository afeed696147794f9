// Package parallel implements the bag-of-tasks worker pool package search
// uses to run independent engine sweeps concurrently (§5): no shared
// mutable state between workers, each producing an independent partition;
// the driver reduces the results by minimum DL afterward.
package parallel

import (
	"context"
	"runtime"
	"sync"
	"time"
)

// PoolConfig configures the worker pool's concurrency and timeout behavior.
type PoolConfig struct {
	// MaxWorkers is the maximum number of concurrent workers.
	// Default: min(runtime.NumCPU(), 8).
	MaxWorkers int

	// TaskBufferSize is the buffer size of the internal task channel.
	// Default: MaxWorkers * 2.
	TaskBufferSize int

	// Timeout bounds the entire Execute call; zero means no timeout. Per
	// §5, each engine-pool call carries an idle timeout (default 600s);
	// workers exceeding it are harvested when the context expires.
	Timeout time.Duration
}

// DefaultPoolConfig returns the default engine-sweep pool configuration.
func DefaultPoolConfig() PoolConfig {
	workers := runtime.NumCPU()
	if workers > 8 {
		workers = 8
	}
	if workers < 2 {
		workers = 2
	}
	return PoolConfig{
		MaxWorkers:     workers,
		TaskBufferSize: workers * 2,
		Timeout:        600 * time.Second,
	}
}

// WithWorkers returns a copy of c with MaxWorkers set to n.
func (c PoolConfig) WithWorkers(n int) PoolConfig {
	c.MaxWorkers = n
	return c
}

// WithTimeout returns a copy of c with Timeout set to d.
func (c PoolConfig) WithTimeout(d time.Duration) PoolConfig {
	c.Timeout = d
	return c
}

// Task is a unit of work the pool can execute.
type Task[T any, R any] interface {
	Execute(ctx context.Context) (R, error)
	Input() T
}

// TaskFunc adapts a plain function into a Task.
type TaskFunc[T any, R any] struct {
	input   T
	execute func(ctx context.Context, input T) (R, error)
}

// NewTask builds a Task from an input value and an execution function.
func NewTask[T any, R any](input T, fn func(ctx context.Context, input T) (R, error)) *TaskFunc[T, R] {
	return &TaskFunc[T, R]{input: input, execute: fn}
}

func (t *TaskFunc[T, R]) Execute(ctx context.Context) (R, error) { return t.execute(ctx, t.input) }
func (t *TaskFunc[T, R]) Input() T                               { return t.input }

// TaskResult holds one task's outcome, keyed by its original index so
// results can be reduced deterministically (§5: "tie-break by worker
// index").
type TaskResult[T any, R any] struct {
	Index    int
	Input    T
	Result   R
	Error    error
	Duration time.Duration
}

// WorkerPool runs a bounded number of workers over a slice of tasks.
type WorkerPool[T any, R any] struct {
	config PoolConfig
}

// NewWorkerPool creates a pool with the given configuration, filling in
// defaults for zero fields.
func NewWorkerPool[T any, R any](config PoolConfig) *WorkerPool[T, R] {
	if config.MaxWorkers <= 0 {
		config.MaxWorkers = DefaultPoolConfig().MaxWorkers
	}
	if config.TaskBufferSize <= 0 {
		config.TaskBufferSize = config.MaxWorkers * 2
	}
	return &WorkerPool[T, R]{config: config}
}

// Execute runs every task, respecting ctx cancellation and the pool's
// timeout, and returns results indexed identically to the input (results
// for tasks never started due to early cancellation carry ctx.Err()).
func (p *WorkerPool[T, R]) Execute(ctx context.Context, tasks []Task[T, R]) []TaskResult[T, R] {
	if len(tasks) == 0 {
		return nil
	}

	if p.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.config.Timeout)
		defer cancel()
	}

	results := make([]TaskResult[T, R], len(tasks))
	taskCh := make(chan int, p.config.TaskBufferSize)

	var wg sync.WaitGroup
	numWorkers := p.config.MaxWorkers
	if numWorkers > len(tasks) {
		numWorkers = len(tasks)
	}

	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case idx, ok := <-taskCh:
					if !ok {
						return
					}
					task := tasks[idx]
					start := time.Now()
					result, err := task.Execute(ctx)
					results[idx] = TaskResult[T, R]{
						Index:    idx,
						Input:    task.Input(),
						Result:   result,
						Error:    err,
						Duration: time.Since(start),
					}
				}
			}
		}()
	}

	go func() {
		for i := range tasks {
			select {
			case <-ctx.Done():
				close(taskCh)
				return
			case taskCh <- i:
			}
		}
		close(taskCh)
	}()

	wg.Wait()
	return results
}

// ExecuteFunc is a convenience wrapper that builds tasks from plain inputs
// and a shared execution function.
func (p *WorkerPool[T, R]) ExecuteFunc(ctx context.Context, inputs []T, fn func(ctx context.Context, input T) (R, error)) []TaskResult[T, R] {
	tasks := make([]Task[T, R], len(inputs))
	for i, input := range inputs {
		tasks[i] = NewTask(input, fn)
	}
	return p.Execute(ctx, tasks)
}
