package sweeper

import (
	"context"

	"go.uber.org/zap"
)

// WorkerPoolI bounds how many wallets a sweep touches concurrently.
type WorkerPoolI interface {
	AddTask(ctx context.Context, task Task) error
	Close()
}

// Task is one unit of sweep work, typically the expiry of a single wallet.
// Its error is logged; a failed wallet never stops the rest of the sweep.
type Task func() error

type WorkerPool struct {
	pool chan Task
}

func NewWorkerPool(size int) *WorkerPool {
	pool := make(chan Task, size)
	wp := &WorkerPool{pool: pool}

	for i := 0; i < size; i++ {
		go wp.worker()
	}
	return wp
}

func (wp *WorkerPool) worker() {
	for task := range wp.pool {
		if err := task(); err != nil {
			zap.L().Error("Sweep task failed", zap.Error(err))
		}
	}
}

// AddTask queues a task, blocking until a worker frees up or the sweep's
// context ends.

func (wp *WorkerPool) AddTask(ctx context.Context, task Task) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case wp.pool <- task:
		return nil
	}
}

func (wp *WorkerPool) Close() {
	select {
	case <-wp.pool:
	default:
		close(wp.pool)
	}
}
