package batch

import (
	"context"

	"go.uber.org/zap"
)

type WorkerPoolI interface {
	AddTask(ctx context.Context, task Task) error
	Close()
}

// Task is one queued batch job. The batch service enqueues the
// auto-attendance and monthly-settlement passes here, named so a failed
// run is attributable in the logs.
type Task struct {
	Name string
	Run  func() error
}

type WorkerPool struct {
	jobs chan Task
}

func NewWorkerPool(size int) *WorkerPool {
	jobs := make(chan Task, size)
	wp := &WorkerPool{jobs: jobs}

	for i := 0; i < size; i++ {
		go wp.worker()
	}
	return wp
}

func (wp *WorkerPool) worker() {
	for task := range wp.jobs {
		if err := task.Run(); err != nil {
			zap.L().Error("Batch job failed", zap.String("job", task.Name), zap.Error(err))
		}
	}
}

func (wp *WorkerPool) AddTask(ctx context.Context, task Task) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case wp.jobs <- task:
		return nil
	}
}

func (wp *WorkerPool) Close() {
	select {
	case <-wp.jobs:
	default:
		close(wp.jobs)
	}
}
