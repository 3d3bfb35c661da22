package worker

import (
	"context"
	"fmt"
	"sync"

	"payslip-processor/internal/domain"
)

// Processor runs the processing pipeline for one task.
type Processor interface {
	Process(ctx context.Context, taskID, inputPath string, progress domain.ProgressFunc) (*domain.TaskResult, error)
}

type job struct {
	taskID    string
	inputPath string
}

// Pool runs tasks on a fixed set of workers. Each worker handles one task at
// a time, so pages within a task stay strictly sequential; concurrency only
// exists across tasks.
type Pool struct {
	processor Processor
	store     domain.TaskStore
	logger    domain.Logger

	jobs    chan job
	wg      sync.WaitGroup
	mu      sync.Mutex
	stopped bool
}

// NewPool creates a worker pool with the given worker count and queue depth.
func NewPool(processor Processor, store domain.TaskStore, logger domain.Logger, workers, queueSize int) *Pool {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 1 {
		queueSize = workers * 4
	}
	p := &Pool{
		processor: processor,
		store:     store,
		logger:    logger,
		jobs:      make(chan job, queueSize),
	}
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go p.run()
	}
	return p
}

// Submit enqueues a task. Returns ErrQueueFull when the queue has no room
// and an error after Stop.
func (p *Pool) Submit(taskID, inputPath string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stopped {
		return fmt.Errorf("%w: pool is stopped", domain.ErrQueueFull)
	}
	select {
	case p.jobs <- job{taskID: taskID, inputPath: inputPath}:
		return nil
	default:
		return domain.ErrQueueFull
	}
}

// Stop drains the queue and waits for in-flight tasks to finish.
func (p *Pool) Stop() {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	close(p.jobs)
	p.mu.Unlock()
	p.wg.Wait()
}

func (p *Pool) run() {
	defer p.wg.Done()
	for j := range p.jobs {
		p.runTask(j)
	}
}

// runTask executes one task and records its terminal state. A panic in the
// pipeline fails the task rather than the process.
func (p *Pool) runTask(j job) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("Task panicked", fmt.Errorf("%v", r), "task_id", j.taskID)
			p.store.SetFailure(j.taskID, fmt.Sprintf("processing failed: %v", r))
		}
	}()

	progress := func(phase string, current, total int) {
		p.store.SetProgress(j.taskID, domain.Progress{Phase: phase, Current: current, Total: total})
	}

	result, err := p.processor.Process(context.Background(), j.taskID, j.inputPath, progress)
	if err != nil {
		p.logger.Error("Task failed", err, "task_id", j.taskID)
		p.store.SetFailure(j.taskID, fmt.Sprintf("processing failed: %v", err))
		return
	}
	p.store.SetSuccess(j.taskID, result)
}
