// Package parallel provides the worker pool and deterministic source-range
// fan-out used to parallelize per-source graph passes.
package parallel

import (
	"fmt"
	"math"
	"os"
	"sync"
)

// MaxWorkers caps the pool size so the task buffer below cannot overflow.
const MaxWorkers = math.MaxInt / 2

// ErrTooManyWorkers reports a requested pool size above MaxWorkers.
var ErrTooManyWorkers = fmt.Errorf("worker count exceeds maximum")

// WorkerPool runs submitted tasks on a fixed set of goroutines. One pool is
// created per fan-out and closed when the pass ends; tasks are typically one
// source range each, so the pool never queues deeply.
type WorkerPool struct {
	size  int
	tasks chan func()
	wg    sync.WaitGroup
	once  sync.Once

	// mu orders Submit sends against the close of tasks.
	mu     sync.RWMutex
	closed bool
}

// NewWorkerPool starts size workers. Non-positive sizes are clamped to one
// worker; sizes above MaxWorkers are rejected.
func NewWorkerPool(size int) (*WorkerPool, error) {
	if size <= 0 {
		size = 1
	}
	if size > MaxWorkers {
		return nil, fmt.Errorf("%w: %d exceeds %d", ErrTooManyWorkers, size, MaxWorkers)
	}

	p := &WorkerPool{
		size:  size,
		tasks: make(chan func(), size*2),
	}
	for i := 0; i < size; i++ {
		p.wg.Add(1)
		go p.run()
	}
	return p, nil
}

func (p *WorkerPool) run() {
	defer p.wg.Done()

	for task := range p.tasks {
		p.runOne(task)
	}
}

// runOne isolates a task so a panic kills the task, not the worker. A range
// of a betweenness pass must not take the other ranges down with it.
func (p *WorkerPool) runOne(task func()) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "worker recovered from panic: %v\n", r)
		}
	}()
	task()
}

// Submit queues a task, reporting false once the pool has been closed.
func (p *WorkerPool) Submit(task func()) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return false
	}
	p.tasks <- task
	return true
}

// Close stops accepting tasks and blocks until the queued ones finish.
// Safe to call more than once.
func (p *WorkerPool) Close() {
	p.once.Do(func() {
		p.mu.Lock()
		p.closed = true
		close(p.tasks)
		p.mu.Unlock()
	})
	p.wg.Wait()
}
