// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-bangs/internal/config"
	"github.com/MKhiriev/go-bangs/internal/logger"
	"github.com/MKhiriev/go-bangs/internal/metrics"
)

type job struct {
	name string
	task Task
}

// BackgroundRunner executes tasks on a fixed pool of goroutines fed by a
// bounded queue. Tasks never hold the request that started them: each runs
// under its own context derived from the runner, not from the request.
type BackgroundRunner struct {
	queue   chan job
	size    int
	timeout time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.RWMutex
	closed  bool
	started bool
	wg      sync.WaitGroup

	logger  *logger.Logger
	metrics *metrics.Recorder
}

// NewBackgroundRunner builds an idle runner. Tasks submitted before Run wait
// in the queue.
func NewBackgroundRunner(cfg config.Workers, log *logger.Logger, rec *metrics.Recorder) *BackgroundRunner {
	size := cfg.BackgroundWorkers
	if size <= 0 {
		size = 1
	}
	queueSize := cfg.BackgroundQueueSize
	if queueSize < 0 {
		queueSize = 0
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &BackgroundRunner{
		queue:   make(chan job, queueSize),
		size:    size,
		timeout: cfg.TaskTimeout,
		ctx:     ctx,
		cancel:  cancel,
		logger:  log,
		metrics: rec,
	}
}

// Run starts the worker goroutines. Calling it twice is a no-op.
func (r *BackgroundRunner) Run() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.started || r.closed {
		return
	}
	r.started = true

	r.wg.Add(r.size)
	for i := 0; i < r.size; i++ {
		go r.loop()
	}
}

// Go enqueues task without blocking. It reports false, logging the task as
// dropped, when the runner is stopped or the queue is full.
func (r *BackgroundRunner) Go(name string, task Task) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		r.drop(name, ErrRunnerStopped)
		return false
	}

	select {
	case r.queue <- job{name: name, task: task}:
		return true
	default:
		r.drop(name, ErrQueueFull)
		return false
	}
}

// Stop closes the queue and waits for queued tasks to finish. When ctx ends
// first, running tasks are cancelled, tasks still queued are dropped and
// ErrDrainTimeout is returned.
func (r *BackgroundRunner) Stop(ctx context.Context) error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	r.closed = true
	close(r.queue)
	started := r.started
	r.mu.Unlock()

	if !started {
		// nobody will read the queue
		for j := range r.queue {
			r.drop(j.name, ErrRunnerStopped)
		}
		r.cancel()
		return nil
	}

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		r.cancel()
		return nil
	case <-ctx.Done():
		r.cancel()
		<-done
		return fmt.Errorf("%w: %w", ErrDrainTimeout, ctx.Err())
	}
}

func (r *BackgroundRunner) loop() {
	defer r.wg.Done()

	for j := range r.queue {
		if r.ctx.Err() != nil {
			r.drop(j.name, r.ctx.Err())
			continue
		}
		r.execute(j)
	}
}

func (r *BackgroundRunner) execute(j job) {
	taskLog := r.logger.ForTask(j.name)

	ctx := r.ctx
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}
	ctx = taskLog.WithContext(ctx)

	start := time.Now()
	err := runSafely(ctx, j.task)
	if err != nil {
		taskLog.Err(err).Dur("elapsed", time.Since(start)).Msg("background task failed")
		r.metrics.RecordTask(j.name, metrics.TaskFailed)
		return
	}

	taskLog.Debug().Dur("elapsed", time.Since(start)).Msg("background task done")
	r.metrics.RecordTask(j.name, metrics.TaskSucceeded)
}

func (r *BackgroundRunner) drop(name string, reason error) {
	r.logger.ForTask(name).Warn().Err(reason).Msg("background task dropped")
	r.metrics.RecordTask(name, metrics.TaskDropped)
}

func runSafely(ctx context.Context, task Task) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%w: %v", ErrTaskPanicked, p)
		}
	}()
	return task(ctx)
}
