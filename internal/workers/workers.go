package workers

import (
	"context"
	"errors"
)

// Workers starts and stops a set of workers as one.
type Workers struct {
	workers []Worker
}

// NewWorkers groups ws. Nil entries are skipped.
func NewWorkers(ws ...Worker) *Workers {
	w := &Workers{}
	for _, worker := range ws {
		if worker != nil {
			w.workers = append(w.workers, worker)
		}
	}
	return w
}

// Run starts the workers in order.
func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// Stop stops the workers in reverse order and joins their errors.
func (w *Workers) Stop(ctx context.Context) error {
	var errs []error
	for i := len(w.workers) - 1; i >= 0; i-- {
		if err := w.workers[i].Stop(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
