package workers

import "errors"

var (
	ErrRunnerStopped = errors.New("background runner is stopped")
	ErrQueueFull     = errors.New("background queue is full")
	ErrTaskPanicked  = errors.New("background task panicked")
	ErrDrainTimeout  = errors.New("background queue not drained before shutdown timeout")
)
