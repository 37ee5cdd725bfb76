// Package workers runs the background parts of the service.
//
// [BackgroundRunner] executes fire-and-forget tasks started by request
// handlers (bookmark inserts, page title fetches, usage counters) on a fixed
// pool of goroutines. Task failures only reach the logger and the metrics
// recorder. [ReminderWorker] periodically hands due reminders to a
// [Notifier]. [Workers] starts and stops them together.
package workers

import "context"

// Worker is a long-running background component.
//
// Run starts the worker and returns immediately. Stop asks it to finish and
// blocks until it has, or until ctx is done.
type Worker interface {
	Run()
	Stop(ctx context.Context) error
}

// Task is a unit of fire-and-forget work. The context carries the task
// timeout and a logger tagged with the task name.
type Task = func(ctx context.Context) error
