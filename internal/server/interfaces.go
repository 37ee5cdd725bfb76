package server

import "context"

// Server defines the lifecycle of the process' transport and workers.
//
// RunServer blocks until a stop signal arrives or the listener fails.
// Shutdown stops accepting requests, waits for in-flight ones and then
// stops the workers, all within the configured shutdown timeout.
type Server interface {
	RunServer()
	Shutdown()
}

// Stopper is the part of the worker aggregate the server drives.
type Stopper interface {
	Run()
	Stop(ctx context.Context) error
}
