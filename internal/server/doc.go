// Package server runs the HTTP listener and the background workers of the
// service and stops both gracefully on SIGTERM, SIGINT or SIGQUIT.
package server
