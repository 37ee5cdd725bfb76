// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics exposes Prometheus collectors for query resolution,
// background tasks and the anonymous rate limiter.
//
// A Recorder owns its registry, so tests can build as many as they need. All
// methods are safe on a nil *Recorder and then do nothing.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Background task statuses.
const (
	TaskSucceeded = "ok"
	TaskFailed    = "failed"
	TaskDropped   = "dropped"
)

type Recorder struct {
	registry *prometheus.Registry

	resolutions     *prometheus.CounterVec
	backgroundTasks *prometheus.CounterVec
	rateLimitDelay  prometheus.Histogram
}

// NewRecorder registers the bangs collectors plus the Go runtime and process
// collectors on a fresh registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		resolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bangs_resolutions_total",
			Help: "Total resolved queries by outcome",
		}, []string{"outcome"}),
		backgroundTasks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bangs_background_tasks_total",
			Help: "Total fire-and-forget tasks by task name and status",
		}, []string{"task", "status"}),
		rateLimitDelay: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "bangs_rate_limit_delay_seconds",
			Help:    "Artificial delay applied to anonymous searches over the limit",
			Buckets: []float64{1, 5, 10, 20, 40, 80, 160},
		}),
	}

	r.registry.MustRegister(
		r.resolutions,
		r.backgroundTasks,
		r.rateLimitDelay,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return r
}

// RecordResolution counts one resolved query.
func (r *Recorder) RecordResolution(outcome string) {
	if r == nil || outcome == "" {
		return
	}
	r.resolutions.WithLabelValues(outcome).Inc()
}

// RecordTask counts one finished (or dropped) background task.
func (r *Recorder) RecordTask(task, status string) {
	if r == nil {
		return
	}
	r.backgroundTasks.WithLabelValues(task, status).Inc()
}

// ObserveRateLimitDelay records a delay applied to an anonymous search.
func (r *Recorder) ObserveRateLimitDelay(d time.Duration) {
	if r == nil {
		return
	}
	r.rateLimitDelay.Observe(d.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
