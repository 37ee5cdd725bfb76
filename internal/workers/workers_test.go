// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubWorker records Run and Stop calls into a shared log.
type stubWorker struct {
	id      string
	log     *[]string
	stopErr error
}

func (s *stubWorker) Run() {
	*s.log = append(*s.log, "run:"+s.id)
}

func (s *stubWorker) Stop(context.Context) error {
	*s.log = append(*s.log, "stop:"+s.id)
	return s.stopErr
}

func TestWorkers_RunInOrder_StopInReverse(t *testing.T) {
	var calls []string
	ws := NewWorkers(
		&stubWorker{id: "1", log: &calls},
		&stubWorker{id: "2", log: &calls},
		&stubWorker{id: "3", log: &calls},
	)

	ws.Run()
	err := ws.Stop(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []string{"run:1", "run:2", "run:3", "stop:3", "stop:2", "stop:1"}, calls)
}

func TestWorkers_SkipsNil(t *testing.T) {
	var calls []string
	ws := NewWorkers(nil, &stubWorker{id: "a", log: &calls}, nil)

	ws.Run()

	assert.Equal(t, []string{"run:a"}, calls)
}

func TestWorkers_Empty(t *testing.T) {
	ws := NewWorkers()

	assert.NotPanics(t, ws.Run)
	assert.NoError(t, ws.Stop(context.Background()))
}

func TestWorkers_Stop_JoinsErrors(t *testing.T) {
	var calls []string
	errA := errors.New("a failed")
	errB := errors.New("b failed")
	ws := NewWorkers(
		&stubWorker{id: "a", log: &calls, stopErr: errA},
		&stubWorker{id: "b", log: &calls, stopErr: errB},
	)

	err := ws.Stop(context.Background())

	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errB)
	assert.Len(t, calls, 2, "every worker is stopped even after a failure")
}
