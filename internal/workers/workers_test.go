// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/mission-planner/internal/config"
	"github.com/MKhiriev/mission-planner/internal/logger"
	"github.com/MKhiriev/mission-planner/internal/mock"
	"github.com/MKhiriev/mission-planner/internal/service"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	runCount int
}

func (m *mockWorker) Run(context.Context) {
	m.runCount++
}

// recordingReporter stores every reported status.
type recordingReporter struct {
	mu       sync.Mutex
	statuses []bool
}

func (r *recordingReporter) SetServing(serving bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.statuses = append(r.statuses, serving)
}

func (r *recordingReporter) snapshot() []bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]bool(nil), r.statuses...)
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}

	ws := &Workers{workers: []Worker{w1, w2}}
	ws.Run(context.Background())

	assert.Equal(t, 1, w1.runCount)
	assert.Equal(t, 1, w2.runCount)
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{}

	assert.NotPanics(t, func() { ws.Run(context.Background()) })
}

func TestNewWorkers(t *testing.T) {
	ctrl := gomock.NewController(t)
	services := &service.Services{HealthService: mock.NewMockHealthService(ctrl)}

	ws := NewWorkers(services, &recordingReporter{}, config.Workers{}, logger.Nop())
	assert.Len(t, ws.workers, 1)

	ws = NewWorkers(services, nil, config.Workers{}, logger.Nop())
	assert.Empty(t, ws.workers)

	ws = NewWorkers(&service.Services{}, &recordingReporter{}, config.Workers{}, logger.Nop())
	assert.Empty(t, ws.workers)
}

func TestHealthProbe_FirstProbeIsSynchronous(t *testing.T) {
	ctrl := gomock.NewController(t)
	checker := mock.NewMockHealthService(ctrl)
	checker.EXPECT().Check(gomock.Any()).Return(errors.New("db down"))

	reporter := &recordingReporter{}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	newHealthProbe(checker, reporter, time.Hour, logger.Nop()).Run(ctx)

	assert.Equal(t, []bool{false}, reporter.snapshot())
}

func TestHealthProbe_TicksUntilCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	checker := mock.NewMockHealthService(ctrl)

	first := checker.EXPECT().Check(gomock.Any()).Return(errors.New("starting"))
	checker.EXPECT().Check(gomock.Any()).Return(nil).After(first).MinTimes(1)

	reporter := &recordingReporter{}
	ctx, cancel := context.WithCancel(context.Background())

	newHealthProbe(checker, reporter, 10*time.Millisecond, logger.Nop()).Run(ctx)

	require.Eventually(t, func() bool {
		statuses := reporter.snapshot()
		return len(statuses) >= 2 && statuses[len(statuses)-1]
	}, time.Second, 5*time.Millisecond)

	cancel()
	time.Sleep(30 * time.Millisecond)

	stopped := len(reporter.snapshot())
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, stopped, len(reporter.snapshot()))
	assert.False(t, reporter.snapshot()[0])
}

func TestNewHealthProbe_DefaultInterval(t *testing.T) {
	p := newHealthProbe(nil, nil, 0, logger.Nop())

	assert.Equal(t, defaultProbeInterval, p.interval)
}
