// Package task provides a small re-armable background task with an
// observable Idle/Running/Succeeded/Failed state machine.
//
// A Task runs one function at a time on its own goroutine. Starting a
// task that is already running is rejected rather than queued; once a
// run completes the task can be started again. Callers observe
// completion through the channel returned by Start or by polling
// State, so no caller ever blocks on the task's I/O.
package task

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// State is the lifecycle state of a Task.
type State int32

const (
	// Idle means the task has never been started.
	Idle State = iota
	// Running means a run is in flight.
	Running
	// Succeeded means the most recent run completed without error.
	Succeeded
	// Failed means the most recent run returned an error.
	Failed
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// ErrAlreadyRunning is returned by Start while a run is in flight.
var ErrAlreadyRunning = errors.New("task is already running")

// Task is a re-armable background operation. The zero value is not
// usable; create instances with New.
type Task struct {
	name   string
	logger *zap.Logger

	state atomic.Int32

	mu      sync.Mutex
	lastErr error
}

// New creates a named task in the Idle state.
func New(name string, logger *zap.Logger) *Task {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Task{name: name, logger: logger}
}

// Name returns the task's name.
func (t *Task) Name() string { return t.name }

// State returns the current lifecycle state.
func (t *Task) State() State {
	return State(t.state.Load())
}

// Err returns the error from the most recent completed run, or nil if
// the run succeeded or the task has never run.
func (t *Task) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lastErr
}

// Start runs fn on a new goroutine and returns a channel that receives
// the run's result exactly once. If a run is already in flight, Start
// returns ErrAlreadyRunning and fn is not invoked. A task in the
// Succeeded or Failed state is re-armed by the next Start.
func (t *Task) Start(ctx context.Context, fn func(context.Context) error) (<-chan error, error) {
	if !t.acquire() {
		return nil, ErrAlreadyRunning
	}

	done := make(chan error, 1)
	go func() {
		err := fn(ctx)

		t.mu.Lock()
		t.lastErr = err
		t.mu.Unlock()

		if err != nil {
			t.state.Store(int32(Failed))
			t.logger.Warn("background task failed",
				zap.String("task", t.name),
				zap.Error(err),
			)
		} else {
			t.state.Store(int32(Succeeded))
			t.logger.Debug("background task completed",
				zap.String("task", t.name),
			)
		}

		done <- err
		close(done)
	}()
	return done, nil
}

// acquire transitions any non-Running state to Running.
func (t *Task) acquire() bool {
	for {
		s := t.state.Load()
		if State(s) == Running {
			return false
		}
		if t.state.CompareAndSwap(s, int32(Running)) {
			return true
		}
	}
}
