package interfaces

import (
	"context"
	"errors"
	"time"
)

var (
	ErrSchedulerStopped = errors.New("scheduler stopped")
	ErrAlreadyScheduled = errors.New("a firing is already pending")
)

// Task is the callback fired by a scheduler.
type Task func(ctx context.Context)

// IScheduler runs a task once, after a delay, on a background timeline.
//
// At most one task is pending at a time: Schedule fails while another firing
// is pending, and a task may re-arm the scheduler once it has started.
type IScheduler interface {
	Schedule(ctx context.Context, delay time.Duration, task Task) error
	Stop()
}
