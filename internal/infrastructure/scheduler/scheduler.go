package scheduler

import (
	"context"
	"sync"
	"time"

	"billing_scheduler/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// Scheduler fires one task after a delay on its own goroutine.
//
// It holds at most one pending firing. The pending slot is released right
// before the task runs, so the task itself may call Schedule again; that is
// how a periodic job is built on top of it. Tasks run with a context that is
// detached from cancellation, so Stop lets a running task finish.
type Scheduler struct {
	log *zap.Logger

	mu      sync.Mutex
	timer   *time.Timer
	pending bool
	stopped bool
	running sync.WaitGroup
}

var _ interfaces.IScheduler = (*Scheduler)(nil)

func New(log *zap.Logger) *Scheduler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Scheduler{log: log.Named("scheduler")}
}

// Schedule arms task to run once after delay.
func (s *Scheduler) Schedule(ctx context.Context, delay time.Duration, task interfaces.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return interfaces.ErrSchedulerStopped
	}
	if s.pending {
		return interfaces.ErrAlreadyScheduled
	}
	if delay < 0 {
		delay = 0
	}

	taskCtx := context.WithoutCancel(ctx)
	s.pending = true
	s.timer = time.AfterFunc(delay, func() { s.fire(taskCtx, task) })
	s.log.Debug("[scheduler] armed", zap.Duration("delay", delay))
	return nil
}

func (s *Scheduler) fire(ctx context.Context, task interfaces.Task) {
	s.mu.Lock()
	if s.stopped || !s.pending {
		s.mu.Unlock()
		return
	}
	s.pending = false
	s.timer = nil
	s.running.Add(1)
	s.mu.Unlock()

	defer s.running.Done()
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("[scheduler] task panicked", zap.Any("panic", r))
		}
	}()
	task(ctx)
}

// isArmed reports whether a firing is pending.
func (s *Scheduler) isArmed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// Stop drops the pending firing, refuses new ones and waits for a running task.
// It is safe to call more than once.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.stopped {
		s.stopped = true
		if s.timer != nil {
			s.timer.Stop()
			s.timer = nil
		}
		s.pending = false
		s.log.Info("[scheduler] stopped")
	}
	s.mu.Unlock()

	s.running.Wait()
}
