// Package worker runs delayed, keyed continuations off the request path.
package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/osse101/FishingBot_Go/internal/logger"
)

// ErrSchedulerStopped is returned by Schedule once Shutdown has begun.
var ErrSchedulerStopped = errors.New("scheduler stopped")

// Scheduler runs a task once per key after a delay. Scheduling a key that is
// already pending replaces the earlier task.
type Scheduler struct {
	name    string
	mu      sync.Mutex
	timers  map[string]*time.Timer
	stopped bool
	wg      sync.WaitGroup
}

// NewScheduler creates a scheduler; name only appears in logs.
func NewScheduler(name string) *Scheduler {
	return &Scheduler{
		name:   name,
		timers: make(map[string]*time.Timer),
	}
}

// Schedule arranges for task to run after delay. A non-positive delay runs it
// immediately in a tracked goroutine.
func (s *Scheduler) Schedule(key string, delay time.Duration, task func(ctx context.Context)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		logger.FromContext(context.Background()).Warn(LogMsgScheduleAfterShutdown, "scheduler", s.name, "key", key)
		return ErrSchedulerStopped
	}

	if existing, ok := s.timers[key]; ok {
		existing.Stop()
		delete(s.timers, key)
	}

	if delay <= 0 {
		s.runLocked(key, task)
		return nil
	}

	logger.FromContext(context.Background()).Debug(LogMsgSchedulingTask, "scheduler", s.name, "key", key, "delay", delay)

	var timer *time.Timer
	timer = time.AfterFunc(delay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		// A replaced or cancelled timer may still fire if Stop lost the race.
		if s.stopped || s.timers[key] != timer {
			return
		}
		delete(s.timers, key)
		s.runLocked(key, task)
	})
	s.timers[key] = timer
	return nil
}

// runLocked starts task in a tracked goroutine. The caller holds s.mu, which
// keeps wg.Add ordered before Shutdown's Wait.
func (s *Scheduler) runLocked(key string, task func(ctx context.Context)) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ctx := logger.WithRequestID(context.Background(), logger.GenerateRequestID())
		log := logger.FromContext(ctx)
		defer func() {
			if r := recover(); r != nil {
				log.Error(LogMsgScheduledTaskPanicked, "scheduler", s.name, "key", key, "panic", r)
			}
		}()
		log.Debug(LogMsgRunningScheduledTask, "scheduler", s.name, "key", key)
		task(ctx)
	}()
}

// Cancel stops a pending task. It reports whether a task was pending.
func (s *Scheduler) Cancel(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	timer, ok := s.timers[key]
	if !ok {
		return false
	}
	timer.Stop()
	delete(s.timers, key)
	return true
}

// Pending reports how many tasks are waiting to fire.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// Shutdown cancels all pending tasks and waits for running ones.
func (s *Scheduler) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgSchedulerShuttingDown, "scheduler", s.name)

	s.mu.Lock()
	s.stopped = true
	for key, timer := range s.timers {
		timer.Stop()
		log.Info(LogMsgCancelledPendingTask, "scheduler", s.name, "key", key)
	}
	s.timers = make(map[string]*time.Timer)
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(LogMsgSchedulerShutdownDone, "scheduler", s.name)
		return nil
	case <-ctx.Done():
		log.Warn(LogMsgSchedulerShutdownSlow, "scheduler", s.name)
		return ctx.Err()
	}
}
