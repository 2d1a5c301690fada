/*
 * MIT License
 *
 * Copyright (c) 2022-2025  Arsene Tochemey Gandote
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package scheduler tracks in-flight messages and runs delayed tasks.
//
// A time-advancement mechanism (for instance a simulated clock used in
// tests) must not move time forward while a message is somewhere between its
// sender and its handler. The Scheduler hands out NoAdvanceTimeGuard tokens
// for that purpose: as long as at least one guard is unreleased the
// scheduler reports itself busy and AwaitIdle blocks.
package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/reugn/go-quartz/job"
	quartzlogger "github.com/reugn/go-quartz/logger"
	"github.com/reugn/go-quartz/quartz"
	"go.uber.org/atomic"

	"github.com/tochemey/courier/log"
)

// ErrNotStarted is returned when attempting to schedule a task before the
// scheduler has started or after it has stopped.
var ErrNotStarted = errors.New("scheduler has not started")

// defaultStopTimeout is the time allotted to in-flight jobs during Stop.
const defaultStopTimeout = time.Minute

// NoAdvanceTimeGuard is an opaque token signaling that a message is in
// flight. It is acquired with Protect before an envelope starts its journey
// through a mailbox and must be released exactly once when the envelope's
// lifetime ends. Releasing more than once is harmless.
type NoAdvanceTimeGuard struct {
	once      sync.Once
	scheduler *Scheduler
}

// Release signals that the protected message is no longer in flight.
// It is idempotent.
func (x *NoAdvanceTimeGuard) Release() {
	x.once.Do(func() {
		x.scheduler.inflight.Dec()
		x.scheduler.notifyChanged()
	})
}

// Option configures the Scheduler.
type Option func(scheduler *Scheduler)

// WithStopTimeout sets how long Stop waits for in-flight jobs.
func WithStopTimeout(timeout time.Duration) Option {
	return func(scheduler *Scheduler) {
		scheduler.stopTimeout = timeout
	}
}

// Scheduler runs one-shot delayed tasks and accounts for in-flight
// messages.
type Scheduler struct {
	// helps lock concurrent access
	mu sync.Mutex
	// underlying Scheduler
	quartzScheduler quartz.Scheduler
	// states whether the quartzScheduler has started or not
	started *atomic.Bool
	// number of unreleased guards
	inflight *atomic.Int64
	// wakes AwaitIdle when the in-flight count drops
	changed chan struct{}
	// define the logger
	logger log.Logger
	// define the shutdown timeout
	stopTimeout time.Duration
}

// New creates an instance of Scheduler.
func New(logger log.Logger, opts ...Option) *Scheduler {
	// create an instance of quartz scheduler with logger off
	quartzScheduler, _ := quartz.NewStdScheduler(quartz.WithLogger(quartzlogger.NewSimpleLogger(nil, quartzlogger.LevelOff)))

	scheduler := &Scheduler{
		quartzScheduler: quartzScheduler,
		started:         atomic.NewBool(false),
		inflight:        atomic.NewInt64(0),
		changed:         make(chan struct{}, 1),
		logger:          logger,
		stopTimeout:     defaultStopTimeout,
	}

	// set the custom options to override the default values
	for _, opt := range opts {
		opt(scheduler)
	}

	return scheduler
}

// Start starts the scheduler.
func (x *Scheduler) Start(ctx context.Context) {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.logger.Info("starting scheduler...")
	x.quartzScheduler.Start(ctx)
	x.started.Store(x.quartzScheduler.IsStarted())
	x.logger.Info("scheduler started.:)")
}

// Stop stops the scheduler and waits up to the stop timeout for in-flight
// jobs to complete.
func (x *Scheduler) Stop(ctx context.Context) {
	if !x.started.Load() {
		return
	}

	x.logger.Info("stopping scheduler...")
	x.mu.Lock()
	defer x.mu.Unlock()
	_ = x.quartzScheduler.Clear()
	x.quartzScheduler.Stop()
	x.started.Store(x.quartzScheduler.IsStarted())

	ctx, cancel := context.WithTimeout(ctx, x.stopTimeout)
	defer cancel()
	x.quartzScheduler.Wait(ctx)

	x.logger.Info("scheduler stopped...:)")
}

// Protect acquires a NoAdvanceTimeGuard. The guard accounting is
// independent of the delayed-task machinery, so Protect may be used even
// when the scheduler was never started.
func (x *Scheduler) Protect() *NoAdvanceTimeGuard {
	x.inflight.Inc()
	return &NoAdvanceTimeGuard{scheduler: x}
}

// Inflight returns the number of unreleased guards.
func (x *Scheduler) Inflight() int64 {
	return x.inflight.Load()
}

// AwaitIdle blocks until every guard has been released or the context is
// canceled.
func (x *Scheduler) AwaitIdle(ctx context.Context) error {
	for {
		if x.inflight.Load() == 0 {
			// pass the wake-up along in case another waiter is parked
			x.notifyChanged()
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-x.changed:
		}
	}
}

// RunAfter schedules the given task to run once after the given delay and
// returns the job identifier.
func (x *Scheduler) RunAfter(delay time.Duration, task func()) (string, error) {
	x.mu.Lock()
	defer x.mu.Unlock()

	if !x.started.Load() {
		return "", ErrNotStarted
	}

	functionJob := job.NewFunctionJob[bool](
		func(context.Context) (bool, error) {
			task()
			return true, nil
		},
	)

	key := uuid.NewString()
	detail := quartz.NewJobDetail(functionJob, quartz.NewJobKey(key))
	if err := x.quartzScheduler.ScheduleJob(detail, quartz.NewRunOnceTrigger(delay)); err != nil {
		return "", err
	}
	return key, nil
}

// notifyChanged wakes at most one AwaitIdle waiter; the waiter re-checks the
// count and re-arms, so a single-slot channel is enough.
func (x *Scheduler) notifyChanged() {
	select {
	case x.changed <- struct{}{}:
	default:
	}
}
