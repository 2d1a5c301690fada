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

package actor

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/tochemey/courier/future"
	"github.com/tochemey/courier/log"
	"github.com/tochemey/courier/scheduler"
	"github.com/tochemey/courier/telemetry"
)

// specifies the state in which the PID is
// regarding message processing
const (
	// idle means there are no messages to process
	idle int32 = iota
	// busy means the PID is processing messages
	busy
)

// shutdownPollInterval is how often Shutdown re-checks that the dispatch
// loop has gone idle.
const shutdownPollInterval = time.Millisecond

// PID owns a single actor instance together with its mailbox and the
// sequential dispatch loop. Messages are delivered one at a time: an
// envelope is dispatched to completion before the next one is dequeued.
type PID[A any] struct {
	id    string
	name  string
	actor A

	mailbox   Mailbox[A]
	logger    log.Logger
	scheduler *scheduler.Scheduler
	telemetry *telemetry.Telemetry
	metrics   *telemetry.ActorMetrics

	ctx context.Context

	// atomic flag indicating whether the actor is processing messages
	processing atomic.Int32
	stopping   atomic.Bool
	stopOnce   sync.Once
	exit       *ExitStatus
	done       chan struct{}
}

// Spawn creates a PID around the given actor instance and makes it ready to
// process messages. When the actor implements PreStarter the hook runs
// first and a hook error fails the spawn.
func Spawn[A any](ctx context.Context, name string, instance A, opts ...Option[A]) (*PID[A], error) {
	pid := &PID[A]{
		id:      uuid.NewString(),
		name:    name,
		actor:   instance,
		mailbox: NewUnboundedMailbox[A](),
		logger:  log.DefaultLogger,
		ctx:     ctx,
		done:    make(chan struct{}),
	}

	// set the custom options to override the default values
	for _, opt := range opts {
		opt(pid)
	}

	if pid.telemetry != nil {
		metrics, err := telemetry.NewActorMetrics(pid.telemetry.Meter, name, pid.mailbox.Len)
		if err != nil {
			return nil, err
		}
		pid.metrics = metrics
	}

	if starter, ok := any(pid.actor).(PreStarter); ok {
		if err := starter.PreStart(ctx); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrPreStartFailure, err)
		}
	}

	pid.logger.Infof("%s started", name)
	return pid, nil
}

// ID returns the unique identifier assigned at spawn time.
func (x *PID[A]) ID() string {
	return x.id
}

// Name returns the actor name.
func (x *PID[A]) Name() string {
	return x.name
}

// IsRunning returns true when the actor still accepts messages.
func (x *PID[A]) IsRunning() bool {
	return !x.stopping.Load()
}

// Done is closed once the actor has fully stopped.
func (x *PID[A]) Done() <-chan struct{} {
	return x.done
}

// ExitStatus returns the final status of the actor, or nil while it is
// still running.
func (x *PID[A]) ExitStatus() *ExitStatus {
	select {
	case <-x.done:
		return x.exit
	default:
		return nil
	}
}

// Shutdown stops the actor gracefully. The envelope being dispatched, if
// any, runs to completion; every envelope still waiting in the mailbox is
// discarded, which releases its guard and abandons its reply. Shutdown
// returns once the actor has fully stopped or the context is canceled.
func (x *PID[A]) Shutdown(ctx context.Context) error {
	// no new mail from this point on
	x.stopping.Store(true)

	// claim the processing slot so no dispatch is in flight and no new
	// loop can start while we finalize
	for !x.processing.CompareAndSwap(idle, busy) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(shutdownPollInterval):
		}
	}
	x.stop(Quit())
	x.processing.Store(idle)

	// catch envelopes that raced the final drain while we held the
	// processing slot
	x.process()
	return nil
}

// Send wraps the given message and its handler into an envelope, places the
// envelope in the mailbox and returns the future carrying the eventual
// reply. The caller may await the future or simply drop it when the reply
// is of no interest.
//
// When the PID has a scheduler attached the envelope carries a
// no-advance-time guard until the end of its life.
func Send[A, M, R any](pid *PID[A], handler HandlerFunc[A, M, R], message M) (*future.Future[R], error) {
	if !pid.IsRunning() {
		return nil, ErrDead
	}

	var guard Guard
	if pid.scheduler != nil {
		guard = pid.scheduler.Protect()
	}

	envelope, reply := Wrap(handler, message, guard)
	if err := pid.deliver(envelope); err != nil {
		return nil, err
	}
	return reply, nil
}

// Ask sends the given message and blocks until the reply arrives or the
// context is canceled.
func Ask[A, M, R any](ctx context.Context, pid *PID[A], handler HandlerFunc[A, M, R], message M) (R, error) {
	reply, err := Send(pid, handler, message)
	if err != nil {
		var zero R
		return zero, err
	}
	return reply.Await(ctx)
}

// SendAfter schedules the message for delivery after the given delay. The
// no-advance-time guard is acquired immediately, not at delivery time, so
// the in-flight window covers the wait. A PID that died before the timer
// fires discards the envelope.
func SendAfter[A, M, R any](sched *scheduler.Scheduler, pid *PID[A], handler HandlerFunc[A, M, R], message M, delay time.Duration) (*future.Future[R], error) {
	envelope, reply := Wrap(handler, message, sched.Protect())
	if _, err := sched.RunAfter(delay, func() {
		if err := pid.deliver(envelope); err != nil {
			pid.logger.Warnf("%s dropping %s: %v", pid.name, envelope, err)
		}
	}); err != nil {
		envelope.Discard()
		return nil, err
	}
	return reply, nil
}

// deliver pushes an envelope to the mailbox and signals the dispatch loop.
// The envelope is discarded when the actor is already dead or the mailbox
// rejects it.
func (x *PID[A]) deliver(envelope *Envelope[A]) error {
	if x.stopping.Load() {
		envelope.Discard()
		return ErrDead
	}
	if err := x.mailbox.Enqueue(envelope); err != nil {
		envelope.Discard()
		return err
	}
	x.process()
	return nil
}

// process extracts every envelope from the mailbox and dispatches it.
// Only one processing loop runs at a time: a loop is started on the idle to
// busy transition and exits once the mailbox drains.
func (x *PID[A]) process() {
	if !x.processing.CompareAndSwap(idle, busy) {
		return
	}

	go func() {
		for {
			if x.stopping.Load() {
				x.drainMailbox()
			} else if envelope := x.mailbox.Dequeue(); envelope != nil {
				x.handleReceived(envelope)
				continue
			}

			// if no more messages, change busy state to idle
			x.processing.Store(idle)

			// check if new messages were added in the meantime and restart
			// processing
			if !x.mailbox.IsEmpty() && x.processing.CompareAndSwap(idle, busy) {
				continue
			}
			return
		}
	}()
}

// handleReceived dispatches one envelope against the actor. A handler error
// or panic ends the actor with the corresponding exit status.
func (x *PID[A]) handleReceived(envelope *Envelope[A]) {
	if x.metrics != nil {
		x.metrics.MarkReceived(x.ctx)
	}

	if err := x.dispatch(envelope); err != nil {
		x.stop(toExitStatus(err))
	}
}

// dispatch runs a single envelope, converting a handler panic into a
// Panicked exit status instead of tearing the process down.
func (x *PID[A]) dispatch(envelope *Envelope[A]) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if x.metrics != nil {
				x.metrics.MarkPanic(x.ctx)
			}
			err = Panicked(fmt.Errorf("%v", r))
		}
	}()

	ctx := &Context{
		ctx:    x.ctx,
		self:   x.name,
		logger: x.logger,
	}
	return envelope.Dispatch(x.actor, ctx)
}

// stop makes the exit status final. The first caller wins: pending mail is
// discarded, the PostStop hook runs and the done channel is closed.
func (x *PID[A]) stop(status *ExitStatus) {
	x.stopOnce.Do(func() {
		x.stopping.Store(true)
		x.exit = status
		x.drainMailbox()

		if stopper, ok := any(x.actor).(PostStopper); ok {
			if err := stopper.PostStop(x.ctx); err != nil {
				x.logger.Errorf("%s postStop failed: %v", x.name, err)
			}
		}

		if x.metrics != nil {
			if err := x.metrics.Unregister(); err != nil {
				x.logger.Warn(err)
			}
		}

		x.logger.Infof("%s stopped: %s", x.name, status)
		close(x.done)
	})
}

// drainMailbox discards every pending envelope: guards are released and
// reply futures abandoned so blocked senders resolve.
func (x *PID[A]) drainMailbox() {
	for envelope := x.mailbox.Dequeue(); envelope != nil; envelope = x.mailbox.Dequeue() {
		x.logger.Debugf("%s discarding %s", x.name, envelope)
		envelope.Discard()
	}
}
