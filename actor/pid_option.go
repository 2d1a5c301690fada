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
	"github.com/tochemey/courier/log"
	"github.com/tochemey/courier/scheduler"
	"github.com/tochemey/courier/telemetry"
)

// Option configures a PID at spawn time.
type Option[A any] func(pid *PID[A])

// WithMailbox sets a custom mailbox. The default is an UnboundedMailbox.
func WithMailbox[A any](mailbox Mailbox[A]) Option[A] {
	return func(pid *PID[A]) {
		pid.mailbox = mailbox
	}
}

// WithLogger sets the logger used by the PID and handed to handlers through
// their execution context.
func WithLogger[A any](logger log.Logger) Option[A] {
	return func(pid *PID[A]) {
		pid.logger = logger
	}
}

// WithScheduler attaches a scheduler. Every envelope sent through this PID
// then carries a no-advance-time guard for its entire life, so a
// time-advancement mechanism can wait for the system to go idle.
func WithScheduler[A any](sched *scheduler.Scheduler) Option[A] {
	return func(pid *PID[A]) {
		pid.scheduler = sched
	}
}

// WithTelemetry enables metrics collection for the PID.
func WithTelemetry[A any](tel *telemetry.Telemetry) Option[A] {
	return func(pid *PID[A]) {
		pid.telemetry = tel
	}
}
