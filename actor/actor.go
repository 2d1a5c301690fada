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

// Package actor implements typed message envelopes and their dispatch to
// actors.
//
// Messages sent to an actor can have different payload types and different
// reply types, yet a mailbox needs one uniform element type. The Envelope
// reconciles the two: at send time the strongly typed handler for the
// message is captured together with the payload and a one-shot reply
// channel, type-erased behind a uniform interface, and enqueued. At delivery
// time the dispatch loop invokes the envelope against the actor instance;
// the captured handler runs with its concrete types intact and its result is
// pushed back to the original sender.
//
// A PID owns one actor instance, its mailbox and the sequential dispatch
// loop; Send and Ask are the typed entry points.
package actor

import "context"

// HandlerFunc is the handling operation an actor of type A exposes for
// messages of type M, producing replies of type R. It is usually a method
// expression, which lets a single actor type expose any number of typed
// handlers:
//
//	type Counter struct{ count int }
//
//	func (c *Counter) HandleIncrement(_ *actor.Context, m Increment) (int, error) {
//		c.count += m.Delta
//		return c.count, nil
//	}
//
//	reply, err := actor.Ask(ctx, pid, (*Counter).HandleIncrement, Increment{Delta: 5})
//
// A handler runs on the actor's dispatch goroutine, one message at a time.
// Returning a non-nil error ends the actor with that error as its exit
// status.
type HandlerFunc[A, M, R any] func(actor A, ctx *Context, message M) (R, error)

// Guard is an opaque token held by an envelope while the message it wraps is
// in flight. Its only contract is to be released exactly once when the
// envelope's lifetime ends, whether the message was dispatched, failed, or
// discarded without ever being delivered. The envelope never calls anything
// on it besides Release.
//
// See scheduler.NoAdvanceTimeGuard for the canonical implementation.
type Guard interface {
	Release()
}

// PreStarter is implemented by actors that need setup to run before their
// first message. A PreStart error fails the spawn.
type PreStarter interface {
	PreStart(ctx context.Context) error
}

// PostStopper is implemented by actors that need cleanup after their last
// message. PostStop runs once, whatever the exit status.
type PostStopper interface {
	PostStop(ctx context.Context) error
}
