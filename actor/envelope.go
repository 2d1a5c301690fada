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
	"fmt"
	"sync"

	"github.com/tochemey/courier/future"
)

// consumedMarker is what an envelope reports once its payload has been
// taken.
const consumedMarker = "<consumed>"

// holder is the minimal contract a type-erased message unit must satisfy so
// that envelopes of heterogeneous payload types can share one mailbox.
// Exactly one implementation exists per (actor, message, reply) pairing; the
// mailbox only ever sees this interface.
type holder[A any] interface {
	// debugMessage returns a human-readable description of the payload, or
	// a fixed marker once consumed. It never fails and can be called any
	// number of times.
	debugMessage() string
	// message removes and returns the payload in type-erased form, or nil
	// once consumed. Introspection only, not part of the dispatch path.
	message() any
	// execute removes the payload together with its reply sender, invokes
	// the captured handler against the given actor and delivers the result.
	// Calling execute on a consumed holder is a programming error and
	// panics.
	execute(actor A, ctx *Context) error
	// discard abandons the reply without running the handler. Idempotent.
	discard()
}

// cell pairs a payload with the reply sender and the handler captured for
// it. A cell is taken as a whole: payload and reply sender can never be
// consumed separately.
type cell[A, M, R any] struct {
	handler HandlerFunc[A, M, R]
	replyTo *future.Completable[R]
	message M
}

// slot is the single holder implementation. Its state is one optional cell:
// loaded while the pointer is set, consumed once it is nil. Every consuming
// operation takes the whole cell, so consumption is one-way.
type slot[A, M, R any] struct {
	cell *cell[A, M, R]
}

// enforce compilation error
var _ holder[struct{}] = (*slot[struct{}, int, int])(nil)

func (x *slot[A, M, R]) debugMessage() string {
	if x.cell == nil {
		return consumedMarker
	}
	return fmt.Sprintf("%v", x.cell.message)
}

func (x *slot[A, M, R]) message() any {
	if x.cell == nil {
		return nil
	}
	taken := x.cell
	x.cell = nil
	// the reply sender is dropped with the cell: nobody will ever answer
	taken.replyTo.Abandon()
	return taken.message
}

func (x *slot[A, M, R]) execute(actor A, ctx *Context) error {
	if x.cell == nil {
		panic(ErrEnvelopeConsumed)
	}
	taken := x.cell
	x.cell = nil
	// whether the handler fails or panics, the sender must not wait forever;
	// after a successful delivery this is a no-op
	defer taken.replyTo.Abandon()

	reply, err := taken.handler(actor, ctx, taken.message)
	if err != nil {
		return err
	}
	// A lost delivery is fine here: the caller just did not wait for the
	// response and dropped its future.
	taken.replyTo.Success(reply)
	return nil
}

func (x *slot[A, M, R]) discard() {
	if x.cell == nil {
		return
	}
	taken := x.cell
	x.cell = nil
	taken.replyTo.Abandon()
}

// Envelope is a way to capture the handler of a message and hide its type.
//
// Messages can have different types but somehow need to be pushed to a
// mailbox with a single element type. Before enqueueing, the right handler
// implementation is captured in the form of a holder, wrapped in an
// Envelope, and that is what the mailbox stores.
//
// An Envelope is owned by exactly one party at a time (the sender, then the
// mailbox, then the dispatch loop); none of its methods are safe for
// concurrent use on the same envelope.
type Envelope[A any] struct {
	holder      holder[A]
	guard       Guard
	releaseOnce sync.Once
}

// Wrap builds an envelope around the given message and the handler captured
// for it, along with the future the eventual reply is delivered on. It is
// the only construction path for envelopes.
//
// The guard may be nil. When present it is released exactly once, when the
// envelope reaches the end of its life.
func Wrap[A, M, R any](handler HandlerFunc[A, M, R], message M, guard Guard) (*Envelope[A], *future.Future[R]) {
	replyTo := future.NewCompletable[R]()
	envelope := &Envelope[A]{
		holder: &slot[A, M, R]{
			cell: &cell[A, M, R]{
				handler: handler,
				replyTo: replyTo,
				message: message,
			},
		},
		guard: guard,
	}
	return envelope, replyTo.Future()
}

// Message removes and returns the wrapped payload in type-erased form, or
// nil when the envelope has already been consumed.
//
// This method is only useful in unit tests and diagnostics; dispatch never
// goes through it.
func (x *Envelope[A]) Message() any {
	return x.holder.message()
}

// MessageAs removes the envelope's payload and attempts a checked cast to
// M. The second return value is false when the payload's runtime type is
// not M or the envelope was already consumed.
//
// Like Envelope.Message this is meant for tests and diagnostics.
func MessageAs[M any, A any](envelope *Envelope[A]) (M, bool) {
	message, ok := envelope.Message().(M)
	return message, ok
}

// Dispatch consumes the payload and runs the captured handler against the
// given actor, delivering the handler's result to the reply future. The
// handler's error, if any, is propagated unchanged.
//
// Dispatch must be called at most once per envelope; a second call panics
// with ErrEnvelopeConsumed. The guard, when present, is released when
// Dispatch returns, on every exit path.
func (x *Envelope[A]) Dispatch(actor A, ctx *Context) error {
	defer x.release()
	return x.holder.execute(actor, ctx)
}

// Discard drops the envelope without dispatching it: the reply future is
// abandoned so its reader resolves, and the guard is released. Discarding
// an already consumed envelope only releases the guard. Idempotent.
func (x *Envelope[A]) Discard() {
	x.holder.discard()
	x.release()
}

// String implements fmt.Stringer.
func (x *Envelope[A]) String() string {
	return fmt.Sprintf("Envelope(%s)", x.holder.debugMessage())
}

// release releases the guard at most once.
func (x *Envelope[A]) release() {
	x.releaseOnce.Do(func() {
		if x.guard != nil {
			x.guard.Release()
		}
	})
}
