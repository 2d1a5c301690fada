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
	gods "github.com/Workiva/go-datastructures/queue"
)

// BoundedMailbox is a bounded, blocking MPSC mailbox backed by a ring
// buffer.
//
// Characteristics
//   - Bounded capacity: the queue has a fixed size.
//   - Blocking semantics: Enqueue blocks when the mailbox is full until
//     space becomes available or the mailbox is disposed.
//   - Concurrency: safe for multiple producers (MPSC) and a single consumer.
//   - FIFO ordering: envelopes are dequeued in the order they were enqueued.
//
// Use this mailbox when you want strict, blocking backpressure with bounded
// capacity.
type BoundedMailbox[A any] struct {
	underlying *gods.RingBuffer
}

// enforce compilation error
var _ Mailbox[struct{}] = (*BoundedMailbox[struct{}])(nil)

// NewBoundedMailbox creates a new bounded, blocking mailbox with the given
// capacity. Capacity must be a positive integer.
func NewBoundedMailbox[A any](capacity int) *BoundedMailbox[A] {
	return &BoundedMailbox[A]{
		underlying: gods.NewRingBuffer(uint64(capacity)),
	}
}

// Enqueue inserts an envelope into the mailbox. It blocks when the mailbox
// is full until space is available, and returns an error when the mailbox
// has been disposed.
func (x *BoundedMailbox[A]) Enqueue(envelope *Envelope[A]) error {
	return x.underlying.Put(envelope)
}

// Dequeue removes and returns the next envelope from the mailbox, or nil
// when it is empty.
func (x *BoundedMailbox[A]) Dequeue() *Envelope[A] {
	if x.underlying.Len() > 0 {
		item, _ := x.underlying.Get()
		if envelope, ok := item.(*Envelope[A]); ok {
			return envelope
		}
	}
	return nil
}

// Len returns the current number of envelopes in the mailbox.
func (x *BoundedMailbox[A]) Len() int64 {
	return int64(x.underlying.Len())
}

// IsEmpty returns true when the mailbox is empty.
func (x *BoundedMailbox[A]) IsEmpty() bool {
	return x.underlying.Len() == 0
}

// Dispose unblocks producers and consumers; the mailbox cannot be used
// afterwards.
func (x *BoundedMailbox[A]) Dispose() {
	x.underlying.Dispose()
}
