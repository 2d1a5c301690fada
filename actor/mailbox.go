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

// Mailbox holds the envelopes awaiting dispatch to a single actor.
// Any implementation should be a thread-safe FIFO supporting multiple
// producers and a single consumer.
type Mailbox[A any] interface {
	// Enqueue places the given envelope in the mailbox. This returns an
	// error when the mailbox cannot accept it.
	Enqueue(envelope *Envelope[A]) error
	// Dequeue takes the next envelope from the mailbox. It returns nil when
	// the mailbox is empty and can be used from a single consumer
	// (goroutine) only.
	Dequeue() *Envelope[A]
	// Len returns the mailbox size.
	Len() int64
	// IsEmpty returns true when the mailbox is empty.
	IsEmpty() bool
}
