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

import "sync/atomic"

// node returns the queue node
type node[A any] struct {
	value *Envelope[A]
	next  atomic.Pointer[node[A]]
}

// UnboundedMailbox is a Multi-Producer-Single-Consumer Queue (FIFO)
// reference: https://concurrencyfreaks.blogspot.com/2014/04/multi-producer-single-consumer-queue.html
type UnboundedMailbox[A any] struct {
	head   atomic.Pointer[node[A]]
	tail   *node[A]
	length atomic.Int64
}

// enforce compilation error
var _ Mailbox[struct{}] = (*UnboundedMailbox[struct{}])(nil)

// NewUnboundedMailbox creates an instance of UnboundedMailbox
func NewUnboundedMailbox[A any]() *UnboundedMailbox[A] {
	item := new(node[A])
	mailbox := &UnboundedMailbox[A]{tail: item}
	mailbox.head.Store(item)
	return mailbox
}

// Enqueue places the given envelope in the mailbox. It never fails and is
// safe for concurrent producers.
func (x *UnboundedMailbox[A]) Enqueue(envelope *Envelope[A]) error {
	tnode := &node[A]{value: envelope}
	previousHead := x.head.Swap(tnode)
	previousHead.next.Store(tnode)
	x.length.Add(1)
	return nil
}

// Dequeue takes the mail from the mailbox.
// Returns nil if the mailbox is empty. Can be used in a single consumer
// (goroutine) only.
func (x *UnboundedMailbox[A]) Dequeue() *Envelope[A] {
	next := x.tail.next.Load()
	if next == nil {
		return nil
	}

	x.tail = next
	value := next.value
	next.value = nil
	x.length.Add(-1)
	return value
}

// Len returns mailbox length
func (x *UnboundedMailbox[A]) Len() int64 {
	return x.length.Load()
}

// IsEmpty returns true when the mailbox is empty
func (x *UnboundedMailbox[A]) IsEmpty() bool {
	return x.length.Load() == 0
}
