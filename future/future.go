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

// Package future provides a single-use, single-value asynchronous result.
//
// A Future/Completable pair is a one-shot channel: the Completable side is
// written at most once, the Future side is read any number of times after the
// first Await resolves. It is the reply channel used to carry an actor
// handler's response back to the original sender of a message.
package future

import (
	"context"
	"errors"
	"sync"
)

// ErrAbandoned is returned by Await when the Completable side was dropped
// without ever producing a value: no reply will ever arrive.
var ErrAbandoned = errors.New("future: abandoned, no value will ever arrive")

// Future represents a value which may or may not currently be available,
// but will be available at some point in the future, or an error if that
// value could not be made available.
//
// A Future is completed at most once through its Completable. Await blocks
// until the Future is completed or the provided context is canceled, and can
// be called repeatedly afterward; it keeps returning the same outcome.
type Future[T any] struct {
	acceptOnce   sync.Once
	completeOnce sync.Once
	done         chan outcome[T]
	value        T
	err          error
}

// outcome carries the single value or error pushed through the done channel.
type outcome[T any] struct {
	value T
	err   error
}

// newFuture returns a new Future.
func newFuture[T any]() *Future[T] {
	return &Future[T]{
		done: make(chan outcome[T], 1),
	}
}

// Await blocks until the Future is completed or context is canceled and
// returns either a result or an error.
func (x *Future[T]) Await(ctx context.Context) (T, error) {
	x.acceptOnce.Do(func() {
		select {
		case result := <-x.done:
			x.value = result.value
			x.err = result.err
		case <-ctx.Done():
			x.err = ctx.Err()
		}
	})
	return x.value, x.err
}

// complete completes the Future with either a value or an error.
// It is used by Completable internally.
func (x *Future[T]) complete(value T, err error) {
	x.completeOnce.Do(func() {
		x.done <- outcome[T]{value: value, err: err}
	})
}

// Completable represents a writable, single-assignment container, which
// completes a Future. All completion operations are once-guarded: whichever
// of Success, Failure or Abandon runs first wins and every later call is a
// no-op. That property is what makes sending a reply fire-and-forget.
type Completable[T any] struct {
	once   sync.Once
	future *Future[T]
}

// NewCompletable returns a new Completable along with its Future.
func NewCompletable[T any]() *Completable[T] {
	return &Completable[T]{
		future: newFuture[T](),
	}
}

// Success completes the underlying Future with a given value.
func (x *Completable[T]) Success(value T) {
	x.once.Do(func() {
		x.future.complete(value, nil)
	})
}

// Failure fails the underlying Future with a given error.
func (x *Completable[T]) Failure(err error) {
	x.once.Do(func() {
		var zero T
		x.future.complete(zero, err)
	})
}

// Abandon fails the underlying Future with ErrAbandoned. It is called when
// the writing side goes away without producing a value, so that a reader
// blocked in Await resolves instead of waiting forever.
func (x *Completable[T]) Abandon() {
	x.Failure(ErrAbandoned)
}

// Future returns the underlying Future.
func (x *Completable[T]) Future() *Future[T] {
	return x.future
}

// New creates a new Future that executes the given long-running task in a
// separate goroutine. The Future is completed with the value returned by the
// task or failed with its error.
func New[T any](task func() (T, error)) *Future[T] {
	completable := NewCompletable[T]()
	go func() {
		result, err := task()
		if err != nil {
			completable.Failure(err)
			return
		}
		completable.Success(result)
	}()
	return completable.Future()
}
