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

import "errors"

var (
	// ErrDead indicates that the actor is no longer alive or has been
	// terminated.
	ErrDead = errors.New("actor is not alive")

	// ErrEnvelopeConsumed is the panic value raised when an envelope is
	// dispatched more than once. A consumed envelope cannot be dispatched
	// again; hitting this is a defect in the calling dispatch loop, not a
	// runtime condition to recover from.
	ErrEnvelopeConsumed = errors.New("envelope already consumed: dispatch must be called at most once")

	// ErrPreStartFailure is returned when the actor's PreStart hook fails
	// during spawn.
	ErrPreStartFailure = errors.New("preStart failed")
)
