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
	"errors"
	"fmt"
)

// exitKind enumerates the ways an actor run can end.
type exitKind int

const (
	exitSuccess exitKind = iota
	exitQuit
	exitKilled
	exitDownstreamClosed
	exitFailure
	exitPanicked
)

// ExitStatus describes how and why an actor stopped. It implements error so
// a handler can end its actor by returning one directly; any other error
// returned by a handler is normalized to a Failure. Dispatch itself
// propagates handler errors verbatim and never interprets them.
type ExitStatus struct {
	kind  exitKind
	cause error
}

// Success indicates the actor ran to completion.
func Success() *ExitStatus {
	return &ExitStatus{kind: exitSuccess}
}

// Quit indicates the actor was asked to stop gracefully.
func Quit() *ExitStatus {
	return &ExitStatus{kind: exitQuit}
}

// Killed indicates the actor was stopped forcibly.
func Killed() *ExitStatus {
	return &ExitStatus{kind: exitKilled}
}

// DownstreamClosed indicates the actor stopped because a party it sends to
// went away.
func DownstreamClosed() *ExitStatus {
	return &ExitStatus{kind: exitDownstreamClosed}
}

// Failure indicates the actor stopped because a handler returned the given
// error.
func Failure(cause error) *ExitStatus {
	return &ExitStatus{kind: exitFailure, cause: cause}
}

// Panicked indicates the actor stopped because a handler panicked.
func Panicked(cause error) *ExitStatus {
	return &ExitStatus{kind: exitPanicked, cause: cause}
}

// IsSuccess returns true for the normal terminations Success and Quit.
func (x *ExitStatus) IsSuccess() bool {
	return x.kind == exitSuccess || x.kind == exitQuit
}

// IsFailure returns true for abnormal terminations.
func (x *ExitStatus) IsFailure() bool {
	return x.kind == exitDownstreamClosed || x.kind == exitFailure || x.kind == exitPanicked
}

// Error implements error.
func (x *ExitStatus) Error() string {
	return x.String()
}

// Unwrap exposes the underlying cause, if any.
func (x *ExitStatus) Unwrap() error {
	return x.cause
}

// String implements fmt.Stringer.
func (x *ExitStatus) String() string {
	switch x.kind {
	case exitSuccess:
		return "success"
	case exitQuit:
		return "quit"
	case exitKilled:
		return "killed"
	case exitDownstreamClosed:
		return "downstream closed"
	case exitFailure:
		return fmt.Sprintf("failure: %v", x.cause)
	case exitPanicked:
		return fmt.Sprintf("panicked: %v", x.cause)
	default:
		return "unknown"
	}
}

// toExitStatus normalizes a handler error into an ExitStatus. It is used by
// the run loop only; Dispatch never rewrites handler errors.
func toExitStatus(err error) *ExitStatus {
	var status *ExitStatus
	if errors.As(err, &status) {
		return status
	}
	return Failure(err)
}
