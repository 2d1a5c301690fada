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

	"github.com/tochemey/courier/log"
)

// Context is the execution context handed to message handlers. Dispatch
// passes it through to the handler untouched; the envelope machinery never
// inspects its contents.
type Context struct {
	ctx    context.Context
	self   string
	logger log.Logger
}

// NewContext creates an execution context. It is mostly useful when driving
// Envelope.Dispatch directly, for instance from a custom dispatch loop or a
// test; the PID builds its own.
func NewContext(ctx context.Context, self string, logger log.Logger) *Context {
	return &Context{
		ctx:    ctx,
		self:   self,
		logger: logger,
	}
}

// Context returns the underlying context.Context attached to the message
// delivery.
func (x *Context) Context() context.Context {
	if x.ctx == nil {
		return context.Background()
	}
	return x.ctx
}

// Self returns the name of the actor handling the message.
func (x *Context) Self() string {
	return x.self
}

// Logger returns the logger of the actor handling the message.
func (x *Context) Logger() log.Logger {
	if x.logger == nil {
		return log.DiscardLogger
	}
	return x.logger
}
