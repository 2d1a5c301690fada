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

package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	receivedCounterName = "actor_received_count"
	panicCounterName    = "actor_panic_count"
	mailboxGaugeName    = "actor_mailbox_size"
)

// ActorMetrics define the type of metrics we are collecting from an actor.
type ActorMetrics struct {
	// captures the count of messages received by the actor
	ReceivedCount metric.Int64Counter
	// captures the number of times a given actor handler has panicked
	PanicCount metric.Int64Counter
	// captures the actor mailbox size
	MailboxSize metric.Int64ObservableGauge

	attributes   metric.MeasurementOption
	registration metric.Registration
}

// NewActorMetrics creates an instance of ActorMetrics for the named actor.
// The mailboxSize callback is observed every collection cycle.
func NewActorMetrics(meter metric.Meter, actorName string, mailboxSize func() int64) (*ActorMetrics, error) {
	metrics := new(ActorMetrics)
	metrics.attributes = metric.WithAttributes(attribute.String("actor", actorName))
	var err error

	if metrics.ReceivedCount, err = meter.Int64Counter(
		receivedCounterName,
		metric.WithDescription("The total number of messages received"),
	); err != nil {
		return nil, fmt.Errorf("failed to create received count instrument: %w", err)
	}

	if metrics.PanicCount, err = meter.Int64Counter(
		panicCounterName,
		metric.WithDescription("The total number of failures(panic) by the actor"),
	); err != nil {
		return nil, fmt.Errorf("failed to create panic count instrument: %w", err)
	}

	if metrics.MailboxSize, err = meter.Int64ObservableGauge(
		mailboxGaugeName,
		metric.WithDescription("The number of messages in point in time by the actor"),
	); err != nil {
		return nil, fmt.Errorf("failed to create mailbox size instrument: %w", err)
	}

	if metrics.registration, err = meter.RegisterCallback(
		func(_ context.Context, observer metric.Observer) error {
			observer.ObserveInt64(metrics.MailboxSize, mailboxSize(), metrics.attributes)
			return nil
		},
		metrics.MailboxSize,
	); err != nil {
		return nil, fmt.Errorf("failed to register mailbox size callback: %w", err)
	}

	return metrics, nil
}

// MarkReceived increments the received-messages counter.
func (x *ActorMetrics) MarkReceived(ctx context.Context) {
	x.ReceivedCount.Add(ctx, 1, x.attributes)
}

// MarkPanic increments the panic counter.
func (x *ActorMetrics) MarkPanic(ctx context.Context) {
	x.PanicCount.Add(ctx, 1, x.attributes)
}

// Unregister removes the mailbox size observation callback.
func (x *ActorMetrics) Unregister() error {
	return x.registration.Unregister()
}
