// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package exchange implements the producer side of a paced, cancellable
// streaming exchange.
//
// An exchange is one streaming call instance: a producer emits an
// ordered sequence of messages and the consumer may abandon the
// sequence at any point. The producer observes abandonment through its
// [context.Context] and must stop emitting within one unit of work.
package exchange

import (
	"context"
	"time"
)

// State is the terminal state of an exchange.
type State int

const (
	// Unknown is only ever returned alongside a non-nil error.
	Unknown State = iota

	// Exhausted means the producer emitted every unit it was asked to.
	Exhausted

	// Cancelled means the consumer abandoned the exchange before the
	// producer finished. Cancellation is a normal terminal state, not
	// an error.
	Cancelled
)

// String implements the [fmt.Stringer] interface.
func (s State) String() string {
	switch s {
	case Exhausted:
		return "exhausted"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// EmitFunc produces the unit of work at the given zero-based sequence
// number, e.g. by sending a message on a stream.
type EmitFunc func(ctx context.Context, seq int) error

type options struct {
	interval time.Duration
	onCancel func(context.Context)
}

// Option configures how [Produce] runs.
type Option func(*options)

// PaceEvery delays consecutive units of work by d. The delay itself is
// interruptible: consumer cancellation is observed mid-delay rather
// than after sleeping through it.
func PaceEvery(d time.Duration) Option {
	return func(o *options) {
		o.interval = d
	}
}

// OnCancel registers f to be called when, and only when, consumer
// cancellation is observed. It is called at most once per exchange,
// before Produce returns, e.g. to annotate the active span.
func OnCancel(f func(context.Context)) Option {
	return func(o *options) {
		o.onCancel = f
	}
}

// Produce runs one exchange: it calls emit for each sequence number in
// [0, n), in order, pacing consecutive units if configured.
//
// Before every unit of work the consumer's liveness is checked via ctx.
// Once ctx is done no further units are emitted and Produce returns
// ([Cancelled], nil). If emit itself fails because the consumer went
// away mid-send that is reported as [Cancelled] too; any other emit
// failure aborts the exchange with ([Unknown], err).
func Produce(ctx context.Context, n int, emit EmitFunc, opts ...Option) (State, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	for i := range n {
		if i > 0 && o.interval > 0 {
			select {
			case <-ctx.Done():
				o.notifyCancel(ctx)
				return Cancelled, nil
			case <-time.After(o.interval):
			}
		}

		if ctx.Err() != nil {
			o.notifyCancel(ctx)
			return Cancelled, nil
		}

		err := emit(ctx, i)
		if err == nil {
			continue
		}
		if ctx.Err() != nil {
			o.notifyCancel(ctx)
			return Cancelled, nil
		}
		return Unknown, err
	}
	return Exhausted, nil
}

func (o *options) notifyCancel(ctx context.Context) {
	if o.onCancel == nil {
		return
	}
	o.onCancel(ctx)
}
