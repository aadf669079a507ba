// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package exchange

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestProduce(t *testing.T) {
	t.Run("will emit every unit in order", func(t *testing.T) {
		t.Run("if the consumer never cancels", func(t *testing.T) {
			var seqs []int
			state, err := Produce(
				context.Background(),
				3,
				func(_ context.Context, seq int) error {
					seqs = append(seqs, seq)
					return nil
				},
			)
			if !assert.Nil(t, err) {
				return
			}
			if !assert.Equal(t, Exhausted, state) {
				return
			}
			if !assert.Equal(t, []int{0, 1, 2}, seqs) {
				return
			}
		})
	})

	t.Run("will stop emitting", func(t *testing.T) {
		t.Run("if the consumer cancels after the first unit", func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			emitted := 0
			cancellations := 0

			state, err := Produce(
				ctx,
				3,
				func(_ context.Context, seq int) error {
					emitted += 1
					cancel()
					return nil
				},
				PaceEvery(time.Second),
				OnCancel(func(_ context.Context) {
					cancellations += 1
				}),
			)
			if !assert.Nil(t, err) {
				return
			}
			if !assert.Equal(t, Cancelled, state) {
				return
			}
			if !assert.Equal(t, 1, emitted) {
				return
			}
			if !assert.Equal(t, 1, cancellations) {
				return
			}
		})

		t.Run("if the consumer cancels before any unit", func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			emitted := 0
			state, err := Produce(
				ctx,
				3,
				func(_ context.Context, seq int) error {
					emitted += 1
					return nil
				},
			)
			if !assert.Nil(t, err) {
				return
			}
			if !assert.Equal(t, Cancelled, state) {
				return
			}
			if !assert.Equal(t, 0, emitted) {
				return
			}
		})
	})

	t.Run("will observe cancellation within one pacing interval", func(t *testing.T) {
		t.Run("if the consumer cancels mid-delay", func(t *testing.T) {
			interval := time.Second

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			start := time.Now()
			state, err := Produce(
				ctx,
				3,
				func(_ context.Context, seq int) error {
					// cancel while the producer is sleeping before unit 2
					time.AfterFunc(10*time.Millisecond, cancel)
					return nil
				},
				PaceEvery(interval),
			)
			elapsed := time.Since(start)

			if !assert.Nil(t, err) {
				return
			}
			if !assert.Equal(t, Cancelled, state) {
				return
			}

			// the delay must be interrupted, not slept through
			if !assert.Less(t, elapsed, interval) {
				return
			}
		})
	})

	t.Run("will abort the exchange", func(t *testing.T) {
		t.Run("if emitting fails for a reason other than cancellation", func(t *testing.T) {
			emitErr := errors.New("failed to send")

			state, err := Produce(
				context.Background(),
				3,
				func(_ context.Context, seq int) error {
					return emitErr
				},
			)
			if !assert.ErrorIs(t, err, emitErr) {
				return
			}
			if !assert.Equal(t, Unknown, state) {
				return
			}
		})

		t.Run("if emitting fails because the consumer went away mid-send", func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			cancellations := 0
			state, err := Produce(
				ctx,
				3,
				func(_ context.Context, seq int) error {
					cancel()
					return context.Canceled
				},
				OnCancel(func(_ context.Context) {
					cancellations += 1
				}),
			)
			if !assert.Nil(t, err) {
				return
			}
			if !assert.Equal(t, Cancelled, state) {
				return
			}
			if !assert.Equal(t, 1, cancellations) {
				return
			}
		})
	})
}

func TestState_String(t *testing.T) {
	t.Run("will describe every terminal state", func(t *testing.T) {
		t.Run("if formatted with the Stringer interface", func(t *testing.T) {
			if !assert.Equal(t, "exhausted", Exhausted.String()) {
				return
			}
			if !assert.Equal(t, "cancelled", Cancelled.String()) {
				return
			}
			if !assert.Equal(t, "unknown", Unknown.String()) {
				return
			}
		})
	})
}
